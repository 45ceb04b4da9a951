package reporting

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// BucketKind selects the calendar grain of a summary.
type BucketKind string

const (
	KindDay   BucketKind = "daily"
	KindWeek  BucketKind = "weekly"
	KindMonth BucketKind = "monthly"
	KindYear  BucketKind = "annual"
)

// ErrInvalidBucketKind marks an unrecognized bucket kind.
var ErrInvalidBucketKind = errors.New("invalid bucket kind")

// bucketLimits caps how many buckets each summary returns, most recent first.
var bucketLimits = map[BucketKind]int{
	KindDay:   1,
	KindWeek:  4,
	KindMonth: 6,
	KindYear:  3,
}

var bucketAliases = map[string]BucketKind{
	"day":     KindDay,
	"daily":   KindDay,
	"week":    KindWeek,
	"weekly":  KindWeek,
	"month":   KindMonth,
	"monthly": KindMonth,
	"year":    KindYear,
	"yearly":  KindYear,
	"annual":  KindYear,
}

// ParseBucketKind maps a period name to its BucketKind.
func ParseBucketKind(s string) (BucketKind, error) {
	kind, ok := bucketAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidBucketKind, s)
	}
	return kind, nil
}

// Limit returns the maximum number of rows a summary of this kind returns.
func (k BucketKind) Limit() int {
	return bucketLimits[k]
}

// Valid reports whether k is one of the four supported kinds.
func (k BucketKind) Valid() bool {
	_, ok := bucketLimits[k]
	return ok
}

// Bucket is a calendar-aligned interval. Start and End are the first and
// last calendar days it covers.
type Bucket struct {
	Kind  BucketKind
	Start time.Time
	End   time.Time
}

// BucketFor returns the bucket of the given kind containing t, in t's location.
// Weeks always run Sunday to Saturday.
func BucketFor(kind BucketKind, t time.Time) Bucket {
	day := StartOfDay(t)
	switch kind {
	case KindDay:
		return Bucket{Kind: kind, Start: day, End: day}
	case KindMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return Bucket{Kind: kind, Start: start, End: start.AddDate(0, 1, -1)}
	case KindYear:
		start := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location())
		return Bucket{Kind: kind, Start: start, End: start.AddDate(1, 0, -1)}
	default:
		start := day.AddDate(0, 0, -int(day.Weekday()))
		return Bucket{Kind: KindWeek, Start: start, End: start.AddDate(0, 0, 6)}
	}
}

// Label renders the bucket the way reports and CSV exports show it.
func (b Bucket) Label() string {
	switch b.Kind {
	case KindDay:
		return FormatDate(b.Start)
	case KindMonth:
		return b.Start.Format("2006-01")
	case KindYear:
		return b.Start.Format("2006")
	default:
		return FormatDate(b.Start) + " to " + FormatDate(b.End)
	}
}
