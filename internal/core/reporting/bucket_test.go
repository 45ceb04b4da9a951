package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseBucketKind(t *testing.T) {
	tests := []struct {
		input     string
		want      BucketKind
		wantError bool
	}{
		{input: "daily", want: KindDay},
		{input: "day", want: KindDay},
		{input: "Weekly", want: KindWeek},
		{input: "month", want: KindMonth},
		{input: "annual", want: KindYear},
		{input: "yearly", want: KindYear},
		{input: "quarterly", wantError: true},
		{input: "", wantError: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			kind, err := ParseBucketKind(tc.input)
			if tc.wantError {
				require.ErrorIs(t, err, ErrInvalidBucketKind)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, kind)
		})
	}
}

func TestBucketFor(t *testing.T) {
	// 2026-10-15 is a Thursday.
	ts := time.Date(2026, 10, 15, 18, 42, 7, 0, time.UTC)

	tests := []struct {
		kind      BucketKind
		wantStart time.Time
		wantEnd   time.Time
		wantLabel string
	}{
		{
			kind:      KindDay,
			wantStart: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
			wantLabel: "2026-10-15",
		},
		{
			kind:      KindWeek,
			wantStart: time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
			wantLabel: "2026-10-11 to 2026-10-17",
		},
		{
			kind:      KindMonth,
			wantStart: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC),
			wantLabel: "2026-10",
		},
		{
			kind:      KindYear,
			wantStart: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
			wantLabel: "2026",
		},
	}

	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			b := BucketFor(tc.kind, ts)
			require.Equal(t, tc.wantStart, b.Start)
			require.Equal(t, tc.wantEnd, b.End)
			require.Equal(t, tc.wantLabel, b.Label())
		})
	}
}

func TestBucketFor_WeekIsSundayAnchored(t *testing.T) {
	saturday := time.Date(2026, 10, 17, 23, 59, 0, 0, time.UTC)
	sunday := time.Date(2026, 10, 18, 0, 1, 0, 0, time.UTC)

	satWeek := BucketFor(KindWeek, saturday)
	sunWeek := BucketFor(KindWeek, sunday)

	require.Equal(t, time.Sunday, satWeek.Start.Weekday())
	require.Equal(t, time.Saturday, satWeek.End.Weekday())
	require.Equal(t, sunday.Truncate(24*time.Hour), sunWeek.Start)
	require.NotEqual(t, satWeek.Start, sunWeek.Start)
}

func TestBucketFor_UsesTimestampLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	// Saturday 20:00 UTC is already Sunday in UTC+9.
	ts := time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC)

	require.Equal(t, "2026-10-11 to 2026-10-17", BucketFor(KindWeek, ts).Label())
	require.Equal(t, "2026-10-18 to 2026-10-24", BucketFor(KindWeek, ts.In(loc)).Label())
}

func TestBucketKind_Limit(t *testing.T) {
	require.Equal(t, 1, KindDay.Limit())
	require.Equal(t, 4, KindWeek.Limit())
	require.Equal(t, 6, KindMonth.Limit())
	require.Equal(t, 3, KindYear.Limit())
	require.False(t, BucketKind("hourly").Valid())
}
