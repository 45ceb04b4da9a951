package reporting

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	v1 "github.com/stockroom-lab/stockroom/internal/api/v1"
)

type bucketTotals struct {
	bucket Bucket
	total  decimal.Decimal
	count  int64
}

// Summarize groups events into buckets of the given kind in loc, ordered by
// bucket start descending and capped at kind.Limit(). Buckets without events
// are absent. KindDay is not special-cased here; see DailySummary.
func Summarize(events []*v1.SaleEvent, kind BucketKind, loc *time.Location) []SummaryRow {
	if loc == nil {
		loc = time.Local
	}
	if !kind.Valid() {
		kind = KindWeek
	}

	groups := make(map[time.Time]*bucketTotals)
	for _, evt := range events {
		b := BucketFor(kind, evt.SoldAt.In(loc))
		g, ok := groups[b.Start]
		if !ok {
			g = &bucketTotals{bucket: b, total: decimal.Zero}
			groups[b.Start] = g
		}
		g.total = g.total.Add(evt.Price)
		g.count++
	}

	ordered := make([]*bucketTotals, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].bucket.Start.After(ordered[j].bucket.Start)
	})

	if limit := kind.Limit(); len(ordered) > limit {
		ordered = ordered[:limit]
	}

	rows := make([]SummaryRow, 0, len(ordered))
	for _, g := range ordered {
		rows = append(rows, toSummaryRow(g))
	}
	return rows
}

// DailySummary returns exactly one row for now's calendar day, zero-valued
// when nothing was sold today.
func DailySummary(events []*v1.SaleEvent, now time.Time) SummaryRow {
	today := BucketFor(KindDay, now)
	g := &bucketTotals{bucket: today, total: decimal.Zero}
	for _, evt := range events {
		if !StartOfDay(evt.SoldAt.In(now.Location())).Equal(today.Start) {
			continue
		}
		g.total = g.total.Add(evt.Price)
		g.count++
	}
	return toSummaryRow(g)
}

func toSummaryRow(g *bucketTotals) SummaryRow {
	return SummaryRow{
		PeriodLabel: g.bucket.Label(),
		PeriodStart: FormatDate(g.bucket.Start),
		PeriodEnd:   FormatDate(g.bucket.End),
		TotalSales:  g.total,
		ItemsSold:   g.count,
	}
}
