package reporting

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	v1 "github.com/stockroom-lab/stockroom/internal/api/v1"
)

// Trend returns daily sales totals for the trailing TrendDays days ending
// today, ascending by date. Days without sales are omitted, so the series is
// not dense.
func Trend(events []*v1.SaleEvent, now time.Time) []TrendPoint {
	start := TrendStart(now)
	end := StartOfDay(now)

	totals := make(map[time.Time]decimal.Decimal)
	for _, evt := range events {
		day := StartOfDay(evt.SoldAt.In(now.Location()))
		if day.Before(start) || day.After(end) {
			continue
		}
		cur, ok := totals[day]
		if !ok {
			cur = decimal.Zero
		}
		totals[day] = cur.Add(evt.Price)
	}

	days := make([]time.Time, 0, len(totals))
	for day := range totals {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	points := make([]TrendPoint, 0, len(days))
	for _, day := range days {
		points = append(points, TrendPoint{Date: FormatDate(day), TotalSales: totals[day]})
	}
	return points
}
