package reporting

import (
	"sort"

	"github.com/shopspring/decimal"
	v1 "github.com/stockroom-lab/stockroom/internal/api/v1"
)

// Performance computes lifetime sales count and revenue for every item,
// including items that never sold. Sales pointing at unknown items are ignored.
//
// Rows come back by revenue descending, then id ascending. Callers must not
// rely on that order for ranking; use RankPerformers.
func Performance(items []*v1.InventoryItem, events []*v1.SaleEvent) []ItemPerformance {
	rows := make([]ItemPerformance, 0, len(items))
	index := make(map[int64]int, len(items))
	for _, item := range items {
		index[item.ID] = len(rows)
		rows = append(rows, ItemPerformance{ID: item.ID, Name: item.Name, Revenue: decimal.Zero})
	}

	for _, evt := range events {
		i, ok := index[evt.ItemID]
		if !ok {
			continue
		}
		rows[i].Sales++
		rows[i].Revenue = rows[i].Revenue.Add(evt.Price)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if c := rows[i].Revenue.Cmp(rows[j].Revenue); c != 0 {
			return c > 0
		}
		return rows[i].ID < rows[j].ID
	})
	return rows
}

// RankPerformers returns the n best sellers (sales descending) and the n worst
// (sales ascending), each picked independently from the full set. Ties keep
// input order. With few items the two lists can overlap.
func RankPerformers(perf []ItemPerformance, n int) (top, bottom []ItemPerformance) {
	top = append([]ItemPerformance(nil), perf...)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Sales > top[j].Sales })

	bottom = append([]ItemPerformance(nil), perf...)
	sort.SliceStable(bottom, func(i, j int) bool { return bottom[i].Sales < bottom[j].Sales })

	if n < 0 {
		n = 0
	}
	if len(top) > n {
		top = top[:n]
	}
	if len(bottom) > n {
		bottom = bottom[:n]
	}
	return top, bottom
}
