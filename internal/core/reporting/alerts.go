package reporting

import (
	"sort"
	"time"

	v1 "github.com/stockroom-lab/stockroom/internal/api/v1"
)

// LowStock returns every item whose quantity is below its threshold, most
// depleted first. Ties keep input order.
func LowStock(items []*v1.InventoryItem) []*v1.InventoryItem {
	low := make([]*v1.InventoryItem, 0)
	for _, item := range items {
		if item.IsLowStock() {
			low = append(low, item)
		}
	}
	sort.SliceStable(low, func(i, j int) bool { return low[i].Quantity < low[j].Quantity })
	return low
}

// PoorPerformers returns the items with no sale dated on or after the
// poor-performer cutoff day. It is an anti-join of items against the set of
// item ids sold inside the window; older sales do not count.
func PoorPerformers(items []*v1.InventoryItem, events []*v1.SaleEvent, now time.Time) []*v1.InventoryItem {
	cutoff := PoorPerformerCutoff(now)

	sold := make(map[int64]struct{})
	for _, evt := range events {
		if StartOfDay(evt.SoldAt.In(now.Location())).Before(cutoff) {
			continue
		}
		sold[evt.ItemID] = struct{}{}
	}

	poor := make([]*v1.InventoryItem, 0)
	for _, item := range items {
		if _, ok := sold[item.ID]; !ok {
			poor = append(poor, item)
		}
	}
	return poor
}

// Evaluate computes both alert classes.
func Evaluate(items []*v1.InventoryItem, recent []*v1.SaleEvent, now time.Time) Alerts {
	return Alerts{
		LowStock:       LowStock(items),
		PoorPerformers: PoorPerformers(items, recent, now),
	}
}
