package report

import (
	"context"
	"fmt"

	v1 "github.com/stockroom-lab/stockroom/internal/api/v1"
	"github.com/stockroom-lab/stockroom/internal/core/reporting"
	"golang.org/x/sync/errgroup"
)

// GetDashboard gathers the landing-page reads concurrently. Any failed
// sub-read fails the whole dashboard.
func (s *Service) GetDashboard(ctx context.Context) (*Dashboard, error) {
	var (
		items  []*v1.InventoryItem
		recent []*v1.SaleDetail
		daily  []reporting.SummaryRow
		weekly []reporting.SummaryRow
		alerts reporting.Alerts
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.inventory.ListInventory(gctx)
		if err != nil {
			return fmt.Errorf("list inventory: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		recent, err = s.sales.RecentSales(gctx, s.opts.RecentSalesLimit)
		if err != nil {
			return fmt.Errorf("list recent sales: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		daily, err = s.GetSummary(gctx, reporting.KindDay)
		return err
	})
	g.Go(func() error {
		var err error
		weekly, err = s.GetSummary(gctx, reporting.KindWeek)
		return err
	})
	g.Go(func() error {
		var err error
		alerts, err = s.GetAlerts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("build dashboard: %w", err)
	}

	return &Dashboard{
		TotalItems:    len(items),
		LowStockCount: len(reporting.LowStock(items)),
		DailySales:    daily[0],
		WeeklySales:   weekly,
		Inventory:     items,
		RecentSales:   recent,
		Alerts:        alerts,
	}, nil
}
