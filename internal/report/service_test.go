package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	v1 "github.com/stockroom-lab/stockroom/internal/api/v1"
	"github.com/stockroom-lab/stockroom/internal/core/reporting"
	"github.com/stockroom-lab/stockroom/internal/core/storage/memory"
	"github.com/stretchr/testify/require"
)

// Thursday.
var fixedNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func newMemoryService(t *testing.T, opts Options) (*Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	svc := NewService(store, store, opts)
	svc.nowFn = func() time.Time { return fixedNow }
	return svc, store
}

func seedMilk(t *testing.T, store *memory.Store) *v1.InventoryItem {
	t.Helper()
	milk := &v1.InventoryItem{
		Name:      "Milk",
		Category:  "Dairy",
		Price:     decimal.NewFromInt(15),
		Quantity:  20,
		Threshold: 5,
	}
	require.NoError(t, store.CreateItem(context.Background(), milk))
	return milk
}

func recordSale(t *testing.T, store *memory.Store, itemID int64, qty int, price int64, at time.Time) {
	t.Helper()
	require.NoError(t, store.RecordSale(context.Background(), &v1.SaleEvent{
		ItemID:   itemID,
		Quantity: qty,
		Price:    decimal.NewFromInt(price),
		SoldAt:   at,
	}))
}

func TestService_MilkScenario_NoSales(t *testing.T) {
	ctx := context.Background()
	svc, store := newMemoryService(t, Options{StrictBucketKind: true})
	milk := seedMilk(t, store)

	alerts, err := svc.GetAlerts(ctx)
	require.NoError(t, err)
	require.Empty(t, alerts.LowStock)
	require.Len(t, alerts.PoorPerformers, 1)
	require.Equal(t, milk.ID, alerts.PoorPerformers[0].ID)

	rows, err := svc.GetSummary(ctx, reporting.KindDay)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "2026-10-15", rows[0].PeriodLabel)
	require.True(t, rows[0].TotalSales.IsZero())
	require.Equal(t, int64(0), rows[0].ItemsSold)
}

func TestService_MilkScenario_AfterSale(t *testing.T) {
	ctx := context.Background()
	svc, store := newMemoryService(t, Options{StrictBucketKind: true})
	milk := seedMilk(t, store)
	recordSale(t, store, milk.ID, 2, 30, fixedNow.Add(-time.Hour))

	rows, err := svc.GetSummary(ctx, reporting.KindDay)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.True(t, rows[0].TotalSales.Equal(decimal.NewFromInt(30)))
	require.Equal(t, int64(1), rows[0].ItemsSold)

	trend, err := svc.GetTrend(ctx)
	require.NoError(t, err)
	require.Len(t, trend, 1)
	require.Equal(t, "2026-10-15", trend[0].Date)
	require.True(t, trend[0].TotalSales.Equal(decimal.NewFromInt(30)))

	perf, err := svc.GetPerformance(ctx)
	require.NoError(t, err)
	require.Len(t, perf, 1)
	require.Equal(t, int64(1), perf[0].Sales)
	require.True(t, perf[0].Revenue.Equal(decimal.NewFromInt(30)))

	alerts, err := svc.GetAlerts(ctx)
	require.NoError(t, err)
	require.Empty(t, alerts.PoorPerformers)
}

func TestService_GetSummary_WeekBoundary(t *testing.T) {
	ctx := context.Background()
	svc, store := newMemoryService(t, Options{StrictBucketKind: true})
	milk := seedMilk(t, store)

	saturday := time.Date(2026, 10, 10, 18, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 10, 11, 9, 0, 0, 0, time.UTC)
	recordSale(t, store, milk.ID, 1, 15, saturday)
	recordSale(t, store, milk.ID, 1, 15, sunday)

	rows, err := svc.GetSummary(ctx, reporting.KindWeek)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "2026-10-11", rows[0].PeriodStart)
	require.Equal(t, "2026-10-17", rows[0].PeriodEnd)
	require.Equal(t, "2026-10-04", rows[1].PeriodStart)
	require.Equal(t, "2026-10-10", rows[1].PeriodEnd)
}

func TestService_GetSummary_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, store := newMemoryService(t, Options{StrictBucketKind: true})
	milk := seedMilk(t, store)
	for i := 0; i < 60; i += 3 {
		recordSale(t, store, milk.ID, 1, 15, fixedNow.AddDate(0, 0, -i))
	}

	for _, kind := range []reporting.BucketKind{reporting.KindDay, reporting.KindWeek, reporting.KindMonth, reporting.KindYear} {
		first, err := svc.GetSummary(ctx, kind)
		require.NoError(t, err)
		second, err := svc.GetSummary(ctx, kind)
		require.NoError(t, err)
		require.Equal(t, first, second, "kind %s", kind)
		require.LessOrEqual(t, len(first), kind.Limit())
	}
}

func TestService_TrendPerformanceAlerts_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, store := newMemoryService(t, Options{StrictBucketKind: true})

	milk := seedMilk(t, store)
	cheese := &v1.InventoryItem{Name: "Cheese", Category: "Dairy", Price: decimal.NewFromInt(30), Quantity: 1, Threshold: 3}
	bread := &v1.InventoryItem{Name: "Bread", Category: "Bakery", Price: decimal.NewFromInt(10), Quantity: 1, Threshold: 3}
	apple := &v1.InventoryItem{Name: "Apple", Category: "Fruit", Price: decimal.NewFromInt(15), Quantity: 2, Threshold: 3}
	for _, item := range []*v1.InventoryItem{cheese, bread, apple} {
		require.NoError(t, store.CreateItem(ctx, item))
	}

	// Milk and Cheese tie on revenue; Bread and Cheese tie on quantity.
	recordSale(t, store, milk.ID, 2, 30, fixedNow.AddDate(0, 0, -1))
	recordSale(t, store, cheese.ID, 1, 30, fixedNow.AddDate(0, 0, -2))
	recordSale(t, store, apple.ID, 1, 15, fixedNow.AddDate(0, 0, -40))

	firstTrend, err := svc.GetTrend(ctx)
	require.NoError(t, err)
	secondTrend, err := svc.GetTrend(ctx)
	require.NoError(t, err)
	require.Equal(t, firstTrend, secondTrend)
	require.Len(t, firstTrend, 2)
	require.Equal(t, "2026-10-13", firstTrend[0].Date)
	require.Equal(t, "2026-10-14", firstTrend[1].Date)

	firstPerf, err := svc.GetPerformance(ctx)
	require.NoError(t, err)
	secondPerf, err := svc.GetPerformance(ctx)
	require.NoError(t, err)
	require.Equal(t, firstPerf, secondPerf)
	perfIDs := make([]int64, 0, len(firstPerf))
	for _, p := range firstPerf {
		perfIDs = append(perfIDs, p.ID)
	}
	require.Equal(t, []int64{milk.ID, cheese.ID, apple.ID, bread.ID}, perfIDs)

	firstAlerts, err := svc.GetAlerts(ctx)
	require.NoError(t, err)
	secondAlerts, err := svc.GetAlerts(ctx)
	require.NoError(t, err)
	require.Equal(t, firstAlerts, secondAlerts)

	lowNames := make([]string, 0, len(firstAlerts.LowStock))
	for _, item := range firstAlerts.LowStock {
		lowNames = append(lowNames, item.Name)
	}
	require.Equal(t, []string{"Bread", "Cheese", "Apple"}, lowNames)

	poorNames := make([]string, 0, len(firstAlerts.PoorPerformers))
	for _, item := range firstAlerts.PoorPerformers {
		poorNames = append(poorNames, item.Name)
	}
	require.Equal(t, []string{"Apple", "Bread"}, poorNames)
}

func TestService_GetSummary_InvalidKind(t *testing.T) {
	ctx := context.Background()

	strict, _ := newMemoryService(t, Options{StrictBucketKind: true})
	_, err := strict.GetSummary(ctx, reporting.BucketKind("hourly"))
	require.ErrorIs(t, err, reporting.ErrInvalidBucketKind)

	lenient, store := newMemoryService(t, Options{StrictBucketKind: false})
	milk := seedMilk(t, store)
	recordSale(t, store, milk.ID, 1, 15, fixedNow)

	rows, err := lenient.GetSummary(ctx, reporting.BucketKind("hourly"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "2026-10-11 to 2026-10-17", rows[0].PeriodLabel)
}

func TestService_ResolveBucketKind(t *testing.T) {
	strict, _ := newMemoryService(t, Options{StrictBucketKind: true})
	lenient, _ := newMemoryService(t, Options{})

	tests := []struct {
		name    string
		svc     *Service
		period  string
		want    reporting.BucketKind
		wantErr bool
	}{
		{name: "empty defaults to weekly", svc: strict, period: "", want: reporting.KindWeek},
		{name: "daily", svc: strict, period: "daily", want: reporting.KindDay},
		{name: "monthly alias", svc: strict, period: "month", want: reporting.KindMonth},
		{name: "annual", svc: strict, period: "annual", want: reporting.KindYear},
		{name: "strict rejects unknown", svc: strict, period: "hourly", wantErr: true},
		{name: "lenient falls back to weekly", svc: lenient, period: "hourly", want: reporting.KindWeek},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.svc.ResolveBucketKind(tc.period)
			if tc.wantErr {
				require.ErrorIs(t, err, reporting.ErrInvalidBucketKind)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestService_GetDashboard(t *testing.T) {
	ctx := context.Background()
	svc, store := newMemoryService(t, Options{StrictBucketKind: true, RecentSalesLimit: 2})
	milk := seedMilk(t, store)
	bread := &v1.InventoryItem{Name: "Bread", Category: "Bakery", Price: decimal.NewFromInt(10), Quantity: 2, Threshold: 3}
	require.NoError(t, store.CreateItem(ctx, bread))

	recordSale(t, store, milk.ID, 1, 15, fixedNow.Add(-2*time.Hour))
	recordSale(t, store, milk.ID, 1, 15, fixedNow.Add(-time.Hour))
	recordSale(t, store, bread.ID, 1, 10, fixedNow.AddDate(0, 0, -3))

	dash, err := svc.GetDashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, dash.TotalItems)
	require.Equal(t, 1, dash.LowStockCount)
	require.True(t, dash.DailySales.TotalSales.Equal(decimal.NewFromInt(30)))
	require.Equal(t, int64(2), dash.DailySales.ItemsSold)
	require.Len(t, dash.RecentSales, 2)
	require.Equal(t, "Milk", dash.RecentSales[0].ItemName)
	require.Len(t, dash.Alerts.LowStock, 1)
	require.Equal(t, "Bread", dash.Alerts.LowStock[0].Name)
	require.Empty(t, dash.Alerts.PoorPerformers)
	require.NotEmpty(t, dash.WeeklySales)
}

func TestService_ExportSummaryCSV(t *testing.T) {
	ctx := context.Background()
	svc, store := newMemoryService(t, Options{StrictBucketKind: true})
	milk := seedMilk(t, store)
	recordSale(t, store, milk.ID, 1, 15, time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC))
	recordSale(t, store, milk.ID, 2, 30, time.Date(2026, 10, 2, 10, 0, 0, 0, time.UTC))

	var buf bytes.Buffer
	require.NoError(t, svc.ExportSummaryCSV(ctx, &buf, reporting.KindMonth))
	require.Equal(t, "Period,Total Sales,Items Sold\n2026-10,30.00,1\n2026-09,15.00,1\n", buf.String())
	require.Equal(t, "monthly_report.csv", ExportFilename(reporting.KindMonth))
}

func TestService_GetChart(t *testing.T) {
	ctx := context.Background()
	svc, store := newMemoryService(t, Options{StrictBucketKind: true, RankSize: 1})
	milk := seedMilk(t, store)
	bread := &v1.InventoryItem{Name: "Bread", Category: "Bakery", Price: decimal.NewFromInt(10), Quantity: 15, Threshold: 3}
	require.NoError(t, store.CreateItem(ctx, bread))
	recordSale(t, store, milk.ID, 1, 15, fixedNow)
	recordSale(t, store, milk.ID, 1, 15, fixedNow.AddDate(0, 0, -1))

	trend, err := svc.GetChart(ctx, ChartSalesTrend)
	require.NoError(t, err)
	require.Len(t, trend.Series, 1)
	require.Len(t, trend.Series[0].Points, 2)
	require.Equal(t, "2026-10-14", trend.Series[0].Points[0].X)

	inv, err := svc.GetChart(ctx, ChartInventory)
	require.NoError(t, err)
	require.Equal(t, "Bread", inv.Series[0].Points[0].X)
	require.True(t, inv.Series[0].Points[0].Y.Equal(decimal.NewFromInt(15)))

	perf, err := svc.GetChart(ctx, ChartPerformance)
	require.NoError(t, err)
	require.Len(t, perf.Series, 2)
	require.Equal(t, "Milk", perf.Series[0].Points[0].X)
	require.Equal(t, "Bread", perf.Series[1].Points[0].X)

	_, err = svc.GetChart(ctx, ChartType("pie"))
	require.ErrorIs(t, err, ErrUnknownChart)
}

func TestParseChartType(t *testing.T) {
	got, err := ParseChartType("")
	require.NoError(t, err)
	require.Equal(t, ChartSalesTrend, got)

	got, err = ParseChartType("inventory")
	require.NoError(t, err)
	require.Equal(t, ChartInventory, got)

	_, err = ParseChartType("pie")
	require.ErrorIs(t, err, ErrUnknownChart)
}
