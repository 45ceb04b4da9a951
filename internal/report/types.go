package report

import (
	"github.com/shopspring/decimal"
	v1 "github.com/stockroom-lab/stockroom/internal/api/v1"
	"github.com/stockroom-lab/stockroom/internal/core/reporting"
)

// SummaryResponse is the body of GET /v1/reports/summary.
type SummaryResponse struct {
	Period reporting.BucketKind   `json:"period"`
	Rows   []reporting.SummaryRow `json:"rows"`
}

// TrendResponse is the body of GET /v1/reports/trend.
type TrendResponse struct {
	Start  string                 `json:"start"`
	End    string                 `json:"end"`
	Points []reporting.TrendPoint `json:"points"`
}

// PerformanceResponse carries every item's performance plus the ranked
// top and bottom sellers by sale count.
type PerformanceResponse struct {
	Items  []reporting.ItemPerformance `json:"items"`
	Top    []reporting.ItemPerformance `json:"top_performers"`
	Bottom []reporting.ItemPerformance `json:"bottom_performers"`
}

// Dashboard bundles the landing-page reads.
type Dashboard struct {
	TotalItems    int                    `json:"total_items"`
	LowStockCount int                    `json:"low_stock_count"`
	DailySales    reporting.SummaryRow   `json:"daily_sales"`
	WeeklySales   []reporting.SummaryRow `json:"weekly_sales"`
	Inventory     []*v1.InventoryItem    `json:"inventory"`
	RecentSales   []*v1.SaleDetail       `json:"recent_sales"`
	Alerts        reporting.Alerts       `json:"alerts"`
}

// ChartType names a supported chart.
type ChartType string

const (
	ChartSalesTrend  ChartType = "sales_trend"
	ChartInventory   ChartType = "inventory"
	ChartPerformance ChartType = "performance"
)

// ChartPoint is one x/y pair. Y is a decimal so money and counts share a shape.
type ChartPoint struct {
	X string          `json:"x"`
	Y decimal.Decimal `json:"y"`
}

// ChartSeries is one named trace of a chart.
type ChartSeries struct {
	Name   string       `json:"name"`
	Kind   string       `json:"kind"` // line | bar
	Points []ChartPoint `json:"points"`
}

// Chart is renderer-agnostic chart data.
type Chart struct {
	Type   ChartType     `json:"type"`
	Title  string        `json:"title"`
	XAxis  string        `json:"x_axis,omitempty"`
	YAxis  string        `json:"y_axis,omitempty"`
	Series []ChartSeries `json:"series"`
}
