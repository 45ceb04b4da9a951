package reporting

import (
	"github.com/shopspring/decimal"
	v1 "github.com/stockroom-lab/stockroom/internal/api/v1"
)

// SummaryRow is one bucket of a sales summary.
// TotalSales is the sum of the recorded sale prices; ItemsSold counts sale events.
type SummaryRow struct {
	PeriodLabel string          `json:"period_label"`
	PeriodStart string          `json:"period_start"`
	PeriodEnd   string          `json:"period_end"`
	TotalSales  decimal.Decimal `json:"total_sales"`
	ItemsSold   int64           `json:"items_sold"`
}

// TrendPoint is the sales total of one calendar day.
type TrendPoint struct {
	Date       string          `json:"date"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

// ItemPerformance is the lifetime sales record of one item.
type ItemPerformance struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Sales   int64           `json:"sales"`
	Revenue decimal.Decimal `json:"revenue"`
}

// Alerts bundles both alert classes. Both lists are always non-nil.
type Alerts struct {
	LowStock       []*v1.InventoryItem `json:"low_stock"`
	PoorPerformers []*v1.InventoryItem `json:"poor_performers"`
}
