package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stockroom-lab/stockroom/internal/core/reporting"
)

// ParseChartType maps a requested chart name; empty means the sales trend.
func ParseChartType(s string) (ChartType, error) {
	switch ChartType(s) {
	case "":
		return ChartSalesTrend, nil
	case ChartSalesTrend, ChartInventory, ChartPerformance:
		return ChartType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownChart, s)
	}
}

// GetChart returns the series backing a dashboard chart.
func (s *Service) GetChart(ctx context.Context, chartType ChartType) (*Chart, error) {
	switch chartType {
	case ChartSalesTrend:
		points, err := s.GetTrend(ctx)
		if err != nil {
			return nil, err
		}
		series := ChartSeries{Name: "Daily Sales", Kind: "line", Points: make([]ChartPoint, 0, len(points))}
		for _, p := range points {
			series.Points = append(series.Points, ChartPoint{X: p.Date, Y: p.TotalSales})
		}
		return &Chart{
			Type:   chartType,
			Title:  fmt.Sprintf("Sales Trend (Last %d Days)", reporting.TrendDays),
			XAxis:  "Date",
			YAxis:  "Total Sales",
			Series: []ChartSeries{series},
		}, nil

	case ChartInventory:
		items, err := s.inventory.ListInventory(ctx)
		if err != nil {
			return nil, fmt.Errorf("list inventory: %w", err)
		}
		series := ChartSeries{Name: "Current Stock", Kind: "bar", Points: make([]ChartPoint, 0, len(items))}
		for _, item := range items {
			series.Points = append(series.Points, ChartPoint{X: item.Name, Y: decimal.NewFromInt(int64(item.Quantity))})
		}
		return &Chart{
			Type:   chartType,
			Title:  "Current Inventory Levels",
			XAxis:  "Product",
			YAxis:  "Quantity",
			Series: []ChartSeries{series},
		}, nil

	case ChartPerformance:
		perf, err := s.GetPerformance(ctx)
		if err != nil {
			return nil, err
		}
		top, bottom := s.RankPerformers(perf)
		return &Chart{
			Type:  chartType,
			Title: "Product Performance",
			Series: []ChartSeries{
				salesSeries("Top Sellers", top),
				salesSeries("Poor Performers", bottom),
			},
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChart, chartType)
	}
}

func salesSeries(name string, perf []reporting.ItemPerformance) ChartSeries {
	series := ChartSeries{Name: name, Kind: "bar", Points: make([]ChartPoint, 0, len(perf))}
	for _, p := range perf {
		series.Points = append(series.Points, ChartPoint{X: p.Name, Y: decimal.NewFromInt(p.Sales)})
	}
	return series
}
