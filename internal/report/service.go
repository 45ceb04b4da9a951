package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	v1 "github.com/stockroom-lab/stockroom/internal/api/v1"
	"github.com/stockroom-lab/stockroom/internal/core/reporting"
	"github.com/stockroom-lab/stockroom/internal/core/storage"
)

const (
	defaultRankSize         = 5
	defaultRecentSalesLimit = 5
)

// ErrUnknownChart marks a chart type that has no data source.
var ErrUnknownChart = errors.New("unknown chart type")

// Options tunes report behavior. Zero values take defaults.
type Options struct {
	// Location defines calendar days for bucketing. Nil means time.Local.
	Location *time.Location

	// StrictBucketKind rejects unknown periods with reporting.ErrInvalidBucketKind
	// instead of falling back to weekly buckets.
	StrictBucketKind bool

	RankSize         int
	RecentSalesLimit int
}

// Service answers read-only reporting queries over the inventory and sale stores.
// Every call reads the stores afresh; nothing is cached between calls.
type Service struct {
	inventory storage.InventoryStore
	sales     storage.SaleStore
	opts      Options
	nowFn     func() time.Time
}

// NewService creates a new report service.
func NewService(inventory storage.InventoryStore, sales storage.SaleStore, opts Options) *Service {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.RankSize <= 0 {
		opts.RankSize = defaultRankSize
	}
	if opts.RecentSalesLimit <= 0 {
		opts.RecentSalesLimit = defaultRecentSalesLimit
	}

	loc := opts.Location
	return &Service{
		inventory: inventory,
		sales:     sales,
		opts:      opts,
		nowFn: func() time.Time {
			return time.Now().In(loc)
		},
	}
}

// ResolveBucketKind maps a requested period to a bucket kind. An empty period
// means weekly. Unknown periods fail in strict mode and fall back to weekly otherwise.
func (s *Service) ResolveBucketKind(period string) (reporting.BucketKind, error) {
	if strings.TrimSpace(period) == "" {
		return reporting.KindWeek, nil
	}
	kind, err := reporting.ParseBucketKind(period)
	if err != nil {
		if s.opts.StrictBucketKind {
			return "", err
		}
		return reporting.KindWeek, nil
	}
	return kind, nil
}

// GetSummary returns the sales summary rows for kind, newest bucket first.
// KindDay always yields exactly one row for today.
func (s *Service) GetSummary(ctx context.Context, kind reporting.BucketKind) ([]reporting.SummaryRow, error) {
	if !kind.Valid() {
		if s.opts.StrictBucketKind {
			return nil, fmt.Errorf("%w: %q", reporting.ErrInvalidBucketKind, kind)
		}
		kind = reporting.KindWeek
	}

	now := s.now()
	if kind == reporting.KindDay {
		today := reporting.StartOfDay(now)
		events, err := s.sales.ListSaleEvents(ctx, storage.SaleFilter{
			Since: today,
			Until: today.AddDate(0, 0, 1),
		})
		if err != nil {
			return nil, fmt.Errorf("list today's sales: %w", err)
		}
		return []reporting.SummaryRow{reporting.DailySummary(events, now)}, nil
	}

	events, err := s.sales.ListSaleEvents(ctx, storage.SaleFilter{})
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return reporting.Summarize(events, kind, s.opts.Location), nil
}

// GetTrend returns per-day totals for the trailing trend window, ascending.
func (s *Service) GetTrend(ctx context.Context) ([]reporting.TrendPoint, error) {
	return s.trendAt(ctx, s.now())
}

// GetTrendReport returns the trend points together with the window they were
// taken from, both derived from a single clock reading.
func (s *Service) GetTrendReport(ctx context.Context) (*TrendResponse, error) {
	now := s.now()
	points, err := s.trendAt(ctx, now)
	if err != nil {
		return nil, err
	}
	return &TrendResponse{
		Start:  reporting.FormatDate(reporting.TrendStart(now)),
		End:    reporting.FormatDate(now),
		Points: points,
	}, nil
}

func (s *Service) trendAt(ctx context.Context, now time.Time) ([]reporting.TrendPoint, error) {
	events, err := s.sales.ListSaleEvents(ctx, storage.SaleFilter{
		Since: reporting.TrendStart(now),
		Until: reporting.StartOfDay(now).AddDate(0, 0, 1),
	})
	if err != nil {
		return nil, fmt.Errorf("list trend sales: %w", err)
	}
	return reporting.Trend(events, now), nil
}

// GetPerformance returns the lifetime sale count and revenue of every item.
func (s *Service) GetPerformance(ctx context.Context) ([]reporting.ItemPerformance, error) {
	items, err := s.inventory.ListInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	events, err := s.sales.ListSaleEvents(ctx, storage.SaleFilter{})
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return reporting.Performance(items, events), nil
}

// RankPerformers splits perf into the configured number of top and bottom sellers.
func (s *Service) RankPerformers(perf []reporting.ItemPerformance) (top, bottom []reporting.ItemPerformance) {
	return reporting.RankPerformers(perf, s.opts.RankSize)
}

// GetAlerts evaluates low-stock and poor-performer alerts. The inventory and
// sales reads are independent, so they may observe different snapshots.
func (s *Service) GetAlerts(ctx context.Context) (reporting.Alerts, error) {
	items, err := s.inventory.ListInventory(ctx)
	if err != nil {
		return reporting.Alerts{}, fmt.Errorf("list inventory: %w", err)
	}
	return s.alertsFor(ctx, items, s.now())
}

func (s *Service) alertsFor(ctx context.Context, items []*v1.InventoryItem, now time.Time) (reporting.Alerts, error) {
	recent, err := s.sales.ListSaleEvents(ctx, storage.SaleFilter{
		Since: reporting.PoorPerformerCutoff(now),
	})
	if err != nil {
		return reporting.Alerts{}, fmt.Errorf("list recent sales: %w", err)
	}
	return reporting.Evaluate(items, recent, now), nil
}

func (s *Service) now() time.Time {
	return s.nowFn().In(s.opts.Location)
}
