package inventory

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"
	v1 "github.com/stockroom-lab/stockroom/internal/api/v1"
	"gopkg.in/yaml.v3"
)

// seedDays is how many days of synthetic sales history seeding generates.
const seedDays = 30

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the sample item list used for seeding.
type Catalog struct {
	Items []CatalogItem `yaml:"items"`
}

type CatalogItem struct {
	Name      string `yaml:"name"`
	Category  string `yaml:"category"`
	Price     string `yaml:"price"`
	Quantity  int    `yaml:"quantity"`
	Threshold int    `yaml:"threshold"`
}

// SeedResult reports how much sample data was written.
type SeedResult struct {
	Items int `json:"items"`
	Sales int `json:"sales"`
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) ([]*v1.InventoryItem, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(catalog.Items) == 0 {
		return nil, fmt.Errorf("catalog has no items")
	}

	items := make([]*v1.InventoryItem, 0, len(catalog.Items))
	for i, entry := range catalog.Items {
		price, err := decimal.NewFromString(entry.Price)
		if err != nil {
			return nil, fmt.Errorf("catalog item %d (%s): invalid price %q: %w", i, entry.Name, entry.Price, err)
		}
		item := &v1.InventoryItem{
			Name:      entry.Name,
			Category:  entry.Category,
			Price:     price,
			Quantity:  entry.Quantity,
			Threshold: entry.Threshold,
		}
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("catalog item %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *Service) loadCatalog() ([]*v1.InventoryItem, error) {
	data := defaultCatalog
	if s.catalogPath != "" {
		var err error
		data, err = os.ReadFile(s.catalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", s.catalogPath, err)
		}
	}
	return ParseCatalog(data)
}

// SeedSampleData replaces all items and sales with the sample catalog plus
// seedDays of synthetic history. On day i an item sells once when
// i % (id+1) == 0, so lower ids sell more often.
func (s *Service) SeedSampleData(ctx context.Context, now time.Time) (*SeedResult, error) {
	items, err := s.loadCatalog()
	if err != nil {
		return nil, err
	}

	if err := s.store.Reset(ctx); err != nil {
		return nil, fmt.Errorf("reset store: %w", err)
	}

	for _, item := range items {
		if err := s.store.CreateItem(ctx, item); err != nil {
			return nil, fmt.Errorf("create item %s: %w", item.Name, err)
		}
	}

	result := &SeedResult{Items: len(items)}
	for i := 0; i < seedDays; i++ {
		soldAt := now.AddDate(0, 0, -(seedDays - i))
		for _, item := range items {
			if int64(i)%(item.ID+1) != 0 {
				continue
			}
			sale := &v1.SaleEvent{
				ItemID:   item.ID,
				Quantity: 1,
				Price:    item.Price,
				SoldAt:   soldAt,
			}
			if err := s.store.RecordSale(ctx, sale); err != nil {
				return nil, fmt.Errorf("record sample sale: %w", err)
			}
			result.Sales++
		}
	}

	slog.Info("[Inventory] Sample data seeded", "items", result.Items, "sales", result.Sales)
	return result, nil
}
