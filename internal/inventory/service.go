package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	v1 "github.com/stockroom-lab/stockroom/internal/api/v1"
	"github.com/stockroom-lab/stockroom/internal/core/storage"
)

const (
	maxSearchResults   = 10
	maxRelatedItems    = 3
	defaultRecentLimit = 5
)

var (
	// ErrInvalidSale marks a sale request that fails validation.
	ErrInvalidSale = errors.New("invalid sale")

	// ErrInvalidUpdate marks an item update that fails validation.
	ErrInvalidUpdate = errors.New("invalid update")
)

// Service implements the inventory and sale-recording operations.
type Service struct {
	store       storage.Store
	catalogPath string
	nowFn       func() time.Time
}

// NewService creates a new inventory service. An empty catalogPath seeds from
// the built-in sample catalog.
func NewService(store storage.Store, catalogPath string) *Service {
	return &Service{
		store:       store,
		catalogPath: catalogPath,
		nowFn:       time.Now,
	}
}

// ListInventory returns every item ordered by name.
func (s *Service) ListInventory(ctx context.Context) ([]*v1.InventoryItem, error) {
	items, err := s.store.ListInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return items, nil
}

// GetItem returns storage.ErrNotFound when id is unknown.
func (s *Service) GetItem(ctx context.Context, id int64) (*v1.InventoryItem, error) {
	item, err := s.store.GetItem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	return item, nil
}

// Search matches item names case-insensitively. When anything matches, up to
// three other items from the first match's category are appended as related
// suggestions. At most ten items are returned.
func (s *Service) Search(ctx context.Context, query string) ([]*v1.InventoryItem, error) {
	items, err := s.ListInventory(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]*v1.InventoryItem, 0)
	matched := make(map[int64]struct{})
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), q) {
			results = append(results, item)
			matched[item.ID] = struct{}{}
		}
	}

	if len(results) > 0 {
		category := results[0].Category
		related := 0
		for _, item := range items {
			if related == maxRelatedItems {
				break
			}
			if _, ok := matched[item.ID]; ok || item.Category != category {
				continue
			}
			results = append(results, item)
			related++
		}
	}

	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	return results, nil
}

// RecordSale appends a sale for req.ItemID and then decrements the item's
// stock. The two writes are not atomic; concurrent sales of one item may lose
// a decrement.
func (s *Service) RecordSale(ctx context.Context, req v1.RecordSaleRequest) (*v1.SaleEvent, error) {
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must be > 0", ErrInvalidSale)
	}

	item, err := s.GetItem(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	price := item.Price.Mul(decimal.NewFromInt(int64(req.Quantity)))
	if req.Price != nil && !req.Price.IsZero() {
		price = *req.Price
	}

	sale := &v1.SaleEvent{
		ItemID:   item.ID,
		Quantity: req.Quantity,
		Price:    price,
	}
	if err := sale.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSale, err)
	}
	if err := s.store.RecordSale(ctx, sale); err != nil {
		return nil, fmt.Errorf("record sale: %w", err)
	}

	remaining := item.Quantity - req.Quantity
	if err := s.store.UpdateItem(ctx, item.ID, v1.ItemUpdate{Quantity: &remaining}); err != nil {
		return nil, fmt.Errorf("decrement stock for item %d: %w", item.ID, err)
	}

	slog.Info("[Inventory] Sale recorded",
		"sale_id", sale.ID,
		"item_id", item.ID,
		"quantity", sale.Quantity,
		"price", sale.Price.String(),
		"remaining", remaining)
	return sale, nil
}

// UpdateItem applies a typed partial update and returns the updated item.
func (s *Service) UpdateItem(ctx context.Context, id int64, upd v1.ItemUpdate) (*v1.InventoryItem, error) {
	if err := upd.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidUpdate, err)
	}
	if err := s.store.UpdateItem(ctx, id, upd); err != nil {
		return nil, fmt.Errorf("update item %d: %w", id, err)
	}
	return s.GetItem(ctx, id)
}

// RecentSales returns the newest sales joined with item names. A non-positive
// limit takes the default of five.
func (s *Service) RecentSales(ctx context.Context, limit int) ([]*v1.SaleDetail, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	sales, err := s.store.RecentSales(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent sales: %w", err)
	}
	return sales, nil
}
