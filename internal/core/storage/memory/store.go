package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	v1 "github.com/stockroom-lab/stockroom/internal/api/v1"
	"github.com/stockroom-lab/stockroom/internal/core/storage"
)

// Store is an in-memory implementation of storage.Store.
// Useful for testing and development.
type Store struct {
	mu         sync.RWMutex
	items      map[int64]*v1.InventoryItem
	sales      []*v1.SaleEvent
	nextItemID int64
	nextSaleID int64
	nowFn      func() time.Time
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		items:      make(map[int64]*v1.InventoryItem),
		nextItemID: 1,
		nextSaleID: 1,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (s *Store) ListInventory(ctx context.Context) ([]*v1.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*v1.InventoryItem, 0, len(s.items))
	for _, item := range s.items {
		stored := *item
		result = append(result, &stored)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (s *Store) GetItem(ctx context.Context, id int64) (*v1.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	stored := *item
	return &stored, nil
}

func (s *Store) CreateItem(ctx context.Context, item *v1.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.nextItemID
	s.nextItemID++
	item.LastUpdated = s.nowFn()

	stored := *item
	s.items[item.ID] = &stored
	return nil
}

func (s *Store) UpdateItem(ctx context.Context, id int64, upd v1.ItemUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if upd.IsEmpty() {
		return v1.ErrEmptyUpdate
	}

	item, ok := s.items[id]
	if !ok {
		return storage.ErrNotFound
	}
	upd.ApplyTo(item)
	item.LastUpdated = s.nowFn()
	return nil
}

func (s *Store) RecordSale(ctx context.Context, sale *v1.SaleEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sale.ID = s.nextSaleID
	s.nextSaleID++
	if sale.SoldAt.IsZero() {
		sale.SoldAt = s.nowFn()
	}

	stored := *sale
	s.sales = append(s.sales, &stored)
	return nil
}

func (s *Store) ListSaleEvents(ctx context.Context, filter storage.SaleFilter) ([]*v1.SaleEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*v1.SaleEvent, 0)
	for _, sale := range s.sales {
		if !filter.Matches(sale.SoldAt) {
			continue
		}
		stored := *sale
		result = append(result, &stored)
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].SoldAt.Before(result[j].SoldAt) })
	return result, nil
}

func (s *Store) RecentSales(ctx context.Context, limit int) ([]*v1.SaleDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ordered := make([]*v1.SaleEvent, len(s.sales))
	for i, sale := range s.sales {
		ordered[i] = sale
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].SoldAt.Equal(ordered[j].SoldAt) {
			return ordered[i].SoldAt.After(ordered[j].SoldAt)
		}
		return ordered[i].ID > ordered[j].ID
	})

	result := make([]*v1.SaleDetail, 0)
	for _, sale := range ordered {
		if len(result) >= limit {
			break
		}
		// Inner join: sales whose item vanished are skipped.
		item, ok := s.items[sale.ItemID]
		if !ok {
			continue
		}
		result = append(result, &v1.SaleDetail{SaleEvent: *sale, ItemName: item.Name})
	}
	return result, nil
}

func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[int64]*v1.InventoryItem)
	s.sales = nil
	s.nextItemID = 1
	s.nextSaleID = 1
	return nil
}

// Ping always succeeds unless ctx is already done.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

var _ storage.Store = (*Store)(nil)
