package storage

import (
	"context"
	"errors"
	"time"

	v1 "github.com/stockroom-lab/stockroom/internal/api/v1"
)

// ErrNotFound is returned when the requested inventory item does not exist.
var ErrNotFound = errors.New("item not found")

// SaleFilter narrows ListSaleEvents to a half-open time window [Since, Until).
// A zero bound is unbounded on that side.
type SaleFilter struct {
	Since time.Time
	Until time.Time
}

// Matches reports whether t falls inside the filter window.
func (f SaleFilter) Matches(t time.Time) bool {
	if !f.Since.IsZero() && t.Before(f.Since) {
		return false
	}
	if !f.Until.IsZero() && !t.Before(f.Until) {
		return false
	}
	return true
}

// InventoryStore reads and mutates the inventory snapshot.
type InventoryStore interface {
	// ListInventory returns every item ordered by name.
	ListInventory(ctx context.Context) ([]*v1.InventoryItem, error)

	// GetItem returns ErrNotFound when id is unknown.
	GetItem(ctx context.Context, id int64) (*v1.InventoryItem, error)

	// CreateItem inserts item and populates ID and LastUpdated.
	CreateItem(ctx context.Context, item *v1.InventoryItem) error

	// UpdateItem applies the set fields of upd and bumps last_updated.
	// Returns ErrNotFound when id is unknown.
	UpdateItem(ctx context.Context, id int64, upd v1.ItemUpdate) error
}

// SaleStore is the append-only sale event log.
type SaleStore interface {
	// RecordSale appends sale and populates ID (and SoldAt when it was zero).
	RecordSale(ctx context.Context, sale *v1.SaleEvent) error

	// ListSaleEvents returns events inside filter ordered by sold_at ASC.
	ListSaleEvents(ctx context.Context, filter SaleFilter) ([]*v1.SaleEvent, error)

	// RecentSales returns the newest sales first, joined with item names.
	RecentSales(ctx context.Context, limit int) ([]*v1.SaleDetail, error)
}

// Store is the full record store backing the service.
type Store interface {
	InventoryStore
	SaleStore

	// Reset removes every sale and item. Used by sample-data seeding only.
	Reset(ctx context.Context) error
}
