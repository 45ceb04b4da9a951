package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Totals and prices go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// InventoryItem is the current on-hand state of one tracked product.
type InventoryItem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`

	// Quantity is expected to stay >= 0 but is not enforced; sales may drive it negative.
	Quantity  int `json:"quantity"`
	Threshold int `json:"threshold"`

	LastUpdated time.Time `json:"last_updated"`
}

// Validate checks the attributes required to create an item.
func (i *InventoryItem) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if i.Price.IsNegative() {
		return fmt.Errorf("price must be >= 0")
	}
	return nil
}

// IsLowStock reports whether the on-hand quantity has dropped below the reorder threshold.
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity < i.Threshold
}

// ErrEmptyUpdate is returned when an ItemUpdate carries no fields.
var ErrEmptyUpdate = errors.New("update contains no fields")

// ItemUpdate is a typed partial update of an InventoryItem.
// Nil fields are left untouched.
type ItemUpdate struct {
	Name      *string          `json:"name,omitempty"`
	Category  *string          `json:"category,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Quantity  *int             `json:"quantity,omitempty"`
	Threshold *int             `json:"threshold,omitempty"`
}

// DecodeItemUpdate parses an update payload, rejecting any field outside the fixed schema.
func DecodeItemUpdate(r io.Reader) (ItemUpdate, error) {
	var upd ItemUpdate
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&upd); err != nil {
		return ItemUpdate{}, fmt.Errorf("invalid update payload: %w", err)
	}
	if dec.More() {
		return ItemUpdate{}, fmt.Errorf("invalid update payload: trailing data")
	}
	return upd, nil
}

// DecodeItemUpdateBytes is DecodeItemUpdate over an in-memory body.
func DecodeItemUpdateBytes(body []byte) (ItemUpdate, error) {
	return DecodeItemUpdate(bytes.NewReader(body))
}

// IsEmpty reports whether no field is set.
func (u ItemUpdate) IsEmpty() bool {
	return u.Name == nil && u.Category == nil && u.Price == nil && u.Quantity == nil && u.Threshold == nil
}

// Validate checks the set fields against the item schema.
func (u ItemUpdate) Validate() error {
	if u.IsEmpty() {
		return ErrEmptyUpdate
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return fmt.Errorf("name must not be empty")
	}
	if u.Price != nil && u.Price.IsNegative() {
		return fmt.Errorf("price must be >= 0")
	}
	return nil
}

// ApplyTo copies the set fields onto item. It does not touch LastUpdated.
func (u ItemUpdate) ApplyTo(item *InventoryItem) {
	if u.Name != nil {
		item.Name = *u.Name
	}
	if u.Category != nil {
		item.Category = *u.Category
	}
	if u.Price != nil {
		item.Price = *u.Price
	}
	if u.Quantity != nil {
		item.Quantity = *u.Quantity
	}
	if u.Threshold != nil {
		item.Threshold = *u.Threshold
	}
}
