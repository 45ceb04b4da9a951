package v1

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SaleEvent is one immutable sale transaction. The log is append-only.
type SaleEvent struct {
	ID     int64 `json:"id"`
	ItemID int64 `json:"item_id"`

	Quantity int `json:"quantity"`

	// Price is the total charged for this sale, recorded at sale time.
	// Reports sum this field so later catalog price changes never rewrite history.
	Price decimal.Decimal `json:"price"`

	// SoldAt defaults to the record-creation time when left zero.
	SoldAt time.Time `json:"sold_at"`
}

// Validate checks the attributes required to append a sale.
func (s *SaleEvent) Validate() error {
	if s.ItemID <= 0 {
		return fmt.Errorf("item_id is required")
	}
	if s.Quantity <= 0 {
		return fmt.Errorf("quantity must be > 0")
	}
	if s.Price.IsNegative() {
		return fmt.Errorf("price must be >= 0")
	}
	return nil
}

// SaleDetail is a SaleEvent joined with the name of the item sold.
type SaleDetail struct {
	SaleEvent
	ItemName string `json:"item_name"`
}

// RecordSaleRequest is the body of POST /v1/sales.
// Quantity defaults to 1; a missing or zero Price defaults to item price x quantity.
type RecordSaleRequest struct {
	ItemID   int64            `json:"item_id" binding:"required"`
	Quantity int              `json:"quantity"`
	Price    *decimal.Decimal `json:"price"`
}
