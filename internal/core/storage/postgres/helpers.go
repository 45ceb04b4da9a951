package postgres

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	v1 "github.com/stockroom-lab/stockroom/internal/api/v1"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanItemRow scans an inventory row.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanItemRow(row scanner) (*v1.InventoryItem, error) {
	var item v1.InventoryItem
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.Price,
		&item.Quantity,
		&item.Threshold,
		&item.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func scanSaleRow(row scanner) (*v1.SaleEvent, error) {
	var sale v1.SaleEvent
	if err := row.Scan(&sale.ID, &sale.ItemID, &sale.Quantity, &sale.Price, &sale.SoldAt); err != nil {
		return nil, fmt.Errorf("failed to scan sale row: %w", err)
	}
	return &sale, nil
}

func scanSaleDetailRow(row scanner) (*v1.SaleDetail, error) {
	var detail v1.SaleDetail
	err := row.Scan(
		&detail.ID,
		&detail.ItemID,
		&detail.Quantity,
		&detail.Price,
		&detail.SoldAt,
		&detail.ItemName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan recent sale row: %w", err)
	}
	return &detail, nil
}

// nullTime maps the zero time to SQL NULL.
func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

// buildUpdateItem renders the UPDATE statement for the set fields of upd.
// Column names come from a fixed list, never from caller input.
// The item id is always the last placeholder.
func buildUpdateItem(upd v1.ItemUpdate, now time.Time) (string, []interface{}) {
	var (
		sets []string
		args []interface{}
	)
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Category != nil {
		add("category", *upd.Category)
	}
	if upd.Price != nil {
		add("price", *upd.Price)
	}
	if upd.Quantity != nil {
		add("quantity", *upd.Quantity)
	}
	if upd.Threshold != nil {
		add("threshold", *upd.Threshold)
	}
	add("last_updated", now)

	query := fmt.Sprintf("UPDATE inventory SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args)+1)
	return query, args
}
