package postgres

// SQL queries for inventory and sale storage

const (
	querySchemaTablesExist = `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_name IN ('inventory', 'sales')
	`

	queryListInventory = `
		SELECT id, name, category, price, quantity, threshold, last_updated
		FROM inventory
		ORDER BY name ASC, id ASC
	`

	queryGetItem = `
		SELECT id, name, category, price, quantity, threshold, last_updated
		FROM inventory
		WHERE id = $1
	`

	queryCreateItem = `
		INSERT INTO inventory (name, category, price, quantity, threshold, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	// queryRecordSale appends to the sale log. A NULL sold_at falls back to the
	// database clock so the default matches record-creation time.
	queryRecordSale = `
		INSERT INTO sales (item_id, quantity, price, sold_at)
		VALUES ($1, $2, $3, COALESCE($4, NOW()))
		RETURNING id, sold_at
	`

	// queryListSaleEvents takes an optional half-open window; NULL bounds are open.
	queryListSaleEvents = `
		SELECT id, item_id, quantity, price, sold_at
		FROM sales
		WHERE ($1::timestamptz IS NULL OR sold_at >= $1)
		  AND ($2::timestamptz IS NULL OR sold_at < $2)
		ORDER BY sold_at ASC, id ASC
	`

	queryRecentSales = `
		SELECT s.id, s.item_id, s.quantity, s.price, s.sold_at, i.name
		FROM sales s
		JOIN inventory i ON s.item_id = i.id
		ORDER BY s.sold_at DESC, s.id DESC
		LIMIT $1
	`

	queryReset = `TRUNCATE TABLE sales, inventory RESTART IDENTITY`
)
