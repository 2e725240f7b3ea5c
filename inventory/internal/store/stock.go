package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"shelf_life/inventory/internal/logic"

	"github.com/juju/errors"
)

// StockItem is a shelf_items row.
type StockItem struct {
	ID  int64  `json:"id"`
	SKU string `json:"sku"`
	logic.Item
	UpdatedAt time.Time `json:"updated_at"`
}

type Store struct {
	db     *sql.DB
	driver string
}

// NewStore wraps db; driver is DriverPostgres or DriverSQLite.
func NewStore(db *sql.DB, driver string) *Store {
	return &Store{db: db, driver: driver}
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// CreateItem inserts a new shelf item and returns its id.
func (s *Store) CreateItem(ctx context.Context, item StockItem) (int64, error) {
	query := `
        INSERT INTO shelf_items (sku, name, category, sell_in, quality)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	var id int64
	err := s.db.QueryRowContext(ctx, query,
		item.SKU,
		item.Name,
		item.Category.String(),
		item.SellIn,
		item.Quality,
	).Scan(&id)
	if isUniqueViolation(err) {
		return 0, errors.AlreadyExistsf("item with sku %q", item.SKU)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert item: %w", err)
	}
	return id, nil
}

// GetItem loads a single shelf item by id.
func (s *Store) GetItem(ctx context.Context, id int64) (*StockItem, error) {
	query := `
        SELECT id, sku, name, category, sell_in, quality, last_updated
        FROM shelf_items
        WHERE id = $1
    `
	item, err := scanItem(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("item %d", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

const selectItems = `
        SELECT id, sku, name, category, sell_in, quality, last_updated
        FROM shelf_items
        ORDER BY id
    `

// ListItems returns every shelf item ordered by id.
func (s *Store) ListItems(ctx context.Context) ([]StockItem, error) {
	rows, err := s.db.QueryContext(ctx, selectItems)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return collectItems(rows)
}

func collectItems(rows *sql.Rows) ([]StockItem, error) {
	defer rows.Close()

	var items []StockItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// DeleteItem removes a shelf item.
func (s *Store) DeleteItem(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM shelf_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if n == 0 {
		return errors.NotFoundf("item %d", id)
	}
	return nil
}

// AgeStock reads every shelf item, applies age to it and writes the new
// sell-in and quality back in one transaction. On Postgres the rows stay
// locked from the read to the commit, so overlapping passes run one after
// the other and each sees the previous one's result.
func (s *Store) AgeStock(ctx context.Context, age func(items []logic.Item)) ([]StockItem, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin aging transaction: %w", err)
	}
	defer tx.Rollback()

	query := selectItems
	if s.driver == DriverPostgres {
		query += ` FOR UPDATE`
	}
	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to lock items: %w", err)
	}
	stock, err := collectItems(rows)
	if err != nil {
		return nil, err
	}

	aged := make([]logic.Item, len(stock))
	for i := range stock {
		aged[i] = stock[i].Item
	}
	age(aged)
	updatedAt := time.Now().UTC()
	for i := range stock {
		stock[i].Item = aged[i]
		stock[i].UpdatedAt = updatedAt
	}

	if err := saveAging(ctx, tx, stock); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit aging: %w", err)
	}
	return stock, nil
}

func saveAging(ctx context.Context, tx *sql.Tx, items []StockItem) error {
	stmt, err := tx.PrepareContext(ctx, `
        UPDATE shelf_items
        SET sell_in = $1,
            quality = $2,
            last_updated = $3
        WHERE id = $4
    `)
	if err != nil {
		return fmt.Errorf("failed to prepare aging update: %w", err)
	}
	defer stmt.Close()

	for _, item := range items {
		if _, err := stmt.ExecContext(ctx, item.SellIn, item.Quality, item.UpdatedAt, item.ID); err != nil {
			return fmt.Errorf("failed to save aging for item %d: %w", item.ID, err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*StockItem, error) {
	var (
		item     StockItem
		category string
	)
	if err := row.Scan(
		&item.ID, &item.SKU, &item.Name, &category, &item.SellIn, &item.Quality, &item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	c, err := logic.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	item.Category = c
	return &item, nil
}
