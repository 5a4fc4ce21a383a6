package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/domain/repository"
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

// Orders returns the order repository.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

// Products returns the product repository.
func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
            id TEXT PRIMARY KEY,
            store_id TEXT NOT NULL,
            name TEXT NOT NULL,
            price NUMERIC(12, 2) NOT NULL DEFAULT 0,
            is_archived BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            store_id TEXT NOT NULL,
            is_paid BOOLEAN NOT NULL DEFAULT FALSE,
            address TEXT,
            phone TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            product_id TEXT NOT NULL REFERENCES products(id),
            quantity INTEGER NOT NULL DEFAULT 1,
            unit_price NUMERIC(12, 2) NOT NULL DEFAULT 0,
            PRIMARY KEY (order_id, product_id)
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_store ON orders(store_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_product ON order_items(product_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- OrderRepository implementation ---

const selectOrderColumns = `SELECT id, store_id, is_paid, address, phone, created_at, updated_at FROM orders`

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, selectOrderColumns+` WHERE id=$1`, id).
		Scan(&o.ID, &o.StoreID, &o.IsPaid, &o.Address, &o.Phone, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	items, err := r.loadItems(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return &o, nil
}

func (r *orderRepository) ListByStore(ctx context.Context, storeID string) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, selectOrderColumns+` WHERE store_id=$1 ORDER BY created_at DESC`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		result []model.Order
		ids    []string
	)
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.StoreID, &o.IsPaid, &o.Address, &o.Phone, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return result, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range result {
		result[i].Items = items[result[i].ID]
	}
	return result, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderIDs []string) (map[string][]model.OrderItem, error) {
	const query = `SELECT oi.order_id, oi.product_id, COALESCE(p.name, ''), oi.quantity, oi.unit_price::text
                   FROM order_items oi
                   LEFT JOIN products p ON p.id = oi.product_id
                   WHERE oi.order_id = ANY($1)
                   ORDER BY oi.order_id, oi.product_id`
	rows, err := r.storage.pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[string][]model.OrderItem, len(orderIDs))
	for rows.Next() {
		var (
			item  model.OrderItem
			price string
		)
		if err := rows.Scan(&item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &price); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("parse unit price: %w", err)
		}
		items[item.OrderID] = append(items[item.OrderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderRepository) Fulfill(ctx context.Context, id string, details model.PaymentDetails) (*model.Fulfillment, error) {
	const (
		lockOrder     = `SELECT is_paid FROM orders WHERE id=$1 FOR UPDATE`
		selectItems   = `SELECT product_id FROM order_items WHERE order_id=$1 ORDER BY product_id`
		markPaid      = `UPDATE orders SET is_paid=TRUE, address=$2, phone=$3, updated_at=NOW() WHERE id=$1 AND is_paid=FALSE`
		archiveByItem = `UPDATE products SET is_archived=TRUE, updated_at=NOW() WHERE id = ANY($1) AND is_archived=FALSE`
	)

	result := &model.Fulfillment{OrderID: id}
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var paid bool
		if err := tx.QueryRow(ctx, lockOrder, id).Scan(&paid); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		rows, err := tx.Query(ctx, selectItems, id)
		if err != nil {
			return err
		}
		for rows.Next() {
			var productID string
			if err := rows.Scan(&productID); err != nil {
				rows.Close()
				return err
			}
			result.ProductIDs = append(result.ProductIDs, productID)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		result.AlreadyPaid = paid
		if !paid {
			tag, err := tx.Exec(ctx, markPaid, id, details.Address, details.Phone)
			if err != nil {
				return err
			}
			result.AlreadyPaid = tag.RowsAffected() == 0
		}

		if len(result.ProductIDs) == 0 {
			return nil
		}
		tag, err := tx.Exec(ctx, archiveByItem, result.ProductIDs)
		if err != nil {
			return err
		}
		result.Archived = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.storage.logger.DebugContext(ctx, "order fulfilled",
		slog.String("order_id", id),
		slog.Bool("already_paid", result.AlreadyPaid),
		slog.Int64("archived", result.Archived),
	)
	return result, nil
}

// --- ProductRepository implementation ---

func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	const query = `SELECT id, store_id, name, price::text, is_archived, created_at, updated_at FROM products WHERE id=$1`
	var (
		p     model.Product
		price string
	)
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.StoreID, &p.Name, &price, &p.IsArchived, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if p.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("parse price: %w", err)
	}
	return &p, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
