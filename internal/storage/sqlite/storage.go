package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/domain/repository"
)

type productRow struct {
	ID         string          `gorm:"primaryKey"`
	StoreID    string          `gorm:"index;not null"`
	Name       string          `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:text;not null"`
	IsArchived bool            `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (productRow) TableName() string { return "products" }

type orderRow struct {
	ID        string `gorm:"primaryKey"`
	StoreID   string `gorm:"index:idx_orders_store,priority:1;not null"`
	IsPaid    bool   `gorm:"not null;default:false"`
	Address   *string
	Phone     *string
	Items     []orderItemRow `gorm:"foreignKey:OrderID"`
	CreatedAt time.Time      `gorm:"index:idx_orders_store,priority:2,sort:desc"`
	UpdatedAt time.Time
}

func (orderRow) TableName() string { return "orders" }

type orderItemRow struct {
	OrderID   string          `gorm:"primaryKey"`
	ProductID string          `gorm:"primaryKey;index"`
	Quantity  int             `gorm:"not null;default:1"`
	UnitPrice decimal.Decimal `gorm:"type:text;not null"`
	Product   productRow      `gorm:"foreignKey:ProductID;references:ID"`
}

func (orderItemRow) TableName() string { return "order_items" }

// Storage implements the repositories on top of an embedded SQLite database.
type Storage struct {
	db     *gorm.DB
	sqlDB  *sql.DB
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

// New opens the database file and migrates the schema.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	// SQLite allows one writer; a single connection serializes fulfillment.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.WithContext(ctx).AutoMigrate(&productRow{}, &orderRow{}, &orderItemRow{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	return &Storage{db: db, sqlDB: sqlDB, logger: logger}, nil
}

// Close releases the database handle.
func (s *Storage) Close() error {
	if s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// HealthCheck verifies the database handle is usable.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.sqlDB.PingContext(ctx)
}

// Orders returns the order repository.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

// Products returns the product repository.
func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func withItems(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("product_id") }).
		Preload("Items.Product")
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var row orderRow
	err := withItems(r.storage.db.WithContext(ctx)).Take(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	order := row.toModel()
	return &order, nil
}

func (r *orderRepository) ListByStore(ctx context.Context, storeID string) ([]model.Order, error) {
	var rows []orderRow
	err := withItems(r.storage.db.WithContext(ctx)).
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	var result []model.Order
	for _, row := range rows {
		result = append(result, row.toModel())
	}
	return result, nil
}

func (r *orderRepository) Fulfill(ctx context.Context, id string, details model.PaymentDetails) (*model.Fulfillment, error) {
	result := &model.Fulfillment{OrderID: id}
	err := r.storage.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row orderRow
		if err := tx.Select("id", "is_paid").Take(&row, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if err := tx.Model(&orderItemRow{}).
			Where("order_id = ?", id).
			Order("product_id").
			Pluck("product_id", &result.ProductIDs).Error; err != nil {
			return err
		}

		now := time.Now()
		paid := tx.Model(&orderRow{}).
			Where("id = ? AND is_paid = ?", id, false).
			Updates(map[string]any{
				"is_paid":    true,
				"address":    details.Address,
				"phone":      details.Phone,
				"updated_at": now,
			})
		if paid.Error != nil {
			return paid.Error
		}
		result.AlreadyPaid = paid.RowsAffected == 0

		if len(result.ProductIDs) == 0 {
			return nil
		}
		archived := tx.Model(&productRow{}).
			Where("id IN ? AND is_archived = ?", result.ProductIDs, false).
			Updates(map[string]any{"is_archived": true, "updated_at": now})
		if archived.Error != nil {
			return archived.Error
		}
		result.Archived = archived.RowsAffected
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

func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var row productRow
	if err := r.storage.db.WithContext(ctx).Take(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	product := row.toModel()
	return &product, nil
}

func (p productRow) toModel() model.Product {
	return model.Product{
		ID:         p.ID,
		StoreID:    p.StoreID,
		Name:       p.Name,
		Price:      p.Price,
		IsArchived: p.IsArchived,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (o orderRow) toModel() model.Order {
	order := model.Order{
		ID:        o.ID,
		StoreID:   o.StoreID,
		IsPaid:    o.IsPaid,
		Address:   o.Address,
		Phone:     o.Phone,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	for _, item := range o.Items {
		order.Items = append(order.Items, model.OrderItem{
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return order
}
