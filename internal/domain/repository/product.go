package repository

import (
	"context"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// ProductRepository provides read access to catalog products.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*model.Product, error)
}
