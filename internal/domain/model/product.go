package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a store catalog entry. Archived products are hidden from the storefront.
type Product struct {
	ID         string
	StoreID    string
	Name       string
	Price      decimal.Decimal
	IsArchived bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
