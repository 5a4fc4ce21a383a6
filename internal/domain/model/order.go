package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order describes a storefront purchase created by the checkout flow.
type Order struct {
	ID        string
	StoreID   string
	IsPaid    bool
	Address   *string
	Phone     *string
	Items     []OrderItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem is a purchased product line. Items never change after checkout.
type OrderItem struct {
	OrderID     string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// ProductIDs returns referenced products in item order.
func (o Order) ProductIDs() []string {
	ids := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		ids = append(ids, item.ProductID)
	}
	return ids
}

// Total sums unit price snapshots over quantities.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(qty))))
	}
	return total
}

// PaymentDetails carries the fields written on a confirmed payment.
type PaymentDetails struct {
	Address string
	Phone   string
}

// Fulfillment reports what the store changed while applying a payment.
type Fulfillment struct {
	OrderID     string
	ProductIDs  []string
	AlreadyPaid bool
	Archived    int64
}
