package dto

import "time"

// ProductResponse describes a catalog product and its archival state.
type ProductResponse struct {
	ID         string    `json:"id"`
	StoreID    string    `json:"store_id"`
	Name       string    `json:"name"`
	Price      string    `json:"price"`
	IsArchived bool      `json:"is_archived"`
	UpdatedAt  time.Time `json:"updated_at"`
}
