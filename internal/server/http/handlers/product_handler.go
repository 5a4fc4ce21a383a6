package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/server/http/dto"
)

// ProductHandler serves catalog lookups for the store dashboard.
type ProductHandler struct {
	facade ProductFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade ProductFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// Get handles GET /api/stores/:storeId/products/:productId.
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.facade.Product(c.Request.Context(), c.Param("storeId"), c.Param("productId"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, dto.ProductResponse{
		ID:         product.ID,
		StoreID:    product.StoreID,
		Name:       product.Name,
		Price:      product.Price.StringFixed(2),
		IsArchived: product.IsArchived,
		UpdatedAt:  product.UpdatedAt,
	})
}
