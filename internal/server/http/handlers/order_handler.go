package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/server/http/dto"
)

const productSeparator = ", "

// OrderHandler serves the store dashboard order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/stores/:storeId/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		writeOrderError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/stores/:storeId/orders/:orderId.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("storeId"), c.Param("orderId"))
	if err != nil {
		writeOrderError(c, err)
		return
	}

	detail := dto.OrderDetailResponse{
		OrderResponse: toOrderResponse(*order),
		StoreID:       order.StoreID,
		UpdatedAt:     order.UpdatedAt,
		Items:         make([]dto.OrderItemResponse, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		detail.Items = append(detail.Items, dto.OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.StringFixed(2),
		})
	}
	c.JSON(http.StatusOK, detail)
}

func writeOrderError(c *gin.Context, err error) {
	if errors.Is(err, domainErrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "order not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	names := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		names = append(names, item.ProductName)
	}
	return dto.OrderResponse{
		ID:         order.ID,
		Phone:      deref(order.Phone),
		Address:    deref(order.Address),
		Products:   strings.Join(names, productSeparator),
		TotalPrice: order.Total().StringFixed(2),
		IsPaid:     order.IsPaid,
		CreatedAt:  order.CreatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
