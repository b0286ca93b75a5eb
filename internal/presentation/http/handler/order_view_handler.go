package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/quickbill/orderview-api/internal/application/service"
	"github.com/quickbill/orderview-api/internal/presentation/http/dto/response"
	"github.com/quickbill/orderview-api/pkg/apperror"
)

// RouteName is the endpoint's own path segment. A trailing segment equal
// to it means the URL carried no identifier and the query string decides.
const RouteName = "order-view"

// OrderViewHandler handles order view HTTP requests
type OrderViewHandler struct {
	orderViewService *service.OrderViewService
}

// NewOrderViewHandler creates a new order view handler
func NewOrderViewHandler(orderViewService *service.OrderViewService) *OrderViewHandler {
	return &OrderViewHandler{orderViewService: orderViewService}
}

// Get handles fetching the invoice view document for one order. The order
// identifier comes from the trailing path segment, with the id query
// parameter as fallback.
func (h *OrderViewHandler) Get(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" || orderID == RouteName {
		orderID = c.Query("id")
	}
	if orderID == "" {
		response.Error(c, apperror.ErrMissingOrderID)
		return
	}

	view, err := h.orderViewService.GetOrderView(c.Request.Context(), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, view)
}
