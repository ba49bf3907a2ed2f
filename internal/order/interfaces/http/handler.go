// Package http 订单 HTTP 接口
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/wyfcoding/ecommerce/internal/catalog/domain"
	"github.com/wyfcoding/ecommerce/internal/identity"
	"github.com/wyfcoding/ecommerce/internal/inventory"
	"github.com/wyfcoding/ecommerce/internal/order/application"
	"github.com/wyfcoding/ecommerce/internal/order/domain"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/response"
)

// OrderHandler 订单 HTTP 处理器
type OrderHandler struct {
	command *application.OrderCommandService
	query   *application.OrderQueryService
}

// NewOrderHandler 创建订单 HTTP 处理器实例
func NewOrderHandler(command *application.OrderCommandService, query *application.OrderQueryService) *OrderHandler {
	return &OrderHandler{command: command, query: query}
}

// RegisterRoutes 注册用户侧路由
func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/v1/orders")
	{
		api.POST("", h.Checkout)
		api.GET("", h.ListOrders)
		api.GET("/:id", h.GetOrder)
		api.POST("/:id/cancel", h.CancelOrder)
	}
}

// RegisterAdminRoutes 注册管理员路由
func (h *OrderHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.PATCH("/v1/orders/:id/status", h.UpdateStatus)
}

// CheckoutRequest 结算请求
type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"required"`
	ShippingCity    string `json:"shipping_city" binding:"required"`
	ShippingPostal  string `json:"shipping_postal_code" binding:"required"`
	ShippingPhone   string `json:"shipping_phone" binding:"required"`
}

// UpdateStatusRequest 状态变更请求
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type orderItemResponse struct {
	ID          uint   `json:"id"`
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	Total       string `json:"total"`
}

type orderResponse struct {
	ID              uint                `json:"id"`
	OrderNumber     string              `json:"order_number"`
	UserID          string              `json:"user_id"`
	Status          string              `json:"status"`
	Total           string              `json:"total"`
	ShippingAddress string              `json:"shipping_address"`
	ShippingCity    string              `json:"shipping_city"`
	ShippingPostal  string              `json:"shipping_postal_code"`
	ShippingPhone   string              `json:"shipping_phone"`
	Items           []orderItemResponse `json:"items"`
	CreatedAt       string              `json:"created_at"`
}

type orderListResponse struct {
	Orders []orderResponse `json:"orders"`
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

func toOrderResponse(order *domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		items = append(items, orderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price.StringFixed(2),
			Total:       item.LineTotal().StringFixed(2),
		})
	}
	return orderResponse{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		UserID:          order.UserID,
		Status:          string(order.Status),
		Total:           order.Total.StringFixed(2),
		ShippingAddress: order.Shipping.Address,
		ShippingCity:    order.Shipping.City,
		ShippingPostal:  order.Shipping.PostalCode,
		ShippingPhone:   order.Shipping.Phone,
		Items:           items,
		CreatedAt:       order.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// Checkout 把当前用户购物车结算为订单
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	order, err := h.command.PlaceOrder(c.Request.Context(), application.PlaceOrderCommand{
		UserID:          identity.UserID(c),
		ShippingAddress: req.ShippingAddress,
		ShippingCity:    req.ShippingCity,
		ShippingPostal:  req.ShippingPostal,
		ShippingPhone:   req.ShippingPhone,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": 0, "message": "success", "data": toOrderResponse(order)})
}

// ListOrders 分页查询当前用户订单
func (h *OrderHandler) ListOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	orders, total, err := h.query.ListOrders(c.Request.Context(), identity.UserID(c), c.Query("status"), limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}

	list := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		list = append(list, toOrderResponse(order))
	}
	response.Success(c, orderListResponse{Orders: list, Total: total, Limit: limit, Offset: offset})
}

// GetOrder 查询单笔订单
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid order id", "")
		return
	}

	order, err := h.query.GetOrder(c.Request.Context(), uint(orderID), identity.UserID(c), identity.IsAdmin(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, toOrderResponse(order))
}

// CancelOrder 取消当前用户的未发货订单
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid order id", "")
		return
	}

	order, err := h.command.Cancel(c.Request.Context(), application.CancelOrderCommand{
		OrderID: uint(orderID),
		UserID:  identity.UserID(c),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, toOrderResponse(order))
}

// UpdateStatus 管理员变更订单状态
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid order id", "")
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	order, err := h.command.UpdateStatus(c.Request.Context(), application.UpdateStatusCommand{
		OrderID: uint(orderID),
		Status:  req.Status,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, toOrderResponse(order))
}

// respondError 将业务错误映射为客户端可读的响应，其余按服务端错误记录
func (h *OrderHandler) respondError(c *gin.Context, err error) {
	var insufficient *inventory.InsufficientStockError
	switch {
	case errors.As(err, &insufficient):
		response.ErrorWithStatus(c, http.StatusConflict, insufficient.Error(), "")
	case errors.Is(err, domain.ErrInvalidTransition):
		response.ErrorWithStatus(c, http.StatusConflict, err.Error(), "")
	case errors.Is(err, domain.ErrEmptyCart), errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, inventory.ErrInvalidQuantity):
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, domain.ErrOrderNotFound), errors.Is(err, catalogdomain.ErrProductNotFound):
		response.ErrorWithStatus(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, domain.ErrForbidden):
		response.ErrorWithStatus(c, http.StatusForbidden, err.Error(), "")
	default:
		logging.Error(c.Request.Context(), "Order operation failed", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, "internal error", "")
	}
}
