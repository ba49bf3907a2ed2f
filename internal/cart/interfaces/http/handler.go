package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/ecommerce/internal/cart/application"
	"github.com/wyfcoding/ecommerce/internal/cart/domain"
	catalogdomain "github.com/wyfcoding/ecommerce/internal/catalog/domain"
	"github.com/wyfcoding/ecommerce/internal/identity"
	"github.com/wyfcoding/ecommerce/internal/inventory"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/response"
)

// CartHandler 购物车 HTTP 处理器
type CartHandler struct {
	app *application.CartApplicationService
}

// NewCartHandler 创建购物车 HTTP 处理器实例
func NewCartHandler(app *application.CartApplicationService) *CartHandler {
	return &CartHandler{app: app}
}

// RegisterRoutes 注册路由
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/v1/cart")
	{
		api.GET("", h.GetCart)
		api.POST("/items", h.AddItem)
		api.PUT("/items/:id", h.UpdateItem)
		api.DELETE("/items/:id", h.RemoveItem)
		api.DELETE("", h.ClearCart)
	}
}

// AddItemRequest 添加商品请求
type AddItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// UpdateItemRequest 修改条目数量请求
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

type cartItemResponse struct {
	ID        uint   `json:"id"`
	ProductID uint   `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	Total     string `json:"total"`
}

type cartResponse struct {
	ID         uint               `json:"id"`
	UserID     string             `json:"user_id"`
	Items      []cartItemResponse `json:"items"`
	TotalItems int                `json:"total_items"`
	TotalPrice string             `json:"total_price"`
}

func toCartResponse(cart *domain.Cart) cartResponse {
	items := make([]cartItemResponse, 0, len(cart.Items))
	for i := range cart.Items {
		item := &cart.Items[i]
		items = append(items, cartItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price.StringFixed(2),
			Total:     item.LineTotal().StringFixed(2),
		})
	}
	return cartResponse{
		ID:         cart.ID,
		UserID:     cart.UserID,
		Items:      items,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice().StringFixed(2),
	}
}

// GetCart 获取当前用户购物车
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.app.GetCart(c.Request.Context(), identity.UserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, toCartResponse(cart))
}

// AddItem 向购物车添加商品
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	cart, err := h.app.AddItem(c.Request.Context(), identity.UserID(c), req.ProductID, req.Quantity)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, toCartResponse(cart))
}

// UpdateItem 修改条目数量，数量 <= 0 时移除该条目
func (h *CartHandler) UpdateItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid item id", "")
		return
	}
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	cart, err := h.app.UpdateItem(c.Request.Context(), identity.UserID(c), uint(itemID), req.Quantity)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, toCartResponse(cart))
}

// RemoveItem 从购物车移除条目
func (h *CartHandler) RemoveItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid item id", "")
		return
	}

	cart, err := h.app.RemoveItem(c.Request.Context(), identity.UserID(c), uint(itemID))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, toCartResponse(cart))
}

// ClearCart 清空购物车
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID := identity.UserID(c)
	if err := h.app.ClearCart(c.Request.Context(), userID); err != nil {
		h.respondError(c, err)
		return
	}

	cart, err := h.app.GetCart(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, toCartResponse(cart))
}

// respondError 将业务错误映射为客户端可读的响应，其余按服务端错误记录
func (h *CartHandler) respondError(c *gin.Context, err error) {
	var insufficient *inventory.InsufficientStockError
	switch {
	case errors.As(err, &insufficient):
		response.ErrorWithStatus(c, http.StatusConflict, insufficient.Error(), "")
	case errors.Is(err, inventory.ErrInvalidQuantity):
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, catalogdomain.ErrProductNotFound):
		response.ErrorWithStatus(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, domain.ErrLineNotFound):
		response.ErrorWithStatus(c, http.StatusNotFound, err.Error(), "")
	default:
		logging.Error(c.Request.Context(), "Cart operation failed", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, "internal error", "")
	}
}
