package shop

import (
	"strings"

	"github.com/Abbosbek-cloud/e-commerse/internal/http/response"
	"github.com/Abbosbek-cloud/e-commerse/internal/models"
	"github.com/Abbosbek-cloud/e-commerse/internal/pricing"

	"github.com/gin-gonic/gin"
)

// AddBasketItemRequest 加入购物篮请求（价格为加入时快照）
type AddBasketItemRequest struct {
	ItemID string       `json:"item_id" binding:"required"`
	Name   string       `json:"name" binding:"required"`
	Price  models.Money `json:"price"`
}

// BasketLineResponse 购物篮行响应
type BasketLineResponse struct {
	models.BasketLine
	LineTotal models.Money `json:"line_total"`
}

// GetBasket 获取购物篮与合计
func (h *Handler) GetBasket(c *gin.Context) {
	lines := h.Store.Basket()
	respLines := make([]BasketLineResponse, 0, len(lines))
	for _, line := range lines {
		respLines = append(respLines, BasketLineResponse{
			BasketLine: line,
			LineTotal:  line.LineTotal(),
		})
	}
	response.Success(c, gin.H{
		"lines":          respLines,
		"totals":         pricing.CartTotals(lines),
		"total_quantity": pricing.TotalQuantity(lines),
		"visible":        h.Store.BasketVisible(),
	})
}

// AddBasketItem 加入购物篮：已有行数量加一，否则追加新行
func (h *Handler) AddBasketItem(c *gin.Context) {
	var req AddBasketItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid basket item payload")
		return
	}
	h.Store.AddItem(req.ItemID, req.Name, req.Price)
	response.Success(c, gin.H{"updated": true})
}

// IncrementBasketItem 购物篮行数量加一（未知行静默忽略）
func (h *Handler) IncrementBasketItem(c *gin.Context) {
	itemID, ok := basketItemID(c)
	if !ok {
		return
	}
	h.Store.Increment(itemID)
	response.Success(c, gin.H{"updated": true})
}

// DecrementBasketItem 购物篮行数量减一，减到 0 时整行移除
func (h *Handler) DecrementBasketItem(c *gin.Context) {
	itemID, ok := basketItemID(c)
	if !ok {
		return
	}
	h.Store.Decrement(itemID)
	response.Success(c, gin.H{"updated": true})
}

// DeleteBasketItem 无条件移除购物篮行
func (h *Handler) DeleteBasketItem(c *gin.Context) {
	itemID, ok := basketItemID(c)
	if !ok {
		return
	}
	h.Store.RemoveItem(itemID)
	response.Success(c, gin.H{"deleted": true})
}

// ToggleBasket 切换购物篮可见性
func (h *Handler) ToggleBasket(c *gin.Context) {
	h.Store.ToggleBasketVisible()
	response.Success(c, gin.H{"basket_visible": h.Store.BasketVisible()})
}

func basketItemID(c *gin.Context) (string, bool) {
	itemID := strings.TrimSpace(c.Param("item_id"))
	if itemID == "" {
		response.BadRequest(c, "item id required")
		return "", false
	}
	return itemID, true
}
