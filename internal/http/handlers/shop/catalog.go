package shop

import (
	"github.com/Abbosbek-cloud/e-commerse/internal/http/response"
	"github.com/Abbosbek-cloud/e-commerse/internal/models"
	"github.com/Abbosbek-cloud/e-commerse/internal/pricing"

	"github.com/gin-gonic/gin"
)

// CatalogItemResponse 目录条目响应（附带展示元数据）
type CatalogItemResponse struct {
	models.Item
	IsDiscounted    bool   `json:"is_discounted"`
	DiscountPercent int    `json:"discount_percent"`
	RarityColor     string `json:"rarity_color"`
	ReleaseDateText string `json:"release_date_text,omitempty"`
}

// GetCatalog 获取归一化目录
func (h *Handler) GetCatalog(c *gin.Context) {
	items := h.Store.Catalog()
	respItems := make([]CatalogItemResponse, 0, len(items))
	for _, item := range items {
		releaseText := ""
		if item.FirstReleaseDate != nil {
			releaseText = pricing.FormatReleaseDate(*item.FirstReleaseDate)
		}
		respItems = append(respItems, CatalogItemResponse{
			Item:            item,
			IsDiscounted:    item.IsDiscounted(),
			DiscountPercent: pricing.DiscountPercent(item.RegularPrice, item.Price),
			RarityColor:     pricing.RarityColor(item.Rarity),
			ReleaseDateText: releaseText,
		})
	}
	response.Success(c, gin.H{
		"loading": h.Store.Loading(),
		"items":   respItems,
	})
}

// GetState 获取店铺状态概览
func (h *Handler) GetState(c *gin.Context) {
	snapshot := h.Store.Snapshot()
	response.Success(c, gin.H{
		"loading":         snapshot.Loading,
		"basket_visible":  snapshot.BasketVisible,
		"catalog_count":   len(snapshot.Catalog),
		"basket_lines":    len(snapshot.Basket),
		"basket_quantity": pricing.TotalQuantity(snapshot.Basket),
	})
}
