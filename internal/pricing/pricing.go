package pricing

import (
	"strings"
	"time"

	"github.com/Abbosbek-cloud/e-commerse/internal/constants"
	"github.com/Abbosbek-cloud/e-commerse/internal/models"

	"github.com/shopspring/decimal"
)

// taxRate 购物篮税率（固定 10%）
var taxRate = decimal.NewFromFloat(0.10)

var rarityColors = map[string]string{
	constants.RarityCommon:    "#9d9d9d",
	constants.RarityUncommon:  "#5fbd5f",
	constants.RarityRare:      "#4a9eff",
	constants.RarityEpic:      "#b965ff",
	constants.RarityLegendary: "#ff8b2c",
	constants.RarityMythic:    "#ffeb3b",
	constants.RarityExotic:    "#ff00ff",
}

// Totals 购物篮合计
type Totals struct {
	Subtotal models.Money `json:"subtotal"`
	Tax      models.Money `json:"tax"`
	Total    models.Money `json:"total"`
}

// DiscountPercent 计算折扣百分比，结果在 [0,100]。
// 原价为 0 或不高于现价时返回 0。
func DiscountPercent(regularPrice, finalPrice models.Money) int {
	if regularPrice.IsZero() || regularPrice.LessThanOrEqual(finalPrice.Decimal) {
		return 0
	}
	percent := regularPrice.Sub(finalPrice.Decimal).
		Div(regularPrice.Decimal).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return int(percent)
}

// RarityColor 返回稀有度对应的展示色，大小写不敏感，未识别回落 COMMON 色
func RarityColor(rarity string) string {
	if color, ok := rarityColors[strings.ToUpper(strings.TrimSpace(rarity))]; ok {
		return color
	}
	return rarityColors[constants.RarityCommon]
}

// CartTotals 计算购物篮合计：小计、10% 税、总计。
// 全程使用 decimal 计算，只在序列化时舍入到 2 位小数。
func CartTotals(lines []models.BasketLine) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	tax := subtotal.Mul(taxRate)
	return Totals{
		Subtotal: models.NewMoneyFromDecimal(subtotal),
		Tax:      models.NewMoneyFromDecimal(tax),
		Total:    models.NewMoneyFromDecimal(subtotal.Add(tax)),
	}
}

// TotalQuantity 购物篮商品总件数
func TotalQuantity(lines []models.BasketLine) int {
	total := 0
	for _, line := range lines {
		total += line.Quantity
	}
	return total
}

// FormatReleaseDate 将 ISO 日期渲染为展示格式（如 Jan 2, 2006）。
// 空串返回空串，无法解析时原样返回。
func FormatReleaseDate(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.Format("Jan 2, 2006")
		}
	}
	return trimmed
}
