package models

// BasketLine 购物篮中的一行（加入时的价格快照）
type BasketLine struct {
	ItemID   string `json:"item_id"`  // 商品ID
	Name     string `json:"name"`     // 商品名称
	Price    Money  `json:"price"`    // 加入时的单价快照
	Quantity int    `json:"quantity"` // 数量（始终 >= 1）
}

// LineTotal 行小计
func (l BasketLine) LineTotal() Money {
	return NewMoneyFromDecimal(l.Price.Mul(NewMoneyFromInt(int64(l.Quantity)).Decimal))
}
