package models

// OfferWindow 商品上架时间窗口
type OfferWindow struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Item 归一化后的商品条目
type Item struct {
	ID                 string `json:"id"`                   // 主标识（跨拉取保持稳定）
	Name               string `json:"name"`                 // 展示名称
	Description        string `json:"description"`          // 描述（归一化后非空）
	Price              Money  `json:"price"`                // 当前价格
	RegularPrice       Money  `json:"regular_price"`        // 原价（无折扣时等于 Price）
	BackgroundImageURL string `json:"background_image_url"` // 背景图地址（可能为空）
	Rarity             string `json:"rarity"`               // 稀有度（未识别时为 COMMON）
	Type               string `json:"type"`                 // 展示分类

	// 可选透传字段（缺失时保持 null）
	Series           *string      `json:"series"`
	FirstReleaseDate *string      `json:"first_release_date"`
	OfferWindow      *OfferWindow `json:"offer_window"`
	Giftable         *bool        `json:"giftable"`
	Purchasable      *bool        `json:"purchasable"`
}

// IsDiscounted 是否处于折扣状态
func (i Item) IsDiscounted() bool {
	return i.RegularPrice.GreaterThan(i.Price.Decimal)
}
