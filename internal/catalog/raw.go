package catalog

// RawPrice 上游价格对象
type RawPrice struct {
	RegularPrice *float64 `json:"regularPrice"`
	FinalPrice   *float64 `json:"finalPrice"`
}

// RawDisplayAsset 上游展示资源
type RawDisplayAsset struct {
	FullBackground string `json:"full_background"`
}

// RawRarity 上游稀有度对象
type RawRarity struct {
	Name string `json:"name"`
}

// RawOfferTag 上游促销标签
type RawOfferTag struct {
	Text string `json:"text"`
}

// RawSeries 上游系列对象
type RawSeries struct {
	Name string `json:"name"`
}

// RawOfferDates 上游上架时间窗口
type RawOfferDates struct {
	In  string `json:"in"`
	Out string `json:"out"`
}

// RawEntry 上游商店条目（所有字段均可缺失）
type RawEntry struct {
	MainID             string            `json:"mainId"`
	DisplayName        string            `json:"displayName"`
	DisplayDescription string            `json:"displayDescription"`
	DisplayType        string            `json:"displayType"`
	Price              *RawPrice         `json:"price"`
	DisplayAssets      []RawDisplayAsset `json:"displayAssets"`
	Rarity             *RawRarity        `json:"rarity"`
	OfferTag           *RawOfferTag      `json:"offerTag"`
	Series             *RawSeries        `json:"series"`
	FirstReleaseDate   *string           `json:"firstReleaseDate"`
	OfferDates         *RawOfferDates    `json:"offerDates"`
	GiftAllowed        *bool             `json:"giftAllowed"`
	BuyAllowed         *bool             `json:"buyAllowed"`
}
