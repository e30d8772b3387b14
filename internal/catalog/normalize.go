package catalog

import (
	"encoding/json"
	"strings"

	"github.com/Abbosbek-cloud/e-commerse/internal/constants"
	"github.com/Abbosbek-cloud/e-commerse/internal/logger"
	"github.com/Abbosbek-cloud/e-commerse/internal/models"

	"github.com/shopspring/decimal"
)

var knownRarities = map[string]string{
	constants.RarityCommon:    constants.RarityCommon,
	constants.RarityUncommon:  constants.RarityUncommon,
	constants.RarityRare:      constants.RarityRare,
	constants.RarityEpic:      constants.RarityEpic,
	constants.RarityLegendary: constants.RarityLegendary,
	constants.RarityMythic:    constants.RarityMythic,
	constants.RarityExotic:    constants.RarityExotic,
}

// NormalizeBody 将任意上游响应体归一化为商品列表，并报告 shop 字段
// 是否解析成了 JSON 数组。空数组是合法形态：返回空列表和 true；
// shop 缺失、为 null 或类型不符时返回空列表和 false。
func NormalizeBody(data []byte) ([]models.Item, bool) {
	if len(data) == 0 {
		return []models.Item{}, false
	}

	var envelope struct {
		Shop json.RawMessage `json:"shop"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil || len(envelope.Shop) == 0 {
		return []models.Item{}, false
	}

	var rawEntries []json.RawMessage
	if err := json.Unmarshal(envelope.Shop, &rawEntries); err != nil {
		return []models.Item{}, false
	}
	// "null" 解码为 nil 切片且不报错，不视为数组
	if rawEntries == nil {
		return []models.Item{}, false
	}

	items := make([]models.Item, 0, len(rawEntries))
	for _, raw := range rawEntries {
		var entry RawEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			logger.Warnw("catalog_entry_skipped", "error", err)
			continue
		}
		items = append(items, NormalizeEntry(entry))
	}
	return items, true
}

// Normalize 将任意上游响应体归一化为商品列表。
// 对任何输入都不报错：缺失 shop 列表、类型不符或解析失败时返回空列表。
func Normalize(data []byte) []models.Item {
	items, _ := NormalizeBody(data)
	return items
}

// NormalizeEntries 归一化一批上游条目
func NormalizeEntries(entries []RawEntry) []models.Item {
	items := make([]models.Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, NormalizeEntry(entry))
	}
	return items
}

// NormalizeEntry 按字段优先级归一化单个条目
func NormalizeEntry(entry RawEntry) models.Item {
	if strings.TrimSpace(entry.MainID) == "" {
		logger.Warnw("catalog_entry_missing_id", "name", entry.DisplayName)
	}
	return models.Item{
		ID:                 entry.MainID,
		Name:               entry.DisplayName,
		Description:        resolveDescription(entry),
		Price:              resolveFinalPrice(entry.Price),
		RegularPrice:       resolveRegularPrice(entry.Price),
		BackgroundImageURL: resolveBackgroundImage(entry.DisplayAssets),
		Rarity:             resolveRarity(entry.Rarity),
		Type:               entry.DisplayType,
		Series:             resolveSeries(entry.Series),
		FirstReleaseDate:   entry.FirstReleaseDate,
		OfferWindow:        resolveOfferWindow(entry.OfferDates),
		Giftable:           entry.GiftAllowed,
		Purchasable:        entry.BuyAllowed,
	}
}

// resolveDescription 描述优先级: displayDescription > offerTag.text > 默认占位文案
func resolveDescription(entry RawEntry) string {
	if entry.DisplayDescription != "" {
		return entry.DisplayDescription
	}
	if entry.OfferTag != nil && entry.OfferTag.Text != "" {
		return entry.OfferTag.Text
	}
	return constants.DefaultDescription
}

// resolveFinalPrice 现价优先级: price.finalPrice > 0
func resolveFinalPrice(price *RawPrice) models.Money {
	if price != nil && price.FinalPrice != nil {
		return models.NewMoneyFromFloat(*price.FinalPrice)
	}
	return models.NewMoneyFromDecimal(decimal.Zero)
}

// resolveRegularPrice 原价优先级: price.regularPrice > price.finalPrice > 0。
// 原价为 0 视为缺失，回落到现价，保证折扣不变式 regularPrice >= price。
func resolveRegularPrice(price *RawPrice) models.Money {
	if price != nil && price.RegularPrice != nil && *price.RegularPrice > 0 {
		return models.NewMoneyFromFloat(*price.RegularPrice)
	}
	return resolveFinalPrice(price)
}

// resolveBackgroundImage 背景图优先级: 首个展示资源的 full_background > 空串
func resolveBackgroundImage(assets []RawDisplayAsset) string {
	if len(assets) > 0 {
		return assets[0].FullBackground
	}
	return ""
}

// resolveRarity 稀有度归一化为已知集合成员，未识别时回落 COMMON
func resolveRarity(rarity *RawRarity) string {
	if rarity == nil {
		return constants.DefaultRarity
	}
	normalized := strings.ToUpper(strings.TrimSpace(rarity.Name))
	if canonical, ok := knownRarities[normalized]; ok {
		return canonical
	}
	return constants.DefaultRarity
}

func resolveSeries(series *RawSeries) *string {
	if series == nil || series.Name == "" {
		return nil
	}
	name := series.Name
	return &name
}

func resolveOfferWindow(dates *RawOfferDates) *models.OfferWindow {
	if dates == nil {
		return nil
	}
	return &models.OfferWindow{
		StartDate: dates.In,
		EndDate:   dates.Out,
	}
}
