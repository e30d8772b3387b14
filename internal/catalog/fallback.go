package catalog

import (
	"github.com/Abbosbek-cloud/e-commerse/internal/constants"
	"github.com/Abbosbek-cloud/e-commerse/internal/models"
)

// fallbackEntries 内置兜底数据集，上游不可用时替代在线商店数据。
// 与在线数据走完全相同的归一化路径。
var fallbackEntries = []RawEntry{
	{
		MainID:             "Wheel_Precision_Bundle",
		DisplayName:        "Jayvyn Wheels",
		DisplayDescription: "Premium wheel collection with multiple color variants",
		DisplayType:        "Item Bundle",
		Price:              &RawPrice{RegularPrice: f64(500), FinalPrice: f64(400)},
		DisplayAssets: []RawDisplayAsset{
			{FullBackground: "https://media.fortniteapi.io/images/shop/d476e858b1f298296a859893187196ade64f80e1f70208ed5dc37b40f9b20a46/v2/MI_0/info.en.png"},
		},
		Rarity:   &RawRarity{Name: constants.RarityRare},
		OfferTag: &RawOfferTag{Text: "Includes wheel and wheel variants!"},
	},
	{
		MainID:             "Epic_Bundle_001",
		DisplayName:        "Champion Pack",
		DisplayDescription: "Exclusive champion themed bundle with legendary items",
		DisplayType:        "Bundle",
		Price:              &RawPrice{RegularPrice: f64(2000), FinalPrice: f64(1500)},
		DisplayAssets: []RawDisplayAsset{
			{FullBackground: "https://via.placeholder.com/400x400/b965ff/ffffff?text=Champion+Pack"},
		},
		Rarity:   &RawRarity{Name: constants.RarityEpic},
		OfferTag: &RawOfferTag{Text: "Limited time offer!"},
	},
	{
		MainID:             "Legendary_Skin_002",
		DisplayName:        "Galaxy Warrior",
		DisplayDescription: "Cosmic themed legendary outfit with animated effects",
		DisplayType:        "Outfit",
		Price:              &RawPrice{RegularPrice: f64(2000), FinalPrice: f64(2000)},
		DisplayAssets: []RawDisplayAsset{
			{FullBackground: "https://via.placeholder.com/400x400/ff8b2c/ffffff?text=Galaxy+Warrior"},
		},
		Rarity: &RawRarity{Name: constants.RarityLegendary},
	},
	{
		MainID:             "Uncommon_Emote_003",
		DisplayName:        "Victory Dance",
		DisplayDescription: "Show off your skills with this celebratory emote",
		DisplayType:        "Emote",
		Price:              &RawPrice{RegularPrice: f64(200), FinalPrice: f64(200)},
		DisplayAssets: []RawDisplayAsset{
			{FullBackground: "https://via.placeholder.com/400x400/5fbd5f/ffffff?text=Victory+Dance"},
		},
		Rarity: &RawRarity{Name: constants.RarityUncommon},
	},
	{
		MainID:             "Mythic_Pickaxe_004",
		DisplayName:        "Dragon Slayer",
		DisplayDescription: "Legendary harvesting tool forged from dragon scales",
		DisplayType:        "Pickaxe",
		Price:              &RawPrice{RegularPrice: f64(1500), FinalPrice: f64(1200)},
		DisplayAssets: []RawDisplayAsset{
			{FullBackground: "https://via.placeholder.com/400x400/ffeb3b/ffffff?text=Dragon+Slayer"},
		},
		Rarity:   &RawRarity{Name: constants.RarityMythic},
		OfferTag: &RawOfferTag{Text: "20% OFF!"},
	},
}

// FallbackItems 返回归一化后的兜底商品列表
func FallbackItems() []models.Item {
	return NormalizeEntries(fallbackEntries)
}

func f64(v float64) *float64 {
	return &v
}
