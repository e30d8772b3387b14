package constants

// 稀有度常量
const (
	RarityCommon    = "COMMON"
	RarityUncommon  = "UNCOMMON"
	RarityRare      = "RARE"
	RarityEpic      = "EPIC"
	RarityLegendary = "LEGENDARY"
	RarityMythic    = "MYTHIC"
	RarityExotic    = "EXOTIC"
)

// 归一化默认值常量
const (
	DefaultDescription = "No description available"
	DefaultRarity      = RarityCommon
)

// 缓存键常量
const (
	CacheKeyCatalogSnapshot = "catalog:snapshot"
)
