package provider

import (
	"time"

	"github.com/Abbosbek-cloud/e-commerse/internal/cache"
	"github.com/Abbosbek-cloud/e-commerse/internal/config"
	"github.com/Abbosbek-cloud/e-commerse/internal/logger"
	"github.com/Abbosbek-cloud/e-commerse/internal/service"
	"github.com/Abbosbek-cloud/e-commerse/internal/store"
	"github.com/Abbosbek-cloud/e-commerse/internal/upstream"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	Store       *store.Store
	Upstream    *upstream.Client
	ShopService *service.ShopService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存（仅用于目录快照，可禁用）
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	st := store.New()
	client := upstream.NewClient(upstream.Config{
		URL:       cfg.Upstream.URL,
		APIKey:    cfg.Upstream.APIKey,
		TimeoutMS: cfg.Upstream.TimeoutMS,
	})

	return &Container{
		Config:      cfg,
		Store:       st,
		Upstream:    client,
		ShopService: service.NewShopService(st, client, time.Duration(cfg.Catalog.SnapshotTTLSeconds)*time.Second),
	}
}
