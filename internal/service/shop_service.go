package service

import (
	"context"
	"time"

	"github.com/Abbosbek-cloud/e-commerse/internal/cache"
	"github.com/Abbosbek-cloud/e-commerse/internal/catalog"
	"github.com/Abbosbek-cloud/e-commerse/internal/constants"
	"github.com/Abbosbek-cloud/e-commerse/internal/logger"
	"github.com/Abbosbek-cloud/e-commerse/internal/store"
)

// Fetcher 上游商店数据源
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// ShopService 目录装载编排器：上游 -> 归一化 -> Store
type ShopService struct {
	store       *store.Store
	fetcher     Fetcher
	snapshotTTL time.Duration
}

// NewShopService 创建目录装载服务
func NewShopService(st *store.Store, fetcher Fetcher, snapshotTTL time.Duration) *ShopService {
	if snapshotTTL <= 0 {
		snapshotTTL = time.Hour
	}
	return &ShopService{
		store:       st,
		fetcher:     fetcher,
		snapshotTTL: snapshotTTL,
	}
}

// LoadCatalog 启动时调用一次：拉取上游商店数据并写入 Store。
// 上游返回的空商店列表是正常结果，照常写入。
// 失败不向调用方传播：依次回落缓存快照、内置兜底数据集。
// 每次调用恰好触发一次 SetCatalog，Store 必然离开加载状态。
func (s *ShopService) LoadCatalog(ctx context.Context) {
	body, err := s.fetcher.Fetch(ctx)
	if err == nil {
		if items, ok := catalog.NormalizeBody(body); ok {
			s.cacheSnapshot(ctx, body)
			s.store.SetCatalog(items)
			logger.Infow("catalog_loaded", "source", "upstream", "items", len(items))
			return
		}
		logger.Warnw("catalog_fetch_failed", "reason", "unrecognized payload shape")
	} else {
		logger.Warnw("catalog_fetch_failed", "error", err)
	}

	if snapshot, ok := s.cachedSnapshot(ctx); ok {
		if items, valid := catalog.NormalizeBody(snapshot); valid {
			s.store.SetCatalog(items)
			logger.Infow("catalog_loaded", "source", "snapshot", "items", len(items))
			return
		}
	}

	items := catalog.FallbackItems()
	s.store.SetCatalog(items)
	logger.Infow("catalog_loaded", "source", "fallback", "items", len(items))
}

func (s *ShopService) cacheSnapshot(ctx context.Context, body []byte) {
	if err := cache.SetBytes(ctx, constants.CacheKeyCatalogSnapshot, body, s.snapshotTTL); err != nil {
		logger.Debugw("catalog_snapshot_cache_failed", "error", err)
	}
}

func (s *ShopService) cachedSnapshot(ctx context.Context) ([]byte, bool) {
	snapshot, ok, err := cache.GetBytes(ctx, constants.CacheKeyCatalogSnapshot)
	if err != nil {
		logger.Debugw("catalog_snapshot_read_failed", "error", err)
		return nil, false
	}
	return snapshot, ok
}
