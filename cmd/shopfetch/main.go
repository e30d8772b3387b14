package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/Abbosbek-cloud/e-commerse/internal/catalog"
	"github.com/Abbosbek-cloud/e-commerse/internal/config"
	"github.com/Abbosbek-cloud/e-commerse/internal/logger"
	"github.com/Abbosbek-cloud/e-commerse/internal/upstream"
)

// 开发工具：拉取一次上游商店数据，归一化后输出到标准输出。
// 上游不可用时输出内置兜底数据集，便于核对归一化结果。
func main() {
	cfg := config.Load()
	logger.Init("debug", cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	client := upstream.NewClient(upstream.Config{
		URL:       cfg.Upstream.URL,
		APIKey:    cfg.Upstream.APIKey,
		TimeoutMS: cfg.Upstream.TimeoutMS,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	items := catalog.FallbackItems()
	source := "fallback"
	if body, err := client.Fetch(ctx); err != nil {
		logger.Warnw("catalog_fetch_failed", "error", err)
	} else if fetched := catalog.Normalize(body); len(fetched) > 0 {
		items = fetched
		source = "upstream"
	}

	logger.Infow("catalog_fetched", "source", source, "items", len(items))

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(items); err != nil {
		stdLog.Fatalf("encode catalog failed: %v", err)
	}
}
