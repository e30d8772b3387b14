package app

import (
	"context"
	"errors"

	"github.com/Abbosbek-cloud/e-commerse/internal/config"
	"github.com/Abbosbek-cloud/e-commerse/internal/provider"
	"github.com/Abbosbek-cloud/e-commerse/internal/router"
)

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config) (*Runner, *provider.Container, error) {
	if cfg == nil {
		return nil, nil, errors.New("config is nil")
	}

	container := provider.NewContainer(cfg)
	engine := router.SetupRouter(cfg, container)
	addr := cfg.Server.Host + ":" + cfg.Server.Port
	httpService := NewHTTPService(addr, engine)

	return NewRunner(httpService), container, nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, container, err := BuildRunner(opts.Config)
	if err != nil {
		return err
	}

	// 目录装载每次启动只执行一次；加载期间 HTTP 面保持可用
	go container.ShopService.LoadCatalog(context.Background())

	addr := opts.Config.Server.Host + ":" + opts.Config.Server.Port
	opts.Logger.Infow("app_start", "addr", addr)
	return RunWithOptions(runner, opts)
}
