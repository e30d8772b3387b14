package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/Abbosbek-cloud/e-commerse/internal/app"
	"github.com/Abbosbek-cloud/e-commerse/internal/config"
	"github.com/Abbosbek-cloud/e-commerse/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset = "\033[0m"
	ansiCyan  = "\033[36m"
	ansiDim   = "\033[2m"
)

func main() {
	printStartupBanner()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Upstream.URL == "" || cfg.Upstream.APIKey == "" {
		stdLog.Printf("upstream url/api key not configured, catalog will use fallback dataset")
	}

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
	}); err != nil {
		stdLog.Fatalf("server run failed: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiCyan + "  ___  _                   __                 _   " + ansiReset)
	fmt.Println(ansiCyan + " / __|| |_  ___  _ _  ___ / _| _ _  ___  _ _ | |_ " + ansiReset)
	fmt.Println(ansiCyan + " \\__ \\|  _|/ _ \\| '_|/ -_)  _|| '_|/ _ \\| ' \\|  _|" + ansiReset)
	fmt.Println(ansiCyan + " |___/ \\__|\\___/|_|  \\___|_|  |_|  \\___/|_||_|\\__|" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------" + ansiReset)
}
