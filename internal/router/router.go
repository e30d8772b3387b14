package router

import (
	"github.com/Abbosbek-cloud/e-commerse/internal/config"
	shophandlers "github.com/Abbosbek-cloud/e-commerse/internal/http/handlers/shop"
	"github.com/Abbosbek-cloud/e-commerse/internal/logger"
	"github.com/Abbosbek-cloud/e-commerse/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	shopHandler := shophandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		shop := apiV1.Group("/shop")
		{
			shop.GET("/catalog", shopHandler.GetCatalog)
			shop.GET("/state", shopHandler.GetState)
			shop.GET("/basket", shopHandler.GetBasket)
			shop.POST("/basket/items", shopHandler.AddBasketItem)
			shop.POST("/basket/items/:item_id/increment", shopHandler.IncrementBasketItem)
			shop.POST("/basket/items/:item_id/decrement", shopHandler.DecrementBasketItem)
			shop.DELETE("/basket/items/:item_id", shopHandler.DeleteBasketItem)
			shop.POST("/basket/toggle", shopHandler.ToggleBasket)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
