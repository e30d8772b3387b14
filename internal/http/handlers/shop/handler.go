package shop

import "github.com/Abbosbek-cloud/e-commerse/internal/provider"

// Handler 店铺接口处理器入口
// 说明：目录与购物篮的业务计算全部走 store/pricing，处理器只做装配。
type Handler struct {
	*provider.Container
}

// New 创建店铺处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
