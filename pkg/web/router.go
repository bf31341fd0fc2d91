package web

import (
	// 外部依赖
	"context"

	gin "github.com/gin-gonic/gin"
)

// NewRouter 安装中间件与路由，返回资源回收函数
func NewRouter(ctx context.Context, g *gin.Engine) func() {
	installMiddleware(g)
	return InstallURL(ctx, g)
}
