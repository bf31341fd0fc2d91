package web

import (
	// 外部依赖
	"time"

	cors "github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"
	otelgin "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	// 内部引用
	config "github.com/warehub/warehub/service/internal/config"
	logger "github.com/warehub/warehub/service/pkg/middleware/logger"
)

func installMiddleware(g *gin.Engine) {
	g.Use(gin.Recovery())
	g.Use(accessLog())
	g.Use(otelgin.Middleware(config.Global().Server.Platform))
	g.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
}

// accessLog 访问日志，慢请求以 warn 记录
func accessLog() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		cost := time.Since(start)
		logFunc := logger.Infof
		if cost > time.Second {
			logFunc = logger.Warnf
		}
		logFunc(ctx.Request.Context(), "%s %s %d %s",
			ctx.Request.Method, ctx.Request.URL.Path, ctx.Writer.Status(), cost)
	}
}
