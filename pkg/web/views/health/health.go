package health

import (
	// 外部依赖
	"net/http"

	gin "github.com/gin-gonic/gin"

	// 内部引用
	config "github.com/warehub/warehub/service/internal/config"
)

func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": config.Global().Server.Service,
		"version": config.Global().Trace.Version,
	})
}
