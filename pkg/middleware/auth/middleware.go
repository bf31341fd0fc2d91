package auth

import (
	// 外部依赖
	"strings"

	gin "github.com/gin-gonic/gin"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
	code "github.com/warehub/warehub/service/pkg/common/code"
	logger "github.com/warehub/warehub/service/pkg/middleware/logger"
)

// AuthWeb 验证用户是否已登录，通过后把用户信息写入上下文
func AuthWeb() func(ctx *gin.Context) {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			common.ReplyErr(ctx, code.UnLogin)
			ctx.Abort()
			return
		}

		tokens := strings.Split(authHeader, " ")
		if len(tokens) != 2 || tokens[0] != "Bearer" {
			logger.Warnf(ctx, "bearer format err: %s", authHeader)
			common.ReplyErr(ctx, code.InvalidToken)
			ctx.Abort()
			return
		}

		userInfo, err := ValidateToken(ctx, tokens[1])
		if err != nil || userInfo == nil {
			common.ReplyErr(ctx, code.InvalidToken)
			ctx.Abort()
			return
		}

		// 将用户信息保存到上下文
		ctx.Set(USERKEY, userInfo)
		ctx.Next()
	}
}
