package feed

import (
	// 外部依赖
	"context"

	gin "github.com/gin-gonic/gin"

	// 内部引用
	coreFeed "github.com/warehub/warehub/service/pkg/core/feed"
	feedImpl "github.com/warehub/warehub/service/pkg/core/feed/feed"
)

type Handle struct {
	svc coreFeed.Service
}

func New(ctx context.Context) *Handle {
	return &Handle{svc: feedImpl.New(ctx)}
}

func (h *Handle) Connect(ctx *gin.Context) {
	h.svc.Connect(ctx)
}

func (h *Handle) Close(ctx context.Context) {
	h.svc.Close(ctx)
}
