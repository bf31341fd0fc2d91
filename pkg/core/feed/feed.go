package feed

import (
	// 外部依赖
	"context"
)

// Service 实时动态推送：把事件总线上的库存变更广播给 websocket 订阅端
type Service interface {
	Connect(ctx context.Context)
	Close(ctx context.Context)
}
