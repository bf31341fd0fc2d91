package feed

import (
	// 外部依赖
	"context"
	"sync"
	"time"

	gin "github.com/gin-gonic/gin"
	melody "github.com/olahol/melody"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
	code "github.com/warehub/warehub/service/pkg/common/code"
	feed "github.com/warehub/warehub/service/pkg/core/feed"
	notify "github.com/warehub/warehub/service/pkg/core/notify"
	events "github.com/warehub/warehub/service/pkg/core/notify/events"
	logger "github.com/warehub/warehub/service/pkg/middleware/logger"
)

const maxMessageSize = 64 * 1024

// 推送给订阅端的频道
var feedChannels = []notify.Action{
	notify.AssetAction,
	notify.TransactionAction,
	notify.MaintenanceAction,
	notify.PresetAction,
}

var (
	once sync.Once
	f    *feedImpl
)

type feedImpl struct {
	wsClient   *melody.Melody
	boardEvent notify.MsgCenter
}

func New(ctx context.Context) feed.Service {
	once.Do(func() {
		wsClient := melody.New()
		wsClient.Config.MaxMessageSize = maxMessageSize
		wsClient.Config.PingPeriod = 10 * time.Second

		f = &feedImpl{
			wsClient:   wsClient,
			boardEvent: events.NewEvents(),
		}
		f.subscribe(ctx)
	})

	return f
}

// subscribe 订阅事件总线，收到的消息原样广播给所有 websocket 会话
func (f *feedImpl) subscribe(ctx context.Context) {
	for _, channel := range feedChannels {
		if err := f.boardEvent.Registry(ctx, channel, func(ctx context.Context, payload string) error {
			return f.wsClient.Broadcast([]byte(payload))
		}); err != nil {
			logger.Errorf(ctx, "feed subscribe channel %s err: %+v", channel, err)
		}
	}
}

func (f *feedImpl) Connect(ctx context.Context) {
	ginCtx, ok := ctx.(*gin.Context)
	if !ok {
		return
	}

	if err := f.wsClient.HandleRequest(ginCtx.Writer, ginCtx.Request); err != nil {
		logger.Errorf(ctx, "feed websocket upgrade err: %+v", err)
		common.ReplyErr(ginCtx, code.ParamErr.WithMsg(err.Error()))
	}
}

func (f *feedImpl) Close(ctx context.Context) {
	if err := f.wsClient.Close(); err != nil {
		logger.Warnf(ctx, "feed close err: %+v", err)
	}
}
