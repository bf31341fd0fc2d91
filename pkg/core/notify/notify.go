package notify

import (
	// 外部依赖
	"context"

	// 内部引用
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
)

// Action 广播频道名
type Action string

const (
	// AssetAction 资产创建、更新、编号分配等变更
	AssetAction Action = "warehub:events:asset"
	// TransactionAction 借出、归还、逾期
	TransactionAction Action = "warehub:events:transaction"
	// MaintenanceAction 维保排期与状态流转
	MaintenanceAction Action = "warehub:events:maintenance"
	// PresetAction 套装核对与出库
	PresetAction Action = "warehub:events:preset"
)

type HandleFunc func(ctx context.Context, payload string) error

// SendMsg 一条广播消息，Data 为各业务自定义的载荷
type SendMsg struct {
	Channel   Action    `json:"channel"`
	UUID      uuid.UUID `json:"uuid"`
	Event     string    `json:"event"`
	Timestamp int64     `json:"timestamp"`
	Data      any       `json:"data"`
}

// MsgCenter 多进程间的事件广播中心
type MsgCenter interface {
	// Registry 订阅频道并注册处理函数，同一频道只能注册一次
	Registry(ctx context.Context, msgName Action, handleFunc HandleFunc) error
	Broadcast(ctx context.Context, msg *SendMsg) error
	Close(ctx context.Context) error
}
