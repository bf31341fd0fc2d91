package maintenance

import (
	// 外部依赖
	"context"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
)

// Service 维保业务接口
type Service interface {
	// Schedule 排期维保并把资产转入维修状态
	Schedule(ctx context.Context, req *ScheduleReq) (*ScheduleResp, error)
	// Start 开始执行已排期的维保
	Start(ctx context.Context, req *StartReq) error
	// Complete 完成维保，记录实际费用与执行时间，资产恢复可用
	Complete(ctx context.Context, req *CompleteReq) error
	// Cancel 取消未完成的维保，资产恢复可用
	Cancel(ctx context.Context, req *CancelReq) error
	Query(ctx context.Context, req *QueryReq) (*common.PageResp[[]*RecordResponse], error)
	Get(ctx context.Context, req *GetReq) (*RecordResponse, error)
	// SweepOverdue 把超过计划时间仍未开始的记录置为逾期
	SweepOverdue(ctx context.Context) (int64, error)
}
