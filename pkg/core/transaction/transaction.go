package transaction

import (
	// 外部依赖
	"context"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
)

// Service 单资产借出 / 归还业务接口
type Service interface {
	// Checkout 借出资产：资产 available -> checked_out 并写入活跃流水，同一事务内完成
	Checkout(ctx context.Context, req *CheckoutReq) (*CheckoutResp, error)
	// Checkin 归还资产：关闭流水并恢复资产状态，损坏归还时转入维修
	Checkin(ctx context.Context, req *CheckinReq) error
	Query(ctx context.Context, req *QueryReq) (*common.PageResp[[]*TransactionResponse], error)
	Get(ctx context.Context, req *GetReq) (*TransactionResponse, error)
	// SweepOverdue 把超过预计归还时间的活跃流水置为逾期
	SweepOverdue(ctx context.Context) (int64, error)
}
