package preset

import (
	// 外部依赖
	"context"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
)

// Service 套装模板与套装出库业务接口
type Service interface {
	Insert(ctx context.Context, req *InsertReq) (*InsertResp, error)
	Query(ctx context.Context, req *QueryReq) (*common.PageResp[[]*PresetResponse], error)
	Get(ctx context.Context, req *GetReq) (*PresetDetailResponse, error)
	Update(ctx context.Context, req *UpdateReq) error
	Delete(ctx context.Context, req *DeleteReq) error

	// Reconcile 把扫码到的资产与套装条目逐条核对，
	// 生成出库单（pending）并给出补全建议
	Reconcile(ctx context.Context, req *ReconcileReq) (*ReconcileResp, error)
	// ProcessCheckout 执行出库：已分配条目逐一借出并写借出流水
	ProcessCheckout(ctx context.Context, req *ProcessReq) error
	// ReturnCheckout 整单归还
	ReturnCheckout(ctx context.Context, req *ReturnReq) error
	// CancelCheckout 取消未出库的出库单
	CancelCheckout(ctx context.Context, req *CancelReq) error
	QueryCheckouts(ctx context.Context, req *CheckoutQueryReq) (*common.PageResp[[]*CheckoutResponse], error)
	GetCheckout(ctx context.Context, req *CheckoutGetReq) (*CheckoutDetailResponse, error)
}
