package asset

import (
	// 外部依赖
	"context"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
)

// Service 资产业务接口
type Service interface {
	// Insert 新增资产，在同一事务内分配资产编号
	Insert(ctx context.Context, req *InsertReq) (*InsertResp, error)
	Query(ctx context.Context, req *QueryReq) (*common.PageResp[[]*AssetResponse], error)
	Get(ctx context.Context, req *GetReq) (*AssetResponse, error)
	Update(ctx context.Context, req *UpdateReq) error
	// Retire 退役资产（软删除）；存在未归还流水时拒绝
	Retire(ctx context.Context, req *RetireReq) error

	// AllocateNumber 按客户编码与类目预分配一个资产编号
	AllocateNumber(ctx context.Context, req *AllocateReq) (*AllocateResp, error)
	// RepairNumbers 为所有缺失编号的资产补齐编号
	RepairNumbers(ctx context.Context, req *RepairReq) (*RepairResp, error)
}
