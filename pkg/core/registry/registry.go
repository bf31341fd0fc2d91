package registry

import (
	// 外部依赖
	"context"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
)

// Service 基础资料（库位、部门、自定义类目、套装类目、套装部门）业务接口
// 五类资料结构一致，按 kind 路由到对应的表。
type Service interface {
	Insert(ctx context.Context, req *InsertReq) (*InsertResp, error)
	Query(ctx context.Context, req *QueryReq) (*common.PageResp[[]*EntryResponse], error)
	Get(ctx context.Context, req *GetReq) (*EntryResponse, error)
	Update(ctx context.Context, req *UpdateReq) error
	// Delete 软删除；被资产或套装引用的资料不可删除
	Delete(ctx context.Context, req *DeleteReq) error
}
