package client

import (
	// 外部依赖
	"context"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
)

// Service 客户（器材归属方）业务接口
type Service interface {
	Insert(ctx context.Context, req *InsertReq) (*InsertResp, error)
	Query(ctx context.Context, req *QueryReq) (*common.PageResp[[]*ClientResponse], error)
	Get(ctx context.Context, req *GetReq) (*ClientResponse, error)
	Update(ctx context.Context, req *UpdateReq) error
	// Delete 软删除；名下仍有资产的客户不可删除
	Delete(ctx context.Context, req *DeleteReq) error
}
