package repo

import (
	// 外部依赖
	"context"

	// 内部引用
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	model "github.com/warehub/warehub/service/pkg/model"
)

// ClientQuery 客户列表过滤条件
type ClientQuery struct {
	NameLike *string
	Code     *string
	OrderBy  string
	Offset   int
	Limit    int
}

type ClientRepo interface {
	IDOrUUIDTranslate

	CreateClient(ctx context.Context, data *model.Client) error
	GetClientByUUID(ctx context.Context, id uuid.UUID) (*model.Client, error)
	GetClientByID(ctx context.Context, id int64) (*model.Client, error)
	ListClients(ctx context.Context, q ClientQuery) ([]*model.Client, int64, error)
	UpdateClientByUUID(ctx context.Context, id uuid.UUID, data map[string]any) error
	// DeactivateClient 软删除（被资产引用的客户只停用）
	DeactivateClient(ctx context.Context, id uuid.UUID) error
	// DeleteClient 物理删除，仅限未被资产引用的客户
	DeleteClient(ctx context.Context, id uuid.UUID) error
}
