package repo

import (
	// 外部依赖
	"context"

	// 内部引用
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	model "github.com/warehub/warehub/service/pkg/model"
)

// SortOrder 定义排序方向
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// AssetQuery 资产列表过滤条件
type AssetQuery struct {
	ClientID   *int64
	LocationID *int64
	Category   *model.AssetCategory
	Status     *model.AssetStatus
	NameLike   *string
	SerialLike *string
	OrderBy    string // 默认 id desc
	Offset     int
	Limit      int
}

type AssetRepo interface {
	IDOrUUIDTranslate

	CreateAsset(ctx context.Context, data *model.Asset) error
	GetAssetByUUID(ctx context.Context, id uuid.UUID) (*model.Asset, error)
	GetAssetsByIDs(ctx context.Context, ids []int64) ([]*model.Asset, error)
	ListAssets(ctx context.Context, q AssetQuery) ([]*model.Asset, int64, error)
	CountAssets(ctx context.Context, q AssetQuery) (int64, error)
	// UpdateAssetByUUID 按 uuid 更新，data 只包含需要更新的字段
	UpdateAssetByUUID(ctx context.Context, id uuid.UUID, data map[string]any) error
	// UpdateAssetStatus 带前置状态校验的状态流转，状态不符时返回 0 行
	UpdateAssetStatus(ctx context.Context, id int64, from, to model.AssetStatus) (int64, error)
	SetAssetStatus(ctx context.Context, id int64, to model.AssetStatus) error

	// MaxAssetNumber 返回指定前缀下字典序最大的资产编号，不存在时返回空串
	MaxAssetNumber(ctx context.Context, prefix string) (string, error)
	AssetNumberExists(ctx context.Context, number string) (bool, error)
	// ListUnnumberedAssets 返回尚未分配编号的资产（编号补齐任务使用）
	ListUnnumberedAssets(ctx context.Context, clientID *int64) ([]*model.Asset, error)
}
