package repo

import (
	// 外部依赖
	"context"

	// 内部引用
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	model "github.com/warehub/warehub/service/pkg/model"
)

// PresetQuery 套装模板过滤条件
type PresetQuery struct {
	Name         *string
	CategoryID   *int64
	DepartmentID *int64
	CreatedBy    *string
	OrderBy      string
	Offset       int
	Limit        int
}

// CheckoutQuery 套装出库单过滤条件
type CheckoutQuery struct {
	PresetID *int64
	UserID   *string
	Status   *model.PresetCheckoutStatus
	OrderBy  string
	Offset   int
	Limit    int
}

// PresetItemDefinition 条目及其替代资产，替代按 priority 升序
type PresetItemDefinition struct {
	Item          *model.PresetItem
	Substitutions []*model.PresetItemSubstitution
}

// PresetDefinition 套装完整定义，Items 按 priority 升序
type PresetDefinition struct {
	Preset *model.Preset
	Items  []*PresetItemDefinition
}

type PresetRepo interface {
	IDOrUUIDTranslate

	CreatePreset(ctx context.Context, data *model.Preset, items []*model.PresetItem, subs map[int][]*model.PresetItemSubstitution) error
	GetPresetByUUID(ctx context.Context, id uuid.UUID) (*model.Preset, error)
	// GetPresetDefinition 加载套装及全部条目与替代资产
	GetPresetDefinition(ctx context.Context, presetID int64) (*PresetDefinition, error)
	ListPresets(ctx context.Context, q PresetQuery) ([]*model.Preset, int64, error)
	UpdatePresetByUUID(ctx context.Context, id uuid.UUID, data map[string]any) error
	// ReplacePresetItems 全量替换套装条目与替代资产
	ReplacePresetItems(ctx context.Context, presetID int64, items []*model.PresetItem, subs map[int][]*model.PresetItemSubstitution) error
	DeactivatePreset(ctx context.Context, id int64) error

	CreateCheckout(ctx context.Context, data *model.PresetCheckout, items []*model.PresetCheckoutItem) error
	GetCheckoutByUUID(ctx context.Context, id uuid.UUID) (*model.PresetCheckout, error)
	GetCheckoutItems(ctx context.Context, checkoutID int64) ([]*model.PresetCheckoutItem, error)
	ListCheckouts(ctx context.Context, q CheckoutQuery) ([]*model.PresetCheckout, int64, error)
	// TransitCheckout 带前置状态约束的出库单状态流转，条件不满足时返回 0 行
	TransitCheckout(ctx context.Context, id int64, from []model.PresetCheckoutStatus, data map[string]any) (int64, error)
	UpdateCheckoutItem(ctx context.Context, id int64, data map[string]any) error
}
