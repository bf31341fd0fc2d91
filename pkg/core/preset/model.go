package preset

import (
	// 外部依赖
	"time"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	model "github.com/warehub/warehub/service/pkg/model"
)

// ItemReq 套装条目，钉死具体资产或只约定类目
type ItemReq struct {
	AssetUUID     *uuid.UUID           `json:"asset_uuid"`
	Category      *model.AssetCategory `json:"category"`
	IsRequired    bool                 `json:"is_required"`
	Notes         *string              `json:"notes"`
	Substitutions []uuid.UUID          `json:"substitutions"`
}

type InsertReq struct {
	Name            string     `json:"name" binding:"required"`
	Description     *string    `json:"description"`
	CategoryUUID    *uuid.UUID `json:"category_uuid"`
	DepartmentUUID  *uuid.UUID `json:"department_uuid"`
	Items           []*ItemReq `json:"items" binding:"required,min=1"`
}

type InsertResp struct {
	UUID uuid.UUID `json:"uuid"`
}

type QueryReq struct {
	common.PageReq

	Name           *string    `form:"name"`
	CategoryUUID   *uuid.UUID `form:"category_uuid"`
	DepartmentUUID *uuid.UUID `form:"department_uuid"`
	CreatedBy      *string    `form:"created_by"`
}

type GetReq struct {
	UUID uuid.UUID `json:"-"`
}

type PresetResponse struct {
	UUID        uuid.UUID `json:"uuid"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedBy   string    `json:"created_by"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ItemResponse struct {
	UUID          uuid.UUID            `json:"uuid"`
	AssetUUID     *uuid.UUID           `json:"asset_uuid"`
	Category      *model.AssetCategory `json:"category"`
	IsRequired    bool                 `json:"is_required"`
	Priority      int                  `json:"priority"`
	Notes         *string              `json:"notes"`
	Substitutions []uuid.UUID          `json:"substitutions"`
}

type PresetDetailResponse struct {
	PresetResponse

	Items []*ItemResponse `json:"items"`
}

// UpdateReq 更新套装；Items 不为空时全量替换条目
type UpdateReq struct {
	UUID        uuid.UUID  `json:"uuid" binding:"required"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Items       []*ItemReq `json:"items"`
}

type DeleteReq struct {
	UUID uuid.UUID `json:"uuid" binding:"required"`
}

// ReconcileReq 套装核对入参
type ReconcileReq struct {
	PresetUUID        uuid.UUID   `json:"-"`
	ScannedAssetUUIDs []uuid.UUID `json:"scanned_asset_uuids" binding:"required"`
	ExpectedReturnAt  *time.Time  `json:"expected_return_at"`
}

// CheckoutItemResponse 出库单行
type CheckoutItemResponse struct {
	UUID           uuid.UUID                      `json:"uuid"`
	PresetItemUUID uuid.UUID                      `json:"preset_item_uuid"`
	AssetUUID      *uuid.UUID                     `json:"asset_uuid"`
	IsSubstitute   bool                           `json:"is_substitute"`
	Status         model.PresetCheckoutItemStatus `json:"status"`
}

type CheckoutResponse struct {
	UUID              uuid.UUID                  `json:"uuid"`
	PresetUUID        uuid.UUID                  `json:"preset_uuid"`
	UserID            string                     `json:"user_id"`
	Status            model.PresetCheckoutStatus `json:"status"`
	CompletionPercent int                        `json:"completion_percent"`
	ExpectedReturnAt  *time.Time                 `json:"expected_return_at"`
	CreatedAt         time.Time                  `json:"created_at"`
}

type CheckoutDetailResponse struct {
	CheckoutResponse

	Items []*CheckoutItemResponse `json:"items"`
}

// SubstitutionOption 未分配条目当前可用的替代资产
type SubstitutionOption struct {
	PresetItemUUID uuid.UUID   `json:"preset_item_uuid"`
	AssetUUIDs     []uuid.UUID `json:"asset_uuids"`
}

// Recommendations 核对后的补全建议
type Recommendations struct {
	ReadyToProcess         bool                  `json:"ready_to_process"`
	MissingRequiredItems   int                   `json:"missing_required_items"`
	AvailableSubstitutions []*SubstitutionOption `json:"available_substitutions"`
}

type ReconcileResp struct {
	PresetCheckout  *CheckoutDetailResponse `json:"preset_checkout"`
	Recommendations *Recommendations        `json:"recommendations"`
}

type ProcessReq struct {
	UUID uuid.UUID `json:"uuid" binding:"required"`
}

type ReturnReq struct {
	UUID uuid.UUID `json:"uuid" binding:"required"`
}

type CancelReq struct {
	UUID uuid.UUID `json:"uuid" binding:"required"`
}

type CheckoutQueryReq struct {
	common.PageReq

	PresetUUID *uuid.UUID                  `form:"preset_uuid"`
	UserID     *string                     `form:"user_id"`
	Status     *model.PresetCheckoutStatus `form:"status"`
}

type CheckoutGetReq struct {
	UUID uuid.UUID `json:"-"`
}
