package model

import (
	"time"
)

// Preset 套装模板
type Preset struct {
	BaseModel
	Name         string  `gorm:"type:varchar(255);not null;index:idx_preset_name" json:"name"`
	Description  *string `gorm:"type:text" json:"description"`
	CategoryID   *int64  `gorm:"index:idx_preset_category_id" json:"category_id"`
	DepartmentID *int64  `gorm:"index:idx_preset_department_id" json:"department_id"`
	CreatedBy    string  `gorm:"type:varchar(120);not null" json:"created_by"`
	IsDeleted    int8    `gorm:"type:smallint;not null;default:0" json:"is_deleted"`
}

func (*Preset) TableName() string { return "preset" }

// PresetItem 套装行条目，指定具体资产或仅指定类目
type PresetItem struct {
	BaseModel
	PresetID   int64          `gorm:"not null;index:idx_preset_item_preset_id" json:"preset_id"`
	AssetID    *int64         `gorm:"index:idx_preset_item_asset_id" json:"asset_id"`
	Category   *AssetCategory `gorm:"type:varchar(32)" json:"category"`
	IsRequired bool           `gorm:"not null;default:true" json:"is_required"`
	// Priority 条目在套装内的声明顺序，出库匹配按此顺序进行
	Priority int     `gorm:"not null;default:0;index:idx_preset_item_priority" json:"priority"`
	Notes    *string `gorm:"type:text" json:"notes"`
}

func (*PresetItem) TableName() string { return "preset_item" }

// PresetItemSubstitution 条目的替代资产，按 priority 顺序尝试
type PresetItemSubstitution struct {
	BaseModel
	PresetItemID int64 `gorm:"not null;index:idx_preset_item_sub_item_id" json:"preset_item_id"`
	AssetID      int64 `gorm:"not null;index:idx_preset_item_sub_asset_id" json:"asset_id"`
	Priority     int   `gorm:"not null;default:0" json:"priority"`
}

func (*PresetItemSubstitution) TableName() string { return "preset_item_substitution" }

// PresetCheckoutStatus 套装出库单状态
type PresetCheckoutStatus string

const (
	PresetCheckoutPending   PresetCheckoutStatus = "pending"   // 已核对未出库
	PresetCheckoutProcessed PresetCheckoutStatus = "processed" // 已出库
	PresetCheckoutReturned  PresetCheckoutStatus = "returned"
	PresetCheckoutCancelled PresetCheckoutStatus = "cancelled"
)

// PresetCheckout 一次套装出库的执行记录
type PresetCheckout struct {
	BaseModel
	PresetID          int64                `gorm:"not null;index:idx_preset_checkout_preset_id" json:"preset_id"`
	UserID            string               `gorm:"type:varchar(120);not null;index:idx_preset_checkout_user_id" json:"user_id"`
	Status            PresetCheckoutStatus `gorm:"type:varchar(32);not null;default:'pending'" json:"status"`
	CompletionPercent int                  `gorm:"not null;default:0" json:"completion_percent"`
	ExpectedReturnAt  *time.Time           `json:"expected_return_at"`
}

func (*PresetCheckout) TableName() string { return "preset_checkout" }

// PresetCheckoutItemStatus 出库单行状态
// 不变式：无资产时只能是 pending/unavailable/skipped，有资产时只能是 assigned/substituted/checked_out
type PresetCheckoutItemStatus string

const (
	CheckoutItemPending     PresetCheckoutItemStatus = "pending"
	CheckoutItemAssigned    PresetCheckoutItemStatus = "assigned"
	CheckoutItemCheckedOut  PresetCheckoutItemStatus = "checked_out"
	CheckoutItemSubstituted PresetCheckoutItemStatus = "substituted"
	CheckoutItemUnavailable PresetCheckoutItemStatus = "unavailable"
	CheckoutItemSkipped     PresetCheckoutItemStatus = "skipped"
)

// PresetCheckoutItem 出库单行，每个套装条目对应一行
type PresetCheckoutItem struct {
	BaseModel
	PresetCheckoutID int64                    `gorm:"not null;index:idx_preset_checkout_item_checkout_id" json:"preset_checkout_id"`
	PresetItemID     int64                    `gorm:"not null;index:idx_preset_checkout_item_item_id" json:"preset_item_id"`
	AssetID          *int64                   `gorm:"index:idx_preset_checkout_item_asset_id" json:"asset_id"`
	IsSubstitute     bool                     `gorm:"not null;default:false" json:"is_substitute"`
	Status           PresetCheckoutItemStatus `gorm:"type:varchar(32);not null;default:'pending'" json:"status"`
}

func (*PresetCheckoutItem) TableName() string { return "preset_checkout_item" }
