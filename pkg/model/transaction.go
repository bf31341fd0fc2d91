package model

import (
	"time"
)

// TransactionStatus 借出流水状态
type TransactionStatus string

const (
	TransactionActive    TransactionStatus = "active"
	TransactionCompleted TransactionStatus = "completed"
	TransactionOverdue   TransactionStatus = "overdue"
)

// AssetTransaction 单个资产的一次借出/归还流水
type AssetTransaction struct {
	BaseModel
	AssetID          int64             `gorm:"not null;index:idx_transaction_asset_id" json:"asset_id"`
	UserID           string            `gorm:"type:varchar(120);not null;index:idx_transaction_user_id" json:"user_id"`
	Status           TransactionStatus `gorm:"type:varchar(32);not null;default:'active';index:idx_transaction_status" json:"status"`
	CheckedOutAt     time.Time         `gorm:"not null" json:"checked_out_at"`
	ExpectedReturnAt *time.Time        `gorm:"index:idx_transaction_expected_return" json:"expected_return_at"`
	ReturnedAt       *time.Time        `json:"returned_at"`
	// PresetCheckoutID 该流水由套装出库产生时指向对应出库单
	PresetCheckoutID *int64  `gorm:"index:idx_transaction_preset_checkout" json:"preset_checkout_id"`
	Note             *string `gorm:"type:text" json:"note"`
}

func (*AssetTransaction) TableName() string { return "asset_transaction" }
