package transaction

import (
	// 外部依赖
	"time"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	model "github.com/warehub/warehub/service/pkg/model"
)

// CheckoutReq 借出入参，借出人取当前登录用户
type CheckoutReq struct {
	AssetUUID        uuid.UUID  `json:"asset_uuid" binding:"required"`
	ExpectedReturnAt *time.Time `json:"expected_return_at"`
	Note             *string    `json:"note"`
}

type CheckoutResp struct {
	UUID uuid.UUID `json:"uuid"`
}

// CheckinReq 归还入参，按流水 uuid 或按扫码的资产 uuid 二选一
// Damaged 为 true 时资产转入维修而非直接可用
type CheckinReq struct {
	UUID      uuid.UUID  `json:"uuid"`
	AssetUUID *uuid.UUID `json:"asset_uuid"`
	Damaged   bool       `json:"damaged"`
	Note      *string    `json:"note"`
}

type QueryReq struct {
	common.PageReq

	AssetUUID *uuid.UUID               `form:"asset_uuid"`
	UserID    *string                  `form:"user_id"`
	Status    *model.TransactionStatus `form:"status"`
	Since     *time.Time               `form:"since" time_format:"2006-01-02"`
	Until     *time.Time               `form:"until" time_format:"2006-01-02"`
}

type GetReq struct {
	UUID uuid.UUID `json:"-"`
}

type TransactionResponse struct {
	UUID             uuid.UUID               `json:"uuid"`
	AssetUUID        uuid.UUID               `json:"asset_uuid"`
	UserID           string                  `json:"user_id"`
	Status           model.TransactionStatus `json:"status"`
	CheckedOutAt     time.Time               `json:"checked_out_at"`
	ExpectedReturnAt *time.Time              `json:"expected_return_at"`
	ReturnedAt       *time.Time              `json:"returned_at"`
	Note             *string                 `json:"note"`
}
