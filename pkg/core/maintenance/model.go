package maintenance

import (
	// 外部依赖
	"time"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	model "github.com/warehub/warehub/service/pkg/model"
)

type ScheduleReq struct {
	AssetUUID     uuid.UUID `json:"asset_uuid" binding:"required"`
	Type          string    `json:"type" binding:"required"`
	ScheduledAt   time.Time `json:"scheduled_at" binding:"required"`
	EstimatedCost *float64  `json:"estimated_cost"`
	Description   *string   `json:"description"`
}

type ScheduleResp struct {
	UUID uuid.UUID `json:"uuid"`
}

type StartReq struct {
	UUID uuid.UUID `json:"uuid" binding:"required"`
}

type CompleteReq struct {
	UUID        uuid.UUID  `json:"uuid" binding:"required"`
	ActualCost  *float64   `json:"actual_cost"`
	PerformedBy *string    `json:"performed_by"`
	PerformedAt *time.Time `json:"performed_at"`
}

type CancelReq struct {
	UUID uuid.UUID `json:"uuid" binding:"required"`
}

type QueryReq struct {
	common.PageReq

	AssetUUID *uuid.UUID               `form:"asset_uuid"`
	Status    *model.MaintenanceStatus `form:"status"`
	Since     *time.Time               `form:"since" time_format:"2006-01-02"`
	Until     *time.Time               `form:"until" time_format:"2006-01-02"`
}

type GetReq struct {
	UUID uuid.UUID `json:"-"`
}

type RecordResponse struct {
	UUID          uuid.UUID               `json:"uuid"`
	AssetUUID     uuid.UUID               `json:"asset_uuid"`
	Type          string                  `json:"type"`
	Status        model.MaintenanceStatus `json:"status"`
	ScheduledAt   time.Time               `json:"scheduled_at"`
	PerformedAt   *time.Time              `json:"performed_at"`
	EstimatedCost *float64                `json:"estimated_cost"`
	ActualCost    *float64                `json:"actual_cost"`
	PerformedBy   *string                 `json:"performed_by"`
	Description   *string                 `json:"description"`
	CreatedAt     time.Time               `json:"created_at"`
}
