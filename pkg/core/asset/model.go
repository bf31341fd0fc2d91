package asset

import (
	// 外部依赖
	"time"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	model "github.com/warehub/warehub/service/pkg/model"
	repo "github.com/warehub/warehub/service/pkg/repo"
)

// InsertReq 创建资产入参
// AssetNumber 留空时由编号分配器自动生成
type InsertReq struct {
	Name          string              `json:"name" binding:"required"`
	Category      model.AssetCategory `json:"category" binding:"required"`
	ClientUUID    uuid.UUID           `json:"client_uuid" binding:"required"`
	AssetNumber   *string             `json:"asset_number"`
	Condition     *string             `json:"condition"`
	SerialNumber  *string             `json:"serial_number"`
	LocationUUID  *uuid.UUID          `json:"location_uuid"`
	Manufacturer  *string             `json:"manufacturer"`
	ModelName     *string             `json:"model_name"`
	PurchasePrice *float64            `json:"purchase_price"`
	CurrentValue  *float64            `json:"current_value"`
	Tags          []string            `json:"tags"`
	Notes         *string             `json:"notes"`
}

type InsertResp struct {
	UUID        uuid.UUID `json:"uuid"`
	AssetNumber string    `json:"asset_number"`
}

type QueryReq struct {
	common.PageReq

	ClientUUID   *uuid.UUID           `form:"client_uuid"`
	LocationUUID *uuid.UUID           `form:"location_uuid"`
	Category     *model.AssetCategory `form:"category"`
	Status       *model.AssetStatus   `form:"status"`
	Name         *string              `form:"name"`
	SerialNumber *string              `form:"serial_number"`
	CreatedDate  *repo.SortOrder      `form:"created_date"`
}

type GetReq struct {
	UUID uuid.UUID `json:"-"`
}

type AssetResponse struct {
	UUID          uuid.UUID           `json:"uuid"`
	Name          string              `json:"name"`
	Category      model.AssetCategory `json:"category"`
	ClientUUID    uuid.UUID           `json:"client_uuid"`
	Status        model.AssetStatus   `json:"status"`
	AssetNumber   string              `json:"asset_number"`
	Condition     *string             `json:"condition"`
	SerialNumber  *string             `json:"serial_number"`
	LocationUUID  *uuid.UUID          `json:"location_uuid"`
	Manufacturer  *string             `json:"manufacturer"`
	ModelName     *string             `json:"model_name"`
	PurchasePrice *float64            `json:"purchase_price"`
	CurrentValue  *float64            `json:"current_value"`
	Tags          []string            `json:"tags"`
	Notes         *string             `json:"notes"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

type UpdateReq struct {
	UUID          uuid.UUID          `json:"uuid" binding:"required"`
	Name          *string            `json:"name"`
	Status        *model.AssetStatus `json:"status"`
	Condition     *string            `json:"condition"`
	SerialNumber  *string            `json:"serial_number"`
	LocationUUID  *uuid.UUID         `json:"location_uuid"`
	Manufacturer  *string            `json:"manufacturer"`
	ModelName     *string            `json:"model_name"`
	PurchasePrice *float64           `json:"purchase_price"`
	CurrentValue  *float64           `json:"current_value"`
	Tags          []string           `json:"tags"`
	Notes         *string            `json:"notes"`
}

type RetireReq struct {
	UUID uuid.UUID `json:"uuid" binding:"required"`
}

// AllocateReq 预分配资产编号
type AllocateReq struct {
	ClientUUID uuid.UUID           `json:"client_uuid" binding:"required"`
	Category   model.AssetCategory `json:"category" binding:"required"`
}

type AllocateResp struct {
	AssetNumber string `json:"asset_number"`
}

// RepairReq 编号补齐，ClientUUID 为空时处理全部客户
type RepairReq struct {
	ClientUUID *uuid.UUID `json:"client_uuid"`
}

// RepairResp 补齐结果，Repaired 为本次成功分配编号的资产数量
type RepairResp struct {
	Repaired int      `json:"repaired"`
	Numbers  []string `json:"numbers"`
}
