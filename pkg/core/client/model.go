package client

import (
	// 外部依赖
	"time"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
)

// InsertReq 创建客户入参
// Code 为资产编号前缀，要求 2-10 位大写字母或数字
type InsertReq struct {
	Name        string  `json:"name" binding:"required"`
	Code        string  `json:"code" binding:"required"`
	ContactName *string `json:"contact_name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
}

type InsertResp struct {
	UUID uuid.UUID `json:"uuid"`
}

type QueryReq struct {
	common.PageReq

	Name *string `form:"name"`
	Code *string `form:"code"`
}

type GetReq struct {
	UUID uuid.UUID `json:"-"`
}

type ClientResponse struct {
	UUID        uuid.UUID `json:"uuid"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	ContactName *string   `json:"contact_name"`
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	AssetCount  int64     `json:"asset_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpdateReq 更新客户，Code 不可修改（已分配的资产编号依赖它）
type UpdateReq struct {
	UUID        uuid.UUID `json:"uuid" binding:"required"`
	Name        *string   `json:"name"`
	ContactName *string   `json:"contact_name"`
	Email       *string   `json:"email" binding:"omitempty,email"`
	Phone       *string   `json:"phone"`
}

type DeleteReq struct {
	UUID uuid.UUID `json:"uuid" binding:"required"`
}
