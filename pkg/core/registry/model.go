package registry

import (
	// 外部依赖
	"time"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	repo "github.com/warehub/warehub/service/pkg/repo"
)

// InsertReq 创建基础资料入参，kind 走 URL 路径参数
type InsertReq struct {
	Kind        repo.RegistryKind `json:"-"`
	Name        string            `json:"name" binding:"required"`
	Description *string           `json:"description"`
}

type InsertResp struct {
	UUID uuid.UUID `json:"uuid"`
}

type QueryReq struct {
	common.PageReq

	Kind repo.RegistryKind `form:"-"`
	Name *string           `form:"name"`
}

type GetReq struct {
	Kind repo.RegistryKind `json:"-"`
	UUID uuid.UUID         `json:"-"`
}

// EntryResponse 查询返回的单条数据
type EntryResponse struct {
	UUID        uuid.UUID `json:"uuid"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UpdateReq struct {
	Kind        repo.RegistryKind `json:"-"`
	UUID        uuid.UUID         `json:"uuid" binding:"required"`
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
}

type DeleteReq struct {
	Kind repo.RegistryKind `json:"-"`
	UUID uuid.UUID         `json:"uuid" binding:"required"`
}
