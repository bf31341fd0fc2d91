package repo

import (
	// 外部依赖
	"context"
	"time"

	// 内部引用
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
)

// RegistryKind 基础资料类型
type RegistryKind string

const (
	RegistryLocation         RegistryKind = "location"
	RegistryDepartment       RegistryKind = "department"
	RegistryCustomCategory   RegistryKind = "custom_category"
	RegistryPresetCategory   RegistryKind = "preset_category"
	RegistryPresetDepartment RegistryKind = "preset_department"
)

func (k RegistryKind) Valid() bool {
	switch k {
	case RegistryLocation, RegistryDepartment, RegistryCustomCategory,
		RegistryPresetCategory, RegistryPresetDepartment:
		return true
	}
	return false
}

// RegistryEntry 五张基础资料表的统一视图（列结构完全一致）
type RegistryEntry struct {
	ID          int64      `gorm:"column:id" json:"-"`
	UUID        uuid.UUID  `gorm:"column:uuid" json:"uuid"`
	Name        string     `gorm:"column:name" json:"name"`
	Description *string    `gorm:"column:description" json:"description"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

type RegistryRepo interface {
	IDOrUUIDTranslate

	CreateEntry(ctx context.Context, kind RegistryKind, name string, description *string) (*RegistryEntry, error)
	GetEntryByUUID(ctx context.Context, kind RegistryKind, id uuid.UUID) (*RegistryEntry, error)
	ListEntries(ctx context.Context, kind RegistryKind, nameLike *string, offset, limit int) ([]*RegistryEntry, int64, error)
	UpdateEntry(ctx context.Context, kind RegistryKind, id uuid.UUID, data map[string]any) error
	// CountReferences 统计仍引用该资料的资产或套装数量
	CountReferences(ctx context.Context, kind RegistryKind, id uuid.UUID) (int64, error)
	// DeactivateEntry 软删除，仍被资产或套装引用的资料只停用
	DeactivateEntry(ctx context.Context, kind RegistryKind, id uuid.UUID) error
	// DeleteEntry 物理删除，仅限未被引用的资料
	DeleteEntry(ctx context.Context, kind RegistryKind, id uuid.UUID) error
}
