package registry

import (
	// 外部依赖
	"context"
	"errors"

	gorm "gorm.io/gorm"

	// 内部引用
	code "github.com/warehub/warehub/service/pkg/common/code"
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	model "github.com/warehub/warehub/service/pkg/model"
	repo "github.com/warehub/warehub/service/pkg/repo"
)

type registryImpl struct {
	repo.IDOrUUIDTranslate
}

func NewRegistryRepo() repo.RegistryRepo {
	return &registryImpl{IDOrUUIDTranslate: repo.NewBaseDB()}
}

func activeScope(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", 0)
}

// kindModel 返回 kind 对应的空模型，gorm 据此定位表
func kindModel(kind repo.RegistryKind) any {
	switch kind {
	case repo.RegistryLocation:
		return &model.Location{}
	case repo.RegistryDepartment:
		return &model.Department{}
	case repo.RegistryCustomCategory:
		return &model.CustomCategory{}
	case repo.RegistryPresetCategory:
		return &model.PresetCategory{}
	default:
		return &model.PresetDepartment{}
	}
}

func (r *registryImpl) CreateEntry(ctx context.Context, kind repo.RegistryKind, name string, description *string) (*repo.RegistryEntry, error) {
	db := r.DBWithContext(ctx)

	var err error
	entry := &repo.RegistryEntry{}
	switch kind {
	case repo.RegistryLocation:
		data := &model.Location{Name: name, Description: description}
		err = db.Create(data).Error
		entry = fromBase(data.BaseModel, data.Name, data.Description)
	case repo.RegistryDepartment:
		data := &model.Department{Name: name, Description: description}
		err = db.Create(data).Error
		entry = fromBase(data.BaseModel, data.Name, data.Description)
	case repo.RegistryCustomCategory:
		data := &model.CustomCategory{Name: name, Description: description}
		err = db.Create(data).Error
		entry = fromBase(data.BaseModel, data.Name, data.Description)
	case repo.RegistryPresetCategory:
		data := &model.PresetCategory{Name: name, Description: description}
		err = db.Create(data).Error
		entry = fromBase(data.BaseModel, data.Name, data.Description)
	default:
		data := &model.PresetDepartment{Name: name, Description: description}
		err = db.Create(data).Error
		entry = fromBase(data.BaseModel, data.Name, data.Description)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, code.RegistryDupErr.WithErr(err)
		}
		return nil, code.CreateDataErr.WithErr(err)
	}
	return entry, nil
}

func fromBase(base model.BaseModel, name string, description *string) *repo.RegistryEntry {
	return &repo.RegistryEntry{
		ID:          base.ID,
		UUID:        base.UUID,
		Name:        name,
		Description: description,
		CreatedAt:   base.CreatedAt,
		UpdatedAt:   base.UpdatedAt,
	}
}

func (r *registryImpl) GetEntryByUUID(ctx context.Context, kind repo.RegistryKind, id uuid.UUID) (*repo.RegistryEntry, error) {
	entry := &repo.RegistryEntry{}
	err := r.DBWithContext(ctx).Model(kindModel(kind)).Scopes(activeScope).
		Where("uuid = ?", id).
		First(entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.RegistryNotFound
	}
	if err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return entry, nil
}

func (r *registryImpl) ListEntries(ctx context.Context, kind repo.RegistryKind, nameLike *string, offset, limit int) ([]*repo.RegistryEntry, int64, error) {
	db := r.DBWithContext(ctx).Model(kindModel(kind)).Scopes(activeScope)
	if nameLike != nil && *nameLike != "" {
		db = db.Where("name ILIKE ?", "%"+*nameLike+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}

	if limit == 0 {
		limit = 20
	}
	list := make([]*repo.RegistryEntry, 0, limit)
	if err := db.Order("name asc").Offset(offset).Limit(limit).Find(&list).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return list, total, nil
}

func (r *registryImpl) UpdateEntry(ctx context.Context, kind repo.RegistryKind, id uuid.UUID, data map[string]any) error {
	res := r.DBWithContext(ctx).Model(kindModel(kind)).Scopes(activeScope).
		Where("uuid = ?", id).Updates(data)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return code.RegistryDupErr.WithErr(res.Error)
		}
		return code.UpdateDataErr.WithErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return code.RegistryNotFound
	}
	return nil
}

func (r *registryImpl) DeactivateEntry(ctx context.Context, kind repo.RegistryKind, id uuid.UUID) error {
	res := r.DBWithContext(ctx).Model(kindModel(kind)).Scopes(activeScope).
		Where("uuid = ?", id).UpdateColumn("is_deleted", 1)
	if res.Error != nil {
		return code.UpdateDataErr.WithErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return code.RegistryNotFound
	}
	return nil
}

// CountReferences 统计仍引用该资料的资产或套装数量。
// 部门与自定义类目没有外键引用方，恒为 0
func (r *registryImpl) CountReferences(ctx context.Context, kind repo.RegistryKind, id uuid.UUID) (int64, error) {
	var (
		count int64
		err   error
	)

	switch kind {
	case repo.RegistryLocation:
		entryID := r.UUID2ID(ctx, &model.Location{}, id)[id]
		if entryID == 0 {
			return 0, code.RegistryNotFound
		}
		err = r.DBWithContext(ctx).Model(&model.Asset{}).
			Where("location_id = ? AND is_deleted = 0", entryID).
			Count(&count).Error
	case repo.RegistryPresetCategory:
		entryID := r.UUID2ID(ctx, &model.PresetCategory{}, id)[id]
		if entryID == 0 {
			return 0, code.RegistryNotFound
		}
		err = r.DBWithContext(ctx).Model(&model.Preset{}).
			Where("category_id = ? AND is_deleted = 0", entryID).
			Count(&count).Error
	case repo.RegistryPresetDepartment:
		entryID := r.UUID2ID(ctx, &model.PresetDepartment{}, id)[id]
		if entryID == 0 {
			return 0, code.RegistryNotFound
		}
		err = r.DBWithContext(ctx).Model(&model.Preset{}).
			Where("department_id = ? AND is_deleted = 0", entryID).
			Count(&count).Error
	default:
		return 0, nil
	}

	if err != nil {
		return 0, code.QueryRecordErr.WithErr(err)
	}
	return count, nil
}

func (r *registryImpl) DeleteEntry(ctx context.Context, kind repo.RegistryKind, id uuid.UUID) error {
	res := r.DBWithContext(ctx).Where("uuid = ?", id).Delete(kindModel(kind))
	if res.Error != nil {
		return code.DeleteDataErr.WithErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return code.RegistryNotFound
	}
	return nil
}
