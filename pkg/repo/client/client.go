package client

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

type clientImpl struct {
	repo.IDOrUUIDTranslate
}

func NewClientRepo() repo.ClientRepo {
	return &clientImpl{IDOrUUIDTranslate: repo.NewBaseDB()}
}

func activeScope(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", 0)
}

func (r *clientImpl) CreateClient(ctx context.Context, data *model.Client) error {
	if err := r.DBWithContext(ctx).Create(data).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return code.ClientDupErr.WithErr(err)
		}
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}

func (r *clientImpl) GetClientByUUID(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	data := &model.Client{}
	err := r.DBWithContext(ctx).Scopes(activeScope).Where("uuid = ?", id).First(data).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.ClientNotFound
	}
	if err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return data, nil
}

func (r *clientImpl) GetClientByID(ctx context.Context, id int64) (*model.Client, error) {
	data := &model.Client{}
	err := r.DBWithContext(ctx).Scopes(activeScope).Where("id = ?", id).First(data).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.ClientNotFound
	}
	if err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return data, nil
}

func (r *clientImpl) ListClients(ctx context.Context, q repo.ClientQuery) ([]*model.Client, int64, error) {
	db := r.DBWithContext(ctx).Model(&model.Client{}).Scopes(activeScope)

	if q.NameLike != nil && *q.NameLike != "" {
		db = db.Where("name ILIKE ?", "%"+*q.NameLike+"%")
	}
	if q.Code != nil && *q.Code != "" {
		db = db.Where("code = ?", *q.Code)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}

	order := q.OrderBy
	if order == "" {
		order = "id desc"
	}
	if q.Limit == 0 {
		q.Limit = 20
	}

	list := make([]*model.Client, 0, q.Limit)
	if err := db.Order(order).Offset(q.Offset).Limit(q.Limit).Find(&list).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return list, total, nil
}

func (r *clientImpl) UpdateClientByUUID(ctx context.Context, id uuid.UUID, data map[string]any) error {
	res := r.DBWithContext(ctx).Model(&model.Client{}).Scopes(activeScope).
		Where("uuid = ?", id).Updates(data)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return code.ClientDupErr.WithErr(res.Error)
		}
		return code.UpdateDataErr.WithErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return code.ClientNotFound
	}
	return nil
}

func (r *clientImpl) DeactivateClient(ctx context.Context, id uuid.UUID) error {
	res := r.DBWithContext(ctx).Model(&model.Client{}).Scopes(activeScope).
		Where("uuid = ?", id).UpdateColumn("is_deleted", 1)
	if res.Error != nil {
		return code.UpdateDataErr.WithErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return code.ClientNotFound
	}
	return nil
}

func (r *clientImpl) DeleteClient(ctx context.Context, id uuid.UUID) error {
	res := r.DBWithContext(ctx).Where("uuid = ?", id).Delete(&model.Client{})
	if res.Error != nil {
		return code.DeleteDataErr.WithErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return code.ClientNotFound
	}
	return nil
}
