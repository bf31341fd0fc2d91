package maintenance

import (
	// 外部依赖
	"context"
	"errors"
	"time"

	gorm "gorm.io/gorm"

	// 内部引用
	code "github.com/warehub/warehub/service/pkg/common/code"
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	model "github.com/warehub/warehub/service/pkg/model"
	repo "github.com/warehub/warehub/service/pkg/repo"
)

type maintenanceImpl struct {
	repo.IDOrUUIDTranslate
}

func NewMaintenanceRepo() repo.MaintenanceRepo {
	return &maintenanceImpl{IDOrUUIDTranslate: repo.NewBaseDB()}
}

func (r *maintenanceImpl) CreateRecord(ctx context.Context, data *model.MaintenanceRecord) error {
	if err := r.DBWithContext(ctx).Create(data).Error; err != nil {
		return code.MaintenanceCreateErr.WithErr(err)
	}
	return nil
}

func (r *maintenanceImpl) GetRecordByUUID(ctx context.Context, id uuid.UUID) (*model.MaintenanceRecord, error) {
	data := &model.MaintenanceRecord{}
	err := r.DBWithContext(ctx).Where("uuid = ?", id).First(data).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.MaintenanceNotFound
	}
	if err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return data, nil
}

func (r *maintenanceImpl) ListRecords(ctx context.Context, q repo.MaintenanceQuery) ([]*model.MaintenanceRecord, int64, error) {
	db := r.DBWithContext(ctx).Model(&model.MaintenanceRecord{})

	if q.AssetID != nil {
		db = db.Where("asset_id = ?", *q.AssetID)
	}
	if q.Status != nil {
		db = db.Where("status = ?", *q.Status)
	}
	if q.Since != nil {
		db = db.Where("scheduled_at >= ?", *q.Since)
	}
	if q.Until != nil {
		db = db.Where("scheduled_at < ?", *q.Until)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}

	order := q.OrderBy
	if order == "" {
		order = "scheduled_at desc"
	}
	if q.Limit == 0 {
		q.Limit = 20
	}

	list := make([]*model.MaintenanceRecord, 0, q.Limit)
	if err := db.Order(order).Offset(q.Offset).Limit(q.Limit).Find(&list).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return list, total, nil
}

func (r *maintenanceImpl) TransitRecord(ctx context.Context, id int64, from []model.MaintenanceStatus, data map[string]any) (int64, error) {
	res := r.DBWithContext(ctx).Model(&model.MaintenanceRecord{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(data)
	if res.Error != nil {
		return 0, code.UpdateDataErr.WithErr(res.Error)
	}
	return res.RowsAffected, nil
}

func (r *maintenanceImpl) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	res := r.DBWithContext(ctx).Model(&model.MaintenanceRecord{}).
		Where("status = ? AND scheduled_at < ?", model.MaintenanceScheduled, now).
		UpdateColumn("status", model.MaintenanceOverdue)
	if res.Error != nil {
		return 0, code.UpdateDataErr.WithErr(res.Error)
	}
	return res.RowsAffected, nil
}
