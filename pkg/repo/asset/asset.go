package asset

import (
	// 外部依赖
	"context"
	"errors"

	gorm "gorm.io/gorm"

	// 内部引用
	code "github.com/warehub/warehub/service/pkg/common/code"
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	logger "github.com/warehub/warehub/service/pkg/middleware/logger"
	model "github.com/warehub/warehub/service/pkg/model"
	repo "github.com/warehub/warehub/service/pkg/repo"
)

type assetImpl struct {
	repo.IDOrUUIDTranslate
}

func NewAssetRepo() repo.AssetRepo {
	return &assetImpl{IDOrUUIDTranslate: repo.NewBaseDB()}
}

// activeScope 过滤掉已软删除的记录
func activeScope(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", 0)
}

func (r *assetImpl) CreateAsset(ctx context.Context, data *model.Asset) error {
	if err := r.DBWithContext(ctx).Create(data).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return code.AssetNumberConflictErr.WithErr(err)
		}
		return code.AssetCreateErr.WithErr(err)
	}
	return nil
}

func (r *assetImpl) GetAssetByUUID(ctx context.Context, id uuid.UUID) (*model.Asset, error) {
	data := &model.Asset{}
	err := r.DBWithContext(ctx).Scopes(activeScope).Where("uuid = ?", id).First(data).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.AssetNotFound
	}
	if err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return data, nil
}

func (r *assetImpl) GetAssetsByIDs(ctx context.Context, ids []int64) ([]*model.Asset, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	list := make([]*model.Asset, 0, len(ids))
	if err := r.DBWithContext(ctx).Scopes(activeScope).
		Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return list, nil
}

func applyQuery(db *gorm.DB, q repo.AssetQuery) *gorm.DB {
	if q.ClientID != nil {
		db = db.Where("client_id = ?", *q.ClientID)
	}
	if q.LocationID != nil {
		db = db.Where("location_id = ?", *q.LocationID)
	}
	if q.Category != nil {
		db = db.Where("category = ?", *q.Category)
	}
	if q.Status != nil {
		db = db.Where("status = ?", *q.Status)
	}
	if q.NameLike != nil && *q.NameLike != "" {
		db = db.Where("name ILIKE ?", "%"+*q.NameLike+"%")
	}
	if q.SerialLike != nil && *q.SerialLike != "" {
		db = db.Where("serial_number ILIKE ?", "%"+*q.SerialLike+"%")
	}
	return db
}

func (r *assetImpl) ListAssets(ctx context.Context, q repo.AssetQuery) ([]*model.Asset, int64, error) {
	db := applyQuery(r.DBWithContext(ctx).Model(&model.Asset{}).Scopes(activeScope), q)

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

	list := make([]*model.Asset, 0, q.Limit)
	if err := db.Order(order).Offset(q.Offset).Limit(q.Limit).Find(&list).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return list, total, nil
}

func (r *assetImpl) CountAssets(ctx context.Context, q repo.AssetQuery) (int64, error) {
	var total int64
	db := applyQuery(r.DBWithContext(ctx).Model(&model.Asset{}).Scopes(activeScope), q)
	if err := db.Count(&total).Error; err != nil {
		return 0, code.QueryRecordErr.WithErr(err)
	}
	return total, nil
}

func (r *assetImpl) UpdateAssetByUUID(ctx context.Context, id uuid.UUID, data map[string]any) error {
	res := r.DBWithContext(ctx).Model(&model.Asset{}).Scopes(activeScope).
		Where("uuid = ?", id).Updates(data)
	if res.Error != nil {
		logger.Errorf(ctx, "UpdateAssetByUUID err: %+v", res.Error)
		return code.UpdateDataErr.WithErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return code.AssetNotFound
	}
	return nil
}

func (r *assetImpl) UpdateAssetStatus(ctx context.Context, id int64, from, to model.AssetStatus) (int64, error) {
	res := r.DBWithContext(ctx).Model(&model.Asset{}).Scopes(activeScope).
		Where("id = ? AND status = ?", id, from).
		UpdateColumn("status", to)
	if res.Error != nil {
		return 0, code.UpdateDataErr.WithErr(res.Error)
	}
	return res.RowsAffected, nil
}

func (r *assetImpl) SetAssetStatus(ctx context.Context, id int64, to model.AssetStatus) error {
	res := r.DBWithContext(ctx).Model(&model.Asset{}).Scopes(activeScope).
		Where("id = ?", id).
		UpdateColumn("status", to)
	if res.Error != nil {
		return code.UpdateDataErr.WithErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return code.AssetNotFound
	}
	return nil
}

func (r *assetImpl) MaxAssetNumber(ctx context.Context, prefix string) (string, error) {
	var number string
	err := r.DBWithContext(ctx).Model(&model.Asset{}).
		Select("asset_number").
		Where("asset_number LIKE ?", prefix+"%").
		Order("asset_number desc").
		Limit(1).
		Scan(&number).Error
	if err != nil {
		return "", code.QueryRecordErr.WithErr(err)
	}
	return number, nil
}

func (r *assetImpl) AssetNumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	if err := r.DBWithContext(ctx).Model(&model.Asset{}).
		Where("asset_number = ?", number).
		Count(&count).Error; err != nil {
		return false, code.QueryRecordErr.WithErr(err)
	}
	return count > 0, nil
}

func (r *assetImpl) ListUnnumberedAssets(ctx context.Context, clientID *int64) ([]*model.Asset, error) {
	db := r.DBWithContext(ctx).Scopes(activeScope).Where("asset_number = ''")
	if clientID != nil {
		db = db.Where("client_id = ?", *clientID)
	}

	list := make([]*model.Asset, 0)
	if err := db.Order("id asc").Find(&list).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return list, nil
}
