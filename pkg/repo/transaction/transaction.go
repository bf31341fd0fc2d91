package transaction

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

type transactionImpl struct {
	repo.IDOrUUIDTranslate
}

func NewTransactionRepo() repo.TransactionRepo {
	return &transactionImpl{IDOrUUIDTranslate: repo.NewBaseDB()}
}

func (r *transactionImpl) CreateTransaction(ctx context.Context, data *model.AssetTransaction) error {
	if err := r.DBWithContext(ctx).Create(data).Error; err != nil {
		return code.TransactionCreateErr.WithErr(err)
	}
	return nil
}

func (r *transactionImpl) GetTransactionByUUID(ctx context.Context, id uuid.UUID) (*model.AssetTransaction, error) {
	data := &model.AssetTransaction{}
	err := r.DBWithContext(ctx).Where("uuid = ?", id).First(data).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.TransactionNotFound
	}
	if err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return data, nil
}

func (r *transactionImpl) ListTransactions(ctx context.Context, q repo.TransactionQuery) ([]*model.AssetTransaction, int64, error) {
	db := r.DBWithContext(ctx).Model(&model.AssetTransaction{})

	if q.AssetID != nil {
		db = db.Where("asset_id = ?", *q.AssetID)
	}
	if q.UserID != nil && *q.UserID != "" {
		db = db.Where("user_id = ?", *q.UserID)
	}
	if q.Status != nil {
		db = db.Where("status = ?", *q.Status)
	}
	if q.Since != nil {
		db = db.Where("checked_out_at >= ?", *q.Since)
	}
	if q.Until != nil {
		db = db.Where("checked_out_at < ?", *q.Until)
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

	list := make([]*model.AssetTransaction, 0, q.Limit)
	if err := db.Order(order).Offset(q.Offset).Limit(q.Limit).Find(&list).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return list, total, nil
}

func (r *transactionImpl) GetActiveByAssetID(ctx context.Context, assetID int64) (*model.AssetTransaction, error) {
	data := &model.AssetTransaction{}
	err := r.DBWithContext(ctx).
		Where("asset_id = ? AND status IN ?", assetID,
			[]model.TransactionStatus{model.TransactionActive, model.TransactionOverdue}).
		Order("id desc").
		First(data).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return data, nil
}

func (r *transactionImpl) CountOpenByAssetID(ctx context.Context, assetID int64) (int64, error) {
	var count int64
	if err := r.DBWithContext(ctx).Model(&model.AssetTransaction{}).
		Where("asset_id = ? AND status IN ?", assetID,
			[]model.TransactionStatus{model.TransactionActive, model.TransactionOverdue}).
		Count(&count).Error; err != nil {
		return 0, code.QueryRecordErr.WithErr(err)
	}
	return count, nil
}

func (r *transactionImpl) CompleteTransaction(ctx context.Context, id int64, returnedAt time.Time) error {
	res := r.DBWithContext(ctx).Model(&model.AssetTransaction{}).
		Where("id = ? AND status IN ?", id,
			[]model.TransactionStatus{model.TransactionActive, model.TransactionOverdue}).
		Updates(map[string]any{
			"status":      model.TransactionCompleted,
			"returned_at": returnedAt,
		})
	if res.Error != nil {
		return code.UpdateDataErr.WithErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return code.TransactionClosedErr
	}
	return nil
}

func (r *transactionImpl) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	res := r.DBWithContext(ctx).Model(&model.AssetTransaction{}).
		Where("status = ? AND expected_return_at IS NOT NULL AND expected_return_at < ?",
			model.TransactionActive, now).
		UpdateColumn("status", model.TransactionOverdue)
	if res.Error != nil {
		return 0, code.TransactionOverdueIsErr.WithErr(res.Error)
	}
	return res.RowsAffected, nil
}
