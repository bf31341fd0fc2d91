package stats

import (
	// 外部依赖
	"context"
	"time"

	gorm "gorm.io/gorm"

	// 内部引用
	code "github.com/warehub/warehub/service/pkg/common/code"
	model "github.com/warehub/warehub/service/pkg/model"
	repo "github.com/warehub/warehub/service/pkg/repo"
)

type statsImpl struct {
	repo.IDOrUUIDTranslate
}

func NewStatsRepo() repo.StatsRepo {
	return &statsImpl{IDOrUUIDTranslate: repo.NewBaseDB()}
}

func (r *statsImpl) assetScope(ctx context.Context, clientID *int64) *gorm.DB {
	db := r.DBWithContext(ctx).Model(&model.Asset{}).Where("is_deleted = 0")
	if clientID != nil {
		db = db.Where("client_id = ?", *clientID)
	}
	return db
}

func (r *statsImpl) CountAssetsByStatus(ctx context.Context, clientID *int64) ([]*repo.StatusCount, error) {
	rows := make([]*repo.StatusCount, 0, 8)
	if err := r.assetScope(ctx, clientID).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return rows, nil
}

func (r *statsImpl) CountAssetsByCategory(ctx context.Context, clientID *int64) ([]*repo.CategoryCount, error) {
	rows := make([]*repo.CategoryCount, 0, 12)
	if err := r.assetScope(ctx, clientID).
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return rows, nil
}

func (r *statsImpl) TopAssetsByCheckout(ctx context.Context, since time.Time, limit int) ([]*repo.AssetUsage, error) {
	if limit <= 0 {
		limit = 10
	}
	rows := make([]*repo.AssetUsage, 0, limit)
	if err := r.DBWithContext(ctx).Model(&model.AssetTransaction{}).
		Select("asset_id, COUNT(*) AS checkout_count").
		Where("checked_out_at >= ?", since).
		Group("asset_id").
		Order("checkout_count DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return rows, nil
}

func (r *statsImpl) CheckoutVolumeByDay(ctx context.Context, since time.Time) ([]*repo.DailyVolume, error) {
	rows := make([]*repo.DailyVolume, 0, 31)
	if err := r.DBWithContext(ctx).Model(&model.AssetTransaction{}).
		Select("date_trunc('day', checked_out_at) AS day, COUNT(*) AS count").
		Where("checked_out_at >= ?", since).
		Group("day").
		Order("day ASC").
		Scan(&rows).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return rows, nil
}

func (r *statsImpl) CountOverdueTransactions(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DBWithContext(ctx).Model(&model.AssetTransaction{}).
		Where("status = ?", model.TransactionOverdue).
		Count(&count).Error; err != nil {
		return 0, code.QueryRecordErr.WithErr(err)
	}
	return count, nil
}

func (r *statsImpl) CountOverdueMaintenance(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DBWithContext(ctx).Model(&model.MaintenanceRecord{}).
		Where("status = ?", model.MaintenanceOverdue).
		Count(&count).Error; err != nil {
		return 0, code.QueryRecordErr.WithErr(err)
	}
	return count, nil
}

func (r *statsImpl) SumAssetValue(ctx context.Context, clientID *int64) (float64, error) {
	var total float64
	if err := r.assetScope(ctx, clientID).
		Select("COALESCE(SUM(current_value), 0)").
		Scan(&total).Error; err != nil {
		return 0, code.QueryRecordErr.WithErr(err)
	}
	return total, nil
}
