package repo

import (
	// 外部依赖
	"context"
	"time"

	// 内部引用
	model "github.com/warehub/warehub/service/pkg/model"
)

// StatusCount 按状态的资产数量
type StatusCount struct {
	Status model.AssetStatus `gorm:"column:status" json:"status"`
	Count  int64             `gorm:"column:count" json:"count"`
}

// CategoryCount 按类目的资产数量
type CategoryCount struct {
	Category model.AssetCategory `gorm:"column:category" json:"category"`
	Count    int64               `gorm:"column:count" json:"count"`
}

// AssetUsage 资产借用热度
type AssetUsage struct {
	AssetID       int64 `gorm:"column:asset_id" json:"asset_id"`
	CheckoutCount int64 `gorm:"column:checkout_count" json:"checkout_count"`
}

// DailyVolume 按天聚合的借出量
type DailyVolume struct {
	Day   time.Time `gorm:"column:day" json:"day"`
	Count int64     `gorm:"column:count" json:"count"`
}

type StatsRepo interface {
	IDOrUUIDTranslate

	CountAssetsByStatus(ctx context.Context, clientID *int64) ([]*StatusCount, error)
	CountAssetsByCategory(ctx context.Context, clientID *int64) ([]*CategoryCount, error)
	// TopAssetsByCheckout 指定时间窗内借出次数最多的资产
	TopAssetsByCheckout(ctx context.Context, since time.Time, limit int) ([]*AssetUsage, error)
	CheckoutVolumeByDay(ctx context.Context, since time.Time) ([]*DailyVolume, error)
	CountOverdueTransactions(ctx context.Context) (int64, error)
	CountOverdueMaintenance(ctx context.Context) (int64, error)
	// SumAssetValue 在管资产的当前估值合计
	SumAssetValue(ctx context.Context, clientID *int64) (float64, error)
}
