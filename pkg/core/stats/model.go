package stats

import (
	// 外部依赖
	"time"

	// 内部引用
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	model "github.com/warehub/warehub/service/pkg/model"
	repo "github.com/warehub/warehub/service/pkg/repo"
)

// DashboardReq 总览入参，可按客户过滤
type DashboardReq struct {
	ClientUUID *uuid.UUID `form:"client_uuid"`
}

type DashboardResp struct {
	TotalAssets        int64                         `json:"total_assets"`
	ByStatus           map[model.AssetStatus]int64   `json:"by_status"`
	ByCategory         map[model.AssetCategory]int64 `json:"by_category"`
	TotalValue         float64                       `json:"total_value"`
	OverdueCheckouts   int64                         `json:"overdue_checkouts"`
	OverdueMaintenance int64                         `json:"overdue_maintenance"`
}

// UsageReq Days 为统计窗口天数，默认 30
type UsageReq struct {
	Days int `form:"days"`
	Top  int `form:"top"`
}

type TopAsset struct {
	AssetUUID     uuid.UUID `json:"asset_uuid"`
	Name          string    `json:"name"`
	AssetNumber   string    `json:"asset_number"`
	CheckoutCount int64     `json:"checkout_count"`
}

type UsageResp struct {
	Since       time.Time           `json:"since"`
	DailyVolume []*repo.DailyVolume `json:"daily_volume"`
	TopAssets   []*TopAsset         `json:"top_assets"`
}
