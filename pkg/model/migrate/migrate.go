package migrate

import (
	// 外部依赖
	"context"

	// 内部引用
	db "github.com/warehub/warehub/service/pkg/middleware/db"
	model "github.com/warehub/warehub/service/pkg/model"
	utils "github.com/warehub/warehub/service/pkg/utils"
)

func Table(_ context.Context) error {
	return utils.IfErrReturn(func() error {
		return db.DB().DBIns().AutoMigrate(
			&model.Client{},                 // 客户
			&model.Location{},               // 库位
			&model.Department{},             // 部门
			&model.CustomCategory{},         // 自定义类目
			&model.PresetCategory{},         // 套装类目
			&model.PresetDepartment{},       // 套装部门
			&model.Asset{},                  // 资产
			&model.AssetTransaction{},       // 借还流水
			&model.MaintenanceRecord{},      // 维保记录
			&model.Preset{},                 // 套装模板
			&model.PresetItem{},             // 套装条目
			&model.PresetItemSubstitution{}, // 条目替代资产
			&model.PresetCheckout{},         // 套装出库单
			&model.PresetCheckoutItem{},     // 出库单行
		)
	}, func() error {
		// 资产标签 gin 索引
		return db.DB().DBIns().Exec(`CREATE INDEX IF NOT EXISTS idx_asset_tags ON asset USING gin(tags);`).Error
	}, func() error {
		// 活跃流水的部分索引，逾期扫描使用
		return db.DB().DBIns().Exec(`CREATE INDEX IF NOT EXISTS idx_transaction_active_expected ON asset_transaction (expected_return_at) WHERE status = 'active';`).Error
	})
}
