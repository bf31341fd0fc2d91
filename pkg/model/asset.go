package model

import (
	// 外部依赖
	datatypes "gorm.io/datatypes"
)

// AssetStatus 资产状态
type AssetStatus string

const (
	AssetAvailable     AssetStatus = "available"
	AssetCheckedOut    AssetStatus = "checked_out"
	AssetInMaintenance AssetStatus = "in_maintenance"
	AssetRetired       AssetStatus = "retired"
	AssetMissing       AssetStatus = "missing"
	AssetReserved      AssetStatus = "reserved"
)

// AssetCategory 资产类目，类目编码参与资产编号生成
type AssetCategory string

const (
	CategoryCamera    AssetCategory = "CAMERA"
	CategoryLens      AssetCategory = "LENS"
	CategoryLighting  AssetCategory = "LIGHTING"
	CategoryAudio     AssetCategory = "AUDIO"
	CategoryTripod    AssetCategory = "TRIPOD"
	CategoryDrone     AssetCategory = "DRONE"
	CategoryMonitor   AssetCategory = "MONITOR"
	CategoryComputer  AssetCategory = "COMPUTER"
	CategoryCable     AssetCategory = "CABLE"
	CategoryAccessory AssetCategory = "ACCESSORY"
	CategoryOther     AssetCategory = "OTHER"
)

// 类目 -> 编号中段的三位编码
var categoryTypeCodes = map[AssetCategory]string{
	CategoryCamera:    "CAM",
	CategoryLens:      "LEN",
	CategoryLighting:  "LGT",
	CategoryAudio:     "AUD",
	CategoryTripod:    "TRI",
	CategoryDrone:     "DRN",
	CategoryMonitor:   "MON",
	CategoryComputer:  "CMP",
	CategoryCable:     "CAB",
	CategoryAccessory: "ACC",
	CategoryOther:     "OTH",
}

// TypeCode 返回类目编码，未配置的类目返回 false
func (c AssetCategory) TypeCode() (string, bool) {
	code, ok := categoryTypeCodes[c]
	return code, ok
}

type Asset struct {
	BaseModel
	Name          string                       `gorm:"type:varchar(255);not null;index:idx_asset_name" json:"name"`
	Category      AssetCategory                `gorm:"type:varchar(32);not null;index:idx_asset_category" json:"category"`
	ClientID      int64                        `gorm:"not null;index:idx_asset_client_id" json:"client_id"`
	Status        AssetStatus                  `gorm:"type:varchar(32);not null;default:'available';index:idx_asset_status" json:"status"`
	Condition     *string                      `gorm:"type:varchar(64)" json:"condition"`
	SerialNumber  *string                      `gorm:"type:varchar(128);index:idx_asset_serial" json:"serial_number"`
	AssetNumber   string                       `gorm:"type:varchar(32);not null;default:'';uniqueIndex:idx_asset_number,where:asset_number <> ''" json:"asset_number"`
	LocationID    *int64                       `gorm:"index:idx_asset_location_id" json:"location_id"`
	Manufacturer  *string                      `gorm:"type:varchar(128)" json:"manufacturer"`
	ModelName     *string                      `gorm:"type:varchar(128)" json:"model_name"`
	PurchasePrice *float64                     `gorm:"type:numeric(12,2)" json:"purchase_price"`
	CurrentValue  *float64                     `gorm:"type:numeric(12,2)" json:"current_value"`
	Tags          datatypes.JSONSlice[string]  `gorm:"type:jsonb" json:"tags"`
	Notes         *string                      `gorm:"type:text" json:"notes"`
	IsDeleted     int8                         `gorm:"type:smallint;not null;default:0" json:"is_deleted"`
}

func (*Asset) TableName() string { return "asset" }
