package model

import (
	"time"
)

type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
	MaintenanceOverdue    MaintenanceStatus = "overdue"
)

// MaintenanceRecord 维保记录，完成/取消会联动资产状态
type MaintenanceRecord struct {
	BaseModel
	AssetID       int64             `gorm:"not null;index:idx_maintenance_asset_id" json:"asset_id"`
	Type          string            `gorm:"type:varchar(64);not null" json:"type"`
	Status        MaintenanceStatus `gorm:"type:varchar(32);not null;default:'scheduled';index:idx_maintenance_status" json:"status"`
	ScheduledAt   time.Time         `gorm:"not null;index:idx_maintenance_scheduled_at" json:"scheduled_at"`
	PerformedAt   *time.Time        `json:"performed_at"`
	EstimatedCost *float64          `gorm:"type:numeric(12,2)" json:"estimated_cost"`
	ActualCost    *float64          `gorm:"type:numeric(12,2)" json:"actual_cost"`
	PerformedBy   *string           `gorm:"type:varchar(128)" json:"performed_by"`
	Description   *string           `gorm:"type:text" json:"description"`
}

func (*MaintenanceRecord) TableName() string { return "maintenance_record" }
