package repo

import (
	// 外部依赖
	"context"
	"time"

	// 内部引用
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	model "github.com/warehub/warehub/service/pkg/model"
)

// MaintenanceQuery 维保记录过滤条件
type MaintenanceQuery struct {
	AssetID *int64
	Status  *model.MaintenanceStatus
	Since   *time.Time
	Until   *time.Time
	OrderBy string
	Offset  int
	Limit   int
}

type MaintenanceRepo interface {
	IDOrUUIDTranslate

	CreateRecord(ctx context.Context, data *model.MaintenanceRecord) error
	GetRecordByUUID(ctx context.Context, id uuid.UUID) (*model.MaintenanceRecord, error)
	ListRecords(ctx context.Context, q MaintenanceQuery) ([]*model.MaintenanceRecord, int64, error)
	// TransitRecord 带前置状态约束的状态流转，条件不满足时返回 0 行
	TransitRecord(ctx context.Context, id int64, from []model.MaintenanceStatus, data map[string]any) (int64, error)
	// MarkOverdue 把超过计划时间仍未开始的记录置为逾期
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}
