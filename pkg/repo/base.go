package repo

import (
	// 外部依赖
	"context"

	gorm "gorm.io/gorm"

	// 内部引用
	code "github.com/warehub/warehub/service/pkg/common/code"
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	db "github.com/warehub/warehub/service/pkg/middleware/db"
	logger "github.com/warehub/warehub/service/pkg/middleware/logger"
	model "github.com/warehub/warehub/service/pkg/model"
)

// IDOrUUIDTranslate 各 repo 共用的基础能力：
// 取库连接（自动加入进行中的事务）、事务执行、uuid 与自增 id 互查
type IDOrUUIDTranslate interface {
	DBWithContext(ctx context.Context) *gorm.DB
	ExecTx(ctx context.Context, fn func(txCtx context.Context) error) error
	UUID2ID(ctx context.Context, m model.BaseDBModel, uuids ...uuid.UUID) map[uuid.UUID]int64
	ID2UUID(ctx context.Context, m model.BaseDBModel, ids ...int64) map[int64]uuid.UUID
	CreateData(ctx context.Context, data any) error
}

type baseDB struct{}

func NewBaseDB() IDOrUUIDTranslate {
	return &baseDB{}
}

func (b *baseDB) DBWithContext(ctx context.Context) *gorm.DB {
	return db.DB().DBWithContext(ctx)
}

func (b *baseDB) ExecTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return db.DB().ExecTx(ctx, fn)
}

type idUUIDRow struct {
	ID   int64     `gorm:"column:id"`
	UUID uuid.UUID `gorm:"column:uuid"`
}

// UUID2ID 批量把 uuid 映射为自增 id，查不到的 uuid 不在返回 map 中
func (b *baseDB) UUID2ID(ctx context.Context, m model.BaseDBModel, uuids ...uuid.UUID) map[uuid.UUID]int64 {
	result := make(map[uuid.UUID]int64, len(uuids))
	if len(uuids) == 0 {
		return result
	}

	rows := make([]idUUIDRow, 0, len(uuids))
	if err := b.DBWithContext(ctx).Model(m).
		Select("id", "uuid").
		Where("uuid IN ?", uuids).
		Find(&rows).Error; err != nil {
		logger.Errorf(ctx, "UUID2ID err: %+v", err)
		return result
	}

	for _, row := range rows {
		result[row.UUID] = row.ID
	}
	return result
}

func (b *baseDB) ID2UUID(ctx context.Context, m model.BaseDBModel, ids ...int64) map[int64]uuid.UUID {
	result := make(map[int64]uuid.UUID, len(ids))
	if len(ids) == 0 {
		return result
	}

	rows := make([]idUUIDRow, 0, len(ids))
	if err := b.DBWithContext(ctx).Model(m).
		Select("id", "uuid").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		logger.Errorf(ctx, "ID2UUID err: %+v", err)
		return result
	}

	for _, row := range rows {
		result[row.ID] = row.UUID
	}
	return result
}

func (b *baseDB) CreateData(ctx context.Context, data any) error {
	if err := b.DBWithContext(ctx).Create(data).Error; err != nil {
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}
