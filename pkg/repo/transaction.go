package repo

import (
	// 外部依赖
	"context"
	"time"

	// 内部引用
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	model "github.com/warehub/warehub/service/pkg/model"
)

// TransactionQuery 借还流水过滤条件
type TransactionQuery struct {
	AssetID *int64
	UserID  *string
	Status  *model.TransactionStatus
	Since   *time.Time
	Until   *time.Time
	OrderBy string
	Offset  int
	Limit   int
}

type TransactionRepo interface {
	IDOrUUIDTranslate

	CreateTransaction(ctx context.Context, data *model.AssetTransaction) error
	GetTransactionByUUID(ctx context.Context, id uuid.UUID) (*model.AssetTransaction, error)
	ListTransactions(ctx context.Context, q TransactionQuery) ([]*model.AssetTransaction, int64, error)
	// GetActiveByAssetID 返回资产当前未归还的流水，不存在时返回 nil
	GetActiveByAssetID(ctx context.Context, assetID int64) (*model.AssetTransaction, error)
	CountOpenByAssetID(ctx context.Context, assetID int64) (int64, error)
	// CompleteTransaction 关闭流水并记录实际归还时间
	CompleteTransaction(ctx context.Context, id int64, returnedAt time.Time) error
	// MarkOverdue 把超过预计归还时间的活跃流水置为逾期，返回命中行数
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}
