package transaction

import (
	// 外部依赖
	"context"
	"time"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
	code "github.com/warehub/warehub/service/pkg/common/code"
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	notify "github.com/warehub/warehub/service/pkg/core/notify"
	events "github.com/warehub/warehub/service/pkg/core/notify/events"
	core "github.com/warehub/warehub/service/pkg/core/transaction"
	auth "github.com/warehub/warehub/service/pkg/middleware/auth"
	logger "github.com/warehub/warehub/service/pkg/middleware/logger"
	model "github.com/warehub/warehub/service/pkg/model"
	repo "github.com/warehub/warehub/service/pkg/repo"
	repoAsset "github.com/warehub/warehub/service/pkg/repo/asset"
	repoTransaction "github.com/warehub/warehub/service/pkg/repo/transaction"
)

type transactionImpl struct {
	txStore    repo.TransactionRepo
	assetStore repo.AssetRepo
	msgCenter  notify.MsgCenter
}

func New() core.Service {
	return &transactionImpl{
		txStore:    repoTransaction.NewTransactionRepo(),
		assetStore: repoAsset.NewAssetRepo(),
		msgCenter:  events.NewEvents(),
	}
}

func (t *transactionImpl) Checkout(ctx context.Context, req *core.CheckoutReq) (*core.CheckoutResp, error) {
	currentUser := auth.GetCurrentUser(ctx)
	if currentUser == nil {
		return nil, code.UnLogin
	}

	asset, err := t.assetStore.GetAssetByUUID(ctx, req.AssetUUID)
	if err != nil {
		return nil, err
	}

	data := &model.AssetTransaction{
		AssetID:          asset.ID,
		UserID:           currentUser.ID,
		Status:           model.TransactionActive,
		CheckedOutAt:     time.Now(),
		ExpectedReturnAt: req.ExpectedReturnAt,
		Note:             req.Note,
	}

	err = t.txStore.ExecTx(ctx, func(txCtx context.Context) error {
		// 状态流转带前置校验，抢借时只有一方能翻转成功
		rows, err := t.assetStore.UpdateAssetStatus(txCtx, asset.ID, model.AssetAvailable, model.AssetCheckedOut)
		if err != nil {
			return err
		}
		if rows == 0 {
			return code.AssetNotAvailableErr.WithMsg(asset.AssetNumber)
		}
		return t.txStore.CreateTransaction(txCtx, data)
	})
	if err != nil {
		return nil, err
	}

	t.broadcast(ctx, "transaction.checkout", asset.UUID, data)
	return &core.CheckoutResp{UUID: data.UUID}, nil
}

func (t *transactionImpl) Checkin(ctx context.Context, req *core.CheckinReq) error {
	data, err := t.openTransaction(ctx, req)
	if err != nil {
		return err
	}
	if data.Status == model.TransactionCompleted {
		return code.TransactionClosedErr
	}

	returnedAt := time.Now()
	target := model.AssetAvailable
	if req.Damaged {
		target = model.AssetInMaintenance
	}

	err = t.txStore.ExecTx(ctx, func(txCtx context.Context) error {
		if err := t.txStore.CompleteTransaction(txCtx, data.ID, returnedAt); err != nil {
			return err
		}
		if req.Note != nil {
			if err := t.txStore.DBWithContext(txCtx).Model(&model.AssetTransaction{}).
				Where("id = ?", data.ID).
				UpdateColumn("note", *req.Note).Error; err != nil {
				return code.UpdateDataErr.WithErr(err)
			}
		}
		return t.assetStore.SetAssetStatus(txCtx, data.AssetID, target)
	})
	if err != nil {
		return err
	}

	assetUUID := t.assetStore.ID2UUID(ctx, &model.Asset{}, data.AssetID)[data.AssetID]
	t.broadcast(ctx, "transaction.checkin", assetUUID, data)
	return nil
}

// openTransaction 定位待归还流水：优先按流水 uuid，其次按资产 uuid 找活跃流水
func (t *transactionImpl) openTransaction(ctx context.Context, req *core.CheckinReq) (*model.AssetTransaction, error) {
	if !req.UUID.IsNil() {
		return t.txStore.GetTransactionByUUID(ctx, req.UUID)
	}
	if req.AssetUUID == nil || req.AssetUUID.IsNil() {
		return nil, code.ParamErr.WithMsg("uuid or asset_uuid required")
	}

	assetID := t.txStore.UUID2ID(ctx, &model.Asset{}, *req.AssetUUID)[*req.AssetUUID]
	if assetID == 0 {
		return nil, code.AssetNotFound
	}
	data, err := t.txStore.GetActiveByAssetID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, code.AssetNotCheckedOutErr
	}
	return data, nil
}

func (t *transactionImpl) Query(ctx context.Context, req *core.QueryReq) (*common.PageResp[[]*core.TransactionResponse], error) {
	q := repo.TransactionQuery{}

	if req.AssetUUID != nil && !req.AssetUUID.IsNil() {
		id := t.txStore.UUID2ID(ctx, &model.Asset{}, *req.AssetUUID)[*req.AssetUUID]
		if id == 0 {
			return nil, code.AssetNotFound
		}
		q.AssetID = &id
	}
	if req.UserID != nil && *req.UserID != "" {
		q.UserID = req.UserID
	}
	if req.Status != nil && *req.Status != "" {
		q.Status = req.Status
	}
	q.Since = req.Since
	q.Until = req.Until

	req.Normalize()
	q.Offset = req.Offest()
	q.Limit = req.PageSize

	list, total, err := t.txStore.ListTransactions(ctx, q)
	if err != nil {
		return nil, err
	}

	assetIDs := make([]int64, 0, len(list))
	for _, item := range list {
		assetIDs = append(assetIDs, item.AssetID)
	}
	assetUUIDs := t.txStore.ID2UUID(ctx, &model.Asset{}, assetIDs...)

	resp := make([]*core.TransactionResponse, 0, len(list))
	for _, item := range list {
		resp = append(resp, transactionResponse(item, assetUUIDs[item.AssetID]))
	}
	return &common.PageResp[[]*core.TransactionResponse]{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     resp,
	}, nil
}

func (t *transactionImpl) Get(ctx context.Context, req *core.GetReq) (*core.TransactionResponse, error) {
	data, err := t.txStore.GetTransactionByUUID(ctx, req.UUID)
	if err != nil {
		return nil, err
	}
	assetUUID := t.txStore.ID2UUID(ctx, &model.Asset{}, data.AssetID)[data.AssetID]
	return transactionResponse(data, assetUUID), nil
}

func (t *transactionImpl) SweepOverdue(ctx context.Context) (int64, error) {
	count, err := t.txStore.MarkOverdue(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.Infof(ctx, "overdue sweep marked %d transactions", count)
		if err := t.msgCenter.Broadcast(ctx, &notify.SendMsg{
			Channel: notify.TransactionAction,
			Event:   "transaction.overdue",
			Data:    map[string]any{"count": count},
		}); err != nil {
			logger.Warnf(ctx, "broadcast overdue err: %+v", err)
		}
	}
	return count, nil
}

func (t *transactionImpl) broadcast(ctx context.Context, event string, assetUUID uuid.UUID, data *model.AssetTransaction) {
	if err := t.msgCenter.Broadcast(ctx, &notify.SendMsg{
		Channel: notify.TransactionAction,
		Event:   event,
		Data: map[string]any{
			"uuid":       data.UUID,
			"asset_uuid": assetUUID,
			"user_id":    data.UserID,
		},
	}); err != nil {
		logger.Warnf(ctx, "broadcast %s err: %+v", event, err)
	}
}

func transactionResponse(data *model.AssetTransaction, assetUUID uuid.UUID) *core.TransactionResponse {
	return &core.TransactionResponse{
		UUID:             data.UUID,
		AssetUUID:        assetUUID,
		UserID:           data.UserID,
		Status:           data.Status,
		CheckedOutAt:     data.CheckedOutAt,
		ExpectedReturnAt: data.ExpectedReturnAt,
		ReturnedAt:       data.ReturnedAt,
		Note:             data.Note,
	}
}
