package maintenance

import (
	// 外部依赖
	"context"
	"time"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
	code "github.com/warehub/warehub/service/pkg/common/code"
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	core "github.com/warehub/warehub/service/pkg/core/maintenance"
	notify "github.com/warehub/warehub/service/pkg/core/notify"
	events "github.com/warehub/warehub/service/pkg/core/notify/events"
	logger "github.com/warehub/warehub/service/pkg/middleware/logger"
	model "github.com/warehub/warehub/service/pkg/model"
	repo "github.com/warehub/warehub/service/pkg/repo"
	repoAsset "github.com/warehub/warehub/service/pkg/repo/asset"
	repoMaintenance "github.com/warehub/warehub/service/pkg/repo/maintenance"
	repoTransaction "github.com/warehub/warehub/service/pkg/repo/transaction"
)

type maintenanceImpl struct {
	store      repo.MaintenanceRepo
	assetStore repo.AssetRepo
	txStore    repo.TransactionRepo
	msgCenter  notify.MsgCenter
}

func New() core.Service {
	return &maintenanceImpl{
		store:      repoMaintenance.NewMaintenanceRepo(),
		assetStore: repoAsset.NewAssetRepo(),
		txStore:    repoTransaction.NewTransactionRepo(),
		msgCenter:  events.NewEvents(),
	}
}

func (m *maintenanceImpl) Schedule(ctx context.Context, req *core.ScheduleReq) (*core.ScheduleResp, error) {
	asset, err := m.assetStore.GetAssetByUUID(ctx, req.AssetUUID)
	if err != nil {
		return nil, err
	}

	open, err := m.txStore.CountOpenByAssetID(ctx, asset.ID)
	if err != nil {
		return nil, err
	}
	if open > 0 {
		return nil, code.AssetAlreadyCheckedOut
	}

	data := &model.MaintenanceRecord{
		AssetID:       asset.ID,
		Type:          req.Type,
		Status:        model.MaintenanceScheduled,
		ScheduledAt:   req.ScheduledAt,
		EstimatedCost: req.EstimatedCost,
		Description:   req.Description,
	}

	err = m.store.ExecTx(ctx, func(txCtx context.Context) error {
		if err := m.store.CreateRecord(txCtx, data); err != nil {
			return err
		}
		rows, err := m.assetStore.UpdateAssetStatus(txCtx, asset.ID, model.AssetAvailable, model.AssetInMaintenance)
		if err != nil {
			return err
		}
		// 损坏归还的资产已处于维修状态，排期时无需再翻转
		if rows == 0 && asset.Status != model.AssetInMaintenance {
			return code.AssetNotAvailableErr.WithMsg(asset.AssetNumber)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.broadcast(ctx, "maintenance.scheduled", data.UUID)
	return &core.ScheduleResp{UUID: data.UUID}, nil
}

func (m *maintenanceImpl) Start(ctx context.Context, req *core.StartReq) error {
	data, err := m.store.GetRecordByUUID(ctx, req.UUID)
	if err != nil {
		return err
	}

	rows, err := m.store.TransitRecord(ctx, data.ID,
		[]model.MaintenanceStatus{model.MaintenanceScheduled, model.MaintenanceOverdue},
		map[string]any{"status": model.MaintenanceInProgress})
	if err != nil {
		return err
	}
	if rows == 0 {
		return code.MaintenanceStateErr
	}

	m.broadcast(ctx, "maintenance.started", data.UUID)
	return nil
}

func (m *maintenanceImpl) Complete(ctx context.Context, req *core.CompleteReq) error {
	data, err := m.store.GetRecordByUUID(ctx, req.UUID)
	if err != nil {
		return err
	}

	performedAt := time.Now()
	if req.PerformedAt != nil {
		performedAt = *req.PerformedAt
	}
	update := map[string]any{
		"status":       model.MaintenanceCompleted,
		"performed_at": performedAt,
	}
	if req.ActualCost != nil {
		update["actual_cost"] = *req.ActualCost
	}
	if req.PerformedBy != nil {
		update["performed_by"] = *req.PerformedBy
	}

	err = m.store.ExecTx(ctx, func(txCtx context.Context) error {
		rows, err := m.store.TransitRecord(txCtx, data.ID,
			[]model.MaintenanceStatus{model.MaintenanceScheduled, model.MaintenanceInProgress, model.MaintenanceOverdue},
			update)
		if err != nil {
			return err
		}
		if rows == 0 {
			return code.MaintenanceStateErr
		}
		return m.assetStore.SetAssetStatus(txCtx, data.AssetID, model.AssetAvailable)
	})
	if err != nil {
		return err
	}

	m.broadcast(ctx, "maintenance.completed", data.UUID)
	return nil
}

func (m *maintenanceImpl) Cancel(ctx context.Context, req *core.CancelReq) error {
	data, err := m.store.GetRecordByUUID(ctx, req.UUID)
	if err != nil {
		return err
	}

	err = m.store.ExecTx(ctx, func(txCtx context.Context) error {
		rows, err := m.store.TransitRecord(txCtx, data.ID,
			[]model.MaintenanceStatus{model.MaintenanceScheduled, model.MaintenanceInProgress, model.MaintenanceOverdue},
			map[string]any{"status": model.MaintenanceCancelled})
		if err != nil {
			return err
		}
		if rows == 0 {
			return code.MaintenanceStateErr
		}
		return m.assetStore.SetAssetStatus(txCtx, data.AssetID, model.AssetAvailable)
	})
	if err != nil {
		return err
	}

	m.broadcast(ctx, "maintenance.cancelled", data.UUID)
	return nil
}

func (m *maintenanceImpl) Query(ctx context.Context, req *core.QueryReq) (*common.PageResp[[]*core.RecordResponse], error) {
	q := repo.MaintenanceQuery{}

	if req.AssetUUID != nil && !req.AssetUUID.IsNil() {
		id := m.store.UUID2ID(ctx, &model.Asset{}, *req.AssetUUID)[*req.AssetUUID]
		if id == 0 {
			return nil, code.AssetNotFound
		}
		q.AssetID = &id
	}
	if req.Status != nil && *req.Status != "" {
		q.Status = req.Status
	}
	q.Since = req.Since
	q.Until = req.Until

	req.Normalize()
	q.Offset = req.Offest()
	q.Limit = req.PageSize

	list, total, err := m.store.ListRecords(ctx, q)
	if err != nil {
		return nil, err
	}

	assetIDs := make([]int64, 0, len(list))
	for _, item := range list {
		assetIDs = append(assetIDs, item.AssetID)
	}
	assetUUIDs := m.store.ID2UUID(ctx, &model.Asset{}, assetIDs...)

	resp := make([]*core.RecordResponse, 0, len(list))
	for _, item := range list {
		resp = append(resp, recordResponse(item, assetUUIDs[item.AssetID]))
	}
	return &common.PageResp[[]*core.RecordResponse]{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     resp,
	}, nil
}

func (m *maintenanceImpl) Get(ctx context.Context, req *core.GetReq) (*core.RecordResponse, error) {
	data, err := m.store.GetRecordByUUID(ctx, req.UUID)
	if err != nil {
		return nil, err
	}
	assetUUID := m.store.ID2UUID(ctx, &model.Asset{}, data.AssetID)[data.AssetID]
	return recordResponse(data, assetUUID), nil
}

func (m *maintenanceImpl) SweepOverdue(ctx context.Context) (int64, error) {
	count, err := m.store.MarkOverdue(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.Infof(ctx, "overdue sweep marked %d maintenance records", count)
	}
	return count, nil
}

func (m *maintenanceImpl) broadcast(ctx context.Context, event string, id uuid.UUID) {
	if err := m.msgCenter.Broadcast(ctx, &notify.SendMsg{
		Channel: notify.MaintenanceAction,
		Event:   event,
		Data:    map[string]any{"uuid": id},
	}); err != nil {
		logger.Warnf(ctx, "broadcast %s err: %+v", event, err)
	}
}

func recordResponse(data *model.MaintenanceRecord, assetUUID uuid.UUID) *core.RecordResponse {
	return &core.RecordResponse{
		UUID:          data.UUID,
		AssetUUID:     assetUUID,
		Type:          data.Type,
		Status:        data.Status,
		ScheduledAt:   data.ScheduledAt,
		PerformedAt:   data.PerformedAt,
		EstimatedCost: data.EstimatedCost,
		ActualCost:    data.ActualCost,
		PerformedBy:   data.PerformedBy,
		Description:   data.Description,
		CreatedAt:     data.CreatedAt,
	}
}
