package preset

import (
	// 外部依赖
	"context"
	"strings"
	"time"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
	code "github.com/warehub/warehub/service/pkg/common/code"
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	notify "github.com/warehub/warehub/service/pkg/core/notify"
	events "github.com/warehub/warehub/service/pkg/core/notify/events"
	core "github.com/warehub/warehub/service/pkg/core/preset"
	auth "github.com/warehub/warehub/service/pkg/middleware/auth"
	logger "github.com/warehub/warehub/service/pkg/middleware/logger"
	model "github.com/warehub/warehub/service/pkg/model"
	repo "github.com/warehub/warehub/service/pkg/repo"
	repoAsset "github.com/warehub/warehub/service/pkg/repo/asset"
	repoPreset "github.com/warehub/warehub/service/pkg/repo/preset"
	repoTransaction "github.com/warehub/warehub/service/pkg/repo/transaction"
)

type presetImpl struct {
	presetStore repo.PresetRepo
	assetStore  repo.AssetRepo
	txStore     repo.TransactionRepo
	msgCenter   notify.MsgCenter
}

func New() core.Service {
	return &presetImpl{
		presetStore: repoPreset.NewPresetRepo(),
		assetStore:  repoAsset.NewAssetRepo(),
		txStore:     repoTransaction.NewTransactionRepo(),
		msgCenter:   events.NewEvents(),
	}
}

func (p *presetImpl) Insert(ctx context.Context, req *core.InsertReq) (*core.InsertResp, error) {
	currentUser := auth.GetCurrentUser(ctx)
	if currentUser == nil {
		return nil, code.UnLogin
	}

	data := &model.Preset{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		CreatedBy:   currentUser.ID,
	}
	if req.CategoryUUID != nil && !req.CategoryUUID.IsNil() {
		id := p.presetStore.UUID2ID(ctx, &model.PresetCategory{}, *req.CategoryUUID)[*req.CategoryUUID]
		if id == 0 {
			return nil, code.RegistryNotFound
		}
		data.CategoryID = &id
	}
	if req.DepartmentUUID != nil && !req.DepartmentUUID.IsNil() {
		id := p.presetStore.UUID2ID(ctx, &model.PresetDepartment{}, *req.DepartmentUUID)[*req.DepartmentUUID]
		if id == 0 {
			return nil, code.RegistryNotFound
		}
		data.DepartmentID = &id
	}

	items, subs, err := p.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	if err := p.presetStore.CreatePreset(ctx, data, items, subs); err != nil {
		logger.Errorf(ctx, "CreatePreset err: %+v", err)
		return nil, err
	}
	return &core.InsertResp{UUID: data.UUID}, nil
}

// buildItems 把条目入参解析为模型，Priority 取声明顺序
func (p *presetImpl) buildItems(ctx context.Context, reqs []*core.ItemReq) ([]*model.PresetItem, map[int][]*model.PresetItemSubstitution, error) {
	assetUUIDs := make([]uuid.UUID, 0, len(reqs))
	for _, item := range reqs {
		if item.AssetUUID != nil && !item.AssetUUID.IsNil() {
			assetUUIDs = append(assetUUIDs, *item.AssetUUID)
		}
		for _, sub := range item.Substitutions {
			assetUUIDs = append(assetUUIDs, sub)
		}
	}
	assetIDs := p.presetStore.UUID2ID(ctx, &model.Asset{}, assetUUIDs...)

	items := make([]*model.PresetItem, 0, len(reqs))
	subs := make(map[int][]*model.PresetItemSubstitution, len(reqs))
	for idx, item := range reqs {
		if item.AssetUUID == nil && (item.Category == nil || *item.Category == "") {
			return nil, nil, code.PresetItemAssetErr.WithMsg("item needs an asset or a category")
		}
		if item.Category != nil && *item.Category != "" {
			if _, ok := item.Category.TypeCode(); !ok {
				return nil, nil, code.AssetCategoryErr.WithMsg(string(*item.Category))
			}
		}

		data := &model.PresetItem{
			Category:   item.Category,
			IsRequired: item.IsRequired,
			Priority:   idx,
			Notes:      item.Notes,
		}
		if item.AssetUUID != nil && !item.AssetUUID.IsNil() {
			id := assetIDs[*item.AssetUUID]
			if id == 0 {
				return nil, nil, code.PresetItemAssetErr.WithMsg(item.AssetUUID.String())
			}
			data.AssetID = &id
		}
		items = append(items, data)

		for subIdx, subUUID := range item.Substitutions {
			id := assetIDs[subUUID]
			if id == 0 {
				return nil, nil, code.PresetItemAssetErr.WithMsg(subUUID.String())
			}
			subs[idx] = append(subs[idx], &model.PresetItemSubstitution{
				AssetID:  id,
				Priority: subIdx,
			})
		}
	}
	return items, subs, nil
}

func (p *presetImpl) Query(ctx context.Context, req *core.QueryReq) (*common.PageResp[[]*core.PresetResponse], error) {
	q := repo.PresetQuery{}
	if req.Name != nil && *req.Name != "" {
		q.Name = req.Name
	}
	if req.CategoryUUID != nil && !req.CategoryUUID.IsNil() {
		id := p.presetStore.UUID2ID(ctx, &model.PresetCategory{}, *req.CategoryUUID)[*req.CategoryUUID]
		if id == 0 {
			return nil, code.RegistryNotFound
		}
		q.CategoryID = &id
	}
	if req.DepartmentUUID != nil && !req.DepartmentUUID.IsNil() {
		id := p.presetStore.UUID2ID(ctx, &model.PresetDepartment{}, *req.DepartmentUUID)[*req.DepartmentUUID]
		if id == 0 {
			return nil, code.RegistryNotFound
		}
		q.DepartmentID = &id
	}
	if req.CreatedBy != nil && *req.CreatedBy != "" {
		q.CreatedBy = req.CreatedBy
	}

	req.Normalize()
	q.Offset = req.Offest()
	q.Limit = req.PageSize

	list, total, err := p.presetStore.ListPresets(ctx, q)
	if err != nil {
		return nil, err
	}

	counts, err := p.itemCounts(ctx, list)
	if err != nil {
		return nil, err
	}

	resp := make([]*core.PresetResponse, 0, len(list))
	for _, item := range list {
		resp = append(resp, presetResponse(item, counts[item.ID]))
	}
	return &common.PageResp[[]*core.PresetResponse]{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     resp,
	}, nil
}

func (p *presetImpl) itemCounts(ctx context.Context, list []*model.Preset) (map[int64]int, error) {
	counts := make(map[int64]int, len(list))
	if len(list) == 0 {
		return counts, nil
	}

	ids := make([]int64, 0, len(list))
	for _, item := range list {
		ids = append(ids, item.ID)
	}

	rows := make([]struct {
		PresetID int64 `gorm:"column:preset_id"`
		Count    int   `gorm:"column:count"`
	}, 0, len(list))
	if err := p.presetStore.DBWithContext(ctx).Model(&model.PresetItem{}).
		Select("preset_id, COUNT(*) AS count").
		Where("preset_id IN ?", ids).
		Group("preset_id").
		Scan(&rows).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	for _, row := range rows {
		counts[row.PresetID] = row.Count
	}
	return counts, nil
}

func (p *presetImpl) Get(ctx context.Context, req *core.GetReq) (*core.PresetDetailResponse, error) {
	data, err := p.presetStore.GetPresetByUUID(ctx, req.UUID)
	if err != nil {
		return nil, err
	}
	def, err := p.presetStore.GetPresetDefinition(ctx, data.ID)
	if err != nil {
		return nil, err
	}

	assetIDs := make([]int64, 0, len(def.Items))
	for _, item := range def.Items {
		if item.Item.AssetID != nil {
			assetIDs = append(assetIDs, *item.Item.AssetID)
		}
		for _, sub := range item.Substitutions {
			assetIDs = append(assetIDs, sub.AssetID)
		}
	}
	assetUUIDs := p.presetStore.ID2UUID(ctx, &model.Asset{}, assetIDs...)

	resp := &core.PresetDetailResponse{
		PresetResponse: *presetResponse(data, len(def.Items)),
		Items:          make([]*core.ItemResponse, 0, len(def.Items)),
	}
	for _, item := range def.Items {
		itemResp := &core.ItemResponse{
			UUID:          item.Item.UUID,
			Category:      item.Item.Category,
			IsRequired:    item.Item.IsRequired,
			Priority:      item.Item.Priority,
			Notes:         item.Item.Notes,
			Substitutions: make([]uuid.UUID, 0, len(item.Substitutions)),
		}
		if item.Item.AssetID != nil {
			if u, ok := assetUUIDs[*item.Item.AssetID]; ok {
				itemResp.AssetUUID = &u
			}
		}
		for _, sub := range item.Substitutions {
			itemResp.Substitutions = append(itemResp.Substitutions, assetUUIDs[sub.AssetID])
		}
		resp.Items = append(resp.Items, itemResp)
	}
	return resp, nil
}

func (p *presetImpl) Update(ctx context.Context, req *core.UpdateReq) error {
	data, err := p.presetStore.GetPresetByUUID(ctx, req.UUID)
	if err != nil {
		return err
	}

	update := map[string]any{}
	if req.Name != nil && *req.Name != "" {
		update["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}

	return p.presetStore.ExecTx(ctx, func(txCtx context.Context) error {
		if len(update) > 0 {
			if err := p.presetStore.UpdatePresetByUUID(txCtx, req.UUID, update); err != nil {
				return err
			}
		}
		if len(req.Items) > 0 {
			items, subs, err := p.buildItems(txCtx, req.Items)
			if err != nil {
				return err
			}
			return p.presetStore.ReplacePresetItems(txCtx, data.ID, items, subs)
		}
		return nil
	})
}

func (p *presetImpl) Delete(ctx context.Context, req *core.DeleteReq) error {
	data, err := p.presetStore.GetPresetByUUID(ctx, req.UUID)
	if err != nil {
		return err
	}
	return p.presetStore.DeactivatePreset(ctx, data.ID)
}

func (p *presetImpl) Reconcile(ctx context.Context, req *core.ReconcileReq) (*core.ReconcileResp, error) {
	currentUser := auth.GetCurrentUser(ctx)
	if currentUser == nil {
		return nil, code.UnLogin
	}

	header, err := p.presetStore.GetPresetByUUID(ctx, req.PresetUUID)
	if err != nil {
		return nil, err
	}
	def, err := p.presetStore.GetPresetDefinition(ctx, header.ID)
	if err != nil {
		return nil, err
	}

	scannedIDs := make([]int64, 0, len(req.ScannedAssetUUIDs))
	if len(req.ScannedAssetUUIDs) > 0 {
		mapped := p.presetStore.UUID2ID(ctx, &model.Asset{}, req.ScannedAssetUUIDs...)
		for _, u := range req.ScannedAssetUUIDs {
			if id, ok := mapped[u]; ok {
				scannedIDs = append(scannedIDs, id)
			}
		}
	}

	statusMap, err := p.substitutionStatuses(ctx, def)
	if err != nil {
		return nil, err
	}

	result := reconcile(def.Items, scannedIDs, statusMap)

	checkout := &model.PresetCheckout{
		PresetID:          header.ID,
		UserID:            currentUser.ID,
		Status:            model.PresetCheckoutPending,
		CompletionPercent: result.CompletionPercent,
		ExpectedReturnAt:  req.ExpectedReturnAt,
	}
	items := make([]*model.PresetCheckoutItem, 0, len(result.Items))
	for _, decision := range result.Items {
		items = append(items, &model.PresetCheckoutItem{
			PresetItemID: decision.PresetItemID,
			AssetID:      decision.AssetID,
			IsSubstitute: decision.IsSubstitute,
			Status:       decision.Status,
		})
	}

	// 出库单头与全部行必须一起落库
	if err := p.presetStore.CreateCheckout(ctx, checkout, items); err != nil {
		logger.Errorf(ctx, "CreateCheckout preset %s err: %+v", req.PresetUUID, err)
		return nil, code.TxAbortedErr.WithErr(err)
	}

	detail, err := p.checkoutDetail(ctx, checkout, items)
	if err != nil {
		return nil, err
	}
	p.broadcast(ctx, "preset.reconciled", checkout.UUID)

	return &core.ReconcileResp{
		PresetCheckout:  detail,
		Recommendations: p.recommendations(ctx, result),
	}, nil
}

// substitutionStatuses 取全部替代资产的当前状态，供建议列表筛选
func (p *presetImpl) substitutionStatuses(ctx context.Context, def *repo.PresetDefinition) (map[int64]model.AssetStatus, error) {
	ids := make([]int64, 0, 16)
	for _, item := range def.Items {
		for _, sub := range item.Substitutions {
			ids = append(ids, sub.AssetID)
		}
	}
	statusMap := make(map[int64]model.AssetStatus, len(ids))
	if len(ids) == 0 {
		return statusMap, nil
	}

	assets, err := p.assetStore.GetAssetsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, asset := range assets {
		statusMap[asset.ID] = asset.Status
	}
	return statusMap, nil
}

func (p *presetImpl) recommendations(ctx context.Context, result *ReconcileResult) *core.Recommendations {
	rec := &core.Recommendations{
		ReadyToProcess:         result.ReadyToProcess,
		MissingRequiredItems:   result.MissingRequiredItems,
		AvailableSubstitutions: make([]*core.SubstitutionOption, 0, len(result.AvailableSubstitutions)),
	}
	if len(result.AvailableSubstitutions) == 0 {
		return rec
	}

	itemIDs := make([]int64, 0, len(result.AvailableSubstitutions))
	assetIDs := make([]int64, 0, 16)
	for itemID, subIDs := range result.AvailableSubstitutions {
		itemIDs = append(itemIDs, itemID)
		assetIDs = append(assetIDs, subIDs...)
	}
	itemUUIDs := p.presetStore.ID2UUID(ctx, &model.PresetItem{}, itemIDs...)
	assetUUIDs := p.presetStore.ID2UUID(ctx, &model.Asset{}, assetIDs...)

	// 按条目声明顺序输出
	for _, decision := range result.Items {
		subIDs, ok := result.AvailableSubstitutions[decision.PresetItemID]
		if !ok {
			continue
		}
		option := &core.SubstitutionOption{
			PresetItemUUID: itemUUIDs[decision.PresetItemID],
			AssetUUIDs:     make([]uuid.UUID, 0, len(subIDs)),
		}
		for _, id := range subIDs {
			option.AssetUUIDs = append(option.AssetUUIDs, assetUUIDs[id])
		}
		rec.AvailableSubstitutions = append(rec.AvailableSubstitutions, option)
	}
	return rec
}

func (p *presetImpl) ProcessCheckout(ctx context.Context, req *core.ProcessReq) error {
	header, err := p.presetStore.GetCheckoutByUUID(ctx, req.UUID)
	if err != nil {
		return err
	}
	items, err := p.presetStore.GetCheckoutItems(ctx, header.ID)
	if err != nil {
		return err
	}

	err = p.presetStore.ExecTx(ctx, func(txCtx context.Context) error {
		rows, err := p.presetStore.TransitCheckout(txCtx, header.ID,
			[]model.PresetCheckoutStatus{model.PresetCheckoutPending},
			map[string]any{"status": model.PresetCheckoutProcessed})
		if err != nil {
			return err
		}
		if rows == 0 {
			return code.PresetCheckoutStateErr
		}

		now := time.Now()
		for _, item := range items {
			if item.AssetID == nil {
				continue
			}
			if item.Status != model.CheckoutItemAssigned && item.Status != model.CheckoutItemSubstituted {
				continue
			}

			flipped, err := p.assetStore.UpdateAssetStatus(txCtx, *item.AssetID, model.AssetAvailable, model.AssetCheckedOut)
			if err != nil {
				return err
			}
			if flipped == 0 {
				return code.AssetNotAvailableErr
			}

			if err := p.txStore.CreateTransaction(txCtx, &model.AssetTransaction{
				AssetID:          *item.AssetID,
				UserID:           header.UserID,
				Status:           model.TransactionActive,
				CheckedOutAt:     now,
				ExpectedReturnAt: header.ExpectedReturnAt,
				PresetCheckoutID: &header.ID,
			}); err != nil {
				return err
			}
			if err := p.presetStore.UpdateCheckoutItem(txCtx, item.ID,
				map[string]any{"status": model.CheckoutItemCheckedOut}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	p.broadcast(ctx, "preset.processed", header.UUID)
	return nil
}

func (p *presetImpl) ReturnCheckout(ctx context.Context, req *core.ReturnReq) error {
	header, err := p.presetStore.GetCheckoutByUUID(ctx, req.UUID)
	if err != nil {
		return err
	}

	err = p.presetStore.ExecTx(ctx, func(txCtx context.Context) error {
		rows, err := p.presetStore.TransitCheckout(txCtx, header.ID,
			[]model.PresetCheckoutStatus{model.PresetCheckoutProcessed},
			map[string]any{"status": model.PresetCheckoutReturned})
		if err != nil {
			return err
		}
		if rows == 0 {
			return code.PresetCheckoutStateErr
		}

		open := make([]*model.AssetTransaction, 0, 8)
		if err := p.presetStore.DBWithContext(txCtx).
			Where("preset_checkout_id = ? AND status IN ?", header.ID,
				[]model.TransactionStatus{model.TransactionActive, model.TransactionOverdue}).
			Find(&open).Error; err != nil {
			return code.QueryRecordErr.WithErr(err)
		}

		returnedAt := time.Now()
		for _, tx := range open {
			if err := p.txStore.CompleteTransaction(txCtx, tx.ID, returnedAt); err != nil {
				return err
			}
			if err := p.assetStore.SetAssetStatus(txCtx, tx.AssetID, model.AssetAvailable); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	p.broadcast(ctx, "preset.returned", header.UUID)
	return nil
}

func (p *presetImpl) CancelCheckout(ctx context.Context, req *core.CancelReq) error {
	header, err := p.presetStore.GetCheckoutByUUID(ctx, req.UUID)
	if err != nil {
		return err
	}

	rows, err := p.presetStore.TransitCheckout(ctx, header.ID,
		[]model.PresetCheckoutStatus{model.PresetCheckoutPending},
		map[string]any{"status": model.PresetCheckoutCancelled})
	if err != nil {
		return err
	}
	if rows == 0 {
		return code.PresetCheckoutStateErr
	}

	p.broadcast(ctx, "preset.cancelled", header.UUID)
	return nil
}

func (p *presetImpl) QueryCheckouts(ctx context.Context, req *core.CheckoutQueryReq) (*common.PageResp[[]*core.CheckoutResponse], error) {
	q := repo.CheckoutQuery{}
	if req.PresetUUID != nil && !req.PresetUUID.IsNil() {
		id := p.presetStore.UUID2ID(ctx, &model.Preset{}, *req.PresetUUID)[*req.PresetUUID]
		if id == 0 {
			return nil, code.PresetNotFound
		}
		q.PresetID = &id
	}
	if req.UserID != nil && *req.UserID != "" {
		q.UserID = req.UserID
	}
	if req.Status != nil && *req.Status != "" {
		q.Status = req.Status
	}

	req.Normalize()
	q.Offset = req.Offest()
	q.Limit = req.PageSize

	list, total, err := p.presetStore.ListCheckouts(ctx, q)
	if err != nil {
		return nil, err
	}

	presetIDs := make([]int64, 0, len(list))
	for _, item := range list {
		presetIDs = append(presetIDs, item.PresetID)
	}
	presetUUIDs := p.presetStore.ID2UUID(ctx, &model.Preset{}, presetIDs...)

	resp := make([]*core.CheckoutResponse, 0, len(list))
	for _, item := range list {
		resp = append(resp, checkoutResponse(item, presetUUIDs[item.PresetID]))
	}
	return &common.PageResp[[]*core.CheckoutResponse]{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     resp,
	}, nil
}

func (p *presetImpl) GetCheckout(ctx context.Context, req *core.CheckoutGetReq) (*core.CheckoutDetailResponse, error) {
	header, err := p.presetStore.GetCheckoutByUUID(ctx, req.UUID)
	if err != nil {
		return nil, err
	}
	items, err := p.presetStore.GetCheckoutItems(ctx, header.ID)
	if err != nil {
		return nil, err
	}
	return p.checkoutDetail(ctx, header, items)
}

func (p *presetImpl) checkoutDetail(ctx context.Context, header *model.PresetCheckout, items []*model.PresetCheckoutItem) (*core.CheckoutDetailResponse, error) {
	presetUUID := p.presetStore.ID2UUID(ctx, &model.Preset{}, header.PresetID)[header.PresetID]

	itemIDs := make([]int64, 0, len(items))
	assetIDs := make([]int64, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.PresetItemID)
		if item.AssetID != nil {
			assetIDs = append(assetIDs, *item.AssetID)
		}
	}
	itemUUIDs := p.presetStore.ID2UUID(ctx, &model.PresetItem{}, itemIDs...)
	assetUUIDs := p.presetStore.ID2UUID(ctx, &model.Asset{}, assetIDs...)

	resp := &core.CheckoutDetailResponse{
		CheckoutResponse: *checkoutResponse(header, presetUUID),
		Items:            make([]*core.CheckoutItemResponse, 0, len(items)),
	}
	for _, item := range items {
		itemResp := &core.CheckoutItemResponse{
			UUID:           item.UUID,
			PresetItemUUID: itemUUIDs[item.PresetItemID],
			IsSubstitute:   item.IsSubstitute,
			Status:         item.Status,
		}
		if item.AssetID != nil {
			if u, ok := assetUUIDs[*item.AssetID]; ok {
				itemResp.AssetUUID = &u
			}
		}
		resp.Items = append(resp.Items, itemResp)
	}
	return resp, nil
}

func (p *presetImpl) broadcast(ctx context.Context, event string, id uuid.UUID) {
	if err := p.msgCenter.Broadcast(ctx, &notify.SendMsg{
		Channel: notify.PresetAction,
		Event:   event,
		Data:    map[string]any{"uuid": id},
	}); err != nil {
		logger.Warnf(ctx, "broadcast %s err: %+v", event, err)
	}
}

func presetResponse(data *model.Preset, itemCount int) *core.PresetResponse {
	return &core.PresetResponse{
		UUID:        data.UUID,
		Name:        data.Name,
		Description: data.Description,
		CreatedBy:   data.CreatedBy,
		ItemCount:   itemCount,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func checkoutResponse(data *model.PresetCheckout, presetUUID uuid.UUID) *core.CheckoutResponse {
	return &core.CheckoutResponse{
		UUID:              data.UUID,
		PresetUUID:        presetUUID,
		UserID:            data.UserID,
		Status:            data.Status,
		CompletionPercent: data.CompletionPercent,
		ExpectedReturnAt:  data.ExpectedReturnAt,
		CreatedAt:         data.CreatedAt,
	}
}
