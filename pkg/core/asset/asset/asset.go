package asset

import (
	// 外部依赖
	"context"
	"errors"
	"strings"

	datatypes "gorm.io/datatypes"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
	code "github.com/warehub/warehub/service/pkg/common/code"
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	core "github.com/warehub/warehub/service/pkg/core/asset"
	notify "github.com/warehub/warehub/service/pkg/core/notify"
	events "github.com/warehub/warehub/service/pkg/core/notify/events"
	logger "github.com/warehub/warehub/service/pkg/middleware/logger"
	model "github.com/warehub/warehub/service/pkg/model"
	repo "github.com/warehub/warehub/service/pkg/repo"
	repoAsset "github.com/warehub/warehub/service/pkg/repo/asset"
	repoClient "github.com/warehub/warehub/service/pkg/repo/client"
	repoTransaction "github.com/warehub/warehub/service/pkg/repo/transaction"
)

// insertRetry 并发分配撞号时的插入重试次数
const insertRetry = 3

type assetImpl struct {
	assetStore  repo.AssetRepo
	clientStore repo.ClientRepo
	txStore     repo.TransactionRepo
	alloc       *allocator
	msgCenter   notify.MsgCenter
}

func New() core.Service {
	store := repoAsset.NewAssetRepo()
	return &assetImpl{
		assetStore:  store,
		clientStore: repoClient.NewClientRepo(),
		txStore:     repoTransaction.NewTransactionRepo(),
		alloc:       newAllocator(store),
		msgCenter:   events.NewEvents(),
	}
}

func (a *assetImpl) Insert(ctx context.Context, req *core.InsertReq) (*core.InsertResp, error) {
	client, err := a.clientStore.GetClientByUUID(ctx, req.ClientUUID)
	if err != nil {
		return nil, err
	}
	if _, ok := req.Category.TypeCode(); !ok {
		return nil, code.AssetCategoryErr.WithMsg(string(req.Category))
	}

	var locationID *int64
	if req.LocationUUID != nil && !req.LocationUUID.IsNil() {
		id := a.assetStore.UUID2ID(ctx, &model.Location{}, *req.LocationUUID)[*req.LocationUUID]
		if id == 0 {
			return nil, code.RegistryNotFound
		}
		locationID = &id
	}

	data := &model.Asset{
		Name:          strings.TrimSpace(req.Name),
		Category:      req.Category,
		ClientID:      client.ID,
		Status:        model.AssetAvailable,
		Condition:     req.Condition,
		SerialNumber:  req.SerialNumber,
		LocationID:    locationID,
		Manufacturer:  req.Manufacturer,
		ModelName:     req.ModelName,
		PurchasePrice: req.PurchasePrice,
		CurrentValue:  req.CurrentValue,
		Tags:          datatypes.NewJSONSlice(req.Tags),
		Notes:         req.Notes,
	}

	// 显式指定编号时只做格式与占用校验，不再自动分配
	if req.AssetNumber != nil && *req.AssetNumber != "" {
		number := strings.ToUpper(strings.TrimSpace(*req.AssetNumber))
		if !ValidNumber(number) {
			return nil, code.AssetNumberInvalidErr.WithMsg(number)
		}
		data.AssetNumber = number
		if err := a.assetStore.CreateAsset(ctx, data); err != nil {
			return nil, err
		}
		a.broadcast(ctx, "asset.created", data)
		return &core.InsertResp{UUID: data.UUID, AssetNumber: data.AssetNumber}, nil
	}

	// 自动分配：编号计算与插入在同一事务内完成，
	// 并发撞号触发唯一冲突时整体重试
	var lastErr error
	for i := 0; i < insertRetry; i++ {
		lastErr = a.assetStore.ExecTx(ctx, func(txCtx context.Context) error {
			number, err := a.alloc.Next(txCtx, client.Code, req.Category)
			if err != nil {
				return err
			}
			data.AssetNumber = number
			return a.assetStore.CreateAsset(txCtx, data)
		})
		if lastErr == nil {
			a.broadcast(ctx, "asset.created", data)
			return &core.InsertResp{UUID: data.UUID, AssetNumber: data.AssetNumber}, nil
		}
		if !isCode(lastErr, code.AssetNumberConflictErr) {
			return nil, lastErr
		}
		logger.Warnf(ctx, "asset number conflict, retrying: %s", data.AssetNumber)
	}
	return nil, lastErr
}

func (a *assetImpl) Query(ctx context.Context, req *core.QueryReq) (*common.PageResp[[]*core.AssetResponse], error) {
	q := repo.AssetQuery{}

	if req.ClientUUID != nil && !req.ClientUUID.IsNil() {
		id := a.assetStore.UUID2ID(ctx, &model.Client{}, *req.ClientUUID)[*req.ClientUUID]
		if id == 0 {
			return nil, code.ClientNotFound
		}
		q.ClientID = &id
	}
	if req.LocationUUID != nil && !req.LocationUUID.IsNil() {
		id := a.assetStore.UUID2ID(ctx, &model.Location{}, *req.LocationUUID)[*req.LocationUUID]
		if id == 0 {
			return nil, code.RegistryNotFound
		}
		q.LocationID = &id
	}
	if req.Category != nil && *req.Category != "" {
		q.Category = req.Category
	}
	if req.Status != nil && *req.Status != "" {
		q.Status = req.Status
	}
	if req.Name != nil && *req.Name != "" {
		q.NameLike = req.Name
	}
	if req.SerialNumber != nil && *req.SerialNumber != "" {
		q.SerialLike = req.SerialNumber
	}
	if req.CreatedDate != nil {
		q.OrderBy = "created_at " + string(*req.CreatedDate)
	} else {
		q.OrderBy = "id desc"
	}

	req.Normalize()
	q.Offset = req.Offest()
	q.Limit = req.PageSize

	list, total, err := a.assetStore.ListAssets(ctx, q)
	if err != nil {
		return nil, err
	}

	resp := make([]*core.AssetResponse, 0, len(list))
	clientIDs := make([]int64, 0, len(list))
	locationIDs := make([]int64, 0, len(list))
	for _, item := range list {
		clientIDs = append(clientIDs, item.ClientID)
		if item.LocationID != nil {
			locationIDs = append(locationIDs, *item.LocationID)
		}
	}
	clientUUIDs := a.assetStore.ID2UUID(ctx, &model.Client{}, clientIDs...)
	locationUUIDs := a.assetStore.ID2UUID(ctx, &model.Location{}, locationIDs...)

	for _, item := range list {
		resp = append(resp, assetResponse(item, clientUUIDs, locationUUIDs))
	}
	return &common.PageResp[[]*core.AssetResponse]{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     resp,
	}, nil
}

func (a *assetImpl) Get(ctx context.Context, req *core.GetReq) (*core.AssetResponse, error) {
	data, err := a.assetStore.GetAssetByUUID(ctx, req.UUID)
	if err != nil {
		return nil, err
	}

	clientUUIDs := a.assetStore.ID2UUID(ctx, &model.Client{}, data.ClientID)
	locationUUIDs := map[int64]uuid.UUID{}
	if data.LocationID != nil {
		locationUUIDs = a.assetStore.ID2UUID(ctx, &model.Location{}, *data.LocationID)
	}
	return assetResponse(data, clientUUIDs, locationUUIDs), nil
}

func (a *assetImpl) Update(ctx context.Context, req *core.UpdateReq) error {
	data := map[string]any{}
	if req.Name != nil && *req.Name != "" {
		data["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Status != nil && *req.Status != "" {
		data["status"] = *req.Status
	}
	if req.Condition != nil {
		data["condition"] = *req.Condition
	}
	if req.SerialNumber != nil {
		data["serial_number"] = *req.SerialNumber
	}
	if req.LocationUUID != nil {
		if req.LocationUUID.IsNil() {
			data["location_id"] = nil
		} else {
			id := a.assetStore.UUID2ID(ctx, &model.Location{}, *req.LocationUUID)[*req.LocationUUID]
			if id == 0 {
				return code.RegistryNotFound
			}
			data["location_id"] = id
		}
	}
	if req.Manufacturer != nil {
		data["manufacturer"] = *req.Manufacturer
	}
	if req.ModelName != nil {
		data["model_name"] = *req.ModelName
	}
	if req.PurchasePrice != nil {
		data["purchase_price"] = *req.PurchasePrice
	}
	if req.CurrentValue != nil {
		data["current_value"] = *req.CurrentValue
	}
	if req.Tags != nil {
		data["tags"] = datatypes.NewJSONSlice(req.Tags)
	}
	if req.Notes != nil {
		data["notes"] = *req.Notes
	}
	if len(data) == 0 {
		return nil
	}

	if err := a.assetStore.UpdateAssetByUUID(ctx, req.UUID, data); err != nil {
		return err
	}
	a.broadcastUUID(ctx, "asset.updated", req.UUID)
	return nil
}

func (a *assetImpl) Retire(ctx context.Context, req *core.RetireReq) error {
	data, err := a.assetStore.GetAssetByUUID(ctx, req.UUID)
	if err != nil {
		return err
	}

	open, err := a.txStore.CountOpenByAssetID(ctx, data.ID)
	if err != nil {
		return err
	}
	if open > 0 {
		return code.AssetReferencedErr
	}

	if err := a.assetStore.SetAssetStatus(ctx, data.ID, model.AssetRetired); err != nil {
		return err
	}
	a.broadcast(ctx, "asset.retired", data)
	return nil
}

func (a *assetImpl) AllocateNumber(ctx context.Context, req *core.AllocateReq) (*core.AllocateResp, error) {
	client, err := a.clientStore.GetClientByUUID(ctx, req.ClientUUID)
	if err != nil {
		return nil, err
	}

	number, err := a.alloc.Next(ctx, client.Code, req.Category)
	if err != nil {
		return nil, err
	}
	return &core.AllocateResp{AssetNumber: number}, nil
}

// RepairNumbers 给缺失编号的资产补齐编号。
// 逐条分配并立即落库，单条失败不影响其余资产。
func (a *assetImpl) RepairNumbers(ctx context.Context, req *core.RepairReq) (*core.RepairResp, error) {
	var clientID *int64
	if req.ClientUUID != nil && !req.ClientUUID.IsNil() {
		id := a.assetStore.UUID2ID(ctx, &model.Client{}, *req.ClientUUID)[*req.ClientUUID]
		if id == 0 {
			return nil, code.ClientNotFound
		}
		clientID = &id
	}

	list, err := a.assetStore.ListUnnumberedAssets(ctx, clientID)
	if err != nil {
		return nil, err
	}

	resp := &core.RepairResp{Numbers: make([]string, 0, len(list))}
	clientCodes := map[int64]string{}
	for _, item := range list {
		clientCode, ok := clientCodes[item.ClientID]
		if !ok {
			client, err := a.clientStore.GetClientByID(ctx, item.ClientID)
			if err != nil {
				logger.Errorf(ctx, "repair: load client %d err: %+v", item.ClientID, err)
				continue
			}
			clientCode = client.Code
			clientCodes[item.ClientID] = clientCode
		}

		err := a.assetStore.ExecTx(ctx, func(txCtx context.Context) error {
			number, err := a.alloc.Next(txCtx, clientCode, item.Category)
			if err != nil {
				return err
			}
			if err := a.assetStore.UpdateAssetByUUID(txCtx, item.UUID, map[string]any{"asset_number": number}); err != nil {
				return err
			}
			item.AssetNumber = number
			return nil
		})
		if err != nil {
			logger.Errorf(ctx, "repair asset %s err: %+v", item.UUID, err)
			continue
		}
		resp.Repaired++
		resp.Numbers = append(resp.Numbers, item.AssetNumber)
	}
	return resp, nil
}

func (a *assetImpl) broadcast(ctx context.Context, event string, data *model.Asset) {
	if err := a.msgCenter.Broadcast(ctx, &notify.SendMsg{
		Channel: notify.AssetAction,
		Event:   event,
		Data: map[string]any{
			"uuid":         data.UUID,
			"asset_number": data.AssetNumber,
			"status":       data.Status,
		},
	}); err != nil {
		logger.Warnf(ctx, "broadcast %s err: %+v", event, err)
	}
}

func (a *assetImpl) broadcastUUID(ctx context.Context, event string, id uuid.UUID) {
	if err := a.msgCenter.Broadcast(ctx, &notify.SendMsg{
		Channel: notify.AssetAction,
		Event:   event,
		Data:    map[string]any{"uuid": id},
	}); err != nil {
		logger.Warnf(ctx, "broadcast %s err: %+v", event, err)
	}
}

func isCode(err error, target *code.Code) bool {
	var c *code.Code
	return errors.As(err, &c) && c.Ret == target.Ret
}

func assetResponse(data *model.Asset, clientUUIDs, locationUUIDs map[int64]uuid.UUID) *core.AssetResponse {
	resp := &core.AssetResponse{
		UUID:          data.UUID,
		Name:          data.Name,
		Category:      data.Category,
		ClientUUID:    clientUUIDs[data.ClientID],
		Status:        data.Status,
		AssetNumber:   data.AssetNumber,
		Condition:     data.Condition,
		SerialNumber:  data.SerialNumber,
		Manufacturer:  data.Manufacturer,
		ModelName:     data.ModelName,
		PurchasePrice: data.PurchasePrice,
		CurrentValue:  data.CurrentValue,
		Tags:          data.Tags,
		Notes:         data.Notes,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.LocationID != nil {
		if u, ok := locationUUIDs[*data.LocationID]; ok {
			resp.LocationUUID = &u
		}
	}
	return resp
}
