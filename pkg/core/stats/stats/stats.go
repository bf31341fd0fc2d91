package stats

import (
	// 外部依赖
	"context"
	"time"

	// 内部引用
	code "github.com/warehub/warehub/service/pkg/common/code"
	core "github.com/warehub/warehub/service/pkg/core/stats"
	model "github.com/warehub/warehub/service/pkg/model"
	repo "github.com/warehub/warehub/service/pkg/repo"
	repoAsset "github.com/warehub/warehub/service/pkg/repo/asset"
	repoStats "github.com/warehub/warehub/service/pkg/repo/stats"
)

type statsImpl struct {
	store      repo.StatsRepo
	assetStore repo.AssetRepo
}

func New() core.Service {
	return &statsImpl{
		store:      repoStats.NewStatsRepo(),
		assetStore: repoAsset.NewAssetRepo(),
	}
}

func (s *statsImpl) Dashboard(ctx context.Context, req *core.DashboardReq) (*core.DashboardResp, error) {
	var clientID *int64
	if req.ClientUUID != nil && !req.ClientUUID.IsNil() {
		id := s.store.UUID2ID(ctx, &model.Client{}, *req.ClientUUID)[*req.ClientUUID]
		if id == 0 {
			return nil, code.ClientNotFound
		}
		clientID = &id
	}

	byStatus, err := s.store.CountAssetsByStatus(ctx, clientID)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.store.CountAssetsByCategory(ctx, clientID)
	if err != nil {
		return nil, err
	}
	totalValue, err := s.store.SumAssetValue(ctx, clientID)
	if err != nil {
		return nil, err
	}
	overdueTx, err := s.store.CountOverdueTransactions(ctx)
	if err != nil {
		return nil, err
	}
	overdueMaint, err := s.store.CountOverdueMaintenance(ctx)
	if err != nil {
		return nil, err
	}

	resp := &core.DashboardResp{
		ByStatus:           make(map[model.AssetStatus]int64, len(byStatus)),
		ByCategory:         make(map[model.AssetCategory]int64, len(byCategory)),
		TotalValue:         totalValue,
		OverdueCheckouts:   overdueTx,
		OverdueMaintenance: overdueMaint,
	}
	for _, row := range byStatus {
		resp.ByStatus[row.Status] = row.Count
		resp.TotalAssets += row.Count
	}
	for _, row := range byCategory {
		resp.ByCategory[row.Category] = row.Count
	}
	return resp, nil
}

func (s *statsImpl) Usage(ctx context.Context, req *core.UsageReq) (*core.UsageResp, error) {
	days := req.Days
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	daily, err := s.store.CheckoutVolumeByDay(ctx, since)
	if err != nil {
		return nil, err
	}
	top, err := s.store.TopAssetsByCheckout(ctx, since, req.Top)
	if err != nil {
		return nil, err
	}

	resp := &core.UsageResp{
		Since:       since,
		DailyVolume: daily,
		TopAssets:   make([]*core.TopAsset, 0, len(top)),
	}
	if len(top) == 0 {
		return resp, nil
	}

	ids := make([]int64, 0, len(top))
	for _, row := range top {
		ids = append(ids, row.AssetID)
	}
	assets, err := s.assetStore.GetAssetsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*model.Asset, len(assets))
	for _, asset := range assets {
		byID[asset.ID] = asset
	}

	for _, row := range top {
		asset, ok := byID[row.AssetID]
		if !ok {
			continue
		}
		resp.TopAssets = append(resp.TopAssets, &core.TopAsset{
			AssetUUID:     asset.UUID,
			Name:          asset.Name,
			AssetNumber:   asset.AssetNumber,
			CheckoutCount: row.CheckoutCount,
		})
	}
	return resp, nil
}
