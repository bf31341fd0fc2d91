package transaction

import (
	// 外部依赖
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	// 内部引用
	code "github.com/warehub/warehub/service/pkg/common/code"
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	notify "github.com/warehub/warehub/service/pkg/core/notify"
	core "github.com/warehub/warehub/service/pkg/core/transaction"
	auth "github.com/warehub/warehub/service/pkg/middleware/auth"
	model "github.com/warehub/warehub/service/pkg/model"
	repo "github.com/warehub/warehub/service/pkg/repo"
)

type fakeAssetRepo struct {
	repo.AssetRepo

	assets map[int64]*model.Asset
}

func (f *fakeAssetRepo) GetAssetByUUID(_ context.Context, id uuid.UUID) (*model.Asset, error) {
	for _, asset := range f.assets {
		if asset.UUID == id {
			return asset, nil
		}
	}
	return nil, code.AssetNotFound
}

func (f *fakeAssetRepo) UpdateAssetStatus(_ context.Context, id int64, from, to model.AssetStatus) (int64, error) {
	asset, ok := f.assets[id]
	if !ok || asset.Status != from {
		return 0, nil
	}
	asset.Status = to
	return 1, nil
}

func (f *fakeAssetRepo) SetAssetStatus(_ context.Context, id int64, to model.AssetStatus) error {
	asset, ok := f.assets[id]
	if !ok {
		return code.AssetNotFound
	}
	asset.Status = to
	return nil
}

func (f *fakeAssetRepo) ID2UUID(_ context.Context, _ model.BaseDBModel, ids ...int64) map[int64]uuid.UUID {
	result := make(map[int64]uuid.UUID, len(ids))
	for _, id := range ids {
		if asset, ok := f.assets[id]; ok {
			result[id] = asset.UUID
		}
	}
	return result
}

type fakeTransactionRepo struct {
	repo.TransactionRepo

	nextID       int64
	transactions map[int64]*model.AssetTransaction
	assetStore   *fakeAssetRepo
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: map[int64]*model.AssetTransaction{}}
}

func (f *fakeTransactionRepo) ExecTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeTransactionRepo) CreateTransaction(_ context.Context, data *model.AssetTransaction) error {
	f.nextID++
	data.ID = f.nextID
	data.UUID = uuid.NewV4()
	f.transactions[data.ID] = data
	return nil
}

func (f *fakeTransactionRepo) GetTransactionByUUID(_ context.Context, id uuid.UUID) (*model.AssetTransaction, error) {
	for _, tx := range f.transactions {
		if tx.UUID == id {
			return tx, nil
		}
	}
	return nil, code.TransactionNotFound
}

func (f *fakeTransactionRepo) UUID2ID(_ context.Context, _ model.BaseDBModel, uuids ...uuid.UUID) map[uuid.UUID]int64 {
	result := make(map[uuid.UUID]int64, len(uuids))
	for _, id := range uuids {
		for _, asset := range f.assetStore.assets {
			if asset.UUID == id {
				result[id] = asset.ID
			}
		}
	}
	return result
}

func (f *fakeTransactionRepo) GetActiveByAssetID(_ context.Context, assetID int64) (*model.AssetTransaction, error) {
	for _, tx := range f.transactions {
		if tx.AssetID != assetID {
			continue
		}
		if tx.Status == model.TransactionActive || tx.Status == model.TransactionOverdue {
			return tx, nil
		}
	}
	return nil, nil
}

func (f *fakeTransactionRepo) CompleteTransaction(_ context.Context, id int64, returnedAt time.Time) error {
	tx, ok := f.transactions[id]
	if !ok || tx.Status == model.TransactionCompleted {
		return code.TransactionClosedErr
	}
	tx.Status = model.TransactionCompleted
	tx.ReturnedAt = &returnedAt
	return nil
}

type fakeMsgCenter struct {
	sent []*notify.SendMsg
}

func (f *fakeMsgCenter) Registry(context.Context, notify.Action, notify.HandleFunc) error { return nil }
func (f *fakeMsgCenter) Broadcast(_ context.Context, msg *notify.SendMsg) error {
	f.sent = append(f.sent, msg)
	return nil
}
func (f *fakeMsgCenter) Close(context.Context) error { return nil }

func newTestService(assets ...*model.Asset) (core.Service, *fakeAssetRepo, *fakeTransactionRepo, *fakeMsgCenter) {
	assetStore := &fakeAssetRepo{assets: map[int64]*model.Asset{}}
	for _, asset := range assets {
		assetStore.assets[asset.ID] = asset
	}
	txStore := newFakeTransactionRepo()
	txStore.assetStore = assetStore
	msgCenter := &fakeMsgCenter{}
	svc := &transactionImpl{txStore: txStore, assetStore: assetStore, msgCenter: msgCenter}
	return svc, assetStore, txStore, msgCenter
}

func testAsset(id int64, status model.AssetStatus) *model.Asset {
	asset := &model.Asset{
		Name:        "test camera",
		Category:    model.CategoryCamera,
		ClientID:    1,
		Status:      status,
		AssetNumber: "ACME-CAM-0001",
	}
	asset.ID = id
	asset.UUID = uuid.NewV4()
	return asset
}

func userCtx() context.Context {
	return auth.WithUser(context.Background(), &model.UserData{ID: "u-1", Name: "tester"})
}

func TestCheckoutFlipsAssetAndCreatesActiveTransaction(t *testing.T) {
	asset := testAsset(1, model.AssetAvailable)
	svc, assetStore, txStore, msgCenter := newTestService(asset)

	resp, err := svc.Checkout(userCtx(), &core.CheckoutReq{AssetUUID: asset.UUID})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, model.AssetCheckedOut, assetStore.assets[1].Status)
	require.Len(t, txStore.transactions, 1)
	created := txStore.transactions[1]
	assert.Equal(t, model.TransactionActive, created.Status)
	assert.Equal(t, "u-1", created.UserID)
	assert.Equal(t, resp.UUID, created.UUID)

	require.Len(t, msgCenter.sent, 1)
	assert.Equal(t, notify.TransactionAction, msgCenter.sent[0].Channel)
}

func TestCheckoutRejectsUnavailableAsset(t *testing.T) {
	asset := testAsset(1, model.AssetCheckedOut)
	svc, _, txStore, _ := newTestService(asset)

	_, err := svc.Checkout(userCtx(), &core.CheckoutReq{AssetUUID: asset.UUID})
	require.Error(t, err)

	var c *code.Code
	require.ErrorAs(t, err, &c)
	assert.Equal(t, code.AssetNotAvailableErr.Ret, c.Ret)
	assert.Empty(t, txStore.transactions)
}

func TestCheckoutRequiresLogin(t *testing.T) {
	asset := testAsset(1, model.AssetAvailable)
	svc, _, _, _ := newTestService(asset)

	_, err := svc.Checkout(context.Background(), &core.CheckoutReq{AssetUUID: asset.UUID})
	assert.ErrorIs(t, err, code.UnLogin)
}

func TestCheckinRestoresAsset(t *testing.T) {
	asset := testAsset(1, model.AssetAvailable)
	svc, assetStore, txStore, _ := newTestService(asset)

	resp, err := svc.Checkout(userCtx(), &core.CheckoutReq{AssetUUID: asset.UUID})
	require.NoError(t, err)

	require.NoError(t, svc.Checkin(userCtx(), &core.CheckinReq{UUID: resp.UUID}))

	assert.Equal(t, model.AssetAvailable, assetStore.assets[1].Status)
	completed := txStore.transactions[1]
	assert.Equal(t, model.TransactionCompleted, completed.Status)
	require.NotNil(t, completed.ReturnedAt)
}

func TestCheckinDamagedGoesToMaintenance(t *testing.T) {
	asset := testAsset(1, model.AssetAvailable)
	svc, assetStore, _, _ := newTestService(asset)

	resp, err := svc.Checkout(userCtx(), &core.CheckoutReq{AssetUUID: asset.UUID})
	require.NoError(t, err)

	require.NoError(t, svc.Checkin(userCtx(), &core.CheckinReq{UUID: resp.UUID, Damaged: true}))
	assert.Equal(t, model.AssetInMaintenance, assetStore.assets[1].Status)
}

func TestCheckinByAssetFindsActiveTransaction(t *testing.T) {
	asset := testAsset(1, model.AssetAvailable)
	svc, assetStore, txStore, _ := newTestService(asset)

	_, err := svc.Checkout(userCtx(), &core.CheckoutReq{AssetUUID: asset.UUID})
	require.NoError(t, err)

	require.NoError(t, svc.Checkin(userCtx(), &core.CheckinReq{AssetUUID: &asset.UUID}))

	assert.Equal(t, model.AssetAvailable, assetStore.assets[1].Status)
	assert.Equal(t, model.TransactionCompleted, txStore.transactions[1].Status)
}

func TestCheckinByAssetWithoutOpenTransaction(t *testing.T) {
	asset := testAsset(1, model.AssetAvailable)
	svc, _, _, _ := newTestService(asset)

	err := svc.Checkin(userCtx(), &core.CheckinReq{AssetUUID: &asset.UUID})
	assert.ErrorIs(t, err, code.AssetNotCheckedOutErr)
}

func TestCheckinTwiceFails(t *testing.T) {
	asset := testAsset(1, model.AssetAvailable)
	svc, _, _, _ := newTestService(asset)

	resp, err := svc.Checkout(userCtx(), &core.CheckoutReq{AssetUUID: asset.UUID})
	require.NoError(t, err)

	require.NoError(t, svc.Checkin(userCtx(), &core.CheckinReq{UUID: resp.UUID}))
	assert.ErrorIs(t, svc.Checkin(userCtx(), &core.CheckinReq{UUID: resp.UUID}), code.TransactionClosedErr)
}
