package client

import (
	// 外部依赖
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	// 内部引用
	code "github.com/warehub/warehub/service/pkg/common/code"
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	core "github.com/warehub/warehub/service/pkg/core/client"
	model "github.com/warehub/warehub/service/pkg/model"
	repo "github.com/warehub/warehub/service/pkg/repo"
)

type fakeClientRepo struct {
	repo.ClientRepo

	client      *model.Client
	deactivated bool
	deleted     bool
}

func (f *fakeClientRepo) CreateClient(_ context.Context, data *model.Client) error {
	data.ID = 1
	data.UUID = uuid.NewV4()
	f.client = data
	return nil
}

func (f *fakeClientRepo) GetClientByUUID(_ context.Context, id uuid.UUID) (*model.Client, error) {
	if f.client != nil && f.client.UUID == id {
		return f.client, nil
	}
	return nil, code.ClientNotFound
}

func (f *fakeClientRepo) DeactivateClient(_ context.Context, id uuid.UUID) error {
	if f.client == nil || f.client.UUID != id {
		return code.ClientNotFound
	}
	f.client.IsDeleted = 1
	f.deactivated = true
	return nil
}

func (f *fakeClientRepo) DeleteClient(_ context.Context, id uuid.UUID) error {
	if f.client == nil || f.client.UUID != id {
		return code.ClientNotFound
	}
	f.client = nil
	f.deleted = true
	return nil
}

type fakeAssetCounter struct {
	repo.AssetRepo

	count int64
}

func (f *fakeAssetCounter) CountAssets(context.Context, repo.AssetQuery) (int64, error) {
	return f.count, nil
}

func newTestService(assetCount int64) (core.Service, *fakeClientRepo) {
	clientStore := &fakeClientRepo{}
	svc := &clientImpl{
		clientStore: clientStore,
		assetStore:  &fakeAssetCounter{count: assetCount},
	}
	return svc, clientStore
}

func testClient() *model.Client {
	data := &model.Client{Name: "Acme Rentals", Code: "ACME"}
	data.ID = 1
	data.UUID = uuid.NewV4()
	return data
}

func TestInsertNormalizesCode(t *testing.T) {
	svc, clientStore := newTestService(0)

	resp, err := svc.Insert(context.Background(), &core.InsertReq{Name: "Acme Rentals", Code: " acme "})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "ACME", clientStore.client.Code)
}

func TestInsertRejectsBadCode(t *testing.T) {
	svc, _ := newTestService(0)

	_, err := svc.Insert(context.Background(), &core.InsertReq{Name: "Acme Rentals", Code: "a"})
	assert.ErrorIs(t, err, code.ClientCodeErr)
}

func TestDeleteReferencedClientDeactivates(t *testing.T) {
	svc, clientStore := newTestService(3)
	clientStore.client = testClient()

	require.NoError(t, svc.Delete(context.Background(), &core.DeleteReq{UUID: clientStore.client.UUID}))

	assert.True(t, clientStore.deactivated)
	assert.False(t, clientStore.deleted)
	assert.EqualValues(t, 1, clientStore.client.IsDeleted)
}

func TestDeleteUnreferencedClientRemoves(t *testing.T) {
	svc, clientStore := newTestService(0)
	clientStore.client = testClient()

	require.NoError(t, svc.Delete(context.Background(), &core.DeleteReq{UUID: clientStore.client.UUID}))

	assert.True(t, clientStore.deleted)
	assert.False(t, clientStore.deactivated)
}
