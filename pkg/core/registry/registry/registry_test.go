package registry

import (
	// 外部依赖
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	// 内部引用
	code "github.com/warehub/warehub/service/pkg/common/code"
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	core "github.com/warehub/warehub/service/pkg/core/registry"
	repo "github.com/warehub/warehub/service/pkg/repo"
)

type fakeRegistryRepo struct {
	repo.RegistryRepo

	references  int64
	deactivated bool
	deleted     bool
}

func (f *fakeRegistryRepo) CountReferences(context.Context, repo.RegistryKind, uuid.UUID) (int64, error) {
	return f.references, nil
}

func (f *fakeRegistryRepo) DeactivateEntry(context.Context, repo.RegistryKind, uuid.UUID) error {
	f.deactivated = true
	return nil
}

func (f *fakeRegistryRepo) DeleteEntry(context.Context, repo.RegistryKind, uuid.UUID) error {
	f.deleted = true
	return nil
}

func TestDeleteReferencedEntryDeactivates(t *testing.T) {
	store := &fakeRegistryRepo{references: 2}
	svc := &registryImpl{store: store}

	err := svc.Delete(context.Background(), &core.DeleteReq{
		Kind: repo.RegistryLocation,
		UUID: uuid.NewV4(),
	})
	require.NoError(t, err)

	assert.True(t, store.deactivated)
	assert.False(t, store.deleted)
}

func TestDeleteUnreferencedEntryRemoves(t *testing.T) {
	store := &fakeRegistryRepo{}
	svc := &registryImpl{store: store}

	err := svc.Delete(context.Background(), &core.DeleteReq{
		Kind: repo.RegistryDepartment,
		UUID: uuid.NewV4(),
	})
	require.NoError(t, err)

	assert.True(t, store.deleted)
	assert.False(t, store.deactivated)
}

func TestDeleteRejectsUnknownKind(t *testing.T) {
	svc := &registryImpl{store: &fakeRegistryRepo{}}

	err := svc.Delete(context.Background(), &core.DeleteReq{
		Kind: repo.RegistryKind("warehouse"),
		UUID: uuid.NewV4(),
	})
	require.Error(t, err)

	var c *code.Code
	require.ErrorAs(t, err, &c)
	assert.Equal(t, code.ParamErr.Ret, c.Ret)
}
