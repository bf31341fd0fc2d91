package preset

import (
	// 外部依赖
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	// 内部引用
	model "github.com/warehub/warehub/service/pkg/model"
	repo "github.com/warehub/warehub/service/pkg/repo"
)

func pinnedItem(id, assetID int64, required bool, subs ...int64) *repo.PresetItemDefinition {
	def := &repo.PresetItemDefinition{
		Item: &model.PresetItem{
			AssetID:    &assetID,
			IsRequired: required,
		},
	}
	def.Item.ID = id
	for i, sub := range subs {
		def.Substitutions = append(def.Substitutions, &model.PresetItemSubstitution{
			PresetItemID: id,
			AssetID:      sub,
			Priority:     i,
		})
	}
	return def
}

func TestReconcileEmptyPreset(t *testing.T) {
	result := reconcile(nil, []int64{1, 2}, nil)

	assert.Equal(t, 0, result.CompletionPercent)
	assert.Equal(t, 0, result.MissingRequiredItems)
	assert.False(t, result.ReadyToProcess)
	assert.Empty(t, result.Items)
}

func TestReconcileAllPinnedAssetsScanned(t *testing.T) {
	items := []*repo.PresetItemDefinition{
		pinnedItem(1, 101, true),
		pinnedItem(2, 102, true),
		pinnedItem(3, 103, false),
	}

	result := reconcile(items, []int64{101, 102, 103}, nil)

	assert.Equal(t, 100, result.CompletionPercent)
	assert.Equal(t, 0, result.MissingRequiredItems)
	assert.True(t, result.ReadyToProcess)
	for _, decision := range result.Items {
		assert.Equal(t, model.CheckoutItemAssigned, decision.Status)
		assert.False(t, decision.IsSubstitute)
		require.NotNil(t, decision.AssetID)
	}
}

func TestReconcileSubstituteMatch(t *testing.T) {
	items := []*repo.PresetItemDefinition{
		pinnedItem(1, 101, true, 201, 202),
	}

	result := reconcile(items, []int64{202}, nil)

	require.Len(t, result.Items, 1)
	decision := result.Items[0]
	assert.Equal(t, model.CheckoutItemSubstituted, decision.Status)
	assert.True(t, decision.IsSubstitute)
	require.NotNil(t, decision.AssetID)
	assert.Equal(t, int64(202), *decision.AssetID)
	assert.Equal(t, 0, result.MissingRequiredItems)
}

func TestReconcileSubstitutesTriedInDeclaredOrder(t *testing.T) {
	items := []*repo.PresetItemDefinition{
		pinnedItem(1, 101, true, 201, 202),
	}

	result := reconcile(items, []int64{202, 201}, nil)

	require.NotNil(t, result.Items[0].AssetID)
	assert.Equal(t, int64(201), *result.Items[0].AssetID)
}

func TestReconcileRequiredItemUnavailable(t *testing.T) {
	items := []*repo.PresetItemDefinition{
		pinnedItem(1, 101, true, 201),
		pinnedItem(2, 102, false),
	}

	result := reconcile(items, nil, nil)

	assert.Equal(t, model.CheckoutItemUnavailable, result.Items[0].Status)
	assert.Equal(t, model.CheckoutItemSkipped, result.Items[1].Status)
	assert.Equal(t, 1, result.MissingRequiredItems)
	assert.Equal(t, 0, result.CompletionPercent)
	assert.False(t, result.ReadyToProcess)
}

// 必选条目钉死 A1 但只扫到替代 A2，可选条目 B1 未扫到：
// 条目一替代分配，条目二跳过，完成度 50%，无缺失必选项，不建议直接出库
func TestReconcileSubstituteOnlyHalfComplete(t *testing.T) {
	a1, a2, b1 := int64(11), int64(12), int64(21)
	items := []*repo.PresetItemDefinition{
		pinnedItem(1, a1, true, a2),
		pinnedItem(2, b1, false),
	}

	result := reconcile(items, []int64{a2}, nil)

	require.Len(t, result.Items, 2)
	assert.Equal(t, model.CheckoutItemSubstituted, result.Items[0].Status)
	assert.True(t, result.Items[0].IsSubstitute)
	require.NotNil(t, result.Items[0].AssetID)
	assert.Equal(t, a2, *result.Items[0].AssetID)

	assert.Equal(t, model.CheckoutItemSkipped, result.Items[1].Status)
	assert.Nil(t, result.Items[1].AssetID)

	assert.Equal(t, 50, result.CompletionPercent)
	assert.Equal(t, 0, result.MissingRequiredItems)
	assert.False(t, result.ReadyToProcess)
}

// 一个扫码资产同时是条目 A 的钉死资产和条目 B 的替代资产时，
// 按声明顺序先到先得，至多满足一个条目
func TestReconcileAssetSatisfiesAtMostOneItem(t *testing.T) {
	shared := int64(101)
	items := []*repo.PresetItemDefinition{
		pinnedItem(1, shared, true),
		pinnedItem(2, 102, true, shared),
	}

	result := reconcile(items, []int64{shared}, nil)

	assert.Equal(t, model.CheckoutItemAssigned, result.Items[0].Status)
	require.NotNil(t, result.Items[0].AssetID)
	assert.Equal(t, shared, *result.Items[0].AssetID)

	assert.Equal(t, model.CheckoutItemUnavailable, result.Items[1].Status)
	assert.Nil(t, result.Items[1].AssetID)
	assert.Equal(t, 1, result.MissingRequiredItems)
	assert.Equal(t, 50, result.CompletionPercent)
}

func TestReconcileCompletionRounding(t *testing.T) {
	// 3 项中分配 2 项 → round(66.67) = 67
	items := []*repo.PresetItemDefinition{
		pinnedItem(1, 101, true),
		pinnedItem(2, 102, true),
		pinnedItem(3, 103, true),
	}

	result := reconcile(items, []int64{101, 102}, nil)

	assert.Equal(t, 67, result.CompletionPercent)
	assert.False(t, result.ReadyToProcess)
}

func TestReconcileReadyThreshold(t *testing.T) {
	// 5 项中分配 4 项 → 80%，达到出库建议阈值
	items := []*repo.PresetItemDefinition{
		pinnedItem(1, 101, true),
		pinnedItem(2, 102, true),
		pinnedItem(3, 103, true),
		pinnedItem(4, 104, true),
		pinnedItem(5, 105, false),
	}

	result := reconcile(items, []int64{101, 102, 103, 104}, nil)

	assert.Equal(t, 80, result.CompletionPercent)
	assert.True(t, result.ReadyToProcess)
}

func TestReconcileAvailableSubstitutions(t *testing.T) {
	items := []*repo.PresetItemDefinition{
		pinnedItem(1, 101, true, 201, 202, 203),
		pinnedItem(2, 102, true, 204),
	}
	status := map[int64]model.AssetStatus{
		201: model.AssetCheckedOut,
		202: model.AssetAvailable,
		203: model.AssetAvailable,
		204: model.AssetInMaintenance,
	}

	result := reconcile(items, []int64{102}, status)

	// 条目一未分配，只列出当前可用的替代资产
	assert.Equal(t, []int64{202, 203}, result.AvailableSubstitutions[1])
	// 条目二已分配，不出现在建议中；其替代资产也不可用
	_, ok := result.AvailableSubstitutions[2]
	assert.False(t, ok)
}
