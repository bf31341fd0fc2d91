package asset

import (
	// 外部依赖
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	// 内部引用
	code "github.com/warehub/warehub/service/pkg/common/code"
	model "github.com/warehub/warehub/service/pkg/model"
	repo "github.com/warehub/warehub/service/pkg/repo"
)

// fakeAssetRepo 内存版编号存储，只实现分配器用到的两个查询
type fakeAssetRepo struct {
	repo.AssetRepo

	numbers map[string]struct{}
}

func newFakeAssetRepo(numbers ...string) *fakeAssetRepo {
	f := &fakeAssetRepo{numbers: make(map[string]struct{}, len(numbers))}
	for _, n := range numbers {
		f.numbers[n] = struct{}{}
	}
	return f
}

func (f *fakeAssetRepo) MaxAssetNumber(_ context.Context, prefix string) (string, error) {
	matched := make([]string, 0, len(f.numbers))
	for n := range f.numbers {
		if len(n) > len(prefix) && n[:len(prefix)] == prefix {
			matched = append(matched, n)
		}
	}
	if len(matched) == 0 {
		return "", nil
	}
	sort.Strings(matched)
	return matched[len(matched)-1], nil
}

func (f *fakeAssetRepo) AssetNumberExists(_ context.Context, number string) (bool, error) {
	_, ok := f.numbers[number]
	return ok, nil
}

func TestAllocatorStartsAtOne(t *testing.T) {
	alloc := newAllocator(newFakeAssetRepo())

	number, err := alloc.Next(context.Background(), "ACME", model.CategoryCamera)
	require.NoError(t, err)
	assert.Equal(t, "ACME-CAM-0001", number)
	assert.True(t, ValidNumber(number))
}

func TestAllocatorSequenceIsGapFree(t *testing.T) {
	store := newFakeAssetRepo()
	alloc := newAllocator(store)

	for i := 1; i <= 25; i++ {
		number, err := alloc.Next(context.Background(), "ACME", model.CategoryLens)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("ACME-LEN-%04d", i), number)
		assert.True(t, ValidNumber(number))
		store.numbers[number] = struct{}{}
	}
}

func TestAllocatorIsolatesPrefixes(t *testing.T) {
	store := newFakeAssetRepo("ACME-CAM-0007", "OTHER-CAM-0042")
	alloc := newAllocator(store)

	number, err := alloc.Next(context.Background(), "ACME", model.CategoryCamera)
	require.NoError(t, err)
	assert.Equal(t, "ACME-CAM-0008", number)
}

func TestAllocatorSkipsOccupiedNumbers(t *testing.T) {
	// 历史数据里混入无法解析的编号时从 0001 起逐个探测，跳过已占用的
	store := newFakeAssetRepo("ACME-TRI-0001", "ACME-TRI-0002", "ACME-TRI-LEGACY")
	alloc := newAllocator(store)

	number, err := alloc.Next(context.Background(), "ACME", model.CategoryTripod)
	require.NoError(t, err)
	assert.Equal(t, "ACME-TRI-0003", number)
}

func TestAllocatorExhausted(t *testing.T) {
	store := newFakeAssetRepo("ACME-DRN-9999")
	alloc := newAllocator(store)

	_, err := alloc.Next(context.Background(), "ACME", model.CategoryDrone)
	require.Error(t, err)
	assert.True(t, isCode(err, code.AssetNumberExhaustedErr))
}

func TestAllocatorUnknownCategory(t *testing.T) {
	alloc := newAllocator(newFakeAssetRepo())

	_, err := alloc.Next(context.Background(), "ACME", model.AssetCategory("FURNITURE"))
	require.Error(t, err)
	assert.True(t, isCode(err, code.AssetCategoryErr))
}

func TestValidNumber(t *testing.T) {
	valid := []string{"AB-CAM-0001", "ACME2-LEN-9999", "A1B2C3D4E5-OTH-0100"}
	for _, n := range valid {
		assert.True(t, ValidNumber(n), n)
	}

	invalid := []string{
		"",
		"A-CAM-0001",            // 客户编码过短
		"TOOLONGCODE1-CAM-0001", // 客户编码过长
		"acme-CAM-0001",         // 小写
		"ACME-CAMERA-0001",      // 类目编码不是 3 位
		"ACME-CAM-001",          // 序号不足 4 位
		"ACME-CAM-00012",        // 序号超过 4 位
		"ACME-CAM_0001",
	}
	for _, n := range invalid {
		assert.False(t, ValidNumber(n), n)
	}
}
