package asset

import (
	// 外部依赖
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	// 内部引用
	code "github.com/warehub/warehub/service/pkg/common/code"
	model "github.com/warehub/warehub/service/pkg/model"
	repo "github.com/warehub/warehub/service/pkg/repo"
)

// maxSeq 单个客户+类目下的编号上限，超出即视为耗尽
const maxSeq = 9999

// numberPattern 资产编号格式：客户编码-类目编码-四位序号
var numberPattern = regexp.MustCompile(`^[A-Z0-9]{2,10}-[A-Z]{3}-\d{4}$`)

// ValidNumber 校验资产编号格式
func ValidNumber(s string) bool {
	return numberPattern.MatchString(s)
}

// allocator 资产编号分配器。
// 取同前缀下的最大编号加一作为候选，逐个检查占用直至找到空闲编号。
// 并发分配同一前缀时可能算出相同候选，由 asset_number 唯一索引兜底，
// 调用方在唯一冲突时重试。
type allocator struct {
	store repo.AssetRepo
}

func newAllocator(store repo.AssetRepo) *allocator {
	return &allocator{store: store}
}

func (a *allocator) Next(ctx context.Context, clientCode string, category model.AssetCategory) (string, error) {
	typeCode, ok := category.TypeCode()
	if !ok {
		return "", code.AssetCategoryErr.WithMsg(string(category))
	}

	prefix := clientCode + "-" + typeCode + "-"
	seq := 1

	maxNumber, err := a.store.MaxAssetNumber(ctx, prefix)
	if err != nil {
		return "", err
	}
	if maxNumber != "" {
		if n, parseErr := strconv.Atoi(strings.TrimPrefix(maxNumber, prefix)); parseErr == nil {
			seq = n + 1
		}
	}

	for ; seq <= maxSeq; seq++ {
		candidate := fmt.Sprintf("%s%04d", prefix, seq)
		exists, err := a.store.AssetNumberExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", code.AssetNumberExhaustedErr.WithMsg(prefix)
}
