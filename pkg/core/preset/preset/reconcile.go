package preset

import (
	// 外部依赖
	"math"

	// 内部引用
	model "github.com/warehub/warehub/service/pkg/model"
	repo "github.com/warehub/warehub/service/pkg/repo"
)

// readyThreshold 完成度达到该百分比即建议直接出库
const readyThreshold = 80

// ItemDecision 单条目的核对结论
type ItemDecision struct {
	PresetItemID int64
	AssetID      *int64
	IsSubstitute bool
	Status       model.PresetCheckoutItemStatus
}

// ReconcileResult 核对结果
// AvailableSubstitutions 仅包含未分配条目，值为替代资产 id（按声明顺序）
type ReconcileResult struct {
	Items                  []*ItemDecision
	CompletionPercent      int
	MissingRequiredItems   int
	ReadyToProcess         bool
	AvailableSubstitutions map[int64][]int64
}

// reconcile 按条目声明顺序核对扫码资产：
// 钉死资产命中则直接分配；否则按顺序尝试替代资产；都未命中时
// 必选条目记 unavailable、可选条目记 skipped。
// 一个扫码资产至多满足一个条目，已分配的资产不再参与后续匹配。
// assetStatus 用于筛选建议列表中仍可用的替代资产。
func reconcile(items []*repo.PresetItemDefinition, scanned []int64, assetStatus map[int64]model.AssetStatus) *ReconcileResult {
	scannedSet := make(map[int64]struct{}, len(scanned))
	for _, id := range scanned {
		scannedSet[id] = struct{}{}
	}
	used := make(map[int64]struct{}, len(scanned))

	result := &ReconcileResult{
		Items:                  make([]*ItemDecision, 0, len(items)),
		AvailableSubstitutions: make(map[int64][]int64),
	}

	assigned := 0
	for _, def := range items {
		decision := &ItemDecision{PresetItemID: def.Item.ID}

		if def.Item.AssetID != nil {
			if _, ok := scannedSet[*def.Item.AssetID]; ok {
				if _, taken := used[*def.Item.AssetID]; !taken {
					id := *def.Item.AssetID
					decision.AssetID = &id
					decision.Status = model.CheckoutItemAssigned
					used[id] = struct{}{}
				}
			}
		}

		if decision.AssetID == nil {
			for _, sub := range def.Substitutions {
				if _, ok := scannedSet[sub.AssetID]; !ok {
					continue
				}
				if _, taken := used[sub.AssetID]; taken {
					continue
				}
				id := sub.AssetID
				decision.AssetID = &id
				decision.IsSubstitute = true
				decision.Status = model.CheckoutItemSubstituted
				used[id] = struct{}{}
				break
			}
		}

		if decision.AssetID != nil {
			assigned++
		} else {
			if def.Item.IsRequired {
				decision.Status = model.CheckoutItemUnavailable
				result.MissingRequiredItems++
			} else {
				decision.Status = model.CheckoutItemSkipped
			}

			subs := make([]int64, 0, len(def.Substitutions))
			for _, sub := range def.Substitutions {
				if assetStatus[sub.AssetID] == model.AssetAvailable {
					subs = append(subs, sub.AssetID)
				}
			}
			if len(subs) > 0 {
				result.AvailableSubstitutions[def.Item.ID] = subs
			}
		}

		result.Items = append(result.Items, decision)
	}

	if len(items) > 0 {
		result.CompletionPercent = int(math.Round(100 * float64(assigned) / float64(len(items))))
	}
	result.ReadyToProcess = result.CompletionPercent >= readyThreshold
	return result
}
