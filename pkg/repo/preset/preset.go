package preset

import (
	// 外部依赖
	"context"
	"errors"
	"sort"

	gorm "gorm.io/gorm"

	// 内部引用
	code "github.com/warehub/warehub/service/pkg/common/code"
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	model "github.com/warehub/warehub/service/pkg/model"
	repo "github.com/warehub/warehub/service/pkg/repo"
)

type presetImpl struct {
	repo.IDOrUUIDTranslate
}

func NewPresetRepo() repo.PresetRepo {
	return &presetImpl{IDOrUUIDTranslate: repo.NewBaseDB()}
}

func activeScope(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = 0")
}

func (r *presetImpl) CreatePreset(ctx context.Context, data *model.Preset, items []*model.PresetItem, subs map[int][]*model.PresetItemSubstitution) error {
	return r.ExecTx(ctx, func(txCtx context.Context) error {
		if err := r.DBWithContext(txCtx).Create(data).Error; err != nil {
			return code.PresetCreateErr.WithErr(err)
		}
		return r.insertItems(txCtx, data.ID, items, subs)
	})
}

// insertItems 依序插入条目再回填替代资产的条目外键，subs 以条目下标为键
func (r *presetImpl) insertItems(ctx context.Context, presetID int64, items []*model.PresetItem, subs map[int][]*model.PresetItemSubstitution) error {
	if len(items) == 0 {
		return nil
	}

	for _, item := range items {
		item.PresetID = presetID
	}
	if err := r.DBWithContext(ctx).Create(items).Error; err != nil {
		return code.PresetCreateErr.WithErr(err)
	}

	allSubs := make([]*model.PresetItemSubstitution, 0, len(subs))
	for idx, itemSubs := range subs {
		if idx < 0 || idx >= len(items) {
			return code.ParamErr.WithMsg("substitution refers to unknown preset item")
		}
		for _, sub := range itemSubs {
			sub.PresetItemID = items[idx].ID
			allSubs = append(allSubs, sub)
		}
	}
	if len(allSubs) == 0 {
		return nil
	}
	if err := r.DBWithContext(ctx).Create(allSubs).Error; err != nil {
		return code.PresetCreateErr.WithErr(err)
	}
	return nil
}

func (r *presetImpl) GetPresetByUUID(ctx context.Context, id uuid.UUID) (*model.Preset, error) {
	data := &model.Preset{}
	err := r.DBWithContext(ctx).Scopes(activeScope).Where("uuid = ?", id).First(data).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.PresetNotFound
	}
	if err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return data, nil
}

func (r *presetImpl) GetPresetDefinition(ctx context.Context, presetID int64) (*repo.PresetDefinition, error) {
	p := &model.Preset{}
	err := r.DBWithContext(ctx).Scopes(activeScope).Where("id = ?", presetID).First(p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.PresetNotFound
	}
	if err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}

	items := make([]*model.PresetItem, 0, 8)
	if err := r.DBWithContext(ctx).
		Where("preset_id = ?", presetID).
		Order("priority asc, id asc").
		Find(&items).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}

	def := &repo.PresetDefinition{
		Preset: p,
		Items:  make([]*repo.PresetItemDefinition, 0, len(items)),
	}
	if len(items) == 0 {
		return def, nil
	}

	itemIDs := make([]int64, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
	}

	subs := make([]*model.PresetItemSubstitution, 0, len(items))
	if err := r.DBWithContext(ctx).
		Where("preset_item_id IN ?", itemIDs).
		Order("priority asc, id asc").
		Find(&subs).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}

	subsByItem := make(map[int64][]*model.PresetItemSubstitution, len(items))
	for _, sub := range subs {
		subsByItem[sub.PresetItemID] = append(subsByItem[sub.PresetItemID], sub)
	}
	for _, item := range items {
		def.Items = append(def.Items, &repo.PresetItemDefinition{
			Item:          item,
			Substitutions: subsByItem[item.ID],
		})
	}
	return def, nil
}

func (r *presetImpl) ListPresets(ctx context.Context, q repo.PresetQuery) ([]*model.Preset, int64, error) {
	db := r.DBWithContext(ctx).Model(&model.Preset{}).Scopes(activeScope)

	if q.Name != nil && *q.Name != "" {
		db = db.Where("name ILIKE ?", "%"+*q.Name+"%")
	}
	if q.CategoryID != nil {
		db = db.Where("category_id = ?", *q.CategoryID)
	}
	if q.DepartmentID != nil {
		db = db.Where("department_id = ?", *q.DepartmentID)
	}
	if q.CreatedBy != nil && *q.CreatedBy != "" {
		db = db.Where("created_by = ?", *q.CreatedBy)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}

	order := q.OrderBy
	if order == "" {
		order = "id desc"
	}
	if q.Limit == 0 {
		q.Limit = 20
	}

	list := make([]*model.Preset, 0, q.Limit)
	if err := db.Order(order).Offset(q.Offset).Limit(q.Limit).Find(&list).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return list, total, nil
}

func (r *presetImpl) UpdatePresetByUUID(ctx context.Context, id uuid.UUID, data map[string]any) error {
	if err := r.DBWithContext(ctx).Model(&model.Preset{}).
		Scopes(activeScope).
		Where("uuid = ?", id).
		Updates(data).Error; err != nil {
		return code.UpdateDataErr.WithErr(err)
	}
	return nil
}

func (r *presetImpl) ReplacePresetItems(ctx context.Context, presetID int64, items []*model.PresetItem, subs map[int][]*model.PresetItemSubstitution) error {
	return r.ExecTx(ctx, func(txCtx context.Context) error {
		oldIDs := make([]int64, 0, 8)
		if err := r.DBWithContext(txCtx).Model(&model.PresetItem{}).
			Where("preset_id = ?", presetID).
			Pluck("id", &oldIDs).Error; err != nil {
			return code.QueryRecordErr.WithErr(err)
		}

		if len(oldIDs) > 0 {
			if err := r.DBWithContext(txCtx).
				Where("preset_item_id IN ?", oldIDs).
				Delete(&model.PresetItemSubstitution{}).Error; err != nil {
				return code.DeleteDataErr.WithErr(err)
			}
			if err := r.DBWithContext(txCtx).
				Where("preset_id = ?", presetID).
				Delete(&model.PresetItem{}).Error; err != nil {
				return code.DeleteDataErr.WithErr(err)
			}
		}
		return r.insertItems(txCtx, presetID, items, subs)
	})
}

func (r *presetImpl) DeactivatePreset(ctx context.Context, id int64) error {
	if err := r.DBWithContext(ctx).Model(&model.Preset{}).
		Where("id = ?", id).
		UpdateColumn("is_deleted", 1).Error; err != nil {
		return code.DeleteDataErr.WithErr(err)
	}
	return nil
}

func (r *presetImpl) CreateCheckout(ctx context.Context, data *model.PresetCheckout, items []*model.PresetCheckoutItem) error {
	return r.ExecTx(ctx, func(txCtx context.Context) error {
		if err := r.DBWithContext(txCtx).Create(data).Error; err != nil {
			return code.CreateDataErr.WithErr(err)
		}
		if len(items) == 0 {
			return nil
		}
		for _, item := range items {
			item.PresetCheckoutID = data.ID
		}
		if err := r.DBWithContext(txCtx).Create(items).Error; err != nil {
			return code.CreateDataErr.WithErr(err)
		}
		return nil
	})
}

func (r *presetImpl) GetCheckoutByUUID(ctx context.Context, id uuid.UUID) (*model.PresetCheckout, error) {
	data := &model.PresetCheckout{}
	err := r.DBWithContext(ctx).Where("uuid = ?", id).First(data).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.PresetCheckoutNotFound
	}
	if err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return data, nil
}

func (r *presetImpl) GetCheckoutItems(ctx context.Context, checkoutID int64) ([]*model.PresetCheckoutItem, error) {
	items := make([]*model.PresetCheckoutItem, 0, 8)
	if err := r.DBWithContext(ctx).
		Where("preset_checkout_id = ?", checkoutID).
		Find(&items).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	// 行序跟套装条目声明顺序对齐
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *presetImpl) ListCheckouts(ctx context.Context, q repo.CheckoutQuery) ([]*model.PresetCheckout, int64, error) {
	db := r.DBWithContext(ctx).Model(&model.PresetCheckout{})

	if q.PresetID != nil {
		db = db.Where("preset_id = ?", *q.PresetID)
	}
	if q.UserID != nil && *q.UserID != "" {
		db = db.Where("user_id = ?", *q.UserID)
	}
	if q.Status != nil {
		db = db.Where("status = ?", *q.Status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}

	order := q.OrderBy
	if order == "" {
		order = "id desc"
	}
	if q.Limit == 0 {
		q.Limit = 20
	}

	list := make([]*model.PresetCheckout, 0, q.Limit)
	if err := db.Order(order).Offset(q.Offset).Limit(q.Limit).Find(&list).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return list, total, nil
}

func (r *presetImpl) TransitCheckout(ctx context.Context, id int64, from []model.PresetCheckoutStatus, data map[string]any) (int64, error) {
	res := r.DBWithContext(ctx).Model(&model.PresetCheckout{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(data)
	if res.Error != nil {
		return 0, code.UpdateDataErr.WithErr(res.Error)
	}
	return res.RowsAffected, nil
}

func (r *presetImpl) UpdateCheckoutItem(ctx context.Context, id int64, data map[string]any) error {
	if err := r.DBWithContext(ctx).Model(&model.PresetCheckoutItem{}).
		Where("id = ?", id).
		Updates(data).Error; err != nil {
		return code.UpdateDataErr.WithErr(err)
	}
	return nil
}
