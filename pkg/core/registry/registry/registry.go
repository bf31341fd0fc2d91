package registry

import (
	// 外部依赖
	"context"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
	code "github.com/warehub/warehub/service/pkg/common/code"
	core "github.com/warehub/warehub/service/pkg/core/registry"
	logger "github.com/warehub/warehub/service/pkg/middleware/logger"
	repo "github.com/warehub/warehub/service/pkg/repo"
	repoRegistry "github.com/warehub/warehub/service/pkg/repo/registry"
)

type registryImpl struct {
	store repo.RegistryRepo
}

func New() core.Service {
	return &registryImpl{store: repoRegistry.NewRegistryRepo()}
}

func (r *registryImpl) Insert(ctx context.Context, req *core.InsertReq) (*core.InsertResp, error) {
	if !req.Kind.Valid() {
		return nil, code.ParamErr.WithMsg("unknown registry kind")
	}

	entry, err := r.store.CreateEntry(ctx, req.Kind, req.Name, req.Description)
	if err != nil {
		logger.Errorf(ctx, "CreateEntry kind: %s, err: %+v", req.Kind, err)
		return nil, err
	}
	return &core.InsertResp{UUID: entry.UUID}, nil
}

func (r *registryImpl) Query(ctx context.Context, req *core.QueryReq) (*common.PageResp[[]*core.EntryResponse], error) {
	if !req.Kind.Valid() {
		return nil, code.ParamErr.WithMsg("unknown registry kind")
	}

	req.Normalize()
	list, total, err := r.store.ListEntries(ctx, req.Kind, req.Name, req.Offest(), req.PageSize)
	if err != nil {
		return nil, err
	}

	resp := make([]*core.EntryResponse, 0, len(list))
	for _, entry := range list {
		resp = append(resp, entryResponse(entry))
	}
	return &common.PageResp[[]*core.EntryResponse]{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     resp,
	}, nil
}

func (r *registryImpl) Get(ctx context.Context, req *core.GetReq) (*core.EntryResponse, error) {
	if !req.Kind.Valid() {
		return nil, code.ParamErr.WithMsg("unknown registry kind")
	}

	entry, err := r.store.GetEntryByUUID(ctx, req.Kind, req.UUID)
	if err != nil {
		return nil, err
	}
	return entryResponse(entry), nil
}

func (r *registryImpl) Update(ctx context.Context, req *core.UpdateReq) error {
	if !req.Kind.Valid() {
		return code.ParamErr.WithMsg("unknown registry kind")
	}

	data := map[string]any{}
	if req.Name != nil && *req.Name != "" {
		data["name"] = *req.Name
	}
	if req.Description != nil {
		data["description"] = *req.Description
	}
	if len(data) == 0 {
		return nil
	}
	return r.store.UpdateEntry(ctx, req.Kind, req.UUID, data)
}

func (r *registryImpl) Delete(ctx context.Context, req *core.DeleteReq) error {
	if !req.Kind.Valid() {
		return code.ParamErr.WithMsg("unknown registry kind")
	}

	count, err := r.store.CountReferences(ctx, req.Kind, req.UUID)
	if err != nil {
		return err
	}
	// 被引用的资料不做物理删除，只停用
	if count > 0 {
		return r.store.DeactivateEntry(ctx, req.Kind, req.UUID)
	}
	return r.store.DeleteEntry(ctx, req.Kind, req.UUID)
}

func entryResponse(entry *repo.RegistryEntry) *core.EntryResponse {
	return &core.EntryResponse{
		UUID:        entry.UUID,
		Name:        entry.Name,
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
}
