package registry

import (
	// 外部依赖
	gin "github.com/gin-gonic/gin"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
	code "github.com/warehub/warehub/service/pkg/common/code"
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	coreRegistry "github.com/warehub/warehub/service/pkg/core/registry"
	registryImpl "github.com/warehub/warehub/service/pkg/core/registry/registry"
	repo "github.com/warehub/warehub/service/pkg/repo"
)

type Handle struct{ svc coreRegistry.Service }

func NewHandle() *Handle { return &Handle{svc: registryImpl.New()} }

// kind 从路径参数取资料类型
func kind(ctx *gin.Context) repo.RegistryKind {
	return repo.RegistryKind(ctx.Param("kind"))
}

func (h *Handle) Insert(ctx *gin.Context) {
	in := &coreRegistry.InsertReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	in.Kind = kind(ctx)
	resp, err := h.svc.Insert(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Query(ctx *gin.Context) {
	in := &coreRegistry.QueryReq{}
	if err := ctx.ShouldBindQuery(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	in.Kind = kind(ctx)
	resp, err := h.svc.Query(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Get(ctx *gin.Context) {
	id, err := uuid.FromString(ctx.Param("uuid"))
	if err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.Get(ctx, &coreRegistry.GetReq{Kind: kind(ctx), UUID: id})
	common.Reply(ctx, err, resp)
}

func (h *Handle) Update(ctx *gin.Context) {
	in := &coreRegistry.UpdateReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	in.Kind = kind(ctx)
	common.Reply(ctx, h.svc.Update(ctx, in))
}

func (h *Handle) Delete(ctx *gin.Context) {
	in := &coreRegistry.DeleteReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	in.Kind = kind(ctx)
	common.Reply(ctx, h.svc.Delete(ctx, in))
}
