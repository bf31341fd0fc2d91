package asset

import (
	// 外部依赖
	gin "github.com/gin-gonic/gin"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
	code "github.com/warehub/warehub/service/pkg/common/code"
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	coreAsset "github.com/warehub/warehub/service/pkg/core/asset"
	assetImpl "github.com/warehub/warehub/service/pkg/core/asset/asset"
)

type Handle struct{ svc coreAsset.Service }

func NewHandle() *Handle { return &Handle{svc: assetImpl.New()} }

func (h *Handle) Insert(ctx *gin.Context) {
	in := &coreAsset.InsertReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.Insert(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Query(ctx *gin.Context) {
	in := &coreAsset.QueryReq{}
	if err := ctx.ShouldBindQuery(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.Query(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Get(ctx *gin.Context) {
	id, err := uuid.FromString(ctx.Param("uuid"))
	if err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.Get(ctx, &coreAsset.GetReq{UUID: id})
	common.Reply(ctx, err, resp)
}

func (h *Handle) Update(ctx *gin.Context) {
	in := &coreAsset.UpdateReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	common.Reply(ctx, h.svc.Update(ctx, in))
}

func (h *Handle) Retire(ctx *gin.Context) {
	in := &coreAsset.RetireReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	common.Reply(ctx, h.svc.Retire(ctx, in))
}

func (h *Handle) Allocate(ctx *gin.Context) {
	in := &coreAsset.AllocateReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.AllocateNumber(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Repair(ctx *gin.Context) {
	in := &coreAsset.RepairReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.RepairNumbers(ctx, in)
	common.Reply(ctx, err, resp)
}
