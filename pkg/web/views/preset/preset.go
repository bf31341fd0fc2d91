package preset

import (
	// 外部依赖
	gin "github.com/gin-gonic/gin"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
	code "github.com/warehub/warehub/service/pkg/common/code"
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	corePreset "github.com/warehub/warehub/service/pkg/core/preset"
	presetImpl "github.com/warehub/warehub/service/pkg/core/preset/preset"
)

type Handle struct{ svc corePreset.Service }

func NewHandle() *Handle { return &Handle{svc: presetImpl.New()} }

func (h *Handle) Insert(ctx *gin.Context) {
	in := &corePreset.InsertReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.Insert(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Query(ctx *gin.Context) {
	in := &corePreset.QueryReq{}
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
	resp, err := h.svc.Get(ctx, &corePreset.GetReq{UUID: id})
	common.Reply(ctx, err, resp)
}

func (h *Handle) Update(ctx *gin.Context) {
	in := &corePreset.UpdateReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	common.Reply(ctx, h.svc.Update(ctx, in))
}

func (h *Handle) Delete(ctx *gin.Context) {
	in := &corePreset.DeleteReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	common.Reply(ctx, h.svc.Delete(ctx, in))
}

// Reconcile 套装核对：扫码资产与套装条目逐条匹配，生成出库单
func (h *Handle) Reconcile(ctx *gin.Context) {
	id, err := uuid.FromString(ctx.Param("uuid"))
	if err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	in := &corePreset.ReconcileReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	in.PresetUUID = id

	resp, err := h.svc.Reconcile(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) ProcessCheckout(ctx *gin.Context) {
	in := &corePreset.ProcessReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	common.Reply(ctx, h.svc.ProcessCheckout(ctx, in))
}

func (h *Handle) ReturnCheckout(ctx *gin.Context) {
	in := &corePreset.ReturnReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	common.Reply(ctx, h.svc.ReturnCheckout(ctx, in))
}

func (h *Handle) CancelCheckout(ctx *gin.Context) {
	in := &corePreset.CancelReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	common.Reply(ctx, h.svc.CancelCheckout(ctx, in))
}

func (h *Handle) QueryCheckouts(ctx *gin.Context) {
	in := &corePreset.CheckoutQueryReq{}
	if err := ctx.ShouldBindQuery(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.QueryCheckouts(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) GetCheckout(ctx *gin.Context) {
	id, err := uuid.FromString(ctx.Param("uuid"))
	if err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.GetCheckout(ctx, &corePreset.CheckoutGetReq{UUID: id})
	common.Reply(ctx, err, resp)
}
