package maintenance

import (
	// 外部依赖
	gin "github.com/gin-gonic/gin"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
	code "github.com/warehub/warehub/service/pkg/common/code"
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	coreMaintenance "github.com/warehub/warehub/service/pkg/core/maintenance"
	maintenanceImpl "github.com/warehub/warehub/service/pkg/core/maintenance/maintenance"
)

type Handle struct{ svc coreMaintenance.Service }

func NewHandle() *Handle { return &Handle{svc: maintenanceImpl.New()} }

func (h *Handle) Schedule(ctx *gin.Context) {
	in := &coreMaintenance.ScheduleReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.Schedule(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Start(ctx *gin.Context) {
	in := &coreMaintenance.StartReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	common.Reply(ctx, h.svc.Start(ctx, in))
}

func (h *Handle) Complete(ctx *gin.Context) {
	in := &coreMaintenance.CompleteReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	common.Reply(ctx, h.svc.Complete(ctx, in))
}

func (h *Handle) Cancel(ctx *gin.Context) {
	in := &coreMaintenance.CancelReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	common.Reply(ctx, h.svc.Cancel(ctx, in))
}

func (h *Handle) Query(ctx *gin.Context) {
	in := &coreMaintenance.QueryReq{}
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
	resp, err := h.svc.Get(ctx, &coreMaintenance.GetReq{UUID: id})
	common.Reply(ctx, err, resp)
}

func (h *Handle) SweepOverdue(ctx *gin.Context) {
	count, err := h.svc.SweepOverdue(ctx)
	common.Reply(ctx, err, gin.H{"marked": count})
}
