package transaction

import (
	// 外部依赖
	gin "github.com/gin-gonic/gin"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
	code "github.com/warehub/warehub/service/pkg/common/code"
	uuid "github.com/warehub/warehub/service/pkg/common/uuid"
	coreTransaction "github.com/warehub/warehub/service/pkg/core/transaction"
	transactionImpl "github.com/warehub/warehub/service/pkg/core/transaction/transaction"
)

type Handle struct{ svc coreTransaction.Service }

func NewHandle() *Handle { return &Handle{svc: transactionImpl.New()} }

func (h *Handle) Checkout(ctx *gin.Context) {
	in := &coreTransaction.CheckoutReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.Checkout(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Checkin(ctx *gin.Context) {
	in := &coreTransaction.CheckinReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	common.Reply(ctx, h.svc.Checkin(ctx, in))
}

func (h *Handle) Query(ctx *gin.Context) {
	in := &coreTransaction.QueryReq{}
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
	resp, err := h.svc.Get(ctx, &coreTransaction.GetReq{UUID: id})
	common.Reply(ctx, err, resp)
}

func (h *Handle) SweepOverdue(ctx *gin.Context) {
	count, err := h.svc.SweepOverdue(ctx)
	common.Reply(ctx, err, gin.H{"marked": count})
}
