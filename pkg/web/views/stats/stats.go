package stats

import (
	// 外部依赖
	gin "github.com/gin-gonic/gin"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
	code "github.com/warehub/warehub/service/pkg/common/code"
	coreStats "github.com/warehub/warehub/service/pkg/core/stats"
	statsImpl "github.com/warehub/warehub/service/pkg/core/stats/stats"
)

type Handle struct{ svc coreStats.Service }

func NewHandle() *Handle { return &Handle{svc: statsImpl.New()} }

func (h *Handle) Dashboard(ctx *gin.Context) {
	in := &coreStats.DashboardReq{}
	if err := ctx.ShouldBindQuery(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.Dashboard(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Usage(ctx *gin.Context) {
	in := &coreStats.UsageReq{}
	if err := ctx.ShouldBindQuery(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.Usage(ctx, in)
	common.Reply(ctx, err, resp)
}
