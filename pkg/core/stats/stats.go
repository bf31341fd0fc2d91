package stats

import (
	// 外部依赖
	"context"
)

// Service 仪表盘统计接口
type Service interface {
	// Dashboard 仪表盘总览：状态/类目分布、在管估值、逾期数
	Dashboard(ctx context.Context, req *DashboardReq) (*DashboardResp, error)
	// Usage 借用分析：时间窗内的逐日借出量与热门资产
	Usage(ctx context.Context, req *UsageReq) (*UsageResp, error)
}
