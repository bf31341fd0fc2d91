package common

// PageReq 通用分页入参（page 从 1 开始）
type PageReq struct {
	Page     int `form:"page" json:"page"`
	PageSize int `form:"page_size" json:"page_size"`
}

const (
	defaultPageSize = 20
	maxPageSize     = 200
)

// Normalize 修正非法分页参数
func (p *PageReq) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
}

func (p *PageReq) Offest() int {
	return (p.Page - 1) * p.PageSize
}

// PageResp 通用分页返回
type PageResp[T any] struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	List     T     `json:"list"`
}
