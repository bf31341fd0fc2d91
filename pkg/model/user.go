package model

import (
	common "github.com/warehub/warehub/service/pkg/common"
)

// UserData 当前登录用户，由 auth 中间件写入上下文
type UserData struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Role common.Role `json:"role"`
}
