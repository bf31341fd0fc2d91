package common

type Role string

const (
	Admin   Role = "admin"   // 系统管理员
	Manager Role = "manager" // 仓库管理员
	Staff   Role = "staff"   // 普通员工
)
