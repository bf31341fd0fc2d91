package code

import (
	"fmt"
	"net/http"
)

// Code 业务错误码，携带 HTTP 状态与可选的底层错误
type Code struct {
	Ret        int    `json:"code"`
	HTTPStatus int    `json:"-"`
	Message    string `json:"msg"`
	err        error
}

func New(ret int, httpStatus int, msg string) *Code {
	return &Code{Ret: ret, HTTPStatus: httpStatus, Message: msg}
}

func (c *Code) Error() string {
	if c.err != nil {
		return fmt.Sprintf("[%d] %s: %v", c.Ret, c.Message, c.err)
	}
	return fmt.Sprintf("[%d] %s", c.Ret, c.Message)
}

func (c *Code) Unwrap() error {
	return c.err
}

// WithMsg 返回替换提示信息的副本
func (c *Code) WithMsg(msg string) *Code {
	return &Code{Ret: c.Ret, HTTPStatus: c.HTTPStatus, Message: msg, err: c.err}
}

// WithErr 返回附带底层错误的副本
func (c *Code) WithErr(err error) *Code {
	return &Code{Ret: c.Ret, HTTPStatus: c.HTTPStatus, Message: c.Message, err: err}
}

// 通用
var (
	Success        = New(0, http.StatusOK, "success")
	ParamErr       = New(10001, http.StatusBadRequest, "invalid param")
	UnLogin        = New(10002, http.StatusUnauthorized, "not login")
	InvalidToken   = New(10003, http.StatusUnauthorized, "invalid token")
	NoPermission   = New(10004, http.StatusForbidden, "no permission")
	RecordNotFound = New(10005, http.StatusNotFound, "record not found")
	UnDefineErr    = New(10006, http.StatusInternalServerError, "internal error")
	CreateDataErr  = New(10007, http.StatusInternalServerError, "create data err")
	QueryRecordErr = New(10008, http.StatusInternalServerError, "query record err")
	UpdateDataErr  = New(10009, http.StatusInternalServerError, "update data err")
	DeleteDataErr  = New(10010, http.StatusInternalServerError, "delete data err")
	DataExistErr   = New(10011, http.StatusConflict, "data already exist")
	TxAbortedErr   = New(10012, http.StatusInternalServerError, "transaction aborted")
)

// 客户
var (
	ClientNotFound = New(20001, http.StatusNotFound, "client not found")
	ClientCodeErr  = New(20002, http.StatusBadRequest, "client code must be 2-10 uppercase alphanumeric chars")
	ClientDupErr   = New(20003, http.StatusConflict, "client name or code already exist")
)

// 资产
var (
	AssetNotFound           = New(21001, http.StatusNotFound, "asset not found")
	AssetCreateErr          = New(21002, http.StatusInternalServerError, "create asset err")
	AssetCategoryErr        = New(21003, http.StatusBadRequest, "unknown asset category")
	AssetNumberInvalidErr   = New(21004, http.StatusBadRequest, "asset number format invalid")
	AssetNumberExhaustedErr = New(21005, http.StatusConflict, "no free asset number under prefix")
	AssetNumberConflictErr  = New(21006, http.StatusConflict, "asset number already taken")
	AssetNotAvailableErr    = New(21007, http.StatusConflict, "asset not available")
	AssetReferencedErr      = New(21008, http.StatusConflict, "asset still referenced by transactions")
)

// 借还流水
var (
	TransactionNotFound     = New(22001, http.StatusNotFound, "transaction not found")
	TransactionClosedErr    = New(22002, http.StatusConflict, "transaction already completed")
	AssetAlreadyCheckedOut  = New(22003, http.StatusConflict, "asset already checked out")
	AssetNotCheckedOutErr   = New(22004, http.StatusConflict, "asset is not checked out")
	TransactionCreateErr    = New(22005, http.StatusInternalServerError, "create transaction err")
	TransactionOverdueIsErr = New(22006, http.StatusInternalServerError, "mark overdue err")
)

// 维保
var (
	MaintenanceNotFound  = New(23001, http.StatusNotFound, "maintenance record not found")
	MaintenanceStateErr  = New(23002, http.StatusConflict, "maintenance record state not allow this op")
	MaintenanceCreateErr = New(23003, http.StatusInternalServerError, "create maintenance record err")
)

// 套装
var (
	PresetNotFound         = New(24001, http.StatusNotFound, "preset not found")
	PresetCreateErr        = New(24002, http.StatusInternalServerError, "create preset err")
	PresetItemAssetErr     = New(24003, http.StatusBadRequest, "preset item needs asset or category")
	PresetCheckoutNotFound = New(24004, http.StatusNotFound, "preset checkout not found")
	PresetCheckoutStateErr = New(24005, http.StatusConflict, "preset checkout state not allow this op")
)

// 基础资料
var (
	RegistryNotFound = New(25001, http.StatusNotFound, "registry entry not found")
	RegistryDupErr   = New(25002, http.StatusConflict, "registry entry name already exist")
)

// 消息中心
var (
	NotifyActionAlreadyRegistryErr = New(26001, http.StatusInternalServerError, "notify action already registered")
	NotifySendMsgErr               = New(26002, http.StatusInternalServerError, "notify send msg err")
	RegActionNameEmptyErr          = New(26003, http.StatusBadRequest, "notify action name empty")
)
