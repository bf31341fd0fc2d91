package common

import (
	// 外部依赖
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	// 内部引用
	code "github.com/warehub/warehub/service/pkg/common/code"
)

// Resp 统一返回信封
type Resp struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// Reply 根据 err 自动选择成功或失败返回
func Reply(ctx *gin.Context, err error, data ...any) {
	if err != nil {
		ReplyErr(ctx, err)
		return
	}
	ReplyOk(ctx, data...)
}

func ReplyOk(ctx *gin.Context, data ...any) {
	resp := &Resp{Code: code.Success.Ret, Msg: code.Success.Message}
	if len(data) > 0 {
		resp.Data = data[0]
	}
	ctx.JSON(http.StatusOK, resp)
}

// ReplyErr 将任意 error 转换成结构化错误返回，非业务错误统一按 UnDefineErr 处理
func ReplyErr(ctx *gin.Context, err error, msgs ...string) {
	c := &code.Code{}
	if !errors.As(err, &c) {
		c = code.UnDefineErr.WithErr(err)
	}

	msg := c.Message
	if len(msgs) > 0 {
		msg = msgs[0]
	}

	ctx.JSON(c.HTTPStatus, &Resp{Code: c.Ret, Msg: msg})
}
