package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	apperrors "github.com/libreria/backoffice/pkg/errors"
)

// ErrorBody 错误响应结构
// 设计说明:
// 1. 成功时直接返回业务数据本身(前端按表字段读取,不做包装)
// 2. 失败时返回{error, code},HTTP状态码由错误类别决定
type ErrorBody struct {
	Error string `json:"error" example:"Libro no encontrado"`
	Code  int    `json:"code" example:"40401"`
}

// MessageBody 删除等无数据返回的操作结果
type MessageBody struct {
	Message string `json:"message" example:"Libro eliminado con éxito"`
}

// Success 成功响应(200 + 数据)
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message 成功响应(200 + 提示信息)
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageBody{Message: message})
}

// Error 错误响应(自动处理AppError)
// 用法:
//
//	book, err := h.bookService.Get(ctx, id)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := appErr.Kind.HTTPStatus()

	// 内部错误只进日志,调用方只能看到通用提示
	logger := zerolog.Ctx(c.Request.Context())
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.
		Err(appErr.Err).
		Str("kind", appErr.Kind.String()).
		Int("code", appErr.Code).
		Str("path", c.Request.URL.Path).
		Msg(appErr.Message)

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, ErrorBody{
		Error: appErr.Message,
		Code:  appErr.Code,
	})
}

// InvalidParams 参数绑定失败(400)
func InvalidParams(c *gin.Context, err error) {
	Error(c, &apperrors.AppError{
		Kind:    apperrors.KindInvalidParams,
		Code:    apperrors.ErrCodeBindError,
		Message: apperrors.ErrBindError.Message + ": " + err.Error(),
		Err:     err,
	})
}
