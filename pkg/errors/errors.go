package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 错误类别(封闭枚举)
// 设计说明:
// 1. 业务代码只决定错误属于哪一类,不关心HTTP状态码
// 2. 由pkg/response在边界处统一翻译为HTTP状态码
type Kind int

const (
	KindInternal      Kind = iota // 数据库异常、未知错误 → 500
	KindNotFound                  // 资源不存在 → 404
	KindBusinessRule              // 违反业务规则(存在关联数据、库存不足) → 400
	KindInvalidParams             // 参数错误 → 400
)

// String 实现Stringer接口(方便日志输出)
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBusinessRule:
		return "business_rule"
	case KindInvalidParams:
		return "invalid_params"
	default:
		return "internal"
	}
}

// HTTPStatus 错误类别对应的HTTP状态码
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindBusinessRule, KindInvalidParams:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// AppError 自定义应用错误
// 设计说明:
// 1. Kind决定HTTP状态码
// 2. Code是细分的业务错误码,方便前端区分同类错误
// 3. Message是返回给调用方的提示信息
// 4. Err是内部错误,只记录到日志,不返回给客户端
type AppError struct {
	Kind    Kind   `json:"-"`
	Code    int    `json:"code"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 同一个预定义错误即视为相等(Code相同)
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Kind == t.Kind
}

// New 创建新的AppError
func New(kind Kind, code int, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误(数据库错误、网络错误)
// message是返回给调用方的通用提示,原始错误只进日志
func Wrap(err error, message string) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// WithMessage 复制错误并替换提示信息
func (e *AppError) WithMessage(message string) *AppError {
	return &AppError{
		Kind:    e.Kind,
		Code:    e.Code,
		Message: message,
		Err:     e.Err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范:
// - 400xx: 业务规则
// - 404xx: 资源不存在
// - 409xx: 参数错误
// - 500xx: 服务端错误

const (
	ErrCodeInternal      = 50000
	ErrCodeDatabaseError = 50001
	ErrCodeCacheError    = 50002

	ErrCodeNotFound          = 40400
	ErrCodeBookNotFound      = 40401
	ErrCodeClientNotFound    = 40402
	ErrCodeSaleNotFound      = 40403
	ErrCodeInventoryNotFound = 40404
	ErrCodeProviderNotFound  = 40405
	ErrCodeEmployeeNotFound  = 40406

	ErrCodeBusinessError     = 40000
	ErrCodeInsufficientStock = 40001
	ErrCodeHasDependents     = 40002 // 存在关联记录,不能删除
	ErrCodeForeignKey        = 40003 // 数据库外键约束拒绝
	ErrCodeDuplicateEntry    = 40009

	ErrCodeInvalidParams = 40900
	ErrCodeBindError     = 40901
	ErrCodeInvalidID     = 40902
)

// =========================================
// 预定义错误
// =========================================

var (
	ErrInternal      = New(KindInternal, ErrCodeInternal, "Error interno del servidor")
	ErrDatabaseError = New(KindInternal, ErrCodeDatabaseError, "Error de base de datos")

	ErrNotFound       = New(KindNotFound, ErrCodeNotFound, "Recurso no encontrado")
	ErrForeignKey     = New(KindBusinessRule, ErrCodeForeignKey, "La operación viola una relación entre registros")
	ErrDuplicateEntry = New(KindBusinessRule, ErrCodeDuplicateEntry, "El registro ya existe")

	ErrInvalidParams = New(KindInvalidParams, ErrCodeInvalidParams, "Parámetros inválidos")
	ErrBindError     = New(KindInvalidParams, ErrCodeBindError, "Formato de la solicitud inválido")
	ErrInvalidID     = New(KindInvalidParams, ErrCodeInvalidID, "Identificador inválido")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError(不是AppError则包装成Internal错误)
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, ErrInternal.Message)
}

// KindOf 返回错误类别,非AppError一律视为内部错误
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind 判断错误是否属于指定类别
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
