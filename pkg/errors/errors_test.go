package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_HTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindInternal:      http.StatusInternalServerError,
		KindNotFound:      http.StatusNotFound,
		KindBusinessRule:  http.StatusBadRequest,
		KindInvalidParams: http.StatusBadRequest,
	}
	for kind, status := range cases {
		t.Run(kind.String(), func(t *testing.T) {
			assert.Equal(t, status, kind.HTTPStatus())
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, "查询图书失败")

	assert.Equal(t, KindInternal, err.Kind)
	assert.Equal(t, ErrCodeInternal, err.Code)
	assert.ErrorIs(t, err, cause, "Wrap应保留原始错误")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGetAppError(t *testing.T) {
	t.Run("提取被包装的AppError", func(t *testing.T) {
		notFound := New(KindNotFound, ErrCodeBookNotFound, "Libro no encontrado")
		wrapped := fmt.Errorf("handler: %w", notFound)

		got := GetAppError(wrapped)
		assert.Equal(t, KindNotFound, got.Kind)
		assert.Equal(t, "Libro no encontrado", got.Message)
	})

	t.Run("普通错误转换为内部错误", func(t *testing.T) {
		got := GetAppError(errors.New("boom"))
		assert.Equal(t, KindInternal, got.Kind)
		assert.Equal(t, ErrInternal.Message, got.Message)
		assert.EqualError(t, got.Err, "boom")
	})
}

func TestAppError_Is(t *testing.T) {
	sentinel := New(KindBusinessRule, ErrCodeInsufficientStock, "No hay suficiente stock disponible")

	assert.True(t, errors.Is(sentinel.WithMessage("otro mensaje"), sentinel))
	assert.False(t, errors.Is(ErrNotFound, sentinel))
	assert.Equal(t, KindBusinessRule, KindOf(fmt.Errorf("tx: %w", sentinel)))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.True(t, IsKind(fmt.Errorf("tx: %w", sentinel), KindBusinessRule))
	assert.False(t, IsKind(nil, KindInternal))
}
