package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/libreria/backoffice/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"资源不存在", apperrors.New(apperrors.KindNotFound, apperrors.ErrCodeSaleNotFound, "Venta no encontrada"), http.StatusNotFound, "Venta no encontrada"},
		{"业务规则", apperrors.New(apperrors.KindBusinessRule, apperrors.ErrCodeInsufficientStock, "No hay suficiente stock disponible"), http.StatusBadRequest, "No hay suficiente stock disponible"},
		{"内部错误不泄露细节", apperrors.Wrap(errors.New("pq: relation does not exist"), "Error al obtener libros"), http.StatusInternalServerError, "Error al obtener libros"},
		{"未知错误", errors.New("boom"), http.StatusInternalServerError, apperrors.ErrInternal.Message},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/ventas/1", nil)

			Error(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			var body ErrorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.msg, body.Error)
			assert.NotContains(t, w.Body.String(), "pq:")
		})
	}
}

func TestMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Message(c, "Cliente eliminado con éxito")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Cliente eliminado con éxito"}`, w.Body.String())
}
