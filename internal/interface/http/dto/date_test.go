package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	t.Run("输出YYYY-MM-DD", func(t *testing.T) {
		out, err := json.Marshal(NewDate(time.Date(2024, 5, 1, 13, 45, 0, 0, time.UTC)))
		require.NoError(t, err)
		assert.Equal(t, `"2024-05-01"`, string(out))
	})

	t.Run("零值输出null", func(t *testing.T) {
		out, err := json.Marshal(Date{})
		require.NoError(t, err)
		assert.Equal(t, "null", string(out))
	})

	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{"日期", `"2024-05-01"`, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"RFC3339", `"2024-05-01T10:30:00Z"`, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run("解析"+tc.name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tc.in), &d))
			assert.True(t, tc.want.Equal(d.Time))
		})
	}

	t.Run("非法格式", func(t *testing.T) {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`"01/05/2024"`), &d))
		assert.Error(t, json.Unmarshal([]byte(`20240501`), &d))
	})

	t.Run("可空字段", func(t *testing.T) {
		var req EmployeeRequest
		require.NoError(t, json.Unmarshal([]byte(`{"nombre":"Ana","fecha_ingreso":null}`), &req))
		assert.Nil(t, req.ToEntity().HireDate)

		require.NoError(t, json.Unmarshal([]byte(`{"nombre":"Ana","fecha_ingreso":"2023-02-01"}`), &req))
		require.NotNil(t, req.ToEntity().HireDate)
		assert.Equal(t, 2023, req.ToEntity().HireDate.Year())
	})
}
