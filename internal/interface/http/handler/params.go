package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/libreria/backoffice/pkg/errors"
	"github.com/libreria/backoffice/pkg/response"
)

// parseID 解析路径参数:id,非正整数时写入400并返回false
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, apperrors.ErrInvalidID)
		return 0, false
	}
	return uint(id), true
}

// bindJSON 绑定并校验请求体,失败时写入400并返回false
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.InvalidParams(c, err)
		return false
	}
	return true
}
