package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apperrors "github.com/libreria/backoffice/pkg/errors"
	"github.com/libreria/backoffice/pkg/response"
)

// HealthHandler 健康检查
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Ping 健康检查(同时检查数据库连接)
// @Summary      健康检查
// @Tags         sistema
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      500 {object} response.ErrorBody
// @Router       /ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		response.Error(c, apperrors.Wrap(err, "Base de datos no disponible"))
		return
	}

	response.Success(c, gin.H{
		"message": "pong",
		"status":  "healthy",
	})
}
