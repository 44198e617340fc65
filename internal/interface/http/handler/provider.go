package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/libreria/backoffice/internal/domain/provider"
	"github.com/libreria/backoffice/internal/interface/http/dto"
	"github.com/libreria/backoffice/pkg/response"
)

// ProviderHandler 供应商HTTP处理器
type ProviderHandler struct {
	providerService provider.Service
}

func NewProviderHandler(providerService provider.Service) *ProviderHandler {
	return &ProviderHandler{providerService: providerService}
}

// List 供应商列表
// @Summary      供应商列表
// @Tags         proveedores
// @Produce      json
// @Success      200 {array}  dto.ProviderResponse
// @Router       /api/proveedores [get]
func (h *ProviderHandler) List(c *gin.Context) {
	providers, err := h.providerService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewProviderList(providers))
}

// Get 供应商详情
// @Summary      供应商详情
// @Tags         proveedores
// @Produce      json
// @Param        id  path     int true "供应商ID"
// @Success      200 {object} dto.ProviderResponse
// @Failure      404 {object} response.ErrorBody "Proveedor no encontrado"
// @Router       /api/proveedores/{id} [get]
func (h *ProviderHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.providerService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewProviderResponse(p))
}

// Create 创建供应商
// @Summary      创建供应商
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Param        request body     dto.ProviderRequest true "供应商信息"
// @Success      200     {object} dto.ProviderResponse
// @Failure      400     {object} response.ErrorBody
// @Router       /api/proveedores [post]
func (h *ProviderHandler) Create(c *gin.Context) {
	var req dto.ProviderRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.providerService.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewProviderResponse(p))
}

// Update 修改供应商
// @Summary      修改供应商
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Param        id      path     int                 true "供应商ID"
// @Param        request body     dto.ProviderRequest true "供应商信息"
// @Success      200     {object} dto.ProviderResponse
// @Failure      400     {object} response.ErrorBody
// @Failure      404     {object} response.ErrorBody
// @Router       /api/proveedores/{id} [put]
func (h *ProviderHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ProviderRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.providerService.Update(c.Request.Context(), id, req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewProviderResponse(p))
}

// Delete 删除供应商
// @Summary      删除供应商
// @Description  有图书引用时拒绝删除
// @Tags         proveedores
// @Produce      json
// @Param        id  path     int true "供应商ID"
// @Success      200 {object} response.MessageBody
// @Failure      400 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody
// @Router       /api/proveedores/{id} [delete]
func (h *ProviderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.providerService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Proveedor eliminado con éxito")
}
