package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/libreria/backoffice/internal/domain/inventory"
	"github.com/libreria/backoffice/internal/interface/http/dto"
	"github.com/libreria/backoffice/pkg/response"
)

// InventoryHandler 库存HTTP处理器
// 只提供查询和人工盘点,销售引起的库存变化由销售用例完成
type InventoryHandler struct {
	inventoryService inventory.Service
}

func NewInventoryHandler(inventoryService inventory.Service) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// List 库存列表
// @Summary      库存列表
// @Tags         inventario
// @Produce      json
// @Success      200 {array}  dto.InventoryResponse
// @Router       /api/inventario [get]
func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.inventoryService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewInventoryList(items))
}

// Get 库存详情
// @Summary      库存详情
// @Tags         inventario
// @Produce      json
// @Param        id  path     int true "库存ID"
// @Success      200 {object} dto.InventoryResponse
// @Failure      404 {object} response.ErrorBody "Item de inventario no encontrado"
// @Router       /api/inventario/{id} [get]
func (h *InventoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	inv, err := h.inventoryService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewInventoryResponse(inv))
}

// Update 人工盘点
// @Summary      人工盘点
// @Description  直接覆盖stock,不做一致性校验
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        id      path     int                        true "库存ID"
// @Param        request body     dto.InventoryUpdateRequest true "盘点结果"
// @Success      200     {object} dto.InventoryResponse
// @Failure      400     {object} response.ErrorBody
// @Failure      404     {object} response.ErrorBody
// @Router       /api/inventario/{id} [put]
func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.InventoryUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	inv, err := h.inventoryService.Update(c.Request.Context(), id, *req.Stock, req.At())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewInventoryResponse(inv))
}
