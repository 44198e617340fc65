package handler

import (
	"github.com/gin-gonic/gin"

	appsale "github.com/libreria/backoffice/internal/application/sale"
	"github.com/libreria/backoffice/internal/domain/sale"
	"github.com/libreria/backoffice/internal/interface/http/dto"
	"github.com/libreria/backoffice/pkg/response"
)

// SaleHandler 销售HTTP处理器
type SaleHandler struct {
	saleService sale.Service
	createSale  *appsale.CreateSaleUseCase
	updateSale  *appsale.UpdateSaleUseCase
	deleteSale  *appsale.DeleteSaleUseCase
}

// NewSaleHandler 创建销售处理器
func NewSaleHandler(
	saleService sale.Service,
	createSale *appsale.CreateSaleUseCase,
	updateSale *appsale.UpdateSaleUseCase,
	deleteSale *appsale.DeleteSaleUseCase,
) *SaleHandler {
	return &SaleHandler{
		saleService: saleService,
		createSale:  createSale,
		updateSale:  updateSale,
		deleteSale:  deleteSale,
	}
}

// List 销售列表
// @Summary      销售列表
// @Tags         ventas
// @Produce      json
// @Success      200 {array}  dto.SaleResponse
// @Router       /api/ventas [get]
func (h *SaleHandler) List(c *gin.Context) {
	sales, err := h.saleService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewSaleList(sales))
}

// Get 销售详情
// @Summary      销售详情
// @Tags         ventas
// @Produce      json
// @Param        id  path     int true "销售ID"
// @Success      200 {object} dto.SaleResponse
// @Failure      404 {object} response.ErrorBody "Venta no encontrada"
// @Router       /api/ventas/{id} [get]
func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s, err := h.saleService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewSaleResponse(s))
}

// Create 创建销售
// @Summary      创建销售
// @Description  同一事务内扣减库存,库存不足时不创建销售
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        request body     dto.SaleRequest true "销售信息"
// @Success      200     {object} dto.SaleResponse
// @Failure      400     {object} response.ErrorBody "No hay suficiente stock disponible"
// @Failure      404     {object} response.ErrorBody
// @Router       /api/ventas [post]
func (h *SaleHandler) Create(c *gin.Context) {
	var req dto.SaleRequest
	if !bindJSON(c, &req) {
		return
	}
	s, err := h.createSale.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewSaleResponse(s))
}

// Update 修改销售
// @Summary      修改销售
// @Description  同一本书按数量差调整库存;换书时回补原书并扣减新书
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        id      path     int             true "销售ID"
// @Param        request body     dto.SaleRequest true "销售信息"
// @Success      200     {object} dto.SaleResponse
// @Failure      400     {object} response.ErrorBody "No hay suficiente stock disponible"
// @Failure      404     {object} response.ErrorBody "Venta no encontrada"
// @Router       /api/ventas/{id} [put]
func (h *SaleHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.SaleRequest
	if !bindJSON(c, &req) {
		return
	}
	s, err := h.updateSale.Execute(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewSaleResponse(s))
}

// Delete 删除销售
// @Summary      删除销售
// @Description  删除销售并回补库存
// @Tags         ventas
// @Produce      json
// @Param        id  path     int true "销售ID"
// @Success      200 {object} response.MessageBody
// @Failure      404 {object} response.ErrorBody "Venta no encontrada"
// @Router       /api/ventas/{id} [delete]
func (h *SaleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.deleteSale.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Venta eliminada con éxito")
}
