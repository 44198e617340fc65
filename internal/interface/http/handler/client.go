package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/libreria/backoffice/internal/domain/client"
	"github.com/libreria/backoffice/internal/interface/http/dto"
	"github.com/libreria/backoffice/pkg/response"
)

// ClientHandler 客户HTTP处理器
type ClientHandler struct {
	clientService client.Service
}

func NewClientHandler(clientService client.Service) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// List 客户列表
// @Summary      客户列表
// @Tags         clientes
// @Produce      json
// @Success      200 {array}  dto.ClientResponse
// @Failure      500 {object} response.ErrorBody
// @Router       /api/clientes [get]
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clientService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewClientList(clients))
}

// Get 客户详情
// @Summary      客户详情
// @Tags         clientes
// @Produce      json
// @Param        id  path     int true "客户ID"
// @Success      200 {object} dto.ClientResponse
// @Failure      404 {object} response.ErrorBody "Cliente no encontrado"
// @Router       /api/clientes/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cl, err := h.clientService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewClientResponse(cl))
}

// Create 创建客户
// @Summary      创建客户
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        request body     dto.ClientRequest true "客户信息"
// @Success      200     {object} dto.ClientResponse
// @Failure      400     {object} response.ErrorBody
// @Router       /api/clientes [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.ClientRequest
	if !bindJSON(c, &req) {
		return
	}
	cl, err := h.clientService.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewClientResponse(cl))
}

// Update 修改客户
// @Summary      修改客户
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        id      path     int               true "客户ID"
// @Param        request body     dto.ClientRequest true "客户信息"
// @Success      200     {object} dto.ClientResponse
// @Failure      400     {object} response.ErrorBody
// @Failure      404     {object} response.ErrorBody
// @Router       /api/clientes/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ClientRequest
	if !bindJSON(c, &req) {
		return
	}
	cl, err := h.clientService.Update(c.Request.Context(), id, req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewClientResponse(cl))
}

// Delete 删除客户
// @Summary      删除客户
// @Tags         clientes
// @Produce      json
// @Param        id  path     int true "客户ID"
// @Success      200 {object} response.MessageBody
// @Failure      400 {object} response.ErrorBody "No se puede eliminar el cliente porque tiene ventas asociadas"
// @Failure      404 {object} response.ErrorBody
// @Router       /api/clientes/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Cliente eliminado con éxito")
}
