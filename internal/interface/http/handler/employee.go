package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/libreria/backoffice/internal/domain/employee"
	"github.com/libreria/backoffice/internal/interface/http/dto"
	"github.com/libreria/backoffice/pkg/response"
)

// EmployeeHandler 员工HTTP处理器
type EmployeeHandler struct {
	employeeService employee.Service
}

func NewEmployeeHandler(employeeService employee.Service) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// List 员工列表
// @Summary      员工列表
// @Tags         empleados
// @Produce      json
// @Success      200 {array}  dto.EmployeeResponse
// @Router       /api/empleados [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employeeService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewEmployeeList(employees))
}

// Get 员工详情
// @Summary      员工详情
// @Tags         empleados
// @Produce      json
// @Param        id  path     int true "员工ID"
// @Success      200 {object} dto.EmployeeResponse
// @Failure      404 {object} response.ErrorBody "Empleado no encontrado"
// @Router       /api/empleados/{id} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	e, err := h.employeeService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewEmployeeResponse(e))
}

// Create 创建员工
// @Summary      创建员工
// @Tags         empleados
// @Accept       json
// @Produce      json
// @Param        request body     dto.EmployeeRequest true "员工信息"
// @Success      200     {object} dto.EmployeeResponse
// @Failure      400     {object} response.ErrorBody
// @Router       /api/empleados [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.EmployeeRequest
	if !bindJSON(c, &req) {
		return
	}
	e, err := h.employeeService.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewEmployeeResponse(e))
}

// Update 修改员工
// @Summary      修改员工
// @Tags         empleados
// @Accept       json
// @Produce      json
// @Param        id      path     int                 true "员工ID"
// @Param        request body     dto.EmployeeRequest true "员工信息"
// @Success      200     {object} dto.EmployeeResponse
// @Failure      400     {object} response.ErrorBody
// @Failure      404     {object} response.ErrorBody
// @Router       /api/empleados/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.EmployeeRequest
	if !bindJSON(c, &req) {
		return
	}
	e, err := h.employeeService.Update(c.Request.Context(), id, req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewEmployeeResponse(e))
}

// Delete 删除员工
// @Summary      删除员工
// @Description  经手过销售的员工不能删除
// @Tags         empleados
// @Produce      json
// @Param        id  path     int true "员工ID"
// @Success      200 {object} response.MessageBody
// @Failure      400 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody
// @Router       /api/empleados/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.employeeService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Empleado eliminado con éxito")
}
