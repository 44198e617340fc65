package dto

import "github.com/libreria/backoffice/internal/domain/employee"

// EmployeeRequest 创建/修改员工请求
type EmployeeRequest struct {
	Name     string `json:"nombre" binding:"required,max=255" example:"Carlos Ruiz"`
	Position string `json:"cargo" binding:"max=100" example:"Vendedor"`
	Email    string `json:"email" binding:"omitempty,email,max=255" example:"carlos@libreria.com"`
	HireDate *Date  `json:"fecha_ingreso" swaggertype:"string" example:"2023-02-01"`
}

func (r *EmployeeRequest) ToEntity() *employee.Employee {
	return &employee.Employee{
		Name:     r.Name,
		Position: r.Position,
		Email:    r.Email,
		HireDate: timePtr(r.HireDate),
	}
}

// EmployeeResponse 员工响应
type EmployeeResponse struct {
	ID       uint   `json:"id" example:"1"`
	Name     string `json:"nombre" example:"Carlos Ruiz"`
	Position string `json:"cargo" example:"Vendedor"`
	Email    string `json:"email" example:"carlos@libreria.com"`
	HireDate *Date  `json:"fecha_ingreso" swaggertype:"string" example:"2023-02-01"`
}

func NewEmployeeResponse(e *employee.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:       e.ID,
		Name:     e.Name,
		Position: e.Position,
		Email:    e.Email,
		HireDate: datePtr(e.HireDate),
	}
}

func NewEmployeeList(employees []*employee.Employee) []*EmployeeResponse {
	out := make([]*EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, NewEmployeeResponse(e))
	}
	return out
}
