package dto

import (
	appsale "github.com/libreria/backoffice/internal/application/sale"
	"github.com/libreria/backoffice/internal/domain/sale"
)

// SaleRequest 创建/修改销售请求
// cantidad用指针区分"未传"和0,是否接受<=0由sales.allow_non_positive_quantity决定
type SaleRequest struct {
	ClientID     uint  `json:"id_cliente" binding:"required" example:"1"`
	BookID       uint  `json:"id_libro" binding:"required" example:"1"`
	EmployeeID   uint  `json:"id_empleado" binding:"required" example:"1"`
	PurchaseDate *Date `json:"fecha_compra" binding:"required" swaggertype:"string" example:"2024-05-01"`
	Quantity     *int  `json:"cantidad" binding:"required" example:"2"`
}

// ToCommand 转换为应用层输入
func (r *SaleRequest) ToCommand() appsale.SaleRequest {
	return appsale.SaleRequest{
		ClientID:     r.ClientID,
		BookID:       r.BookID,
		EmployeeID:   r.EmployeeID,
		PurchaseDate: r.PurchaseDate.Time,
		Quantity:     *r.Quantity,
	}
}

// SaleResponse 销售响应
type SaleResponse struct {
	ID           uint `json:"id" example:"1"`
	ClientID     uint `json:"id_cliente" example:"1"`
	BookID       uint `json:"id_libro" example:"1"`
	EmployeeID   uint `json:"id_empleado" example:"1"`
	PurchaseDate Date `json:"fecha_compra" swaggertype:"string" example:"2024-05-01"`
	Quantity     int  `json:"cantidad" example:"2"`
}

func NewSaleResponse(s *sale.Sale) *SaleResponse {
	return &SaleResponse{
		ID:           s.ID,
		ClientID:     s.ClientID,
		BookID:       s.BookID,
		EmployeeID:   s.EmployeeID,
		PurchaseDate: NewDate(s.PurchaseDate),
		Quantity:     s.Quantity,
	}
}

func NewSaleList(sales []*sale.Sale) []*SaleResponse {
	out := make([]*SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, NewSaleResponse(s))
	}
	return out
}
