package dto

import (
	"time"

	"github.com/libreria/backoffice/internal/domain/inventory"
)

// InventoryUpdateRequest 人工盘点请求
// ultima_actualizacion省略时使用服务器当前时间
type InventoryUpdateRequest struct {
	Stock       *int  `json:"stock" binding:"required,min=0" example:"25"`
	LastUpdated *Date `json:"ultima_actualizacion" swaggertype:"string" example:"2024-05-01T10:00:00Z"`
}

// At 盘点时间
func (r *InventoryUpdateRequest) At() *time.Time {
	return timePtr(r.LastUpdated)
}

// InventoryResponse 库存响应
type InventoryResponse struct {
	ID          uint      `json:"id" example:"1"`
	BookID      uint      `json:"id_libro" example:"1"`
	Stock       int       `json:"stock" example:"25"`
	LastUpdated time.Time `json:"ultima_actualizacion" example:"2024-05-01T10:00:00Z"`
}

func NewInventoryResponse(inv *inventory.Inventory) *InventoryResponse {
	return &InventoryResponse{
		ID:          inv.ID,
		BookID:      inv.BookID,
		Stock:       inv.Stock,
		LastUpdated: inv.LastUpdated,
	}
}

func NewInventoryList(items []*inventory.Inventory) []*InventoryResponse {
	out := make([]*InventoryResponse, 0, len(items))
	for _, inv := range items {
		out = append(out, NewInventoryResponse(inv))
	}
	return out
}
