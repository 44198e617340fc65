package dto

import (
	"github.com/shopspring/decimal"

	"github.com/libreria/backoffice/internal/domain/book"
)

// BookRequest 创建/修改图书请求
// stock只在创建时使用(同时创建库存行),修改时忽略
type BookRequest struct {
	Title      string           `json:"titulo" binding:"required,max=255" example:"Cien años de soledad"`
	Author     string           `json:"autor" binding:"max=255" example:"Gabriel García Márquez"`
	Year       int              `json:"anio" binding:"omitempty,min=0,max=9999" example:"1967"`
	Category   string           `json:"categoria" binding:"max=100" example:"Novela"`
	Price      *decimal.Decimal `json:"precio" binding:"required" swaggertype:"number" example:"45000.00"`
	ProviderID *uint            `json:"id_proveedor" example:"1"`
	Stock      *int             `json:"stock" binding:"omitempty,min=0" example:"10"`
}

// ToEntity 转换为领域实体
func (r *BookRequest) ToEntity() *book.Book {
	return &book.Book{
		Title:      r.Title,
		Author:     r.Author,
		Year:       r.Year,
		Category:   r.Category,
		Price:      *r.Price,
		ProviderID: r.ProviderID,
	}
}

// InitialStock 创建时的初始库存,默认0
func (r *BookRequest) InitialStock() int {
	if r.Stock == nil {
		return 0
	}
	return *r.Stock
}

// BookResponse 图书响应
type BookResponse struct {
	ID         uint            `json:"id" example:"1"`
	Title      string          `json:"titulo" example:"Cien años de soledad"`
	Author     string          `json:"autor" example:"Gabriel García Márquez"`
	Year       int             `json:"anio" example:"1967"`
	Category   string          `json:"categoria" example:"Novela"`
	Price      decimal.Decimal `json:"precio" swaggertype:"string" example:"45000.00"`
	ProviderID *uint           `json:"id_proveedor" example:"1"`
}

// NewBookResponse 由实体构建响应
func NewBookResponse(b *book.Book) *BookResponse {
	return &BookResponse{
		ID:         b.ID,
		Title:      b.Title,
		Author:     b.Author,
		Year:       b.Year,
		Category:   b.Category,
		Price:      b.Price,
		ProviderID: b.ProviderID,
	}
}

// NewBookList 列表响应,空结果返回[]而不是null
func NewBookList(books []*book.Book) []*BookResponse {
	out := make([]*BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, NewBookResponse(b))
	}
	return out
}
