package dto

import "github.com/libreria/backoffice/internal/domain/provider"

// ProviderRequest 创建/修改供应商请求
type ProviderRequest struct {
	Name    string `json:"nombre" binding:"required,max=255" example:"Editorial Sur"`
	Contact string `json:"contacto" binding:"max=255" example:"Luis Gómez"`
	Phone   string `json:"telefono" binding:"max=50" example:"6015551234"`
	Email   string `json:"email" binding:"omitempty,email,max=255" example:"ventas@sur.com"`
}

func (r *ProviderRequest) ToEntity() *provider.Provider {
	return &provider.Provider{Name: r.Name, Contact: r.Contact, Phone: r.Phone, Email: r.Email}
}

// ProviderResponse 供应商响应
type ProviderResponse struct {
	ID      uint   `json:"id" example:"1"`
	Name    string `json:"nombre" example:"Editorial Sur"`
	Contact string `json:"contacto" example:"Luis Gómez"`
	Phone   string `json:"telefono" example:"6015551234"`
	Email   string `json:"email" example:"ventas@sur.com"`
}

func NewProviderResponse(p *provider.Provider) *ProviderResponse {
	return &ProviderResponse{ID: p.ID, Name: p.Name, Contact: p.Contact, Phone: p.Phone, Email: p.Email}
}

func NewProviderList(providers []*provider.Provider) []*ProviderResponse {
	out := make([]*ProviderResponse, 0, len(providers))
	for _, p := range providers {
		out = append(out, NewProviderResponse(p))
	}
	return out
}
