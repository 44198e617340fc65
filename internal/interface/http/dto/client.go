package dto

import "github.com/libreria/backoffice/internal/domain/client"

// ClientRequest 创建/修改客户请求
type ClientRequest struct {
	Name    string `json:"nombre" binding:"required,max=255" example:"Ana Pérez"`
	Email   string `json:"email" binding:"omitempty,email,max=255" example:"ana@example.com"`
	Phone   string `json:"telefono" binding:"max=50" example:"3001234567"`
	Address string `json:"direccion" binding:"max=255" example:"Calle 10 # 20-30"`
}

func (r *ClientRequest) ToEntity() *client.Client {
	return &client.Client{Name: r.Name, Email: r.Email, Phone: r.Phone, Address: r.Address}
}

// ClientResponse 客户响应
type ClientResponse struct {
	ID      uint   `json:"id" example:"1"`
	Name    string `json:"nombre" example:"Ana Pérez"`
	Email   string `json:"email" example:"ana@example.com"`
	Phone   string `json:"telefono" example:"3001234567"`
	Address string `json:"direccion" example:"Calle 10 # 20-30"`
}

func NewClientResponse(c *client.Client) *ClientResponse {
	return &ClientResponse{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address}
}

func NewClientList(clients []*client.Client) []*ClientResponse {
	out := make([]*ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, NewClientResponse(c))
	}
	return out
}
