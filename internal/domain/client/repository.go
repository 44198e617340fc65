package client

import "context"

// Repository 客户仓储接口
type Repository interface {
	List(ctx context.Context) ([]*Client, error)
	FindByID(ctx context.Context, id uint) (*Client, error)
	Create(ctx context.Context, c *Client) error
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id uint) error
}

// SaleCounter 统计客户的销售记录数(由销售仓储实现)
type SaleCounter interface {
	CountByClientID(ctx context.Context, clientID uint) (int64, error)
}
