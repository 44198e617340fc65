package provider

import "context"

// Repository 供应商仓储接口
type Repository interface {
	List(ctx context.Context) ([]*Provider, error)

	// FindByID 不存在时返回ErrProviderNotFound
	FindByID(ctx context.Context, id uint) (*Provider, error)

	Create(ctx context.Context, p *Provider) error

	// Update 覆盖全部字段,不存在时返回ErrProviderNotFound
	Update(ctx context.Context, p *Provider) error

	// Delete 不存在时返回ErrProviderNotFound
	Delete(ctx context.Context, id uint) error
}

// BookCounter 统计引用供应商的图书数量
// 由图书仓储实现,避免provider包依赖book包
type BookCounter interface {
	CountByProviderID(ctx context.Context, providerID uint) (int64, error)
}
