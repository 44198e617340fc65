package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 由domain层定义接口,infrastructure层实现
type Repository interface {
	List(ctx context.Context) ([]*Book, error)

	// FindByID 不存在时返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	Create(ctx context.Context, book *Book) error

	// Update 覆盖全部字段,不存在时返回ErrBookNotFound
	Update(ctx context.Context, book *Book) error

	// Delete 不存在时返回ErrBookNotFound
	Delete(ctx context.Context, id uint) error

	// CountByProviderID 删除供应商前的引用检查
	CountByProviderID(ctx context.Context, providerID uint) (int64, error)
}

// Cache 图书详情缓存(Cache-Aside)
// 未命中时Get返回(nil, nil)
type Cache interface {
	Get(ctx context.Context, id uint) (*Book, error)
	Set(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id uint) error
}
