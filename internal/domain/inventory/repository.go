package inventory

import (
	"context"
	"time"
)

// Repository 库存仓储接口
type Repository interface {
	List(ctx context.Context) ([]*Inventory, error)

	// FindByID 按库存记录ID查询
	FindByID(ctx context.Context, id uint) (*Inventory, error)

	// FindByBookID 按图书ID查询
	FindByBookID(ctx context.Context, bookID uint) (*Inventory, error)

	Create(ctx context.Context, inv *Inventory) error

	// Overwrite 直接覆盖库存数量和更新时间(不做一致性校验)
	Overwrite(ctx context.Context, id uint, stock int, at time.Time) (*Inventory, error)

	// Adjust 原子调整库存
	// UPDATE inventario SET stock = stock + delta ... WHERE id_libro = ? [AND stock + delta >= 0]
	// Guarded调整影响0行时返回ErrInsufficientStock
	// 非Guarded调整影响0行时返回ErrInventoryNotFound
	Adjust(ctx context.Context, adj Adjustment) error

	// DeleteByBookID 删除图书的库存记录(删除图书前调用)
	DeleteByBookID(ctx context.Context, bookID uint) error
}
