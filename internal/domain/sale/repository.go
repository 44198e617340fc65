package sale

import "context"

// Repository 销售仓储接口
type Repository interface {
	List(ctx context.Context) ([]*Sale, error)
	FindByID(ctx context.Context, id uint) (*Sale, error)

	// LockByID SELECT ... FOR UPDATE 锁定销售记录
	// 必须在事务内调用,防止并发修改同一笔销售导致库存重复回补
	LockByID(ctx context.Context, id uint) (*Sale, error)

	Create(ctx context.Context, s *Sale) error
	Update(ctx context.Context, s *Sale) error

	// Delete 影响0行时返回ErrSaleNotFound
	Delete(ctx context.Context, id uint) error

	// 以下计数供删除图书、客户、员工前做引用检查
	CountByBookID(ctx context.Context, bookID uint) (int64, error)
	CountByClientID(ctx context.Context, clientID uint) (int64, error)
	CountByEmployeeID(ctx context.Context, employeeID uint) (int64, error)
}
