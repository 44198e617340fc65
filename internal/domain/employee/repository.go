package employee

import "context"

// Repository 员工仓储接口
type Repository interface {
	List(ctx context.Context) ([]*Employee, error)
	FindByID(ctx context.Context, id uint) (*Employee, error)
	Create(ctx context.Context, e *Employee) error
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id uint) error
}

// SaleCounter 统计员工经手的销售记录数
type SaleCounter interface {
	CountByEmployeeID(ctx context.Context, employeeID uint) (int64, error)
}
