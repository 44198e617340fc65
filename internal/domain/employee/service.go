package employee

import (
	"context"
)

// Service 员工领域服务接口
type Service interface {
	List(ctx context.Context) ([]*Employee, error)
	Get(ctx context.Context, id uint) (*Employee, error)
	Create(ctx context.Context, e *Employee) (*Employee, error)
	Update(ctx context.Context, id uint, e *Employee) (*Employee, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo  Repository
	sales SaleCounter
}

// NewService 创建员工领域服务
func NewService(repo Repository, sales SaleCounter) Service {
	return &service{repo: repo, sales: sales}
}

func (s *service) List(ctx context.Context) ([]*Employee, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id uint) (*Employee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Create(ctx context.Context, e *Employee) (*Employee, error) {
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) Update(ctx context.Context, id uint, e *Employee) (*Employee, error) {
	e.ID = id
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete 删除员工
// 业务规则:经手过销售的员工不能删除
func (s *service) Delete(ctx context.Context, id uint) error {
	n, err := s.sales.CountByEmployeeID(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrEmployeeHasSales
	}
	return s.repo.Delete(ctx, id)
}
