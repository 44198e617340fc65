package inventory

import (
	"context"
	"time"
)

// Service 库存领域服务接口
type Service interface {
	List(ctx context.Context) ([]*Inventory, error)
	Get(ctx context.Context, id uint) (*Inventory, error)

	// Update 人工盘点:直接覆盖stock
	// at为nil时使用当前时间
	Update(ctx context.Context, id uint, stock int, at *time.Time) (*Inventory, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService 创建库存领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) List(ctx context.Context) ([]*Inventory, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id uint) (*Inventory, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id uint, stock int, at *time.Time) (*Inventory, error) {
	if stock < 0 {
		return nil, ErrInvalidStock
	}
	stamp := s.now()
	if at != nil {
		stamp = *at
	}
	return s.repo.Overwrite(ctx, id, stock, stamp)
}
