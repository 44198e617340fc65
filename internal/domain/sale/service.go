package sale

import "context"

// Service 销售查询服务
// 写操作涉及库存,放在application/sale的用例中(需要事务)
type Service interface {
	List(ctx context.Context) ([]*Sale, error)
	Get(ctx context.Context, id uint) (*Sale, error)
}

type service struct {
	repo Repository
}

// NewService 创建销售查询服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Sale, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id uint) (*Sale, error) {
	return s.repo.FindByID(ctx, id)
}
