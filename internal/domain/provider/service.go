package provider

import (
	"context"
)

// Service 供应商领域服务接口
type Service interface {
	List(ctx context.Context) ([]*Provider, error)
	Get(ctx context.Context, id uint) (*Provider, error)
	Create(ctx context.Context, p *Provider) (*Provider, error)
	Update(ctx context.Context, id uint, p *Provider) (*Provider, error)

	// Delete 删除供应商
	// 业务规则:有图书引用时不能删除
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo  Repository
	books BookCounter
}

// NewService 创建供应商领域服务
func NewService(repo Repository, books BookCounter) Service {
	return &service{repo: repo, books: books}
}

func (s *service) List(ctx context.Context) ([]*Provider, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id uint) (*Provider, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Create(ctx context.Context, p *Provider) (*Provider, error) {
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, id uint, p *Provider) (*Provider, error) {
	p.ID = id
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	n, err := s.books.CountByProviderID(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrProviderHasBooks
	}
	return s.repo.Delete(ctx, id)
}
