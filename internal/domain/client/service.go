package client

import (
	"context"
)

// Service 客户领域服务接口
type Service interface {
	List(ctx context.Context) ([]*Client, error)
	Get(ctx context.Context, id uint) (*Client, error)
	Create(ctx context.Context, c *Client) (*Client, error)
	Update(ctx context.Context, id uint, c *Client) (*Client, error)

	// Delete 业务规则:有销售记录时不能删除
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo  Repository
	sales SaleCounter
}

// NewService 创建客户领域服务
func NewService(repo Repository, sales SaleCounter) Service {
	return &service{repo: repo, sales: sales}
}

func (s *service) List(ctx context.Context) ([]*Client, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id uint) (*Client, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Create(ctx context.Context, c *Client) (*Client, error) {
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, id uint, c *Client) (*Client, error) {
	c.ID = id
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	n, err := s.sales.CountByClientID(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrClientHasSales
	}
	return s.repo.Delete(ctx, id)
}
