package book

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/libreria/backoffice/internal/domain/provider"
)

// Service 图书领域服务接口
// 创建和删除涉及库存表,由application/book的用例在事务内完成
type Service interface {
	List(ctx context.Context) ([]*Book, error)

	// Get 获取图书详情(先查缓存,未命中再查数据库并回填)
	Get(ctx context.Context, id uint) (*Book, error)

	// Update 更新图书
	// 业务规则:id_proveedor非空时供应商必须存在
	Update(ctx context.Context, id uint, b *Book) (*Book, error)

	// CheckProvider 校验供应商存在(providerID为nil时跳过)
	CheckProvider(ctx context.Context, providerID *uint) error

	// Invalidate 删除详情缓存
	Invalidate(ctx context.Context, id uint)
}

type service struct {
	repo      Repository
	providers provider.Repository
	cache     Cache
}

// NewService 创建图书领域服务
func NewService(repo Repository, providers provider.Repository, cache Cache) Service {
	return &service{repo: repo, providers: providers, cache: cache}
}

func (s *service) List(ctx context.Context) ([]*Book, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id uint) (*Book, error) {
	// 缓存故障不影响读取,降级到数据库
	cached, err := s.cache.Get(ctx, id)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Uint("book_id", id).Msg("读取图书缓存失败")
	}
	if cached != nil {
		return cached, nil
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, b); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Uint("book_id", id).Msg("写入图书缓存失败")
	}
	return b, nil
}

func (s *service) Update(ctx context.Context, id uint, b *Book) (*Book, error) {
	if b.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if err := s.CheckProvider(ctx, b.ProviderID); err != nil {
		return nil, err
	}

	b.ID = id
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	// 更新数据库后删除缓存
	s.Invalidate(ctx, id)
	return b, nil
}

func (s *service) CheckProvider(ctx context.Context, providerID *uint) error {
	if providerID == nil {
		return nil
	}
	_, err := s.providers.FindByID(ctx, *providerID)
	return err
}

func (s *service) Invalidate(ctx context.Context, id uint) {
	if err := s.cache.Delete(ctx, id); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Uint("book_id", id).Msg("删除图书缓存失败")
	}
}
