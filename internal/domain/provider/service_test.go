package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	items   map[uint]*Provider
	deleted []uint
}

func (r *fakeRepo) List(context.Context) ([]*Provider, error) {
	var out []*Provider
	for _, p := range r.items {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeRepo) FindByID(_ context.Context, id uint) (*Provider, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, ErrProviderNotFound
	}
	return p, nil
}

func (r *fakeRepo) Create(_ context.Context, p *Provider) error {
	p.ID = uint(len(r.items) + 1)
	r.items[p.ID] = p
	return nil
}

func (r *fakeRepo) Update(_ context.Context, p *Provider) error {
	if _, ok := r.items[p.ID]; !ok {
		return ErrProviderNotFound
	}
	r.items[p.ID] = p
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.items[id]; !ok {
		return ErrProviderNotFound
	}
	delete(r.items, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeBooks struct {
	count int64
	err   error
}

func (b fakeBooks) CountByProviderID(context.Context, uint) (int64, error) {
	return b.count, b.err
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("有图书时拒绝删除", func(t *testing.T) {
		repo := &fakeRepo{items: map[uint]*Provider{1: {ID: 1, Name: "Sur"}}}
		svc := NewService(repo, fakeBooks{count: 2})

		assert.ErrorIs(t, svc.Delete(ctx, 1), ErrProviderHasBooks)
		assert.Empty(t, repo.deleted)
	})

	t.Run("没有图书时删除", func(t *testing.T) {
		repo := &fakeRepo{items: map[uint]*Provider{1: {ID: 1, Name: "Sur"}}}
		svc := NewService(repo, fakeBooks{})

		require.NoError(t, svc.Delete(ctx, 1))
		assert.Equal(t, []uint{1}, repo.deleted)
	})

	t.Run("计数失败", func(t *testing.T) {
		boom := errors.New("db down")
		svc := NewService(&fakeRepo{items: map[uint]*Provider{}}, fakeBooks{err: boom})
		assert.ErrorIs(t, svc.Delete(ctx, 1), boom)
	})

	t.Run("不存在", func(t *testing.T) {
		svc := NewService(&fakeRepo{items: map[uint]*Provider{}}, fakeBooks{})
		assert.ErrorIs(t, svc.Delete(ctx, 9), ErrProviderNotFound)
	})
}

func TestService_Update(t *testing.T) {
	repo := &fakeRepo{items: map[uint]*Provider{3: {ID: 3, Name: "Sur"}}}
	svc := NewService(repo, fakeBooks{})

	p, err := svc.Update(context.Background(), 3, &Provider{Name: "Norte"})
	require.NoError(t, err)
	assert.Equal(t, uint(3), p.ID)
	assert.Equal(t, "Norte", repo.items[3].Name)

	_, err = svc.Update(context.Background(), 4, &Provider{Name: "x"})
	assert.ErrorIs(t, err, ErrProviderNotFound)
}
