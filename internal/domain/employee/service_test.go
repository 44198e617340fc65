package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	Repository
	deleted int
}

func (r *fakeRepo) Delete(context.Context, uint) error {
	r.deleted++
	return nil
}

type fakeSales int64

func (n fakeSales) CountByEmployeeID(context.Context, uint) (int64, error) {
	return int64(n), nil
}

func TestService_Delete(t *testing.T) {
	repo := &fakeRepo{}

	assert.ErrorIs(t, NewService(repo, fakeSales(3)).Delete(context.Background(), 1), ErrEmployeeHasSales)
	assert.Zero(t, repo.deleted)

	assert.NoError(t, NewService(repo, fakeSales(0)).Delete(context.Background(), 1))
	assert.Equal(t, 1, repo.deleted)
}
