package book_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookcase "github.com/libreria/backoffice/internal/application/book"
	"github.com/libreria/backoffice/internal/domain/book"
	"github.com/libreria/backoffice/internal/domain/client"
	"github.com/libreria/backoffice/internal/domain/employee"
	"github.com/libreria/backoffice/internal/domain/inventory"
	"github.com/libreria/backoffice/internal/domain/provider"
	"github.com/libreria/backoffice/internal/domain/sale"
	"github.com/libreria/backoffice/internal/infrastructure/persistence/database"
	"github.com/libreria/backoffice/internal/infrastructure/persistence/database/dbtest"
)

// memoryCache 记录缓存删除
type memoryCache struct {
	items   map[uint]*book.Book
	deleted []uint
}

func (c *memoryCache) Get(_ context.Context, id uint) (*book.Book, error) { return c.items[id], nil }
func (c *memoryCache) Set(_ context.Context, b *book.Book) error {
	c.items[b.ID] = b
	return nil
}
func (c *memoryCache) Delete(_ context.Context, id uint) error {
	delete(c.items, id)
	c.deleted = append(c.deleted, id)
	return nil
}

type env struct {
	ctx       context.Context
	books     book.Repository
	providers provider.Repository
	inventory inventory.Repository
	sales     sale.Repository
	clients   client.Repository
	employees employee.Repository
	cache     *memoryCache
	create    *bookcase.CreateBookUseCase
	delete    *bookcase.DeleteBookUseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := dbtest.New(t)
	e := &env{
		ctx:       context.Background(),
		books:     database.NewBookRepository(db),
		providers: database.NewProviderRepository(db),
		inventory: database.NewInventoryRepository(db),
		sales:     database.NewSaleRepository(db),
		clients:   database.NewClientRepository(db),
		employees: database.NewEmployeeRepository(db),
		cache:     &memoryCache{items: map[uint]*book.Book{}},
	}
	tx := database.NewTxManager(db)
	svc := book.NewService(e.books, e.providers, e.cache)
	e.create = bookcase.NewCreateBookUseCase(tx, e.books, e.inventory, svc)
	e.delete = bookcase.NewDeleteBookUseCase(tx, e.books, e.inventory, e.sales, svc)
	return e
}

func TestCreateBook(t *testing.T) {
	t.Run("同时创建库存行", func(t *testing.T) {
		e := newEnv(t)
		before := time.Now().Add(-time.Second)

		b, err := e.create.Execute(e.ctx, bookcase.CreateBookRequest{
			Book:  book.Book{Title: "La casa de los espíritus", Author: "Allende", Price: decimal.RequireFromString("18.00")},
			Stock: 12,
		})
		require.NoError(t, err)
		assert.NotZero(t, b.ID)

		inv, err := e.inventory.FindByBookID(e.ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, 12, inv.Stock)
		assert.True(t, inv.LastUpdated.After(before))
	})

	t.Run("库存缺省为0", func(t *testing.T) {
		e := newEnv(t)
		b, err := e.create.Execute(e.ctx, bookcase.CreateBookRequest{Book: book.Book{Title: "Sin stock"}})
		require.NoError(t, err)

		inv, err := e.inventory.FindByBookID(e.ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, inv.Stock)
	})

	t.Run("供应商不存在", func(t *testing.T) {
		e := newEnv(t)
		missing := uint(42)
		_, err := e.create.Execute(e.ctx, bookcase.CreateBookRequest{Book: book.Book{Title: "x", ProviderID: &missing}})
		assert.ErrorIs(t, err, provider.ErrProviderNotFound)

		list, err := e.books.List(e.ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("参数校验", func(t *testing.T) {
		e := newEnv(t)
		_, err := e.create.Execute(e.ctx, bookcase.CreateBookRequest{Book: book.Book{Title: "x", Price: decimal.NewFromInt(-1)}})
		assert.ErrorIs(t, err, book.ErrInvalidPrice)

		_, err = e.create.Execute(e.ctx, bookcase.CreateBookRequest{Book: book.Book{Title: "x"}, Stock: -3})
		assert.ErrorIs(t, err, inventory.ErrInvalidStock)
	})
}

func TestDeleteBook(t *testing.T) {
	t.Run("删除图书和库存并清理缓存", func(t *testing.T) {
		e := newEnv(t)
		b, err := e.create.Execute(e.ctx, bookcase.CreateBookRequest{Book: book.Book{Title: "Borrar"}, Stock: 3})
		require.NoError(t, err)

		require.NoError(t, e.delete.Execute(e.ctx, b.ID))

		_, err = e.books.FindByID(e.ctx, b.ID)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
		_, err = e.inventory.FindByBookID(e.ctx, b.ID)
		assert.ErrorIs(t, err, inventory.ErrInventoryNotFound)
		assert.Equal(t, []uint{b.ID}, e.cache.deleted)
	})

	t.Run("有销售时拒绝删除", func(t *testing.T) {
		e := newEnv(t)
		b, err := e.create.Execute(e.ctx, bookcase.CreateBookRequest{Book: book.Book{Title: "Vendido"}, Stock: 3})
		require.NoError(t, err)

		c := &client.Client{Name: "Ana"}
		require.NoError(t, e.clients.Create(e.ctx, c))
		emp := &employee.Employee{Name: "Luis"}
		require.NoError(t, e.employees.Create(e.ctx, emp))
		require.NoError(t, e.sales.Create(e.ctx, &sale.Sale{ClientID: c.ID, BookID: b.ID, EmployeeID: emp.ID, PurchaseDate: time.Now(), Quantity: 1}))

		err = e.delete.Execute(e.ctx, b.ID)
		assert.ErrorIs(t, err, book.ErrBookHasSales)

		// 库存行仍在
		inv, err := e.inventory.FindByBookID(e.ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, inv.Stock)
		assert.Empty(t, e.cache.deleted)
	})

	t.Run("图书不存在", func(t *testing.T) {
		e := newEnv(t)
		assert.ErrorIs(t, e.delete.Execute(e.ctx, 999), book.ErrBookNotFound)
	})
}
