package sale_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	salecase "github.com/libreria/backoffice/internal/application/sale"
	"github.com/libreria/backoffice/internal/domain/book"
	"github.com/libreria/backoffice/internal/domain/client"
	"github.com/libreria/backoffice/internal/domain/employee"
	"github.com/libreria/backoffice/internal/domain/inventory"
	"github.com/libreria/backoffice/internal/domain/sale"
	"github.com/libreria/backoffice/internal/infrastructure/config"
	"github.com/libreria/backoffice/internal/infrastructure/persistence/database"
	"github.com/libreria/backoffice/internal/infrastructure/persistence/database/dbtest"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []sale.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e sale.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

// failingCreateRepo 扣减库存之后插入销售失败
type failingCreateRepo struct {
	sale.Repository
}

func (failingCreateRepo) Create(context.Context, *sale.Sale) error {
	return errors.New("insert failed")
}

type env struct {
	ctx       context.Context
	cfg       *config.Config
	tx        *database.TxManager
	books     book.Repository
	inventory inventory.Repository
	sales     sale.Repository
	clients   client.Repository
	employees employee.Repository
	pub       *recordingPublisher

	create *salecase.CreateSaleUseCase
	update *salecase.UpdateSaleUseCase
	delete *salecase.DeleteSaleUseCase

	clientID   uint
	employeeID uint
}

var purchaseDate = time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

func newEnv(t *testing.T) *env {
	t.Helper()
	db := dbtest.New(t)
	e := &env{
		ctx:       context.Background(),
		cfg:       &config.Config{},
		tx:        database.NewTxManager(db),
		books:     database.NewBookRepository(db),
		inventory: database.NewInventoryRepository(db),
		sales:     database.NewSaleRepository(db),
		clients:   database.NewClientRepository(db),
		employees: database.NewEmployeeRepository(db),
		pub:       &recordingPublisher{},
	}
	e.build()

	c := &client.Client{Name: "Ana"}
	require.NoError(t, e.clients.Create(e.ctx, c))
	emp := &employee.Employee{Name: "Luis"}
	require.NoError(t, e.employees.Create(e.ctx, emp))
	e.clientID, e.employeeID = c.ID, emp.ID
	return e
}

func (e *env) build() {
	e.create = salecase.NewCreateSaleUseCase(e.tx, e.sales, e.inventory, e.clients, e.employees, e.pub, e.cfg)
	e.update = salecase.NewUpdateSaleUseCase(e.tx, e.sales, e.inventory, e.clients, e.employees, e.pub, e.cfg)
	e.delete = salecase.NewDeleteSaleUseCase(e.tx, e.sales, e.inventory, e.pub)
}

// bookWithStock 创建图书,stock<0表示不创建库存行
func (e *env) bookWithStock(t *testing.T, stock int) uint {
	t.Helper()
	b := &book.Book{Title: "Libro"}
	require.NoError(t, e.books.Create(e.ctx, b))
	if stock >= 0 {
		require.NoError(t, e.inventory.Create(e.ctx, &inventory.Inventory{BookID: b.ID, Stock: stock, LastUpdated: time.Now()}))
	}
	return b.ID
}

func (e *env) stock(t *testing.T, bookID uint) int {
	t.Helper()
	inv, err := e.inventory.FindByBookID(e.ctx, bookID)
	require.NoError(t, err)
	return inv.Stock
}

func (e *env) req(bookID uint, qty int) salecase.SaleRequest {
	return salecase.SaleRequest{ClientID: e.clientID, BookID: bookID, EmployeeID: e.employeeID, PurchaseDate: purchaseDate, Quantity: qty}
}

func (e *env) saleCount(t *testing.T) int {
	t.Helper()
	list, err := e.sales.List(e.ctx)
	require.NoError(t, err)
	return len(list)
}

func TestCreateSale(t *testing.T) {
	t.Run("库存充足扣减并记录销售日期", func(t *testing.T) {
		e := newEnv(t)
		bookID := e.bookWithStock(t, 10)

		s, err := e.create.Execute(e.ctx, e.req(bookID, 3))
		require.NoError(t, err)
		assert.NotZero(t, s.ID)

		inv, err := e.inventory.FindByBookID(e.ctx, bookID)
		require.NoError(t, err)
		assert.Equal(t, 7, inv.Stock)
		assert.Equal(t, "2024-05-02", inv.LastUpdated.UTC().Format("2006-01-02"))
		assert.Equal(t, []string{sale.EventCreated}, e.pub.types())
	})

	t.Run("库存不足不创建销售", func(t *testing.T) {
		e := newEnv(t)
		bookID := e.bookWithStock(t, 2)

		_, err := e.create.Execute(e.ctx, e.req(bookID, 5))
		assert.ErrorIs(t, err, inventory.ErrInsufficientStock)
		assert.Equal(t, 2, e.stock(t, bookID))
		assert.Zero(t, e.saleCount(t))
		assert.Empty(t, e.pub.types())
	})

	t.Run("没有库存行视为库存不足", func(t *testing.T) {
		e := newEnv(t)
		bookID := e.bookWithStock(t, -1)

		_, err := e.create.Execute(e.ctx, e.req(bookID, 1))
		assert.ErrorIs(t, err, inventory.ErrInsufficientStock)
		assert.Zero(t, e.saleCount(t))
	})

	t.Run("数量必须大于0", func(t *testing.T) {
		e := newEnv(t)
		bookID := e.bookWithStock(t, 2)

		_, err := e.create.Execute(e.ctx, e.req(bookID, 0))
		assert.ErrorIs(t, err, sale.ErrInvalidQuantity)

		// 兼容模式接受非正数量
		e.cfg.Sales.AllowNonPositiveQuantity = true
		e.build()
		_, err = e.create.Execute(e.ctx, e.req(bookID, 0))
		assert.NoError(t, err)
		assert.Equal(t, 2, e.stock(t, bookID))
	})

	t.Run("客户不存在", func(t *testing.T) {
		e := newEnv(t)
		bookID := e.bookWithStock(t, 5)
		req := e.req(bookID, 1)
		req.ClientID = 999

		_, err := e.create.Execute(e.ctx, req)
		assert.ErrorIs(t, err, client.ErrClientNotFound)
		assert.Equal(t, 5, e.stock(t, bookID))
	})

	t.Run("员工不存在", func(t *testing.T) {
		e := newEnv(t)
		bookID := e.bookWithStock(t, 5)
		req := e.req(bookID, 1)
		req.EmployeeID = 999

		_, err := e.create.Execute(e.ctx, req)
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})

	t.Run("插入销售失败时库存回滚", func(t *testing.T) {
		e := newEnv(t)
		bookID := e.bookWithStock(t, 5)
		e.sales = failingCreateRepo{Repository: e.sales}
		e.build()

		_, err := e.create.Execute(e.ctx, e.req(bookID, 2))
		assert.Error(t, err)
		assert.Equal(t, 5, e.stock(t, bookID))
	})
}

func TestCreateSale_Concurrent(t *testing.T) {
	e := newEnv(t)
	const stock, workers = 5, 20
	bookID := e.bookWithStock(t, stock)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
		others    []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.create.Execute(e.ctx, e.req(bookID, 1))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, inventory.ErrInsufficientStock):
				rejected++
			default:
				others = append(others, err)
			}
		}()
	}
	wg.Wait()

	require.Empty(t, others)
	assert.Equal(t, stock, succeeded)
	assert.Equal(t, workers-stock, rejected)
	assert.Equal(t, 0, e.stock(t, bookID))
	assert.Equal(t, stock, e.saleCount(t))
}

func TestUpdateSale(t *testing.T) {
	t.Run("同一本书增加数量", func(t *testing.T) {
		e := newEnv(t)
		bookID := e.bookWithStock(t, 10)
		s, err := e.create.Execute(e.ctx, e.req(bookID, 3))
		require.NoError(t, err)

		updated, err := e.update.Execute(e.ctx, s.ID, e.req(bookID, 5))
		require.NoError(t, err)
		assert.Equal(t, 5, updated.Quantity)
		assert.Equal(t, 5, e.stock(t, bookID))
	})

	t.Run("同一本书减少数量回补", func(t *testing.T) {
		e := newEnv(t)
		bookID := e.bookWithStock(t, 10)
		s, err := e.create.Execute(e.ctx, e.req(bookID, 3))
		require.NoError(t, err)

		_, err = e.update.Execute(e.ctx, s.ID, e.req(bookID, 1))
		require.NoError(t, err)
		assert.Equal(t, 9, e.stock(t, bookID))
	})

	t.Run("同一本书增量超过库存", func(t *testing.T) {
		e := newEnv(t)
		bookID := e.bookWithStock(t, 4)
		s, err := e.create.Execute(e.ctx, e.req(bookID, 3))
		require.NoError(t, err)

		_, err = e.update.Execute(e.ctx, s.ID, e.req(bookID, 5))
		assert.ErrorIs(t, err, inventory.ErrInsufficientStock)
		assert.Equal(t, 1, e.stock(t, bookID))

		got, err := e.sales.FindByID(e.ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, got.Quantity)
	})

	t.Run("换书:旧书回补新书扣减", func(t *testing.T) {
		e := newEnv(t)
		bookA := e.bookWithStock(t, 8)
		bookB := e.bookWithStock(t, 10)
		s, err := e.create.Execute(e.ctx, e.req(bookA, 4))
		require.NoError(t, err)
		require.Equal(t, 4, e.stock(t, bookA))

		_, err = e.update.Execute(e.ctx, s.ID, e.req(bookB, 3))
		require.NoError(t, err)
		assert.Equal(t, 8, e.stock(t, bookA))
		assert.Equal(t, 7, e.stock(t, bookB))
		assert.Equal(t, []string{sale.EventCreated, sale.EventUpdated}, e.pub.types())
	})

	t.Run("换书时新书库存不足不做任何修改", func(t *testing.T) {
		e := newEnv(t)
		bookA := e.bookWithStock(t, 8)
		bookB := e.bookWithStock(t, 1)
		s, err := e.create.Execute(e.ctx, e.req(bookA, 4))
		require.NoError(t, err)

		_, err = e.update.Execute(e.ctx, s.ID, e.req(bookB, 3))
		assert.ErrorIs(t, err, inventory.ErrInsufficientStock)
		assert.Equal(t, 4, e.stock(t, bookA))
		assert.Equal(t, 1, e.stock(t, bookB))

		got, err := e.sales.FindByID(e.ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, bookA, got.BookID)
	})

	t.Run("销售不存在", func(t *testing.T) {
		e := newEnv(t)
		bookID := e.bookWithStock(t, 5)

		_, err := e.update.Execute(e.ctx, 999, e.req(bookID, 1))
		assert.ErrorIs(t, err, sale.ErrSaleNotFound)
		assert.Equal(t, 5, e.stock(t, bookID))
	})
}

func TestDeleteSale(t *testing.T) {
	t.Run("删除回补库存并记录当前时间", func(t *testing.T) {
		e := newEnv(t)
		bookID := e.bookWithStock(t, 10)
		s, err := e.create.Execute(e.ctx, e.req(bookID, 4))
		require.NoError(t, err)

		require.NoError(t, e.delete.Execute(e.ctx, s.ID))

		inv, err := e.inventory.FindByBookID(e.ctx, bookID)
		require.NoError(t, err)
		assert.Equal(t, 10, inv.Stock)
		assert.True(t, inv.LastUpdated.After(purchaseDate))

		_, err = e.sales.FindByID(e.ctx, s.ID)
		assert.ErrorIs(t, err, sale.ErrSaleNotFound)
		assert.Equal(t, []string{sale.EventCreated, sale.EventDeleted}, e.pub.types())
	})

	t.Run("重复删除返回不存在", func(t *testing.T) {
		e := newEnv(t)
		bookID := e.bookWithStock(t, 10)
		s, err := e.create.Execute(e.ctx, e.req(bookID, 1))
		require.NoError(t, err)

		require.NoError(t, e.delete.Execute(e.ctx, s.ID))
		assert.ErrorIs(t, e.delete.Execute(e.ctx, s.ID), sale.ErrSaleNotFound)
		assert.Equal(t, 10, e.stock(t, bookID))
	})

	t.Run("库存行缺失时仍可删除", func(t *testing.T) {
		e := newEnv(t)
		bookID := e.bookWithStock(t, 10)
		s, err := e.create.Execute(e.ctx, e.req(bookID, 2))
		require.NoError(t, err)
		require.NoError(t, e.inventory.DeleteByBookID(e.ctx, bookID))

		require.NoError(t, e.delete.Execute(e.ctx, s.ID))
		assert.Zero(t, e.saleCount(t))
	})
}

// 任意顺序的创建、修改、删除之后:库存 = 初始库存 - 有效销售数量之和
func TestInventoryInvariant(t *testing.T) {
	e := newEnv(t)
	bookA := e.bookWithStock(t, 20)
	bookB := e.bookWithStock(t, 20)

	s1, err := e.create.Execute(e.ctx, e.req(bookA, 3))
	require.NoError(t, err)
	s2, err := e.create.Execute(e.ctx, e.req(bookB, 5))
	require.NoError(t, err)
	_, err = e.update.Execute(e.ctx, s1.ID, e.req(bookB, 2))
	require.NoError(t, err)
	_, err = e.update.Execute(e.ctx, s2.ID, e.req(bookB, 7))
	require.NoError(t, err)
	s3, err := e.create.Execute(e.ctx, e.req(bookA, 4))
	require.NoError(t, err)
	require.NoError(t, e.delete.Execute(e.ctx, s1.ID))
	_, err = e.create.Execute(e.ctx, e.req(bookA, 50))
	require.ErrorIs(t, err, inventory.ErrInsufficientStock)

	active, err := e.sales.List(e.ctx)
	require.NoError(t, err)
	sold := map[uint]int{}
	for _, s := range active {
		sold[s.BookID] += s.Quantity
	}
	assert.Equal(t, 20-sold[bookA], e.stock(t, bookA))
	assert.Equal(t, 20-sold[bookB], e.stock(t, bookB))
	assert.Equal(t, 4, sold[bookA])
	assert.Equal(t, s3.BookID, bookA)
}
