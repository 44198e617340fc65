package book

import (
	"context"
	"time"

	"github.com/libreria/backoffice/internal/domain/book"
	"github.com/libreria/backoffice/internal/domain/inventory"
	"github.com/libreria/backoffice/internal/infrastructure/persistence/database"
	"github.com/libreria/backoffice/pkg/tracing"
)

// CreateBookUseCase 新增图书用例
// 设计说明:
// 1. 图书和它的库存行在同一事务内创建(图书与库存一对一)
// 2. 初始库存取自请求的stock字段,缺省为0
// 3. id_proveedor非空时供应商必须存在
type CreateBookUseCase struct {
	txManager   *database.TxManager
	bookRepo    book.Repository
	invRepo     inventory.Repository
	bookService book.Service
	now         func() time.Time
}

// NewCreateBookUseCase 创建新增图书用例
func NewCreateBookUseCase(
	txManager *database.TxManager,
	bookRepo book.Repository,
	invRepo inventory.Repository,
	bookService book.Service,
) *CreateBookUseCase {
	return &CreateBookUseCase{
		txManager:   txManager,
		bookRepo:    bookRepo,
		invRepo:     invRepo,
		bookService: bookService,
		now:         time.Now,
	}
}

// CreateBookRequest 新增图书请求
type CreateBookRequest struct {
	Book  book.Book
	Stock int // 初始库存
}

// Execute 执行新增图书用例
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*book.Book, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "book.Create")
	defer span.End()

	if req.Book.Price.IsNegative() {
		return nil, book.ErrInvalidPrice
	}
	if req.Stock < 0 {
		return nil, inventory.ErrInvalidStock
	}

	b := req.Book
	b.ID = 0
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if err := uc.bookService.CheckProvider(txCtx, b.ProviderID); err != nil {
			return err
		}
		if err := uc.bookRepo.Create(txCtx, &b); err != nil {
			return err
		}
		return uc.invRepo.Create(txCtx, &inventory.Inventory{
			BookID:      b.ID,
			Stock:       req.Stock,
			LastUpdated: uc.now(),
		})
	})
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	return &b, nil
}
