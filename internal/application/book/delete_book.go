package book

import (
	"context"

	"github.com/libreria/backoffice/internal/domain/book"
	"github.com/libreria/backoffice/internal/domain/inventory"
	"github.com/libreria/backoffice/internal/domain/sale"
	"github.com/libreria/backoffice/internal/infrastructure/persistence/database"
	"github.com/libreria/backoffice/pkg/tracing"
)

const tracerName = "application/book"

// DeleteBookUseCase 删除图书用例
// 业务规则:
// 1. 有销售记录引用的图书不能删除
// 2. 先删库存行再删图书,同一事务
// 3. 提交后删除详情缓存
type DeleteBookUseCase struct {
	txManager   *database.TxManager
	bookRepo    book.Repository
	invRepo     inventory.Repository
	saleRepo    sale.Repository
	bookService book.Service
}

// NewDeleteBookUseCase 创建删除图书用例
func NewDeleteBookUseCase(
	txManager *database.TxManager,
	bookRepo book.Repository,
	invRepo inventory.Repository,
	saleRepo sale.Repository,
	bookService book.Service,
) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		txManager:   txManager,
		bookRepo:    bookRepo,
		invRepo:     invRepo,
		saleRepo:    saleRepo,
		bookService: bookService,
	}
}

// Execute 执行删除图书用例
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	ctx, span := tracing.StartSpan(ctx, tracerName, "book.Delete")
	defer span.End()

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.bookRepo.FindByID(txCtx, id); err != nil {
			return err
		}

		n, err := uc.saleRepo.CountByBookID(txCtx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return book.ErrBookHasSales
		}

		if err := uc.invRepo.DeleteByBookID(txCtx, id); err != nil {
			return err
		}
		return uc.bookRepo.Delete(txCtx, id)
	})
	if err != nil {
		tracing.RecordError(span, err)
		return err
	}

	uc.bookService.Invalidate(ctx, id)
	return nil
}
