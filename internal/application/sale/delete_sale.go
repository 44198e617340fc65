package sale

import (
	"context"
	"time"

	"github.com/libreria/backoffice/internal/domain/inventory"
	"github.com/libreria/backoffice/internal/domain/sale"
	"github.com/libreria/backoffice/internal/infrastructure/persistence/database"
	"github.com/libreria/backoffice/pkg/metrics"
	"github.com/libreria/backoffice/pkg/tracing"
)

// DeleteSaleUseCase 删除销售用例
// 删除销售并回补库存,ultima_actualizacion记为当前时间(不是销售日期)
type DeleteSaleUseCase struct {
	txManager *database.TxManager
	saleRepo  sale.Repository
	invRepo   inventory.Repository
	publisher sale.EventPublisher
	now       func() time.Time
}

// NewDeleteSaleUseCase 创建删除销售用例
func NewDeleteSaleUseCase(
	txManager *database.TxManager,
	saleRepo sale.Repository,
	invRepo inventory.Repository,
	publisher sale.EventPublisher,
) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{
		txManager: txManager,
		saleRepo:  saleRepo,
		invRepo:   invRepo,
		publisher: publisher,
		now:       time.Now,
	}
}

// Execute 执行删除销售用例
func (uc *DeleteSaleUseCase) Execute(ctx context.Context, id uint) (err error) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, tracerName, "sale.Delete")
	defer func() {
		tracing.RecordError(span, err)
		span.End()
		observe(metrics.OpDelete, start, err)
	}()

	var (
		prev *sale.Sale
		plan []inventory.Adjustment
	)
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		var err error
		prev, err = uc.saleRepo.LockByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := uc.saleRepo.Delete(txCtx, id); err != nil {
			return err
		}

		plan = sale.PlanDelete(*prev, uc.now())
		return applyPlan(txCtx, uc.invRepo, plan)
	})
	if err != nil {
		return err
	}

	publishEvent(ctx, uc.publisher, sale.EventDeleted, prev, plan)
	return nil
}
