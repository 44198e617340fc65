package sale

import (
	"context"
	"time"

	"github.com/libreria/backoffice/internal/domain/client"
	"github.com/libreria/backoffice/internal/domain/employee"
	"github.com/libreria/backoffice/internal/domain/inventory"
	"github.com/libreria/backoffice/internal/domain/sale"
	"github.com/libreria/backoffice/internal/infrastructure/config"
	"github.com/libreria/backoffice/internal/infrastructure/persistence/database"
	"github.com/libreria/backoffice/pkg/metrics"
	"github.com/libreria/backoffice/pkg/tracing"
)

// UpdateSaleUseCase 修改销售用例
// 1. SELECT ... FOR UPDATE 锁定原销售,并发修改同一笔销售时排队
// 2. 同一本书按数量差调整;换书时先扣新书再回补旧书
// 3. 销售和库存在同一事务,任何一步失败全部回滚
type UpdateSaleUseCase struct {
	txManager        *database.TxManager
	saleRepo         sale.Repository
	invRepo          inventory.Repository
	clientRepo       client.Repository
	employeeRepo     employee.Repository
	publisher        sale.EventPublisher
	allowNonPositive bool
}

// NewUpdateSaleUseCase 创建修改销售用例
func NewUpdateSaleUseCase(
	txManager *database.TxManager,
	saleRepo sale.Repository,
	invRepo inventory.Repository,
	clientRepo client.Repository,
	employeeRepo employee.Repository,
	publisher sale.EventPublisher,
	cfg *config.Config,
) *UpdateSaleUseCase {
	return &UpdateSaleUseCase{
		txManager:        txManager,
		saleRepo:         saleRepo,
		invRepo:          invRepo,
		clientRepo:       clientRepo,
		employeeRepo:     employeeRepo,
		publisher:        publisher,
		allowNonPositive: cfg.Sales.AllowNonPositiveQuantity,
	}
}

// Execute 执行修改销售用例
func (uc *UpdateSaleUseCase) Execute(ctx context.Context, id uint, req SaleRequest) (result *sale.Sale, err error) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, tracerName, "sale.Update")
	defer func() {
		tracing.RecordError(span, err)
		span.End()
		observe(metrics.OpUpdate, start, err)
	}()

	next := req.toSale(id)
	if err := next.Validate(uc.allowNonPositive); err != nil {
		return nil, err
	}

	var plan []inventory.Adjustment
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		prev, err := uc.saleRepo.LockByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := checkParties(txCtx, uc.clientRepo, uc.employeeRepo, next); err != nil {
			return err
		}

		plan = sale.PlanUpdate(*prev, next)
		if err := applyPlan(txCtx, uc.invRepo, plan); err != nil {
			return err
		}
		return uc.saleRepo.Update(txCtx, &next)
	})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, uc.publisher, sale.EventUpdated, &next, plan)
	return &next, nil
}
