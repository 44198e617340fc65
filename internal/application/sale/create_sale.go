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

// CreateSaleUseCase 创建销售用例
//
// 并发场景:库存2本,两个请求同时各买2本
// 错误实现:先查询库存够不够,再扣减,两个请求都通过检查,库存变成-2
// 当前实现:
//  1. 条件UPDATE: stock = stock - n WHERE stock - n >= 0
//  2. 影响0行即库存不足,整个事务回滚,不创建销售
//
// 检查和扣减是同一条SQL,由数据库行锁串行化
type CreateSaleUseCase struct {
	txManager        *database.TxManager
	saleRepo         sale.Repository
	invRepo          inventory.Repository
	clientRepo       client.Repository
	employeeRepo     employee.Repository
	publisher        sale.EventPublisher
	allowNonPositive bool
}

// NewCreateSaleUseCase 创建销售用例
func NewCreateSaleUseCase(
	txManager *database.TxManager,
	saleRepo sale.Repository,
	invRepo inventory.Repository,
	clientRepo client.Repository,
	employeeRepo employee.Repository,
	publisher sale.EventPublisher,
	cfg *config.Config,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txManager:        txManager,
		saleRepo:         saleRepo,
		invRepo:          invRepo,
		clientRepo:       clientRepo,
		employeeRepo:     employeeRepo,
		publisher:        publisher,
		allowNonPositive: cfg.Sales.AllowNonPositiveQuantity,
	}
}

// Execute 执行创建销售用例
func (uc *CreateSaleUseCase) Execute(ctx context.Context, req SaleRequest) (result *sale.Sale, err error) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, tracerName, "sale.Create")
	defer func() {
		tracing.RecordError(span, err)
		span.End()
		observe(metrics.OpCreate, start, err)
	}()

	s := req.toSale(0)
	if err := s.Validate(uc.allowNonPositive); err != nil {
		return nil, err
	}

	plan := sale.PlanCreate(s)
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if err := checkParties(txCtx, uc.clientRepo, uc.employeeRepo, s); err != nil {
			return err
		}
		// 先扣库存:不足时直接失败,销售不会写入
		if err := applyPlan(txCtx, uc.invRepo, plan); err != nil {
			return err
		}
		return uc.saleRepo.Create(txCtx, &s)
	})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, uc.publisher, sale.EventCreated, &s, plan)
	return &s, nil
}
