package sale

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/libreria/backoffice/internal/domain/client"
	"github.com/libreria/backoffice/internal/domain/employee"
	"github.com/libreria/backoffice/internal/domain/inventory"
	"github.com/libreria/backoffice/internal/domain/sale"
	apperrors "github.com/libreria/backoffice/pkg/errors"
	"github.com/libreria/backoffice/pkg/metrics"
)

const tracerName = "application/sale"

// SaleRequest 创建/修改销售的输入
type SaleRequest struct {
	ClientID     uint
	BookID       uint
	EmployeeID   uint
	PurchaseDate time.Time
	Quantity     int
}

func (r SaleRequest) toSale(id uint) sale.Sale {
	return sale.Sale{
		ID:           id,
		ClientID:     r.ClientID,
		BookID:       r.BookID,
		EmployeeID:   r.EmployeeID,
		PurchaseDate: r.PurchaseDate,
		Quantity:     r.Quantity,
	}
}

// checkParties 校验客户和员工存在
func checkParties(ctx context.Context, clients client.Repository, employees employee.Repository, s sale.Sale) error {
	if _, err := clients.FindByID(ctx, s.ClientID); err != nil {
		return err
	}
	_, err := employees.FindByID(ctx, s.EmployeeID)
	return err
}

// applyPlan 按顺序执行库存调整,任何一步失败由外层事务整体回滚
// 回补时图书没有库存行只记录警告(没有可回补的库存)
func applyPlan(ctx context.Context, invRepo inventory.Repository, plan []inventory.Adjustment) error {
	for _, adj := range plan {
		err := invRepo.Adjust(ctx, adj)
		switch {
		case err == nil:
			metrics.RecordInventoryAdjustment(adj.Delta)
		case !adj.Guarded && errors.Is(err, inventory.ErrInventoryNotFound):
			zerolog.Ctx(ctx).Warn().
				Uint("id_libro", adj.BookID).
				Int("delta", adj.Delta).
				Msg("图书没有库存记录,跳过回补")
		default:
			if errors.Is(err, inventory.ErrInsufficientStock) {
				metrics.RecordStockRejection()
			}
			return err
		}
	}
	return nil
}

// publishEvent 事务提交后发布领域事件,失败只记录日志
func publishEvent(ctx context.Context, pub sale.EventPublisher, eventType string, s *sale.Sale, plan []inventory.Adjustment) {
	e := sale.NewEvent(uuid.NewString(), eventType, s, plan, time.Now())
	if err := pub.Publish(ctx, e); err != nil {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Str("event", eventType).
			Str("event_id", e.ID).
			Uint("id_venta", s.ID).
			Msg("发布销售事件失败")
	}
}

// observe 记录销售操作指标
// 业务规则拒绝(库存不足、不存在、参数错误)计为rejected
func observe(operation string, start time.Time, err error) {
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultRejected
		if apperrors.IsKind(err, apperrors.KindInternal) {
			result = metrics.ResultFailure
		}
	}
	metrics.RecordSale(operation, result, time.Since(start))
}
