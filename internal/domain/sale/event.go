package sale

import (
	"context"
	"time"

	"github.com/libreria/backoffice/internal/domain/inventory"
)

// 事件类型(同时作为RabbitMQ的routing key)
const (
	EventCreated = "venta.creada"
	EventUpdated = "venta.actualizada"
	EventDeleted = "venta.eliminada"
)

// Event 销售领域事件
// 事务提交后发布,发布失败不影响请求结果
type Event struct {
	ID          string                 `json:"event_id"`
	Type        string                 `json:"type"`
	Sale        EventSale              `json:"sale"`
	Adjustments []inventory.Adjustment `json:"adjustments"`
	OccurredAt  time.Time              `json:"occurred_at"`
}

// EventSale 事件中的销售快照
type EventSale struct {
	ID           uint      `json:"id"`
	ClientID     uint      `json:"id_cliente"`
	BookID       uint      `json:"id_libro"`
	EmployeeID   uint      `json:"id_empleado"`
	PurchaseDate time.Time `json:"fecha_compra"`
	Quantity     int       `json:"cantidad"`
}

// NewEvent 创建事件
func NewEvent(id, eventType string, s *Sale, adjustments []inventory.Adjustment, at time.Time) Event {
	return Event{
		ID:   id,
		Type: eventType,
		Sale: EventSale{
			ID:           s.ID,
			ClientID:     s.ClientID,
			BookID:       s.BookID,
			EmployeeID:   s.EmployeeID,
			PurchaseDate: s.PurchaseDate,
			Quantity:     s.Quantity,
		},
		Adjustments: adjustments,
		OccurredAt:  at,
	}
}

// EventPublisher 事件发布接口(由infrastructure/events实现)
type EventPublisher interface {
	Publish(ctx context.Context, e Event) error
}
