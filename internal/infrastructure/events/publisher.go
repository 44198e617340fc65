// Package events 把销售领域事件发布到RabbitMQ
package events

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/libreria/backoffice/internal/domain/sale"
	"github.com/libreria/backoffice/internal/infrastructure/config"
	"github.com/libreria/backoffice/pkg/circuitbreaker"
	"github.com/libreria/backoffice/pkg/metrics"
	"github.com/libreria/backoffice/pkg/mq"
)

const (
	breakerName    = "eventos"
	publishTimeout = 3 * time.Second
)

// messagePublisher mq.Publisher的抽象,测试时替换
type messagePublisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// BreakerPublisher 带熔断的事件发布者
// 1. routing key使用事件类型(venta.creada等)
// 2. Broker连续失败后熔断,熔断期间直接丢弃事件,不阻塞请求
// 3. 发布在事务提交之后,请求上下文取消不影响发布
type BreakerPublisher struct {
	pub     messagePublisher
	cb      *circuitbreaker.CircuitBreaker
	timeout time.Duration
}

// NewBreakerPublisher 创建带熔断的事件发布者
func NewBreakerPublisher(pub messagePublisher, cb *circuitbreaker.CircuitBreaker) *BreakerPublisher {
	return &BreakerPublisher{pub: pub, cb: cb, timeout: publishTimeout}
}

func (p *BreakerPublisher) Publish(ctx context.Context, e sale.Event) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	err := p.cb.Execute(func() error {
		return p.pub.Publish(ctx, e.Type, e)
	})

	switch {
	case err == nil:
		metrics.RecordMessagePublished(e.Type, metrics.ResultSuccess)
	case circuitbreaker.IsRejected(err):
		metrics.RecordMessagePublished(e.Type, metrics.ResultRejected)
	default:
		metrics.RecordMessagePublished(e.Type, metrics.ResultFailure)
	}
	return err
}

// NoopPublisher mq.enabled为false时使用,丢弃所有事件
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, sale.Event) error { return nil }

// NewPublisher 根据配置创建事件发布者
// 返回的cleanup函数关闭RabbitMQ连接
func NewPublisher(cfg *config.Config, log zerolog.Logger) (sale.EventPublisher, func(), error) {
	if !cfg.MQ.Enabled {
		log.Info().Msg("消息队列未启用,销售事件不发布")
		return NoopPublisher{}, func() {}, nil
	}

	pub, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, mq.ExchangeTopic, log)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := pub.Close(); err != nil {
			log.Error().Err(err).Msg("关闭RabbitMQ连接失败")
		}
	}
	cb := circuitbreaker.New(breakerName, circuitbreaker.DefaultConfig(), log)
	return NewBreakerPublisher(pub, cb), cleanup, nil
}
