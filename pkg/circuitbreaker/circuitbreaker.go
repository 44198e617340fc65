// Package circuitbreaker 熔断器
//
// 基于sony/gobreaker,统一默认参数并把状态变化写入日志和指标
//
// 状态机:
//
//	CLOSED --(连续失败达到阈值)--> OPEN --(Timeout后)--> HALF_OPEN
//	HALF_OPEN --(探测成功)--> CLOSED
//	HALF_OPEN --(探测失败)--> OPEN
//
// OPEN期间请求直接失败(ErrOpenState),不再调用下游
package circuitbreaker

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/libreria/backoffice/pkg/metrics"
)

// ErrOpenState 熔断器打开
var ErrOpenState = gobreaker.ErrOpenState

type Config struct {
	// MaxRequests 半开状态下允许的最大请求数
	MaxRequests uint32

	// Interval CLOSED状态下清零统计的周期,0表示不清零
	Interval time.Duration

	// Timeout OPEN状态持续时间,之后转为HALF_OPEN
	Timeout time.Duration

	// FailureThreshold 连续失败多少次后熔断
	FailureThreshold uint32
}

// DefaultConfig 默认配置
func DefaultConfig() Config {
	return Config{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// CircuitBreaker 熔断器
type CircuitBreaker struct {
	name string
	cb   *gobreaker.CircuitBreaker
}

// New 创建熔断器
//
// 示例:
//
//	cb := circuitbreaker.New("eventos", circuitbreaker.DefaultConfig(), log)
//	err := cb.Execute(func() error {
//	    return publisher.Publish(ctx, key, msg)
//	})
func New(name string, cfg Config, log zerolog.Logger) *CircuitBreaker {
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = DefaultConfig().FailureThreshold
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("熔断器状态变化")
			metrics.SetCircuitBreakerState(name, float64(to))
		},
	}

	metrics.SetCircuitBreakerState(name, float64(gobreaker.StateClosed))
	return &CircuitBreaker{name: name, cb: gobreaker.NewCircuitBreaker(settings)}
}

// Execute 在熔断器保护下执行fn
// 返回fn的错误,或熔断时的ErrOpenState/gobreaker.ErrTooManyRequests
func (c *CircuitBreaker) Execute(fn func() error) error {
	_, err := c.cb.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	return err
}

// State 当前状态
func (c *CircuitBreaker) State() gobreaker.State {
	return c.cb.State()
}

// Name 熔断器名称
func (c *CircuitBreaker) Name() string {
	return c.name
}

// IsRejected 判断错误是否来自熔断器本身(未调用下游)
func IsRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
