package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
)

func testConfig(timeout time.Duration) Config {
	return Config{
		MaxRequests:      1,
		Interval:         10 * time.Second,
		Timeout:          timeout,
		FailureThreshold: 3,
	}
}

// TestCircuitBreaker_ClosedState 正常请求保持CLOSED
func TestCircuitBreaker_ClosedState(t *testing.T) {
	cb := New("test", testConfig(30*time.Second), zerolog.Nop())

	for i := 0; i < 10; i++ {
		assert.NoError(t, cb.Execute(func() error { return nil }))
	}
	assert.Equal(t, gobreaker.StateClosed, cb.State())
	assert.Equal(t, "test", cb.Name())
}

// TestCircuitBreaker_OpenState 连续失败达到阈值后熔断
func TestCircuitBreaker_OpenState(t *testing.T) {
	cb := New("test", testConfig(30*time.Second), zerolog.Nop())
	boom := errors.New("broker caído")

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, cb.Execute(func() error { return boom }), boom)
	}
	assert.Equal(t, gobreaker.StateOpen, cb.State())

	called := false
	err := cb.Execute(func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpenState)
	assert.True(t, IsRejected(err))
	assert.False(t, called, "熔断器打开时不应该调用实际函数")
}

// TestCircuitBreaker_HalfOpenState 超时后探测成功恢复CLOSED
func TestCircuitBreaker_HalfOpenState(t *testing.T) {
	cb := New("test", testConfig(50*time.Millisecond), zerolog.Nop())

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errors.New("fail") })
	}
	assert.Equal(t, gobreaker.StateOpen, cb.State())

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, gobreaker.StateHalfOpen, cb.State())

	assert.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestIsRejected(t *testing.T) {
	assert.True(t, IsRejected(gobreaker.ErrTooManyRequests))
	assert.False(t, IsRejected(errors.New("otro")))
	assert.False(t, IsRejected(nil))
}
