package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// useRecorder 安装内存SpanRecorder,测试结束后恢复
func useRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	prev := otel.GetTracerProvider()
	sr := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return sr
}

func TestInitTracer(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	// gRPC连接是惰性的,没有collector也能初始化
	shutdown, err := InitTracer(context.Background(), "libreria-test", "localhost:4317", 1)
	require.NoError(t, err)
	assert.NotNil(t, shutdown)
	_ = shutdown(context.Background())
}

func TestStartSpan(t *testing.T) {
	sr := useRecorder(t)

	t.Run("父子Span", func(t *testing.T) {
		ctx, parent := StartSpan(context.Background(), "test", "sale.Create")
		_, child := StartSpan(ctx, "test", "inventory.Adjust")
		child.End()
		parent.End()

		spans := sr.Ended()
		require.Len(t, spans, 2)
		assert.Equal(t, "inventory.Adjust", spans[0].Name())
		assert.Equal(t, parent.SpanContext().SpanID(), spans[0].Parent().SpanID())
		assert.Equal(t, parent.SpanContext().TraceID(), spans[0].SpanContext().TraceID())
	})

	t.Run("提取TraceID", func(t *testing.T) {
		assert.Empty(t, ExtractTraceID(context.Background()))

		ctx, span := StartSpan(context.Background(), "test", "op")
		defer span.End()
		assert.Equal(t, span.SpanContext().TraceID().String(), ExtractTraceID(ctx))
		assert.Equal(t, span.SpanContext().SpanID().String(), ExtractSpanID(ctx))
	})
}

func TestRecordError(t *testing.T) {
	sr := useRecorder(t)

	_, span := StartSpan(context.Background(), "test", "falla")
	RecordError(span, nil)
	RecordError(span, errors.New("No hay suficiente stock disponible"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Len(t, spans[0].Events(), 1)
}
