package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMetrics(t *testing.T) {
	InitMetrics()
	InitMetrics() // 重复调用不能panic(重复注册)

	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, SalesTotal)
	assert.NotNil(t, StockRejectionsTotal)
	assert.NotNil(t, CacheRequestsTotal)
	assert.NotNil(t, MessagesPublishedTotal)
}

func TestRecordHTTPRequest(t *testing.T) {
	InitMetrics()

	RecordHTTPRequest("GET", "/api/libros", 200, 50*time.Millisecond)
	RecordHTTPRequest("GET", "/api/libros", 200, 100*time.Millisecond)
	RecordHTTPRequest("GET", "/api/libros", 404, time.Millisecond)

	assert.Equal(t, 2.0, counterVecValue(t, HTTPRequestsTotal, "GET", "/api/libros", "200"))
	assert.Equal(t, 1.0, counterVecValue(t, HTTPRequestsTotal, "GET", "/api/libros", "404"))
	assert.Equal(t, uint64(3), histogramVecCount(t, HTTPRequestDuration, "GET", "/api/libros"))
}

func TestRecordSale(t *testing.T) {
	InitMetrics()

	before := counterVecValue(t, SalesTotal, OpCreate, ResultRejected)
	RecordSale(OpCreate, ResultRejected, 10*time.Millisecond)
	RecordStockRejection()

	assert.Equal(t, before+1, counterVecValue(t, SalesTotal, OpCreate, ResultRejected))
	assert.GreaterOrEqual(t, counterValue(t, StockRejectionsTotal), 1.0)
}

func TestRecordInventoryAdjustment(t *testing.T) {
	InitMetrics()

	out := counterVecValue(t, InventoryAdjustmentsTotal, "out")
	in := counterVecValue(t, InventoryAdjustmentsTotal, "in")

	RecordInventoryAdjustment(-2)
	RecordInventoryAdjustment(3)
	RecordInventoryAdjustment(0)

	assert.Equal(t, out+1, counterVecValue(t, InventoryAdjustmentsTotal, "out"))
	assert.Equal(t, in+2, counterVecValue(t, InventoryAdjustmentsTotal, "in"))
}

func TestGauge(t *testing.T) {
	InitMetrics()
	HTTPRequestsInProgress.Set(0)

	IncGauge(HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	DecGauge(HTTPRequestsInProgress)

	var m dto.Metric
	require.NoError(t, HTTPRequestsInProgress.Write(&m))
	assert.Equal(t, 1.0, m.GetGauge().GetValue())

	SetCircuitBreakerState("eventos", 1)
	var g dto.Metric
	require.NoError(t, CircuitBreakerState.WithLabelValues("eventos").Write(&g))
	assert.Equal(t, 1.0, g.GetGauge().GetValue())
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func counterVecValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	return counterValue(t, vec.WithLabelValues(labels...))
}

func histogramVecCount(t *testing.T, vec *prometheus.HistogramVec, labels ...string) uint64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, vec.WithLabelValues(labels...).(prometheus.Histogram).Write(&m))
	return m.GetHistogram().GetSampleCount()
}
