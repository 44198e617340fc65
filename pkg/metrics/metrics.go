// Package metrics 提供基于Prometheus的指标收集
//
// # 指标类型
//
//   - Counter: 只增不减的累计值(请求数、销售数、库存拒绝次数)
//   - Gauge: 可增可减的瞬时值(处理中的请求数、熔断器状态)
//   - Histogram: 观测值分布(请求耗时、销售事务耗时)
//
// # 使用示例
//
//	// 1. 启动时初始化(重复调用安全)
//	metrics.InitMetrics()
//
//	// 2. 由router暴露/metrics端点
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	// 3. 业务代码记录指标
//	start := time.Now()
//	sale, err := uc.Execute(ctx, input)
//	metrics.RecordSale(metrics.OpCreate, metrics.ResultSuccess, time.Since(start))
//
// # 命名规范
//
//  1. Counter以_total结尾
//  2. Histogram以单位结尾(_seconds)
//  3. 避免高基数标签: 不用id_libro、id_cliente作标签,path使用路由模板(/api/libros/:id)
//
// 所有Record*函数在InitMetrics之前调用时直接忽略,测试中无需初始化
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 销售操作标签值
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// 结果标签值
const (
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultRejected = "rejected"
)

// 缓存结果标签值
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	initOnce sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数
	// 标签:method、path(路由模板)、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// SalesTotal 销售操作总数
	// 标签:operation(create/update/delete)、result(success/failure/rejected)
	SalesTotal *prometheus.CounterVec

	// SaleDuration 销售事务耗时(含库存调整)
	SaleDuration *prometheus.HistogramVec

	// StockRejectionsTotal 因库存不足被拒绝的次数
	StockRejectionsTotal prometheus.Counter

	// InventoryAdjustmentsTotal 库存调整次数
	// 标签:direction(out=扣减, in=回补)
	InventoryAdjustmentsTotal *prometheus.CounterVec

	// 缓存指标

	// CacheRequestsTotal 图书详情缓存请求数
	// 标签:result(hit/miss/error)
	CacheRequestsTotal *prometheus.CounterVec

	// 熔断器指标

	// CircuitBreakerState 熔断器状态
	// 0=CLOSED, 1=HALF_OPEN, 2=OPEN(与gobreaker.State一致)
	CircuitBreakerState *prometheus.GaugeVec

	// 消息队列指标

	// MessagesPublishedTotal 事件发布总数
	// 标签:routing_key、result(success/failure/rejected)
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
// 使用promauto注册到默认Registry,sync.Once保证只注册一次
func InitMetrics() {
	initOnce.Do(register)
}

func register() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时(秒)",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	SalesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "libreria_sales_total",
			Help: "销售操作总数",
		},
		[]string{"operation", "result"},
	)

	SaleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "libreria_sale_duration_seconds",
			Help:    "销售事务耗时(秒)",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"operation"},
	)

	StockRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "libreria_stock_rejections_total",
			Help: "库存不足拒绝次数",
		},
	)

	InventoryAdjustmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "libreria_inventory_adjustments_total",
			Help: "库存调整次数",
		},
		[]string{"direction"},
	)

	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "libreria_book_cache_requests_total",
			Help: "图书详情缓存请求数",
		},
		[]string{"result"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "熔断器状态(0=CLOSED, 1=HALF_OPEN, 2=OPEN)",
		},
		[]string{"name"},
	)

	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "事件发布总数",
		},
		[]string{"routing_key", "result"},
	)
}

// RecordHTTPRequest 记录一次HTTP请求
func RecordHTTPRequest(method, path string, status int, d time.Duration) {
	if HTTPRequestsTotal == nil {
		return
	}
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// RecordSale 记录一次销售操作
// rejected表示业务规则拒绝(如库存不足),其余错误计为failure
func RecordSale(operation, result string, d time.Duration) {
	if SalesTotal == nil {
		return
	}
	SalesTotal.WithLabelValues(operation, result).Inc()
	SaleDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// RecordStockRejection 记录一次库存不足
func RecordStockRejection() {
	if StockRejectionsTotal == nil {
		return
	}
	StockRejectionsTotal.Inc()
}

// RecordInventoryAdjustment 按delta正负记录扣减或回补
func RecordInventoryAdjustment(delta int) {
	if InventoryAdjustmentsTotal == nil {
		return
	}
	direction := "in"
	if delta < 0 {
		direction = "out"
	}
	InventoryAdjustmentsTotal.WithLabelValues(direction).Inc()
}

// RecordCacheRequest 记录缓存命中情况
func RecordCacheRequest(result string) {
	if CacheRequestsTotal == nil {
		return
	}
	CacheRequestsTotal.WithLabelValues(result).Inc()
}

// SetCircuitBreakerState 设置熔断器状态
func SetCircuitBreakerState(name string, state float64) {
	if CircuitBreakerState == nil {
		return
	}
	CircuitBreakerState.WithLabelValues(name).Set(state)
}

// RecordMessagePublished 记录事件发布结果
func RecordMessagePublished(routingKey, result string) {
	if MessagesPublishedTotal == nil {
		return
	}
	MessagesPublishedTotal.WithLabelValues(routingKey, result).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	if gauge != nil {
		gauge.Inc()
	}
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	if gauge != nil {
		gauge.Dec()
	}
}
