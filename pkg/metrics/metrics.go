// Package metrics 提供基于Prometheus的指标收集
//
// 指标分三类：
//   - HTTP：请求总数、耗时、处理中的请求数
//   - 订单：下单/取消次数、失败原因、下单耗时
//   - 存储：SQL查询条数(按query/row区分)、商品缓存命中情况
//
// 使用示例：
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	start := time.Now()
//	if err := placeOrder(ctx); err != nil {
//	    metrics.ObserveOrderFailure("not_enough_stock")
//	    return err
//	}
//	metrics.ObserveOrderPlaced(time.Since(start))
//
// 命名规范：Counter以_total结尾，Histogram以单位结尾(_seconds)。
// 标签只用有限取值的维度(method、status、reason)，不要用订单ID、会员ID。
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// once 防止重复注册
	once sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、path(路由模板)、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// 订单业务指标

	// OrdersPlacedTotal 下单成功总数
	OrdersPlacedTotal prometheus.Counter

	// OrdersCanceledTotal 取消订单总数
	OrdersCanceledTotal prometheus.Counter

	// OrderFailuresTotal 下单/取消失败总数
	// 标签：reason(not_enough_stock/not_found/already_delivered/...)
	OrderFailuresTotal *prometheus.CounterVec

	// OrderPlacementDuration 下单耗时
	OrderPlacementDuration prometheus.Histogram

	// 存储指标

	// DBQueriesTotal SQL查询总数
	// 标签：kind(query/row)
	DBQueriesTotal *prometheus.CounterVec

	// ItemCacheRequestsTotal 商品缓存请求总数
	// 标签：result(hit/miss/error)
	ItemCacheRequestsTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
// 使用promauto注册到默认Registry，多次调用只注册一次
func InitMetrics() {
	once.Do(register)
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
			Name: "http_request_duration_seconds",
			Help: "HTTP请求耗时（秒）",
			// 1ms、10ms、100ms、500ms、1s、5s、10s
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

	OrdersPlacedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "下单成功总数",
		},
	)

	OrdersCanceledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_canceled_total",
			Help: "取消订单总数",
		},
	)

	OrderFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_failures_total",
			Help: "订单操作失败总数",
		},
		[]string{"reason"},
	)

	OrderPlacementDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_placement_duration_seconds",
			Help:    "下单耗时（秒）",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	DBQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "SQL查询总数",
		},
		[]string{"kind"},
	)

	ItemCacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "item_cache_requests_total",
			Help: "商品缓存请求总数",
		},
		[]string{"result"},
	)
}

// ObserveHTTPRequest 记录一次HTTP请求
func ObserveHTTPRequest(method, path, status string, d time.Duration) {
	InitMetrics()
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// ObserveOrderPlaced 记录一次成功下单
func ObserveOrderPlaced(d time.Duration) {
	InitMetrics()
	OrdersPlacedTotal.Inc()
	OrderPlacementDuration.Observe(d.Seconds())
}

// ObserveOrderCanceled 记录一次取消
func ObserveOrderCanceled() {
	InitMetrics()
	OrdersCanceledTotal.Inc()
}

// ObserveOrderFailure 记录一次订单操作失败
func ObserveOrderFailure(reason string) {
	InitMetrics()
	OrderFailuresTotal.WithLabelValues(reason).Inc()
}

// ObserveDBQuery 记录一条SQL查询
func ObserveDBQuery(kind string) {
	InitMetrics()
	DBQueriesTotal.WithLabelValues(kind).Inc()
}

// ObserveItemCache 记录一次商品缓存访问
func ObserveItemCache(result string) {
	InitMetrics()
	ItemCacheRequestsTotal.WithLabelValues(result).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}
