package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()
	InitMetrics() // 重复调用不会panic

	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInProgress)
	assert.NotNil(t, OrdersPlacedTotal)
	assert.NotNil(t, DBQueriesTotal)
	assert.NotNil(t, ItemCacheRequestsTotal)
}

func TestObserveHTTPRequest(t *testing.T) {
	InitMetrics()
	before := getCounterValue(t, HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/orders", "200"))
	countBefore := getHistogramCount(t, HTTPRequestDuration.WithLabelValues("GET", "/api/v1/orders").(prometheus.Histogram))

	ObserveHTTPRequest("GET", "/api/v1/orders", "200", 50*time.Millisecond)
	ObserveHTTPRequest("GET", "/api/v1/orders", "200", 10*time.Millisecond)

	assert.Equal(t, before+2, getCounterValue(t, HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/orders", "200")))
	assert.Equal(t, countBefore+2, getHistogramCount(t, HTTPRequestDuration.WithLabelValues("GET", "/api/v1/orders").(prometheus.Histogram)))
}

func TestOrderMetrics(t *testing.T) {
	InitMetrics()
	placed := getCounterValue(t, OrdersPlacedTotal)
	canceled := getCounterValue(t, OrdersCanceledTotal)
	failures := getCounterValue(t, OrderFailuresTotal.WithLabelValues("not_enough_stock"))
	observed := getHistogramCount(t, OrderPlacementDuration)

	ObserveOrderPlaced(20 * time.Millisecond)
	ObserveOrderCanceled()
	ObserveOrderFailure("not_enough_stock")
	ObserveOrderFailure("not_enough_stock")

	assert.Equal(t, placed+1, getCounterValue(t, OrdersPlacedTotal))
	assert.Equal(t, canceled+1, getCounterValue(t, OrdersCanceledTotal))
	assert.Equal(t, failures+2, getCounterValue(t, OrderFailuresTotal.WithLabelValues("not_enough_stock")))
	assert.Equal(t, observed+1, getHistogramCount(t, OrderPlacementDuration))
}

func TestStorageMetrics(t *testing.T) {
	InitMetrics()
	queries := getCounterValue(t, DBQueriesTotal.WithLabelValues("query"))
	hits := getCounterValue(t, ItemCacheRequestsTotal.WithLabelValues("hit"))

	ObserveDBQuery("query")
	ObserveItemCache("hit")

	assert.Equal(t, queries+1, getCounterValue(t, DBQueriesTotal.WithLabelValues("query")))
	assert.Equal(t, hits+1, getCounterValue(t, ItemCacheRequestsTotal.WithLabelValues("hit")))
}

func TestGauge(t *testing.T) {
	InitMetrics()
	base := getGaugeValue(t, HTTPRequestsInProgress)

	IncGauge(HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	assert.Equal(t, base+2, getGaugeValue(t, HTTPRequestsInProgress))

	DecGauge(HTTPRequestsInProgress)
	DecGauge(HTTPRequestsInProgress)
	assert.Equal(t, base, getGaugeValue(t, HTTPRequestsInProgress))
}

// 辅助函数：获取Counter值
func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	var metric dto.Metric
	require.NoError(t, counter.Write(&metric), "读取Counter值失败")
	return metric.Counter.GetValue()
}

// 辅助函数：获取Gauge值
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	var metric dto.Metric
	require.NoError(t, gauge.Write(&metric), "读取Gauge值失败")
	return metric.Gauge.GetValue()
}

// 辅助函数：获取Histogram观测次数
func getHistogramCount(t *testing.T, histogram prometheus.Histogram) uint64 {
	t.Helper()
	var metric dto.Metric
	require.NoError(t, histogram.Write(&metric), "读取Histogram值失败")
	return metric.Histogram.GetSampleCount()
}
