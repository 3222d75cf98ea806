// Package metrics 暴露 Prometheus 指标：导入次数、查询次数与当前记录量。
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ImportTotal 按结果统计的导入次数
	ImportTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eda2",
		Name:      "import_total",
		Help:      "Number of dataset imports by result.",
	}, []string{"result"})

	// QueryTotal 按端点统计的查询次数
	QueryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eda2",
		Name:      "query_total",
		Help:      "Number of exploration queries by endpoint.",
	}, []string{"endpoint"})

	// RecordsLoaded 当前数据集的记录数
	RecordsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "eda2",
		Name:      "records_loaded",
		Help:      "Rows in the current dataset.",
	})

	// ValidRecords 当前数据集的有效销售记录数
	ValidRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "eda2",
		Name:      "valid_records",
		Help:      "Valid-sales rows in the current dataset.",
	})
)

// Handler 包装 promhttp 供 gin 使用
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
