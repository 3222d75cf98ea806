package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/analytics"
	"github.com/gilsanglab/eda2-marketing-dashboard/internal/metrics"
)

// GetRetention 卖家复购率排名
// GET /api/retention?min=（缺省取配置口径，深度分析可传 50）
func (h *Handler) GetRetention(c *gin.Context) {
	ds, ok := h.currentDataset(c)
	if !ok {
		return
	}
	metrics.QueryTotal.WithLabelValues("retention").Inc()

	minBuyers := h.business().RetentionMinBuyers
	if v := c.Query("min"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "min 参数非法"})
			return
		}
		minBuyers = n
	}

	c.JSON(http.StatusOK, gin.H{
		"minBuyers": minBuyers,
		"sellers":   analytics.Retention(ds.Valid, ds.Caps, minBuyers),
	})
}

// GetLifecycle 按月卖家生命周期
// GET /api/lifecycle
func (h *Handler) GetLifecycle(c *gin.Context) {
	ds, ok := h.currentDataset(c)
	if !ok {
		return
	}
	metrics.QueryTotal.WithLabelValues("lifecycle").Inc()

	c.JSON(http.StatusOK, gin.H{"months": analytics.Lifecycle(ds.Valid)})
}
