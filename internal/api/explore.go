package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/analytics"
	"github.com/gilsanglab/eda2-marketing-dashboard/internal/metrics"
	"github.com/gilsanglab/eda2-marketing-dashboard/internal/model"
	"github.com/gilsanglab/eda2-marketing-dashboard/internal/query"
)

// GetSummary 首页 KPI 与营收 Top 榜
// GET /api/summary
func (h *Handler) GetSummary(c *gin.Context) {
	ds, ok := h.currentDataset(c)
	if !ok {
		return
	}
	metrics.QueryTotal.WithLabelValues("summary").Inc()

	topN := h.business().TopN
	topSellers, _ := query.GroupSum(ds.Valid, model.ColSeller, model.ColPaid)
	topProducts, _ := query.GroupSum(ds.Valid, model.ColProduct, model.ColPaid)

	c.JSON(http.StatusOK, gin.H{
		"kpi":         analytics.Summarize(ds.Valid),
		"topSellers":  query.TopN(topSellers, topN),
		"topProducts": query.TopN(topProducts, topN),
		"warnings":    ds.Warnings,
	})
}

// Aggregate 分组求和（可选过滤谓词 + Top-N）
// GET /api/aggregate?dimension=&measure=&top=&region=&seller=&keyword=
func (h *Handler) Aggregate(c *gin.Context) {
	ds, ok := h.currentDataset(c)
	if !ok {
		return
	}
	metrics.QueryTotal.WithLabelValues("aggregate").Inc()

	subset := query.Filter(ds.Valid, predicatesFromQuery(c))
	rows, err := query.GroupSum(subset, c.Query("dimension"), c.Query("measure"))
	if err != nil {
		respondQueryError(c, err)
		return
	}

	top, _ := strconv.Atoi(c.DefaultQuery("top", "0"))
	c.JSON(http.StatusOK, gin.H{
		"dimension": c.Query("dimension"),
		"measure":   c.Query("measure"),
		"rows":      query.TopN(rows, top),
	})
}

// CrossTab 列归一化交叉表
// GET /api/crosstab?row=&col=
func (h *Handler) CrossTab(c *gin.Context) {
	ds, ok := h.currentDataset(c)
	if !ok {
		return
	}
	metrics.QueryTotal.WithLabelValues("crosstab").Inc()

	ct, err := query.CrossTabulate(ds.Valid, c.Query("row"), c.Query("col"))
	if err != nil {
		respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, ct)
}

// ListRecords 下钻过滤：记录数、营收合计与有限预览
// GET /api/records?region=&seller=&keyword=&limit=
func (h *Handler) ListRecords(c *gin.Context) {
	ds, ok := h.currentDataset(c)
	if !ok {
		return
	}
	metrics.QueryTotal.WithLabelValues("records").Inc()

	subset := query.Filter(ds.Valid, predicatesFromQuery(c))

	revenue := 0.0
	for _, r := range subset {
		if !model.IsMissing(r.PaidAmount) {
			revenue += r.PaidAmount
		}
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 0 {
		limit = 100
	}
	preview := subset
	if len(preview) > limit {
		preview = preview[:limit]
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(subset),
		"revenue": revenue,
		"records": preview,
	})
}

// GetKeywords 商品名关键词词频
// GET /api/keywords?top=
func (h *Handler) GetKeywords(c *gin.Context) {
	ds, ok := h.currentDataset(c)
	if !ok {
		return
	}
	metrics.QueryTotal.WithLabelValues("keywords").Inc()

	top, err := strconv.Atoi(c.DefaultQuery("top", "20"))
	if err != nil || top < 0 {
		top = 20
	}
	c.JSON(http.StatusOK, gin.H{"keywords": analytics.TopKeywords(ds.Valid, top)})
}

// GetSegments 价格分段分布与分段销量 Top 卖家
// GET /api/segments
func (h *Handler) GetSegments(c *gin.Context) {
	ds, ok := h.currentDataset(c)
	if !ok {
		return
	}
	metrics.QueryTotal.WithLabelValues("segments").Inc()

	biz := h.business()
	c.JSON(http.StatusOK, analytics.Segments(ds.Valid, biz.EconomyMaxPrice, biz.PremiumMinPrice, biz.TopN))
}

func predicatesFromQuery(c *gin.Context) query.Predicates {
	return query.Predicates{
		Region:  c.Query("region"),
		Seller:  c.Query("seller"),
		Keyword: c.Query("keyword"),
	}
}

// respondQueryError 非法查询参数统一响应 400，并附可用维度/度量
func respondQueryError(c *gin.Context, err error) {
	if errors.Is(err, query.ErrUnknownDimension) || errors.Is(err, query.ErrUnknownMeasure) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      err.Error(),
			"dimensions": query.Dimensions(),
			"measures":   query.Measures(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
