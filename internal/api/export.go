package api

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/exporter"
	"github.com/gilsanglab/eda2-marketing-dashboard/internal/metrics"
)

// ExportCSV 下载规范化 CSV（Looker 口径）
// GET /api/export/csv
func (h *Handler) ExportCSV(c *gin.Context) {
	ds, ok := h.currentDataset(c)
	if !ok {
		return
	}
	metrics.QueryTotal.WithLabelValues("export_csv").Inc()

	var buf bytes.Buffer
	if err := exporter.WriteCSV(&buf, ds); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	setDownloadHeader(c, "classification_results.csv")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportReport 下载 Excel 汇总报告
// GET /api/export/report
func (h *Handler) ExportReport(c *gin.Context) {
	ds, ok := h.currentDataset(c)
	if !ok {
		return
	}
	metrics.QueryTotal.WithLabelValues("export_report").Inc()

	biz := h.business()
	f, err := exporter.BuildReport(ds, exporter.ReportOptions{
		RetentionMinBuyers: biz.RetentionMinBuyers,
		TopN:               biz.TopN,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	setDownloadHeader(c, "marketing_report.xlsx")
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

func setDownloadHeader(c *gin.Context, filename string) {
	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`,
			filename, url.PathEscape(filename)))
}
