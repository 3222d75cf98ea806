package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/metrics"
	"github.com/gilsanglab/eda2-marketing-dashboard/internal/parser"
	"github.com/gilsanglab/eda2-marketing-dashboard/internal/pipeline"
)

type importResponse struct {
	DatasetID string   `json:"datasetId"`
	TotalRows int      `json:"totalRows"`
	ValidRows int      `json:"validRows"`
	Warnings  []string `json:"warnings,omitempty"`
}

// Import 上传原始订单表并执行完整流程
// POST /api/import（multipart 字段 file，.csv / .xlsx）
func (h *Handler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		metrics.ImportTotal.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少上传文件"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		metrics.ImportTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "无法读取上传文件: " + err.Error()})
		return
	}
	defer file.Close()

	table, err := parser.Load(fileHeader.Filename, file)
	if err != nil {
		metrics.ImportTotal.WithLabelValues("parse_error").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	biz := h.business()
	ds, err := pipeline.Run(table, pipeline.Options{
		CapitalMarker: biz.CapitalMarker,
		SourceID:      fileHeader.Filename,
	})
	if err != nil {
		metrics.ImportTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.store.Put(ds)
	metrics.ImportTotal.WithLabelValues("ok").Inc()
	metrics.RecordsLoaded.Set(float64(ds.TotalRows))
	metrics.ValidRecords.Set(float64(ds.ValidRows))

	c.JSON(http.StatusOK, importResponse{
		DatasetID: ds.ID,
		TotalRows: ds.TotalRows,
		ValidRows: ds.ValidRows,
		Warnings:  ds.Warnings,
	})
}
