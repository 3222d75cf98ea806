package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version 构建版本，由 ldflags 注入
var Version = "dev"

// GetStatus 系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := gin.H{
		"version":  Version,
		"datasets": h.store.Count(),
		"loaded":   false,
	}

	if ds, err := h.store.Current(); err == nil {
		resp["loaded"] = true
		resp["datasetId"] = ds.ID
		resp["sourceId"] = ds.SourceID
		resp["loadedAt"] = ds.LoadedAt
		resp["totalRows"] = ds.TotalRows
		resp["validRows"] = ds.ValidRows
	}

	c.JSON(http.StatusOK, resp)
}
