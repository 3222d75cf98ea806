// Package api 实现探索界面使用的 HTTP 接口。
// 所有查询端点只读当前数据集；非法查询参数返回 400，未导入数据返回 409。
package api

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/config"
	"github.com/gilsanglab/eda2-marketing-dashboard/internal/model"
	"github.com/gilsanglab/eda2-marketing-dashboard/internal/store"
)

// Handler API 处理器
type Handler struct {
	store *store.MemoryStore
	cfg   *config.AppConfig
	mu    sync.RWMutex // 保护 cfg.Business 的在线修改
}

// NewHandler 创建 API 处理器
func NewHandler(st *store.MemoryStore, cfg *config.AppConfig) *Handler {
	return &Handler{store: st, cfg: cfg}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 配置管理
	router.GET("/config", h.GetConfig)
	router.PATCH("/config", h.UpdateConfig)

	// 数据导入
	router.POST("/import", h.Import)

	// 汇总与探索查询
	router.GET("/summary", h.GetSummary)
	router.GET("/aggregate", h.Aggregate)
	router.GET("/crosstab", h.CrossTab)
	router.GET("/records", h.ListRecords)
	router.GET("/keywords", h.GetKeywords)
	router.GET("/segments", h.GetSegments)

	// 同期群分析
	router.GET("/retention", h.GetRetention)
	router.GET("/lifecycle", h.GetLifecycle)

	// 数据导出
	router.GET("/export/csv", h.ExportCSV)
	router.GET("/export/report", h.ExportReport)
}

// currentDataset 取当前数据集；未导入时响应 409
func (h *Handler) currentDataset(c *gin.Context) (*model.Dataset, bool) {
	ds, err := h.store.Current()
	if err != nil {
		if errors.Is(err, store.ErrNoDataset) {
			c.JSON(http.StatusConflict, gin.H{"error": "尚未导入数据"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return ds, true
}

// business 读出业务口径配置的快照
func (h *Handler) business() config.BusinessConfig {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cfg.Business
}
