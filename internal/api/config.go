package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetConfig 读取业务口径配置
// GET /api/config
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.business())
}

type updateConfigRequest struct {
	RetentionMinBuyers *int     `json:"retentionMinBuyers"`
	CapitalMarker      *string  `json:"capitalMarker"`
	EconomyMaxPrice    *float64 `json:"economyMaxPrice"`
	PremiumMinPrice    *float64 `json:"premiumMinPrice"`
	TopN               *int     `json:"topN"`
}

// UpdateConfig 在线修改业务口径（只影响后续导入与查询）
// PATCH /api/config
func (h *Handler) UpdateConfig(c *gin.Context) {
	var req updateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	h.mu.Lock()
	if req.RetentionMinBuyers != nil && *req.RetentionMinBuyers >= 0 {
		h.cfg.Business.RetentionMinBuyers = *req.RetentionMinBuyers
	}
	if req.CapitalMarker != nil && *req.CapitalMarker != "" {
		h.cfg.Business.CapitalMarker = *req.CapitalMarker
	}
	if req.EconomyMaxPrice != nil && *req.EconomyMaxPrice > 0 {
		h.cfg.Business.EconomyMaxPrice = *req.EconomyMaxPrice
	}
	if req.PremiumMinPrice != nil && *req.PremiumMinPrice > 0 {
		h.cfg.Business.PremiumMinPrice = *req.PremiumMinPrice
	}
	if req.TopN != nil && *req.TopN > 0 {
		h.cfg.Business.TopN = *req.TopN
	}
	h.mu.Unlock()

	c.JSON(http.StatusOK, h.business())
}
