package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/api"
	"github.com/gilsanglab/eda2-marketing-dashboard/internal/config"
	"github.com/gilsanglab/eda2-marketing-dashboard/internal/metrics"
	"github.com/gilsanglab/eda2-marketing-dashboard/internal/store"
)

// Server HTTP服务器
type Server struct {
	router *gin.Engine
	store  *store.MemoryStore
	api    *api.Handler
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	st := store.NewMemoryStore()
	handler := api.NewHandler(st, cfg)

	s := &Server{
		router: gin.Default(),
		store:  st,
		api:    handler,
	}
	s.setupRoutes()
	return s
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	// CORS（探索前端跨域访问）
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	s.router.GET("/metrics", metrics.Handler())

	// 探索界面由外部协作方承载，根路径只给入口提示
	s.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "eda2-marketing-dashboard",
			"api":     "/api/status",
		})
	})
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// GetStore 获取存储（用于测试与启动预加载）
func (s *Server) GetStore() *store.MemoryStore {
	return s.store
}
