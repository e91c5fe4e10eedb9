package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"godist/internal"
)

// Server wires the distribution routes onto a gin engine
type Server struct {
	router  *gin.Engine
	metrics *Metrics
	logger  *internal.Logger
}

// NewServer creates a server with its routes registered
func NewServer(logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	s := &Server{
		router:  gin.New(),
		metrics: NewMetrics(),
		logger:  logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(gin.Recovery(), RequestID(), AccessLog(s.logger, s.metrics))

	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	h := NewDistributionHandler(s.logger, s.metrics)
	api := s.router.Group("/api")
	api.GET("/distributions", h.ListDistributions)
	api.GET("/distributions/:kind", h.DescribeDistribution)
	api.POST("/distributions/:kind/pdf", h.EvaluatePDF)
	api.POST("/distributions/:kind/compose", h.Compose)
	api.POST("/distributions/:kind/refresh", h.Refresh)
	api.POST("/distributions/:kind/zscore", h.ZScore)
	api.POST("/samples/summary", h.SummarizeSample)
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}
