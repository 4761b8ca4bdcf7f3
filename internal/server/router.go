package server

import "github.com/gin-gonic/gin"

func (s *Server) registerRoutes() {
	s.engine.GET("/locate", s.handleLocate)
	s.engine.POST("/bulk", s.handleBulk)
	s.engine.POST("/bulk_stream", s.handleBulkStream)
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))
}
