// Package server wires the HTTP surface: /locate, /bulk, /bulk_stream,
// /health, and /metrics, on top of gin.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/osmtools/adminlookup/internal/logging"
	"github.com/osmtools/adminlookup/internal/rtreeindex"
	"github.com/osmtools/adminlookup/internal/workerpool"
)

// Server holds the process-wide, read-only state every handler needs:
// the immutable R-tree and the bounded worker pool polygon tests are
// offloaded to.
type Server struct {
	index    *rtreeindex.Index
	pool     *workerpool.Pool
	logger   *zap.Logger
	metrics  *Metrics
	parallel bool
	engine   *gin.Engine
}

// New builds a Server and registers its routes.
func New(index *rtreeindex.Index, pool *workerpool.Pool, logger *zap.Logger, parallel bool) *Server {
	s := &Server{
		index:    index,
		pool:     pool,
		logger:   logger,
		metrics:  NewMetrics(),
		parallel: parallel,
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), logging.GinMiddleware(logger), s.metrics.Middleware())
	s.engine = engine
	s.registerRoutes()

	return s
}

// Handler returns the underlying http.Handler, for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts the HTTP listener and blocks until it exits.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}
