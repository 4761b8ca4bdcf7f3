package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osmtools/adminlookup/internal/bulkio"
)

// handleBulk buffers the whole body, then resolves every line before
// writing anything, so a parse failure anywhere in the payload still
// yields a clean 400.
func (s *Server) handleBulk(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "failed to read body")
		return
	}

	out, err := bulkio.ProcessBuffer(s.index, s.pool, data, s.parallel)
	if err != nil {
		writeError(c, err)
		return
	}

	c.String(http.StatusOK, out)
}
