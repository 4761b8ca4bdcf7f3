package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/osmtools/adminlookup/internal/boundary"
	"github.com/osmtools/adminlookup/internal/bulkio"
	"github.com/osmtools/adminlookup/internal/query"
)

// handleBulkStream consumes the request body chunk by chunk through a
// carryover splitter, resolving and flushing each line as soon as
// it's complete rather than buffering the whole response.
//
// A parse failure before any byte has been written is a clean 400.
// Once output has started, headers are already committed, so a later
// failure just stops writing: the connection ends with a truncated
// body, which is the only way to express "stream terminated with
// error" over plain HTTP.
func (s *Server) handleBulkStream(c *gin.Context) {
	var splitter bulkio.Splitter
	written := false
	flusher, canFlush := c.Writer.(http.Flusher)

	processLine := func(raw string) bool {
		l, err := bulkio.ParseLine(raw)
		if err != nil {
			if !written {
				writeError(c, err)
			}
			return false
		}

		var matches []*boundary.Boundary
		if err := s.pool.Submit(func() {
			matches = query.Locate(s.index, l.Point)
		}); err != nil {
			if !written {
				writeError(c, err)
			}
			return false
		}

		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		c.Writer.WriteString(l.ID + "," + strings.Join(names, ",") + "\n")
		written = true
		if canFlush {
			flusher.Flush()
		}
		return true
	}

	buf := make([]byte, 64*1024)
	for {
		n, readErr := c.Request.Body.Read(buf)
		if n > 0 {
			for _, raw := range splitter.Feed(buf[:n]) {
				if !processLine(raw) {
					return
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return
		}
	}

	if tail, ok := splitter.Flush(); ok {
		processLine(tail)
	}
}
