package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osmtools/adminlookup/internal/apperr"
	"github.com/osmtools/adminlookup/internal/boundary"
	"github.com/osmtools/adminlookup/internal/location"
	"github.com/osmtools/adminlookup/internal/query"
)

type boundaryView struct {
	Level uint8  `json:"level"`
	Name  string `json:"name"`
}

type locateResponse struct {
	Boundaries []boundaryView `json:"boundaries"`
}

// handleLocate resolves a single point against the index. The polygon
// test runs on s.pool rather than inline, so dense geometries never
// stall the handler's goroutine.
func (s *Server) handleLocate(c *gin.Context) {
	p, err := location.Parse(c.Query("loc"))
	if err != nil {
		writeError(c, err)
		return
	}

	var matches []*boundary.Boundary
	if err := s.pool.Submit(func() {
		matches = query.Locate(s.index, p)
	}); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, locateResponse{Boundaries: toBoundaryViews(matches)})
}

func toBoundaryViews(matches []*boundary.Boundary) []boundaryView {
	views := make([]boundaryView, len(matches))
	for i, m := range matches {
		views[i] = boundaryView{Level: m.AdminLevel, Name: m.Name}
	}
	return views
}

// writeError maps an apperr.Error to an HTTP response: InputParse and
// Decode become 400, everything else (including an unclassified
// error) becomes a 500.
func writeError(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperr.KindInputParse, apperr.KindDecode:
			c.String(http.StatusBadRequest, ae.Error())
			return
		}
	}
	c.String(http.StatusInternalServerError, "internal error")
}
