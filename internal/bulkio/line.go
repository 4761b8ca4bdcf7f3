// Package bulkio implements the shared input/output plumbing for the
// bulk and streaming-bulk HTTP handlers.
package bulkio

import (
	"fmt"
	"strings"

	"github.com/osmtools/adminlookup/internal/apperr"
	"github.com/osmtools/adminlookup/internal/location"
)

// Line is one parsed bulk-input record: an opaque caller-supplied ID
// and the point to query.
type Line struct {
	ID    string
	Point location.Point
}

// ParseLine splits a single bulk-input line into exactly three
// comma-separated fields: id, lng, lat.
func ParseLine(line string) (Line, error) {
	parts := strings.SplitN(line, ",", 3)
	if len(parts) != 3 {
		return Line{}, apperr.New(apperr.KindInputParse,
			fmt.Errorf("bulk line must be id,lng,lat, got %q", line))
	}

	p, err := location.Parse(parts[1] + "," + parts[2])
	if err != nil {
		return Line{}, err
	}
	return Line{ID: parts[0], Point: p}, nil
}
