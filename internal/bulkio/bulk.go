package bulkio

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/osmtools/adminlookup/internal/apperr"
	"github.com/osmtools/adminlookup/internal/boundary"
	"github.com/osmtools/adminlookup/internal/query"
	"github.com/osmtools/adminlookup/internal/rtreeindex"
	"github.com/osmtools/adminlookup/internal/workerpool"
)

// ProcessBuffer decodes the whole payload as UTF-8, splits it into
// lines (terminator, not separator), parses every line before
// computing any result (bulk is all-or-nothing on parse errors), then
// resolves the lines either serially inside one pool task or fanned
// out across pool,
// always emitting results in input order regardless of how the
// fan-out completes.
func ProcessBuffer(idx *rtreeindex.Index, pool *workerpool.Pool, data []byte, parallel bool) (string, error) {
	if !utf8.Valid(data) {
		return "", apperr.New(apperr.KindDecode, fmt.Errorf("bulk body is not valid UTF-8"))
	}

	text := strings.TrimSuffix(string(data), "\n")
	var rawLines []string
	if text != "" {
		rawLines = strings.Split(text, "\n")
	}

	lines := make([]Line, len(rawLines))
	for i, raw := range rawLines {
		l, err := ParseLine(raw)
		if err != nil {
			return "", err
		}
		lines[i] = l
	}

	results := make([]string, len(lines))

	if !parallel {
		if err := pool.Submit(func() {
			for i, l := range lines {
				results[i] = formatResult(l, query.Locate(idx, l.Point))
			}
		}); err != nil {
			return "", err
		}
	} else {
		workers := pool.Limit()
		if workers > len(lines) {
			workers = len(lines)
		}

		indices := make(chan int)
		errs := make([]error, len(lines))

		var wg sync.WaitGroup
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			go func() {
				defer wg.Done()
				for i := range indices {
					l := lines[i]
					errs[i] = pool.Submit(func() {
						results[i] = formatResult(l, query.Locate(idx, l.Point))
					})
				}
			}()
		}
		for i := range lines {
			indices <- i
		}
		close(indices)
		wg.Wait()

		for _, err := range errs {
			if err != nil {
				return "", err
			}
		}
	}

	var sb strings.Builder
	for _, r := range results {
		sb.WriteString(r)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func formatResult(l Line, matches []*boundary.Boundary) string {
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Name
	}
	return l.ID + "," + strings.Join(names, ",")
}
