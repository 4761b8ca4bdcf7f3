// Package workerpool offloads CPU-bound polygon containment tests off
// the HTTP goroutine that received the request, so a dense geometry
// never stalls the reactor.
package workerpool

import (
	"fmt"
	"runtime"

	"github.com/sourcegraph/conc"

	"github.com/osmtools/adminlookup/internal/apperr"
)

// Pool bounds how many submitted tasks run concurrently, so one large
// bulk request cannot starve concurrent single-point lookups sharing
// the same process.
type Pool struct {
	sem chan struct{}
}

// New builds a pool with the given concurrency limit. limit <= 0
// defaults to GOMAXPROCS, matching the PBF decoder's own default
// parallelism elsewhere in this module.
func New(limit int) *Pool {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	return &Pool{sem: make(chan struct{}, limit)}
}

// Limit returns the pool's concurrency bound, for callers that need to
// size their own dispatch fan-out to match (e.g. bulk request
// dispatch) instead of spawning one goroutine per item.
func (p *Pool) Limit() int {
	return cap(p.sem)
}

// Submit runs fn on a pooled goroutine and blocks until it completes.
// A panic inside fn is caught by conc.WaitGroup and re-raised on
// Wait; Submit recovers that here and reports it as an
// apperr.KindInternal error instead of crashing the caller.
func (p *Pool) Submit(fn func()) (err error) {
	p.sem <- struct{}{}
	defer func() { <-p.sem }()

	defer func() {
		if r := recover(); r != nil {
			err = apperr.New(apperr.KindInternal, fmt.Errorf("worker panic: %v", r))
		}
	}()

	var wg conc.WaitGroup
	wg.Go(fn)
	wg.Wait()
	return nil
}
