// Package apperr classifies errors into a small set of kinds, so
// handlers and CLI entry points can decide how to surface a failure
// without string-matching messages.
package apperr

import "errors"

// Kind identifies which of the error classes described in the design
// an error belongs to.
type Kind int

const (
	// KindInputParse covers malformed lng/lat, malformed CSV lines, and
	// out-of-range coordinates. Handlers map this to 400.
	KindInputParse Kind = iota
	// KindDecode covers UTF-8 decode failures of a request body.
	KindDecode
	// KindIndexIO covers a failed open/parse of the persisted index.
	KindIndexIO
	// KindPbfIO covers a failed open/decode of the OSM PBF input.
	KindPbfIO
	// KindRelationSkip covers a per-relation reconstruction failure.
	// Never surfaced to a caller; the builder drops such relations
	// silently.
	KindRelationSkip
	// KindInternal covers unexpected conditions, including a worker
	// panic recovered by the bounded pool.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindInputParse:
		return "input_parse"
	case KindDecode:
		return "decode"
	case KindIndexIO:
		return "index_io"
	case KindPbfIO:
		return "pbf_io"
	case KindRelationSkip:
		return "relation_skip"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error wraps an underlying error with a Kind so callers can branch on
// classification with errors.As instead of parsing messages.
type Error struct {
	Kind Kind
	Err  error
}

func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether err is an *Error of the given Kind.
func Is(err error, kind Kind) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}
