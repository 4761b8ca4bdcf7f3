package rtreeindex

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/osmtools/adminlookup/internal/apperr"
	"github.com/osmtools/adminlookup/internal/boundary"
)

// magic identifies a persisted index file; version lets a future
// incompatible codec change refuse to load an older file instead of
// corrupting on decode.
var magic = [4]byte{'A', 'L', 'I', 'X'}

const version uint32 = 1

// Save writes idx's boundary set to w as a magic header, a version,
// and a gob-encoded payload. The R-tree itself is never serialized;
// Load rebuilds it from the decoded boundaries.
func Save(w io.Writer, idx *Index) error {
	if _, err := w.Write(magic[:]); err != nil {
		return apperr.New(apperr.KindIndexIO, fmt.Errorf("writing magic: %w", err))
	}
	if err := binary.Write(w, binary.BigEndian, version); err != nil {
		return apperr.New(apperr.KindIndexIO, fmt.Errorf("writing version: %w", err))
	}
	if err := gob.NewEncoder(w).Encode(idx.boundaries); err != nil {
		return apperr.New(apperr.KindIndexIO, fmt.Errorf("encoding boundaries: %w", err))
	}
	return nil
}

// Load reads a file written by Save and rebuilds the R-tree over its
// boundaries.
func Load(r io.Reader) (*Index, error) {
	var gotMagic [4]byte
	if _, err := io.ReadFull(r, gotMagic[:]); err != nil {
		return nil, apperr.New(apperr.KindIndexIO, fmt.Errorf("reading magic: %w", err))
	}
	if !bytes.Equal(gotMagic[:], magic[:]) {
		return nil, apperr.New(apperr.KindIndexIO, fmt.Errorf("not an index file (bad magic %q)", gotMagic))
	}

	var gotVersion uint32
	if err := binary.Read(r, binary.BigEndian, &gotVersion); err != nil {
		return nil, apperr.New(apperr.KindIndexIO, fmt.Errorf("reading version: %w", err))
	}
	if gotVersion != version {
		return nil, apperr.New(apperr.KindIndexIO, fmt.Errorf("unsupported index version %d (want %d)", gotVersion, version))
	}

	var boundaries []*boundary.Boundary
	if err := gob.NewDecoder(r).Decode(&boundaries); err != nil {
		return nil, apperr.New(apperr.KindIndexIO, fmt.Errorf("decoding boundaries: %w", err))
	}

	return Build(boundaries), nil
}
