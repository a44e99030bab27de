// Package filespect profiles files of unknown shape: delimited tables,
// JSON documents, and plain text. It produces a structured summary per
// file suitable for rendering or machine consumption.
package filespect

import (
	"bytes"
	"fmt"
	"io"

	"github.com/filespect/filespect/profile"
	"github.com/filespect/filespect/reader"
)

// Request describes a single file to profile.
type Request struct {
	// Input path. Stdin when empty.
	Path string

	// Kind overrides extension-based detection when set.
	Kind profile.Kind

	// Compression overrides extension-based detection when set.
	Compression string

	// MaxBytes truncates the input after this many decompressed bytes.
	// Zero means unlimited.
	MaxBytes int64

	// Options configures the profiling engine.
	Options profile.Options
}

// Analyze profiles one file. The file handle is opened, fully consumed,
// and released before any profiling logic runs; profiling itself is pure
// and in-memory.
func Analyze(r *Request) (profile.Profile, error) {
	kind, compression := reader.DetectKind(r.Path)

	if r.Kind != "" {
		kind = r.Kind
	}
	if r.Compression != "" {
		compression = r.Compression
	}

	if kind == "" {
		return nil, fmt.Errorf("%w: no profiler for %q", profile.ErrUnsupportedKind, r.Path)
	}

	input, err := reader.Open(r.Path, compression, r.MaxBytes)
	if err != nil {
		return nil, fmt.Errorf("cannot open input: %w", err)
	}

	data, err := io.ReadAll(input)
	input.Close()
	if err != nil {
		return nil, fmt.Errorf("cannot read input: %w", err)
	}

	return profile.Dispatch(kind, bytes.NewReader(data), r.Options)
}
