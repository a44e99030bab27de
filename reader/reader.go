// Package reader acquires input streams for profiling: it opens files or
// stdin, peels optional gzip/bzip2 compression, strips a UTF-8 BOM, and
// enforces an optional byte ceiling so a single oversized file cannot
// exhaust memory. It also resolves the declared input kind from a file
// name.
package reader

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/filespect/filespect/profile"
)

var bom = []byte{0xef, 0xbb, 0xbf}

// skipBOM drops a leading UTF-8 byte order mark from the stream. The
// peek buffers past short reads, so the mark is detected even when the
// underlying reader delivers it one byte at a time.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)

	if head, _ := br.Peek(len(bom)); bytes.HasPrefix(head, bom) {
		br.Discard(len(bom))
	}

	return br
}

// DetectKind resolves the declared input kind and compression type from
// the extensions of a file name. Compression suffixes are peeled before
// the format extension is examined. An unrecognized format yields an
// empty kind.
func DetectKind(name string) (profile.Kind, string) {
	_, base := path.Split(name)

	var (
		kind        profile.Kind
		compression string
	)

	for _, ext := range strings.Split(base, ".")[1:] {
		switch strings.ToLower(ext) {
		case "gz", "gzip":
			compression = "gzip"

		case "bz2", "bzip2":
			compression = "bzip2"

		case "txt", "log", "md":
			kind = profile.KindText

		case "csv":
			kind = profile.KindTable

		case "json":
			kind = profile.KindStructured
		}
	}

	return kind, compression
}

// Decompress wraps r with a decoder for the named compression type. An
// empty type returns r unchanged.
func Decompress(t string, r io.Reader) (io.Reader, error) {
	switch t {
	case "":
		return r, nil

	case "gzip", "gz":
		return gzip.NewReader(r)

	case "bzip2", "bz2":
		return bzip2.NewReader(r), nil
	}

	return nil, fmt.Errorf("compression type not supported: %s", t)
}

// Reader is an open input stream ready for profiling.
type Reader struct {
	Name        string
	Compression string

	reader io.Reader
	file   *os.File
}

// Read implements the io.Reader interface.
func (r *Reader) Read(buf []byte) (int, error) {
	return r.reader.Read(buf)
}

// Close implements the io.Closer interface.
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// Open opens the named file, or stdin when the name is empty. When
// maxBytes is positive the stream is truncated at that many decompressed
// bytes; profiling then covers the bounded prefix.
func Open(name, compression string, maxBytes int64) (*Reader, error) {
	r := &Reader{
		Name: name,
	}

	if compression == "" {
		_, compression = DetectKind(name)
	}

	if name == "" {
		r.reader = os.Stdin
	} else {
		file, err := os.Open(name)
		if err != nil {
			return nil, err
		}

		r.file = file
		r.reader = file
	}

	decoded, err := Decompress(compression, r.reader)
	if err != nil {
		r.Close()
		return nil, err
	}
	r.reader = decoded
	r.Compression = compression

	if maxBytes > 0 {
		r.reader = io.LimitReader(r.reader, maxBytes)
	}

	r.reader = skipBOM(r.reader)

	return r, nil
}
