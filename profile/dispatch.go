package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/filespect/filespect/profile/csv"
	"github.com/filespect/filespect/profile/jsonval"
)

var (
	// ErrUnsupportedKind reports an input kind with no registered
	// profiler.
	ErrUnsupportedKind = errors.New("unsupported input kind")

	// ErrMalformedInput reports structured content that does not parse.
	ErrMalformedInput = errors.New("malformed structured input")
)

// Dispatch profiles the source content according to its declared kind.
// The reader is fully consumed before any profiling runs. Empty input is
// never an error: it yields a profile with zero-valued counts.
func Dispatch(kind Kind, r io.Reader, opts Options) (Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindText:
		// Decoding tolerance: invalid bytes are replaced, never fatal.
		return Text(strings.ToValidUTF8(string(data), "�"), opts), nil

	case KindTable:
		return dispatchTable(data, opts)

	case KindStructured:
		return dispatchStructured(data, opts)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, string(kind))
}

func dispatchTable(data []byte, opts Options) (Profile, error) {
	opts = opts.normalized()

	rows, err := csv.ReadAll(bytes.NewReader(data), opts.Delimiter)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return Table(nil, opts), nil
	}

	header := rows[0]
	records := make([]Record, len(rows)-1)

	for i, row := range rows[1:] {
		n := len(row)
		if n > len(header) {
			// Extra cells have no header to attach to.
			n = len(header)
		}

		rec := make(Record, n)
		for j := 0; j < n; j++ {
			rec[j] = Field{Name: header[j], Value: row[j]}
		}
		records[i] = rec
	}

	return TableWithHeaders(header, records, opts), nil
}

func dispatchStructured(data []byte, opts Options) (Profile, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Table(nil, opts), nil
	}

	v, err := jsonval.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	// An array of objects is tabular data; everything else is surveyed
	// structurally.
	if arr, ok := v.([]interface{}); ok {
		if len(arr) == 0 {
			return Table(nil, opts), nil
		}

		if _, ok := arr[0].(jsonval.Object); ok {
			return Table(recordsFromArray(arr), opts), nil
		}
	}

	return Structure(v), nil
}

// recordsFromArray converts an array of decoded objects to records.
// Non-object elements become empty records so that row accounting stays
// consistent: every row contributes to missing counts.
func recordsFromArray(arr []interface{}) []Record {
	records := make([]Record, len(arr))

	for i, el := range arr {
		obj, ok := el.(jsonval.Object)
		if !ok {
			records[i] = Record{}
			continue
		}

		rec := make(Record, len(obj))
		for j, m := range obj {
			rec[j] = Field{Name: m.Name, Value: m.Value}
		}
		records[i] = rec
	}

	return records
}
