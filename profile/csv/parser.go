// Package csv reads delimited text with RFC 4180-style quoting,
// extended with a configurable separator and tolerance for the
// malformed quoting found in real-world exports. Scanning is
// line-based: a quoted field cannot span lines, so an embedded newline
// splits the record at that point. Parse failures never abort a scan:
// the offending remainder of a line is kept as a single raw field so
// the record can still be profiled.
package csv

import (
	"bufio"
	"errors"
	"io"
)

var (
	errUnquotedField     = errors.New("quote inside unquoted field")
	errBareQuote         = errors.New("bare quote after closing quote")
	errUnterminatedField = errors.New("unterminated quoted field")
)

// Scanner steps through the records of delimited input. Rows may be
// ragged; empty lines are skipped.
type Scanner struct {
	sc  *bufio.Scanner
	sep byte

	lineno int
	row    []string
}

// NewScanner returns a scanner over r using sep as the field separator.
func NewScanner(r io.Reader, sep byte) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &Scanner{
		sc:  sc,
		sep: sep,
	}
}

// Scan advances to the next non-empty line. It returns false at the end
// of the input or on a read error.
func (s *Scanner) Scan() bool {
	for s.sc.Scan() {
		s.lineno++

		line := s.sc.Text()
		if line == "" {
			continue
		}

		s.row = splitFields(line, s.sep)
		return true
	}

	return false
}

// Row returns the fields of the current line. The slice is valid until
// the next call to Scan.
func (s *Scanner) Row() []string {
	return s.row
}

// Line returns the current 1-based line number.
func (s *Scanner) Line() int {
	return s.lineno
}

// Err returns the first read error encountered, if any.
func (s *Scanner) Err() error {
	return s.sc.Err()
}

// ReadAll scans every record of r into memory.
func ReadAll(r io.Reader, sep byte) ([][]string, error) {
	s := NewScanner(r, sep)

	var rows [][]string
	for s.Scan() {
		rows = append(rows, s.Row())
	}

	if err := s.Err(); err != nil {
		return nil, err
	}

	return rows, nil
}

// splitFields parses one line into fields. On malformed quoting the
// unparsed remainder becomes the final field verbatim.
func splitFields(line string, sep byte) []string {
	var fields []string

	rest := line
	for {
		tok, next, more, err := scanField(rest, sep)
		if err != nil {
			fields = append(fields, rest)
			return fields
		}

		fields = append(fields, tok)

		if !more {
			return fields
		}

		// A trailing separator terminates the line with an empty field.
		if next == "" {
			fields = append(fields, "")
			return fields
		}

		rest = next
	}
}

// scanField consumes one field from data. It returns the field value,
// the remaining data, and whether a separator was consumed (meaning at
// least one more field follows).
func scanField(data string, sep byte) (string, string, bool, error) {
	if len(data) == 0 {
		return "", "", false, nil
	}

	// Quoted field. Doubled quotes are unescaped.
	if data[0] == '"' {
		var (
			buf []byte
			i   = 1
		)

		for i < len(data) {
			c := data[i]

			if c != '"' {
				buf = append(buf, c)
				i++
				continue
			}

			// Escaped quote.
			if i+1 < len(data) && data[i+1] == '"' {
				buf = append(buf, '"')
				i += 2
				continue
			}

			// Closing quote: must end the line or abut a separator.
			if i+1 == len(data) {
				return string(buf), "", false, nil
			}

			if data[i+1] == sep {
				return string(buf), data[i+2:], true, nil
			}

			return "", "", false, errBareQuote
		}

		return "", "", false, errUnterminatedField
	}

	// Unquoted field.
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case sep:
			return data[:i], data[i+1:], true, nil
		case '"':
			return "", "", false, errUnquotedField
		}
	}

	return data, "", false, nil
}
