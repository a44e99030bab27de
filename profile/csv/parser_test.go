package csv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAll(t *testing.T) {
	src := strings.Join([]string{
		`"name","gender","state"`,
		`Joe,"M",GA`,
		`"Sue","""F""",NJ`,
		`Bob,M,NY`,
		`"Bill","M",`, // trailing comma
	}, "\n")

	rows, err := ReadAll(strings.NewReader(src), ',')
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"name", "gender", "state"},
		{"Joe", "M", "GA"},
		{"Sue", `"F"`, "NJ"},
		{"Bob", "M", "NY"},
		{"Bill", "M", ""},
	}, rows)
}

func TestReadAllEmptyAndBlankLines(t *testing.T) {
	rows, err := ReadAll(strings.NewReader("a,b\n\n\n1,2\n"), ',')
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"1", "2"}}, rows)

	rows, err = ReadAll(strings.NewReader(""), ',')
	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestReadAllSeparator(t *testing.T) {
	rows, err := ReadAll(strings.NewReader("a|b\n1|2\n"), '|')
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"1", "2"}}, rows)
}

func TestReadAllRaggedRows(t *testing.T) {
	rows, err := ReadAll(strings.NewReader("a,b,c\n1\n1,2,3,4\n"), ',')
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Len(t, rows[1], 1)
	assert.Len(t, rows[2], 4)
}

func TestReadAllMalformedQuoting(t *testing.T) {
	// Bad quoting keeps the raw remainder instead of failing the scan.
	src := strings.Join([]string{
		`"name","gender",state`,
		`Joe,"M", "GA"`,
		`"Bob",M,NY"`,
	}, "\n")

	rows, err := ReadAll(strings.NewReader(src), ',')
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"name", "gender", "state"},
		{"Joe", "M", ` "GA"`},
		{"Bob", "M", `NY"`},
	}, rows)
}

func TestReadAllQuotedNewline(t *testing.T) {
	// Scanning is line-based: a newline inside a quoted field splits the
	// record, with each half recovered as a raw field.
	rows, err := ReadAll(strings.NewReader("a,\"x\ny\",b\n"), ',')
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"a", `"x`},
		{`y",b`},
	}, rows)
}

func TestScannerLineNumbers(t *testing.T) {
	s := NewScanner(strings.NewReader("a\n\nb\n"), ',')

	require.True(t, s.Scan())
	assert.Equal(t, 1, s.Line())
	assert.Equal(t, []string{"a"}, s.Row())

	// The blank line is skipped but still counted.
	require.True(t, s.Scan())
	assert.Equal(t, 3, s.Line())
	assert.Equal(t, []string{"b"}, s.Row())

	assert.False(t, s.Scan())
	assert.NoError(t, s.Err())
}

func TestSplitFields(t *testing.T) {
	tests := map[string]struct {
		Line   string
		Fields []string
	}{
		"plain":             {"a,b,c", []string{"a", "b", "c"}},
		"quoted":            {`"a","b"`, []string{"a", "b"}},
		"escaped quotes":    {`"say ""hi""",x`, []string{`say "hi"`, "x"}},
		"embedded sep":      {`"a,b",c`, []string{"a,b", "c"}},
		"empty middle":      {"a,,c", []string{"a", "", "c"}},
		"trailing sep":      {"a,b,", []string{"a", "b", ""}},
		"single field":      {"a", []string{"a"}},
		"unterminated":      {`"abc`, []string{`"abc`}},
		"quote in unquoted": {`ab"c`, []string{`ab"c`}},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.Fields, splitFields(test.Line, ','))
		})
	}
}
