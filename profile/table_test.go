package profile

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(pairs ...interface{}) Record {
	r := make(Record, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		r = append(r, Field{Name: pairs[i].(string), Value: pairs[i+1]})
	}
	return r
}

func TestTableHeaderOrder(t *testing.T) {
	records := []Record{
		rec("b", "1", "a", "2"),
		rec("c", "3", "a", "4"),
		rec("d", "5"),
	}

	p := Table(records, Options{})

	assert.Equal(t, []string{"b", "a", "c", "d"}, p.HeaderOrder)
	assert.Equal(t, 3, p.RowCount)
	assert.Equal(t, 4, p.ColumnCount)
	require.Len(t, p.Columns, 4)

	for i, h := range p.HeaderOrder {
		assert.Equal(t, h, p.Columns[i].Name)
	}
}

func TestTableMissingFields(t *testing.T) {
	records := []Record{
		rec("x", "1", "y", "a"),
		rec("x", "2"),
		rec("y", "b"),
	}

	p := Table(records, Options{})

	require.Equal(t, []string{"x", "y"}, p.HeaderOrder)

	x, y := p.Columns[0], p.Columns[1]

	assert.Equal(t, ColumnNumeric, x.Kind)
	assert.Equal(t, 1, x.MissingCount)
	assert.Equal(t, 2, x.Numeric.Count)

	assert.Equal(t, ColumnCategorical, y.Kind)
	assert.Equal(t, 1, y.MissingCount)
	assert.Equal(t, 2, y.Categorical.ObservedCount)

	// Per header: missing + present covers every record.
	assert.Equal(t, p.RowCount, x.MissingCount+x.Numeric.Count)
	assert.Equal(t, p.RowCount, y.MissingCount+y.Categorical.ObservedCount)
}

func TestTableWithHeadersSeedsColumns(t *testing.T) {
	// A declared header survives even with zero records.
	p := TableWithHeaders([]string{"id", "name"}, nil, Options{})

	assert.Equal(t, 0, p.RowCount)
	assert.Equal(t, 2, p.ColumnCount)
	assert.Equal(t, []string{"id", "name"}, p.HeaderOrder)

	for _, col := range p.Columns {
		assert.Equal(t, ColumnCategorical, col.Kind)
		assert.Equal(t, 0, col.Categorical.ObservedCount)
	}
}

func TestTableEmpty(t *testing.T) {
	p := Table(nil, Options{})

	assert.Equal(t, 0, p.RowCount)
	assert.Equal(t, 0, p.ColumnCount)
	assert.Empty(t, p.HeaderOrder)
	assert.Empty(t, p.Columns)
}

func TestTableSerializedRoundTrip(t *testing.T) {
	// Re-emitting the source rows and profiling the reparsed form yields
	// the same column profiles as profiling the records directly.
	records := []Record{
		rec("age", "10", "color", "red"),
		rec("age", "20", "color", "red"),
		rec("age", "30", "color", "blue"),
		rec("age", "", "color", "blue"),
		rec("age", "40", "color", ""),
	}

	direct := Table(records, Options{})

	t.Run("csv", func(t *testing.T) {
		var b strings.Builder
		b.WriteString("age,color\n")
		for _, r := range records {
			age, _ := r.Get("age")
			color, _ := r.Get("color")
			fmt.Fprintf(&b, "%s,%s\n", age, color)
		}

		p, err := Dispatch(KindTable, strings.NewReader(b.String()), Options{})
		require.NoError(t, err)

		tp, ok := p.(*TableProfile)
		require.True(t, ok)
		assert.Equal(t, direct.HeaderOrder, tp.HeaderOrder)
		assert.Equal(t, direct.RowCount, tp.RowCount)
		assert.Equal(t, direct.Columns, tp.Columns)
	})

	t.Run("json", func(t *testing.T) {
		var b strings.Builder
		b.WriteString("[")
		for i, r := range records {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString("{")
			for j, f := range r {
				if j > 0 {
					b.WriteString(",")
				}
				fmt.Fprintf(&b, "%q:%q", f.Name, f.Value)
			}
			b.WriteString("}")
		}
		b.WriteString("]")

		p, err := Dispatch(KindStructured, strings.NewReader(b.String()), Options{})
		require.NoError(t, err)

		tp, ok := p.(*TableProfile)
		require.True(t, ok)
		assert.Equal(t, direct.HeaderOrder, tp.HeaderOrder)
		assert.Equal(t, direct.RowCount, tp.RowCount)
		assert.Equal(t, direct.Columns, tp.Columns)
	})
}

func TestTableReorderInvariance(t *testing.T) {
	records := []Record{
		rec("n", "1", "c", "red"),
		rec("n", "2", "c", "red"),
		rec("n", "3", "c", "blue"),
		rec("n", "x", "c", ""),
	}

	reversed := make([]Record, len(records))
	for i, r := range records {
		reversed[len(records)-1-i] = r
	}

	a := Table(records, Options{})
	b := Table(reversed, Options{})

	require.Equal(t, a.HeaderOrder, b.HeaderOrder)

	for i := range a.Columns {
		assert.Equal(t, a.Columns[i].Kind, b.Columns[i].Kind)
		assert.Equal(t, a.Columns[i].MissingCount, b.Columns[i].MissingCount)
		assert.Equal(t, a.Columns[i].Numeric, b.Columns[i].Numeric)

		if a.Columns[i].Categorical != nil {
			assert.Equal(t, a.Columns[i].Categorical.ObservedCount, b.Columns[i].Categorical.ObservedCount)
		}
	}
}
