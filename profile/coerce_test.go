package profile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceNumber(t *testing.T) {
	tests := map[string]struct {
		Raw interface{}
		Val float64
		OK  bool
	}{
		"int string":         {"10", 10, true},
		"float string":       {"1.25", 1.25, true},
		"padded string":      {"  42 ", 42, true},
		"scientific":         {"1e3", 1000, true},
		"negative":           {"-3.5", -3.5, true},
		"json number":        {json.Number("7"), 7, true},
		"json float":         {json.Number("2.5"), 2.5, true},
		"float64":            {float64(9.5), 9.5, true},
		"int":                {12, 12, true},
		"word":               {"abc", 0, false},
		"empty":              {"", 0, false},
		"whitespace":         {"   ", 0, false},
		"nil":                {nil, 0, false},
		"bool":               {true, 0, false},
		"infinity string":    {"inf", 0, false},
		"negative infinity":  {"-Inf", 0, false},
		"nan string":         {"NaN", 0, false},
		"mixed alphanumeric": {"12abc", 0, false},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			v, ok := CoerceNumber(test.Raw)
			assert.Equal(t, test.OK, ok)
			if test.OK {
				assert.Equal(t, test.Val, v)
			}
		})
	}
}

func TestIsMissing(t *testing.T) {
	tests := map[string]struct {
		Raw     interface{}
		Missing bool
	}{
		"nil":          {nil, true},
		"empty":        {"", true},
		"whitespace":   {"  \t ", true},
		"word":         {"x", false},
		"zero":         {"0", false},
		"false":        {false, false},
		"number":       {json.Number("0"), false},
		"padded value": {" a ", false},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.Missing, isMissing(test.Raw))
		})
	}
}
