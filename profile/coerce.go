package profile

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CoerceNumber attempts to interpret a raw value as a finite real number.
// The trimmed string form of the value must parse as a decimal number and
// the result must be finite; anything else reports false. Booleans and
// composite values never coerce.
func CoerceNumber(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false

	case float64:
		return x, isFinite(x)

	case float32:
		return float64(x), isFinite(float64(x))

	case int:
		return float64(x), true

	case int64:
		return float64(x), true

	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return f, isFinite(f)

	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}

		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, isFinite(f)
	}

	return 0, false
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// stringForm renders a raw value the way it would appear in a report:
// strings verbatim, numbers by their literal, everything else through its
// natural formatting.
func stringForm(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}

	return fmt.Sprintf("%v", v)
}

// isMissing reports whether a raw value counts as missing: absent (nil)
// or empty after trimming whitespace.
func isMissing(v interface{}) bool {
	if v == nil {
		return true
	}
	return strings.TrimSpace(stringForm(v)) == ""
}

// roundTo rounds to the given number of decimal places.
func roundTo(f float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(f*p) / p
}
