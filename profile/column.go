package profile

import (
	"sort"
	"strings"
)

// Column classifies a single named field from the raw values observed for
// it across all records. A value per record is expected; absent values
// must be passed as nil.
//
// The field is numeric when at least the configured fraction of present
// values coerces to a number and at least one number was collected.
// Otherwise it is categorical. An all-missing field is always
// categorical with an empty ranking.
func Column(name string, raw []interface{}, opts Options) *ColumnProfile {
	opts = opts.normalized()

	var (
		missing int
		present int
		nums    []float64
		strays  []string
	)

	for _, v := range raw {
		if isMissing(v) {
			missing++
			continue
		}

		present++

		if f, ok := CoerceNumber(v); ok {
			nums = append(nums, f)
		} else {
			strays = append(strays, strings.TrimSpace(stringForm(v)))
		}
	}

	col := &ColumnProfile{
		Name:         name,
		MissingCount: missing,
	}

	numeric := present > 0 &&
		float64(len(nums))/float64(present) >= opts.NumericThreshold &&
		len(nums) > 0

	if numeric {
		col.Kind = ColumnNumeric
		col.Numeric = summarizeNumbers(nums)
		return col
	}

	col.Kind = ColumnCategorical
	col.Categorical = &CategoricalSummary{
		ObservedCount: present,
		TopValues:     topCounts(strays, topValueCount),
	}

	return col
}

// summarizeNumbers computes the numeric payload. Non-numeric stragglers
// in an otherwise numeric column are excluded, not reported.
func summarizeNumbers(nums []float64) *NumericSummary {
	min, max := nums[0], nums[0]

	var sum float64
	for _, f := range nums {
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
		sum += f
	}

	return &NumericSummary{
		Count:  len(nums),
		Min:    min,
		Max:    max,
		Mean:   roundTo(sum/float64(len(nums)), 4),
		Median: roundTo(median(nums), 4),
	}
}

func median(nums []float64) float64 {
	s := make([]float64, len(nums))
	copy(s, nums)
	sort.Float64s(s)

	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}
	return (s[mid-1] + s[mid]) / 2
}

// topCounts ranks distinct values by descending frequency, ties broken by
// first appearance, truncated to limit.
func topCounts(values []string, limit int) []ValueCount {
	counts := make(map[string]int, len(values))

	var order []string
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	// Stable sort preserves first-seen order among equal counts.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}

	ranked := make([]ValueCount, len(order))
	for i, v := range order {
		ranked[i] = ValueCount{Value: v, Count: counts[v]}
	}

	return ranked
}
