package profile

const (
	// DefaultTopN is the default ranking truncation for words and values.
	DefaultTopN = 10

	// DefaultNumericThreshold is the fraction of present values that must
	// coerce to a number for a column to classify as numeric. The margin
	// below 1.0 tolerates sparse noise ("N/A" entries) inside an
	// otherwise numeric column.
	DefaultNumericThreshold = 0.8

	// topValueCount bounds the categorical value ranking.
	topValueCount = 5
)

// Options configures the profiling engine. The zero value selects the
// defaults.
type Options struct {
	// TopN truncates frequency rankings. Defaults to DefaultTopN when
	// not positive.
	TopN int

	// UseStopwords drops stopword tokens before text statistics.
	UseStopwords bool

	// Stopwords is the set consulted when UseStopwords is on. Defaults
	// to DefaultStopwords when nil.
	Stopwords map[string]struct{}

	// NumericThreshold overrides DefaultNumericThreshold when positive.
	NumericThreshold float64

	// Delimiter separates fields of delimited-table sources. Defaults
	// to ','.
	Delimiter byte
}

// normalized returns a copy with defaults filled in.
func (o Options) normalized() Options {
	if o.TopN <= 0 {
		o.TopN = DefaultTopN
	}
	if o.NumericThreshold <= 0 {
		o.NumericThreshold = DefaultNumericThreshold
	}
	if o.Stopwords == nil {
		o.Stopwords = DefaultStopwords
	}
	if o.Delimiter == 0 {
		o.Delimiter = ','
	}
	return o
}

// DefaultStopwords is the closed set of common function words dropped
// from text statistics when stopword filtering is enabled.
var DefaultStopwords = stopwordSet(
	"the", "a", "an", "and", "or", "but", "if", "then", "else", "when",
	"at", "by", "for", "in", "of", "on", "to", "with", "is", "it", "as",
	"that", "this", "these", "those", "are", "be", "was", "were", "from",
	"so", "we", "you", "he", "she", "they", "them", "his", "her", "our",
	"your", "their", "i", "me", "my", "mine", "us", "will", "not", "no",
	"yes",
)

func stopwordSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}
