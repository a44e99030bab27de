package profile

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// wordPattern matches maximal runs of word characters and apostrophes.
// Edge apostrophes are trimmed after matching so quoted words do not keep
// their quotes while contractions keep theirs.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_']+`)

// Text computes lexical statistics over unstructured text. Line endings
// are normalized before counting, so the same content always yields the
// same profile regardless of platform conventions.
func Text(content string, opts Options) *TextProfile {
	opts = opts.normalized()

	content = normalizeNewlines(content)
	lines := splitLines(content)

	words := tokenize(content)
	if opts.UseStopwords {
		kept := words[:0]
		for _, w := range words {
			if _, drop := opts.Stopwords[w]; !drop {
				kept = append(kept, w)
			}
		}
		words = kept
	}

	unique := make(map[string]struct{}, len(words))
	var totalLen int
	for _, w := range words {
		unique[w] = struct{}{}
		totalLen += utf8.RuneCountInString(w)
	}

	var avgLen float64
	if len(words) > 0 {
		avgLen = roundTo(float64(totalLen)/float64(len(words)), 2)
	}

	var longest int
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > longest {
			longest = n
		}
	}

	return &TextProfile{
		LineCount:         len(lines),
		CharCount:         utf8.RuneCountInString(content),
		WordCount:         len(words),
		UniqueWordCount:   len(unique),
		AvgWordLength:     avgLen,
		LongestLineLength: longest,
		TopWords:          topWords(words, opts.TopN),
	}
}

func tokenize(content string) []string {
	matches := wordPattern.FindAllString(strings.ToLower(content), -1)

	words := matches[:0]
	for _, m := range matches {
		if w := strings.Trim(m, "'"); w != "" {
			words = append(words, w)
		}
	}

	return words
}

func topWords(words []string, limit int) []WordCount {
	ranked := topCounts(words, limit)

	top := make([]WordCount, len(ranked))
	for i, vc := range ranked {
		top[i] = WordCount{Word: vc.Value, Count: vc.Count}
	}

	return top
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// splitLines splits on newlines without producing a phantom empty line
// for content that ends with one. Empty content has no lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
