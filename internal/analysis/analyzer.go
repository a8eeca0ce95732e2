package analysis

import (
	"fmt"
	"strings"
	"unicode"
)

// Tokenize splits text into index tokens on anything that is not a letter or
// digit. No case folding happens here: the engtohan filter is case-sensitive
// (shifted keys produce different Jamo), so folding must never run before it.
func Tokenize(text string) []string {
	var tokens []string
	var cur strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cur.WriteRune(r)
			continue
		}
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}
	return tokens
}

// Analyzer runs a filter chain over each token of the input, replacing the
// token's text with each filter's output in turn.
type Analyzer struct {
	filters []Filter
}

// NewAnalyzer resolves filter names against the registry. An empty name list
// yields a tokenize-only analyzer.
func NewAnalyzer(names ...string) (*Analyzer, error) {
	fs := make([]Filter, 0, len(names))
	for _, name := range names {
		f, ok := Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown filter %q", name)
		}
		fs = append(fs, f)
	}
	return &Analyzer{filters: fs}, nil
}

// Analyze tokenizes text and applies the filter chain per token. Tokens that
// end up empty are dropped.
func (a *Analyzer) Analyze(text string) []string {
	tokens := Tokenize(text)
	out := tokens[:0]
	for _, tok := range tokens {
		for _, f := range a.filters {
			tok = f.Apply(tok)
		}
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
