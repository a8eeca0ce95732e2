// Package analysis exposes the Hangul transforms as named token filters and
// provides the tokenizer/analyzer chain the indexing side consumes. The
// registry is populated once at init and read-only afterwards.
package analysis

import (
	"fmt"
	"sort"

	"github.com/jusunglee/hangulsearch/internal/hangul"
)

// Filter rewrites one token's text. Implementations are stateless and safe
// for concurrent use.
type Filter interface {
	Name() string
	Apply(text string) string
}

var filters = make(map[string]Filter)

func init() {
	register(jamoFilter{})
	register(jamoComposeFilter{})
	register(chosungFilter{})
	register(hanToEngFilter{})
	register(engToHanFilter{})
	register(romajaFilter{})
}

func register(f Filter) {
	if _, ok := filters[f.Name()]; ok {
		panic(fmt.Sprintf("duplicate filter: %s", f.Name()))
	}
	filters[f.Name()] = f
}

// Get returns the filter registered under name.
func Get(name string) (Filter, bool) {
	f, ok := filters[name]
	return f, ok
}

// Names returns all registered filter names, sorted.
func Names() []string {
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type jamoFilter struct{}

func (jamoFilter) Name() string { return "jamo" }
func (jamoFilter) Apply(text string) string {
	return hangul.DecomposeString(text, true)
}

type jamoComposeFilter struct{}

func (jamoComposeFilter) Name() string { return "jamo_compose" }
func (jamoComposeFilter) Apply(text string) string {
	return hangul.ComposeString(text)
}

type chosungFilter struct{}

func (chosungFilter) Name() string { return "chosung" }
func (chosungFilter) Apply(text string) string {
	return hangul.Chosung(text)
}

type hanToEngFilter struct{}

func (hanToEngFilter) Name() string { return "hantoeng" }
func (hanToEngFilter) Apply(text string) string {
	return hangul.HangulToKeystrokes(text)
}

type engToHanFilter struct{}

func (engToHanFilter) Name() string { return "engtohan" }
func (engToHanFilter) Apply(text string) string {
	return hangul.KeystrokesToHangul(text)
}

type romajaFilter struct{}

func (romajaFilter) Name() string { return "romaja" }
func (romajaFilter) Apply(text string) string {
	return hangul.Romanize(text)
}
