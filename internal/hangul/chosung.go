package hangul

import "strings"

// Chosung reduces each syllable to its leading consonant as a standalone
// compatibility Jamo: 한국 becomes ㅎㄱ. This is the key used for
// initial-consonant search. Runes outside the syllable block, including
// compatibility Jamo already in the input, pass through unchanged.
func Chosung(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if t, ok := Decompose(r); ok {
			b.WriteRune(leads[t.Lead])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
