package hangul

import "strings"

// HangulToKeystrokes renders text as the two-set keyboard keystrokes that
// would produce it: 한 becomes "gks". Syllables are decomposed first, so
// composed syllables and standalone compatibility Jamo encode identically.
// Runes with no keystroke mapping pass through unchanged.
func HangulToKeystrokes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range DecomposeString(s, true) {
		if keys, ok := keysByJamo[r]; ok {
			b.WriteString(keys)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// KeystrokesToHangul converts two-set keyboard keystrokes back into Hangul:
// "dkssud" becomes 안녕. The input is scanned as maximal ASCII-letter runs;
// a run converts only when every letter in it is a valid keystroke, so mixed
// Latin text like "Hello" stays literal instead of turning into stray Jamo.
// Everything outside letter runs passes through unchanged.
func KeystrokesToHangul(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(runes); {
		if !isASCIILetter(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && isASCIILetter(runes[j]) {
			j++
		}
		run := runes[i:j]
		if syms, ok := tagKeystrokes(run); ok {
			buildSyllables(&b, syms)
		} else {
			b.WriteString(string(run))
		}
		i = j
	}
	return b.String()
}

// tagKeystrokes maps a letter run to class-tagged Jamo symbols. It fails as
// soon as one letter has no keystroke reading; the caller then treats the
// whole run as literal Latin text.
func tagKeystrokes(run []rune) ([]symbol, bool) {
	syms := make([]symbol, len(run))
	for i, r := range run {
		sym, ok := keySymbols[r]
		if !ok {
			return nil, false
		}
		syms[i] = sym
	}
	return syms, true
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
