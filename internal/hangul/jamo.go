// Package hangul implements Hangul syllable decomposition, two-set keyboard
// transliteration, and chosung (leading consonant) extraction. Every function
// is a pure transform over an in-memory string: lookup tables are built once
// at init and never mutated, so concurrent use needs no coordination.
package hangul

import "strings"

const (
	syllableBase = 0xAC00
	syllableEnd  = 0xD7A3
	vowelCount   = 21
	trailCount   = 28
)

var (
	// The 19 leading consonants, in codepoint order.
	leads = []rune{
		'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ',
		'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
	}

	// The 21 vowels.
	vowels = []rune{
		'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ',
		'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ',
		'ㅡ', 'ㅢ', 'ㅣ',
	}

	// The 27 trailing consonants plus the empty slot at index 0. Compound
	// entries are stored expanded so that DecomposeString writes their
	// constituent Jamo: 값 decomposes to ㄱㅏㅂㅅ, not ㄱㅏㅄ.
	trails = []string{
		"", "ㄱ", "ㄲ", "ㄱㅅ", "ㄴ", "ㄴㅈ", "ㄴㅎ", "ㄷ", "ㄹ", "ㄹㄱ",
		"ㄹㅁ", "ㄹㅂ", "ㄹㅅ", "ㄹㅌ", "ㄹㅍ", "ㄹㅎ", "ㅁ", "ㅂ", "ㅂㅅ",
		"ㅅ", "ㅆ", "ㅇ", "ㅈ", "ㅊ", "ㅋ", "ㅌ", "ㅍ", "ㅎ",
	}

	// Single-codepoint compatibility forms of the trailing consonants,
	// used when a trailing Jamo must stand alone.
	trailRunes = []rune{
		0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ',
		'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ',
		'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
	}
)

// Triple is the decomposed form of a Hangul syllable: indices into the lead,
// vowel, and trailing tables. A Trail of 0 means no trailing consonant.
type Triple struct {
	Lead  int
	Vowel int
	Trail int
}

// Decompose splits a composed Hangul syllable into its Jamo indices. The
// second return value is false for any rune outside the syllable block;
// callers pass such runes through unchanged.
func Decompose(r rune) (Triple, bool) {
	if r < syllableBase || r > syllableEnd {
		return Triple{}, false
	}
	off := int(r) - syllableBase
	return Triple{
		Lead:  off / (vowelCount * trailCount),
		Vowel: (off / trailCount) % vowelCount,
		Trail: off % trailCount,
	}, true
}

// Compose is the exact inverse of Decompose. Any well-formed triple lands
// inside the syllable block.
func Compose(t Triple) rune {
	return rune(syllableBase + (t.Lead*vowelCount+t.Vowel)*trailCount + t.Trail)
}

// DecomposeString expands every syllable in s into standalone compatibility
// Jamo. Compound trailing consonants expand into their constituents. Runes
// outside the syllable block, including compatibility Jamo already present
// in the input, are kept as is. With keepTrailing false the trailing
// consonant of each syllable is omitted.
func DecomposeString(s string, keepTrailing bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		t, ok := Decompose(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(leads[t.Lead])
		b.WriteRune(vowels[t.Vowel])
		if keepTrailing && t.Trail != 0 {
			b.WriteString(trails[t.Trail])
		}
	}
	return b.String()
}

// ComposeString reassembles a compatibility-Jamo sequence into composed
// syllables, the inverse of DecomposeString. Adjacent trailing consonants
// and vowels that form a compound are merged (ㅂ followed by ㅅ becomes the
// ㅄ of 값) using the same syllable builder as KeystrokesToHangul. Runes
// with no Jamo reading pass through and break syllable assembly.
func ComposeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var syms []symbol
	flush := func() {
		if len(syms) > 0 {
			buildSyllables(&b, syms)
			syms = syms[:0]
		}
	}
	for _, r := range s {
		if sym, ok := jamoSymbols[r]; ok {
			syms = append(syms, sym)
		} else {
			flush()
			b.WriteRune(r)
		}
	}
	flush()
	return b.String()
}

// jamoSymbols maps each compatibility Jamo to its class-tagged symbol.
// A consonant like ㄱ is valid both as a lead and as a trailing consonant;
// compound consonants like ㄳ only trail.
var jamoSymbols = buildJamoSymbols()

func buildJamoSymbols() map[rune]symbol {
	m := make(map[rune]symbol)
	for i, r := range leads {
		m[r] = symbol{lead: i, vowel: -1, trail: -1}
	}
	for i, r := range vowels {
		m[r] = symbol{lead: -1, vowel: i, trail: -1}
	}
	for i, r := range trailRunes {
		if i == 0 {
			continue
		}
		sym, ok := m[r]
		if !ok {
			sym = symbol{lead: -1, vowel: -1, trail: -1}
		}
		sym.trail = i
		m[r] = sym
	}
	return m
}
