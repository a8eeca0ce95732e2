package hangul

import "strings"

// Revised Romanization of Korean.
var (
	leadRoman = []string{
		"g", "kk", "n", "d", "tt", "r", "m", "b", "pp",
		"s", "ss", "", "j", "jj", "ch", "k", "t", "p", "h",
	}
	vowelRoman = []string{
		"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o",
		"wa", "wae", "oe", "yo", "u", "wo", "we", "wi", "yu",
		"eu", "ui", "i",
	}
	trailRoman = []string{
		"", "g", "kk", "gs", "n", "nj", "nh", "d", "l", "lg",
		"lm", "lb", "ls", "lt", "lp", "lh", "m", "b", "bs",
		"s", "ss", "ng", "j", "ch", "k", "t", "p", "h",
	}
)

// Romanize converts Hangul syllables to Revised Romanization. Other runes
// pass through unchanged.
func Romanize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		tr, ok := Decompose(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		b.WriteString(leadRoman[tr.Lead])
		b.WriteString(vowelRoman[tr.Vowel])
		b.WriteString(trailRoman[tr.Trail])
	}
	return b.String()
}
