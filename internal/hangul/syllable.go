package hangul

import "strings"

// symbol is one parsed Jamo tagged with the classes it may fill. An index of
// -1 means the Jamo is not a member of that class. A consonant keystroke such
// as "s" is valid as both a lead (ㄴ) and a trailing consonant, and the
// builder below decides which role it plays.
type symbol struct {
	lead  int
	vowel int
	trail int
}

// Compound vowels by the indices of their parts: ㅗ then ㅏ is ㅘ.
var vowelPairs = map[[2]int]int{
	{8, 0}: 9, {8, 1}: 10, {8, 20}: 11,
	{13, 4}: 14, {13, 5}: 15, {13, 20}: 16,
	{18, 20}: 19,
}

// Compound trailing consonants by the trail indices of their parts:
// ㄱ then ㅅ is ㄳ.
var trailPairs = map[[2]int]int{
	{1, 19}: 3,
	{4, 22}: 5, {4, 27}: 6,
	{8, 1}: 9, {8, 16}: 10, {8, 17}: 11, {8, 19}: 12,
	{8, 25}: 13, {8, 26}: 14, {8, 27}: 15,
	{17, 19}: 18,
}

type builderState int

const (
	stateIdle builderState = iota
	stateLead
	stateVowel
	stateTrail
)

// buildSyllables groups a flat Jamo sequence into composed syllables. It is a
// state machine with one symbol of lookahead implementing the Korean
// resyllabification rule: a consonant that sits between two vowels always
// leads the following syllable, never closes the previous one. A partial
// syllable left at the end of input is written as its standalone
// compatibility Jamo rather than dropped.
func buildSyllables(b *strings.Builder, syms []symbol) {
	var cur Triple
	state := stateIdle

	vowelNext := func(i int) bool {
		return i+1 < len(syms) && syms[i+1].vowel >= 0
	}
	emit := func() {
		b.WriteRune(Compose(cur))
		cur = Triple{}
		state = stateIdle
	}
	standalone := func(sym symbol) {
		switch {
		case sym.lead >= 0:
			b.WriteRune(leads[sym.lead])
		case sym.vowel >= 0:
			b.WriteRune(vowels[sym.vowel])
		default:
			b.WriteRune(trailRunes[sym.trail])
		}
	}

	for i := 0; i < len(syms); i++ {
		sym := syms[i]
		switch state {
		case stateIdle:
			switch {
			case sym.lead >= 0 && vowelNext(i):
				cur.Lead = sym.lead
				state = stateLead
			case sym.vowel >= 0 && vowelNext(i):
				// Bare vowel pair such as ㅗㅏ typed without a lead.
				if v, ok := vowelPairs[[2]int{sym.vowel, syms[i+1].vowel}]; ok {
					b.WriteRune(vowels[v])
					i++
					continue
				}
				standalone(sym)
			default:
				standalone(sym)
			}

		case stateLead:
			// vowelNext guaranteed this symbol is a vowel.
			cur.Vowel = sym.vowel
			state = stateVowel

		case stateVowel:
			switch {
			case sym.vowel >= 0:
				if v, ok := vowelPairs[[2]int{cur.Vowel, sym.vowel}]; ok {
					cur.Vowel = v
				} else {
					emit()
					standalone(sym)
				}
			case sym.lead >= 0 && vowelNext(i):
				// The consonant leads the next syllable.
				lead := sym.lead
				emit()
				cur.Lead = lead
				state = stateLead
			case sym.trail > 0:
				cur.Trail = sym.trail
				state = stateTrail
			default:
				emit()
				standalone(sym)
			}

		case stateTrail:
			switch {
			case sym.lead >= 0 && vowelNext(i):
				lead := sym.lead
				emit()
				cur.Lead = lead
				state = stateLead
			case sym.trail > 0:
				if t, ok := trailPairs[[2]int{cur.Trail, sym.trail}]; ok {
					cur.Trail = t
				} else {
					emit()
					standalone(sym)
				}
			default:
				emit()
				standalone(sym)
			}
		}
	}

	switch state {
	case stateLead:
		// Lead with no vowel: keep it as a standalone Jamo.
		b.WriteRune(leads[cur.Lead])
	case stateVowel, stateTrail:
		emit()
	}
}
