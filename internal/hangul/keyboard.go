package hangul

// Two-set (dubeolsik) keyboard layout. Each table parallels the Jamo tables
// in jamo.go: leadKeys[i] is the keystroke for leads[i], and so on. Shifted
// keys are uppercase; compound vowels and trailing consonants take the two
// keystrokes of their parts.
var (
	leadKeys = []string{
		"r", "R", "s", "e", "E", "f", "a", "q", "Q",
		"t", "T", "d", "w", "W", "c", "z", "x", "v", "g",
	}
	vowelKeys = []string{
		"k", "o", "i", "O", "j", "p", "u", "P", "h",
		"hk", "ho", "hl", "y", "n", "nj", "np", "nl", "b",
		"m", "ml", "l",
	}
	trailKeys = []string{
		"", "r", "R", "rt", "s", "sw", "sg", "e", "f", "fr",
		"fa", "fq", "ft", "fx", "fv", "fg", "a", "q", "qt",
		"t", "T", "d", "w", "c", "z", "x", "v", "g",
	}
)

// keysByJamo maps every compatibility Jamo to its keystroke run. Leads and
// single trailing consonants share codepoints and keystrokes, so the merge
// is collision-free.
var keysByJamo = buildKeysByJamo()

func buildKeysByJamo() map[rune]string {
	m := make(map[rune]string)
	for i, r := range leads {
		m[r] = leadKeys[i]
	}
	for i, r := range vowels {
		m[r] = vowelKeys[i]
	}
	for i, r := range trailRunes {
		if i == 0 {
			continue
		}
		m[r] = trailKeys[i]
	}
	return m
}

// keySymbols maps a single keystroke to the Jamo it may produce, tagged by
// class. Compound Jamo never get their own entry here: their two keystrokes
// arrive as two symbols and are merged by the syllable builder.
var keySymbols = buildKeySymbols()

func buildKeySymbols() map[rune]symbol {
	m := make(map[rune]symbol)
	get := func(k rune) symbol {
		if sym, ok := m[k]; ok {
			return sym
		}
		return symbol{lead: -1, vowel: -1, trail: -1}
	}
	for i, k := range leadKeys {
		sym := get(rune(k[0]))
		sym.lead = i
		m[rune(k[0])] = sym
	}
	for i, k := range vowelKeys {
		if len(k) != 1 {
			continue
		}
		sym := get(rune(k[0]))
		sym.vowel = i
		m[rune(k[0])] = sym
	}
	for i, k := range trailKeys {
		if i == 0 || len(k) != 1 {
			continue
		}
		sym := get(rune(k[0]))
		sym.trail = i
		m[rune(k[0])] = sym
	}
	return m
}
