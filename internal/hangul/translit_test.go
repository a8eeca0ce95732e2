package hangul

import "testing"

func TestHangulToKeystrokes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"한", "gks"},
		{"한국", "gksrnr"},
		{"값", "rkqt"},
		// Standalone compatibility Jamo map to keystrokes too.
		{"ㅐㅔ둔ㄷㅁㄱ초", "opensearch"},
		{"믐캐ㅜ.채ㅡ", "amazon.com"},
		{"ㅐㅔ둔ㄷㅁㄱ초!@#$%^&&**((", "opensearch!@#$%^&&**(("},
		{"ㄴ잭ㅇ", "sword"},
		{"Hello, 123!", "Hello, 123!"},
	}
	for _, tt := range tests {
		if got := HangulToKeystrokes(tt.input); got != tt.want {
			t.Errorf("HangulToKeystrokes(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestKeystrokesToHangul(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"dkssud", "안녕"},
		{"gksrnr", "한국"},
		{"rkqt", "값"},
		{"rhk", "과"},
		{"dml", "의"},
		// A consonant between two vowels leads the following syllable.
		{"rkrtl", "각시"},
		{"rksdk", "간아"},
		// Incomplete trailing input stays as standalone Jamo.
		{"r", "ㄱ"},
		{"rk", "가"},
		{"opensearch", "ㅐㅔ둔ㄷㅁㄱ초"},
		{"sword", "ㄴ잭ㅇ"},
		// A letter run with any unmapped key is literal Latin text.
		{"Hello, 123!", "Hello, 123!"},
		{"dkssud HI", "안녕 HI"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := KeystrokesToHangul(tt.input); got != tt.want {
			t.Errorf("KeystrokesToHangul(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestKeystrokeRoundTrip(t *testing.T) {
	// Any text of composed syllables reachable via the two-set layout must
	// survive encode then decode.
	for _, s := range []string{
		"한국", "안녕하세요", "값지다", "앉다", "꿈을꾸다", "좋아요",
		"과자", "의자", "바보", "따뜻한",
	} {
		keys := HangulToKeystrokes(s)
		if got := KeystrokesToHangul(keys); got != s {
			t.Errorf("KeystrokesToHangul(%q) = %q, want %q", keys, got, s)
		}
	}
}

func TestResyllabification(t *testing.T) {
	// When A ends in a trailing consonant that is also a valid lead and B
	// starts with a vowel sound, the concatenated keystrokes must still
	// split back into A+B.
	pairs := [][2]string{
		{"간", "아"},
		{"한", "우"},
		{"먹", "어"},
		{"값", "이"},
	}
	for _, p := range pairs {
		keys := HangulToKeystrokes(p[0]) + HangulToKeystrokes(p[1])
		want := p[0] + p[1]
		if got := KeystrokesToHangul(keys); got != want {
			t.Errorf("KeystrokesToHangul(%q) = %q, want %q", keys, got, want)
		}
	}
}
