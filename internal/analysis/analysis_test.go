package analysis

import (
	"reflect"
	"testing"
)

func TestRegistry(t *testing.T) {
	want := []string{"chosung", "engtohan", "hantoeng", "jamo", "jamo_compose", "romaja"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if _, ok := Get("chosung"); !ok {
		t.Error("Get(chosung) not found")
	}
	if _, ok := Get("stemmer"); ok {
		t.Error("Get(stemmer) found, want missing")
	}
}

func TestFilterApply(t *testing.T) {
	tests := []struct {
		filter string
		input  string
		want   string
	}{
		{"jamo", "오픈 서치", "ㅇㅗㅍㅡㄴ ㅅㅓㅊㅣ"},
		{"jamo_compose", "ㅇㅗㅍㅡㄴ", "오픈"},
		{"chosung", "한국", "ㅎㄱ"},
		{"hantoeng", "ㅐㅔ둔ㄷㅁㄱ초", "opensearch"},
		{"engtohan", "dkssud", "안녕"},
		{"romaja", "김치", "gimchi"},
		{"romaja", "꿈을꾸다", "kkumeulkkuda"},
		{"chosung", "Hello, 123!", "Hello, 123!"},
	}
	for _, tt := range tests {
		f, ok := Get(tt.filter)
		if !ok {
			t.Fatalf("filter %q not registered", tt.filter)
		}
		if got := f.Apply(tt.input); got != tt.want {
			t.Errorf("%s.Apply(%q) = %q, want %q", tt.filter, tt.input, got, tt.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"오픈 서치", []string{"오픈", "서치"}},
		{"오픈!@# search", []string{"오픈", "search"}},
		{"", nil},
		{"   ", nil},
	}
	for _, tt := range tests {
		if got := Tokenize(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestAnalyzer(t *testing.T) {
	a, err := NewAnalyzer("chosung")
	if err != nil {
		t.Fatal(err)
	}
	got := a.Analyze("오픈 서치 search")
	want := []string{"ㅇㅍ", "ㅅㅊ", "search"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Analyze = %v, want %v", got, want)
	}

	if _, err := NewAnalyzer("nope"); err == nil {
		t.Error("NewAnalyzer(nope) succeeded, want error")
	}
}
