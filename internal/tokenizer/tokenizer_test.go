package tokenizer

import (
	"reflect"
	"testing"
)

func TestSimpleTokenize(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		inclPunct bool
		want      []string
	}{
		{
			name: "lowercases and splits on spaces",
			text: "The Cat Sat",
			want: []string{"the", "cat", "sat"},
		},
		{
			name: "keeps word-internal apostrophes",
			text: "don't stop",
			want: []string{"don't", "stop"},
		},
		{
			name: "trims edge apostrophes",
			text: "'tis 'quoted'",
			want: []string{"tis", "quoted"},
		},
		{
			name: "keeps hyphenated words together",
			text: "state-of-the-art",
			want: []string{"state-of-the-art"},
		},
		{
			name: "drops punctuation by default",
			text: "wait... what?!",
			want: []string{"wait", "what"},
		},
		{
			name:      "keeps punctuation runs when asked",
			text:      "wait... what?!",
			inclPunct: true,
			want:      []string{"wait", "...", "what", "?!"},
		},
		{
			name: "keeps digits",
			text: "route 66",
			want: []string{"route", "66"},
		},
		{
			name: "bare apostrophe vanishes",
			text: "' '",
			want: nil,
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Simple{}.Tokenize(tc.text, "en", tc.inclPunct, false)
			if err != nil {
				t.Fatalf("Tokenize: %v", err)
			}
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}
