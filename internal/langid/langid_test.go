package langid

import "testing"

func TestDetectorFunc(t *testing.T) {
	det := DetectorFunc(func(string) (string, bool) { return "fr", true })
	lang, confident := det.Detect("n'importe quoi")
	if lang != "fr" || !confident {
		t.Errorf("Detect = %q, %v", lang, confident)
	}
}

func TestDetectRejectsShortText(t *testing.T) {
	det := NewDefault()
	for _, text := range []string{"", "hi", ":-)", "short sentence"} {
		lang, confident := det.Detect(text)
		if confident {
			t.Errorf("Detect(%q) confident with lang %q, want unconfident", text, lang)
		}
	}
}

func TestDetectEnglishProse(t *testing.T) {
	det := NewDefault()
	text := "This is a reasonably long English sentence that should be " +
		"identified without much trouble by any language detector."
	lang, confident := det.Detect(text)
	if confident && lang != "en" {
		t.Errorf("Detect = %q, want en when confident", lang)
	}
}
