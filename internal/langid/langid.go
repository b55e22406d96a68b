// Package langid defines the language-identification collaborator and an
// adapter backed by the go-lang-detector library.
package langid

import (
	"strings"

	"github.com/chrisport/go-lang-detector/langdet"
	"github.com/chrisport/go-lang-detector/langdet/langdetdef"
)

// Detector identifies the language of a text. It returns a BCP 47 language
// code and whether the identification is confident enough to act on.
// Implementations must be pure: no shared mutable state across calls.
type Detector interface {
	Detect(text string) (lang string, confident bool)
}

// DetectorFunc adapts a plain function to the Detector interface.
type DetectorFunc func(string) (string, bool)

func (f DetectorFunc) Detect(text string) (string, bool) { return f(text) }

// minTextBytes is the length below which no identification is trusted.
// Short strings (emoticons, single words) are routinely misidentified.
const minTextBytes = 50

// minConfidence is the detector confidence (percent) required to accept a
// result.
const minConfidence = 60

// langdet reports full language names; the pipeline speaks BCP 47 codes.
var nameToCode = map[string]string{
	"english":    "en",
	"french":     "fr",
	"german":     "de",
	"spanish":    "es",
	"portuguese": "pt",
	"italian":    "it",
	"dutch":      "nl",
	"swedish":    "sv",
	"turkish":    "tr",
	"polish":     "pl",
	"russian":    "ru",
	"arabic":     "ar",
	"hebrew":     "he",
	"greek":      "el",
	"chinese":    "zh",
	"japanese":   "ja",
	"korean":     "ko",
	"thai":       "th",
}

// LangDet identifies languages with the go-lang-detector default profiles.
type LangDet struct {
	det langdet.Detector
}

// NewDefault creates a LangDet with the library's built-in language
// profiles.
func NewDefault() *LangDet {
	return &LangDet{det: langdetdef.NewWithDefaultLanguages()}
}

// Detect identifies the language of text. The result is not confident when
// the text is shorter than 50 bytes, when the detector's best guess falls
// below the confidence threshold, or when the detected language has no
// known code.
func (l *LangDet) Detect(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if len(text) < minTextBytes {
		return "und", false
	}
	results := l.det.GetLanguages(text)
	if len(results) == 0 {
		return "und", false
	}
	best := results[0]
	code, known := nameToCode[strings.ToLower(best.Name)]
	if !known {
		return "und", false
	}
	return code, best.Confidence >= minConfidence
}
