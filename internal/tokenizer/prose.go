package tokenizer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jdkato/prose/v2"
)

// Prose tokenizes English text with the prose NLP library. For any other
// language it falls back to the Simple splitter, since prose's token model
// is trained on English.
type Prose struct{}

func (p Prose) Tokenize(text string, language string, includePunctuation bool, externalWordlist bool) ([]string, error) {
	if language != "en" && !strings.HasPrefix(language, "en-") {
		return Simple{}.Tokenize(text, language, includePunctuation, externalWordlist)
	}
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("tokenizing with prose: %w", err)
	}
	var tokens []string
	for _, tok := range doc.Tokens() {
		t := strings.ToLower(tok.Text)
		if t == "" {
			continue
		}
		if !includePunctuation && isPunctToken(t) {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

// isPunctToken reports whether a token consists entirely of punctuation and
// symbols.
func isPunctToken(tok string) bool {
	for _, r := range tok {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return utf8.RuneCountInString(tok) > 0
}
