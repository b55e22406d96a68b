// Package tokenizer defines the tokenization collaborator consumed by the
// counting stages, plus two implementations: a simple Unicode word splitter
// and an adapter for the prose NLP library.
//
// Tokenizers are pure: no package-level mutable state, same input always
// yields the same tokens.
package tokenizer

import (
	"strings"
	"unicode"
)

// Tokenizer splits text into an ordered sequence of tokens for the given
// BCP 47 language code. includePunctuation keeps punctuation runs as tokens;
// externalWordlist asks segmenting tokenizers (e.g. for Chinese) to use
// their extended wordlist, and is ignored by tokenizers without one.
type Tokenizer interface {
	Tokenize(text string, language string, includePunctuation bool, externalWordlist bool) ([]string, error)
}

// Simple is the default tokenizer: it case-folds the text and splits it on
// boundaries between word characters (letters, digits, marks, word-internal
// apostrophes and hyphens) and everything else. It treats every language the
// same way and never fails.
type Simple struct{}

func (Simple) Tokenize(text string, language string, includePunctuation bool, externalWordlist bool) ([]string, error) {
	text = strings.ToLower(text)
	var tokens []string
	var word, punct strings.Builder

	flushWord := func() {
		if word.Len() > 0 {
			tokens = append(tokens, strings.Trim(word.String(), "'-"))
			word.Reset()
		}
	}
	flushPunct := func() {
		if punct.Len() > 0 {
			if includePunctuation {
				tokens = append(tokens, punct.String())
			}
			punct.Reset()
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '\'' || r == '-':
			flushPunct()
			word.WriteRune(r)
		case unicode.IsSpace(r):
			flushWord()
			flushPunct()
		default:
			flushWord()
			punct.WriteRune(r)
		}
	}
	flushWord()
	flushPunct()

	// Trimming apostrophe/hyphen edges can empty a token ("'" alone).
	out := tokens[:0]
	for _, tok := range tokens {
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out, nil
}
