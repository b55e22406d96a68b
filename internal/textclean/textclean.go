// Package textclean holds the text-repair helpers applied before counting:
// quote uncurling, URL and handle stripping, HTML flattening, and the
// mojibake-repair collaborator hook.
package textclean

import (
	"html"
	"regexp"
	"strings"

	"jaytaylor.com/html2text"
)

// Fixer repairs Unicode mojibake and encoding damage. The repair logic is an
// external collaborator; the pipeline only requires a pure function.
type Fixer interface {
	Fix(text string) string
}

// NoopFixer performs no repair. It is the default when no external fixer is
// wired in.
type NoopFixer struct{}

func (NoopFixer) Fix(text string) string { return text }

// FixerFunc adapts a plain function to the Fixer interface.
type FixerFunc func(string) string

func (f FixerFunc) Fix(text string) string { return f(text) }

var quoteUncurler = strings.NewReplacer(
	"‘", "'", // left single quotation mark
	"’", "'", // right single quotation mark
	"‚", "'", // single low-9 quotation mark
	"‛", "'", // single high-reversed-9 quotation mark
	"ʼ", "'", // modifier letter apostrophe
	"“", `"`, // left double quotation mark
	"”", `"`, // right double quotation mark
	"„", `"`, // double low-9 quotation mark
	"‟", `"`, // double high-reversed-9 quotation mark
)

// UncurlQuotes replaces "curly" and otherwise fancy quotation marks with
// plain apostrophes and quotes, reconciling inconsistent upstream quoting
// conventions.
func UncurlQuotes(s string) string {
	return quoteUncurler.Replace(s)
}

// CleanToken normalizes a token for use as a frequency-mapping key: quotes
// are uncurled and leading/trailing apostrophes and spaces stripped.
func CleanToken(s string) string {
	return strings.Trim(UncurlQuotes(s), "' ")
}

var (
	twitterHandleRE = regexp.MustCompile(`@[\p{L}\p{N}_]+`)
	tcoRE           = regexp.MustCompile(`http(?:s)?://t\.co/[a-zA-Z0-9]+`)
	urlRE           = regexp.MustCompile(`http(?:s)?://[^) ]*`)
)

// StripTwitter removes @handles and t.co link shorteners from a tweet and
// unescapes HTML entities.
func StripTwitter(text string) string {
	text = twitterHandleRE.ReplaceAllString(text, "")
	text = tcoRE.ReplaceAllString(text, "")
	return html.UnescapeString(text)
}

// StripURLs removes http(s) URLs.
func StripURLs(text string) string {
	return urlRE.ReplaceAllString(text, "")
}

// UnescapeHTML resolves HTML character entities.
func UnescapeHTML(text string) string {
	return html.UnescapeString(text)
}

// HTMLToText flattens an HTML document (encyclopedic dumps) to plain text.
func HTMLToText(doc string) (string, error) {
	return html2text.FromString(doc, html2text.Options{PrettyTables: false})
}
