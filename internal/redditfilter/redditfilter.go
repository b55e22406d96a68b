// Package redditfilter turns Reddit comment dumps (JSON lines) into
// language-tagged plain text suitable for counting. It drops deleted and
// downvoted comments and everything posted in a banned subreddit.
package redditfilter

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/corpustools/freqpipe/internal/langid"
	"github.com/corpustools/freqpipe/internal/textclean"
	"github.com/spaolacci/murmur3"
)

// Post is the subset of a Reddit comment record the filter inspects.
type Post struct {
	Score     *int   `json:"score"`
	Body      string `json:"body"`
	Subreddit string `json:"subreddit"`
}

// Renderer flattens Reddit Markdown to plain text. Markdown parsing is an
// external collaborator; the filter only requires a pure function.
type Renderer func(markdown string) string

// PassthroughRenderer returns the Markdown source unchanged. Markup tokens
// it leaves behind are low-frequency noise that the downstream hapax and
// punctuation filters absorb.
func PassthroughRenderer(markdown string) string { return markdown }

// Banned reports whether a subreddit is on the admin ban list. Matching is
// by murmur3 hash of the lower-cased name, so inconsistent capitalization in
// the dump does not let a banned subreddit through.
func Banned(subreddit string) bool {
	h := int32(murmur3.Sum32([]byte(strings.ToLower(subreddit))))
	_, ok := bannedSubreddits[h]
	return ok
}

// Process reads a Reddit JSON-lines dump and writes `lang<TAB>text` lines
// for every comment that survives filtering: score >= 1, body present and
// not deleted, subreddit not banned, and a confident language
// identification. English is overrepresented in the dumps, so English
// comments additionally require score > 1.
func Process(r io.Reader, w io.Writer, render Renderer, det langid.Detector, fix textclean.Fixer) error {
	bw := bufio.NewWriter(w)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024*1024), 16*1024*1024)
	for sc.Scan() {
		var post Post
		if err := json.Unmarshal(sc.Bytes(), &post); err != nil {
			// Dumps contain the occasional truncated record; skip it
			// rather than abandoning the source.
			continue
		}
		if post.Score == nil || *post.Score < 1 {
			continue
		}
		if post.Body == "" || post.Body == "[deleted]" {
			continue
		}
		if Banned(post.Subreddit) {
			continue
		}
		text := render(fix.Fix(textclean.UnescapeHTML(post.Body)))
		text = strings.ReplaceAll(text, "\n", " ")
		text = strings.ReplaceAll(text, "\u200b", "")
		text = strings.TrimSpace(textclean.StripURLs(text))
		if text == "" {
			continue
		}
		lang, confident := det.Detect(text)
		if !confident {
			continue
		}
		if lang == "en" && *post.Score <= 1 {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", lang, text); err != nil {
			return fmt.Errorf("writing filtered comment: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return bw.Flush()
}

// ProcessTwitter reads a tweet-per-line dump (optionally with a leading
// tab-separated ID column), strips handles and shortened URLs, and writes
// `lang<TAB>text` lines for confidently identified tweets.
func ProcessTwitter(r io.Reader, w io.Writer, det langid.Detector, fix textclean.Fixer) error {
	bw := bufio.NewWriter(w)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024*1024), 16*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if _, text, found := strings.Cut(line, "\t"); found {
			line = text
		}
		text := strings.TrimRight(line, "\r\n")
		text = textclean.StripTwitter(text)
		text = strings.TrimSpace(strings.ReplaceAll(fix.Fix(text), "\n", " "))
		if text == "" {
			continue
		}
		lang, confident := det.Detect(text)
		if !confident {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", lang, text); err != nil {
			return fmt.Errorf("writing filtered tweet: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return bw.Flush()
}
