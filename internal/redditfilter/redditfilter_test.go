package redditfilter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/corpustools/freqpipe/internal/langid"
	"github.com/corpustools/freqpipe/internal/textclean"
)

// alwaysLang is a stub detector that confidently reports one language.
func alwaysLang(lang string) langid.Detector {
	return langid.DetectorFunc(func(string) (string, bool) { return lang, true })
}

func processLines(t *testing.T, input, lang string) string {
	t.Helper()
	var buf bytes.Buffer
	err := Process(strings.NewReader(input), &buf,
		PassthroughRenderer, alwaysLang(lang), textclean.NoopFixer{})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	return buf.String()
}

func TestProcessKeepsUpvotedComments(t *testing.T) {
	input := `{"score": 5, "body": "ein ganz normaler Kommentar", "subreddit": "de"}` + "\n"
	got := processLines(t, input, "de")
	want := "de\tein ganz normaler Kommentar\n"
	if got != want {
		t.Errorf("Process output = %q, want %q", got, want)
	}
}

func TestProcessFiltering(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		lang  string
	}{
		{"zero score", `{"score": 0, "body": "text", "subreddit": "pics"}`, "de"},
		{"missing score", `{"body": "text", "subreddit": "pics"}`, "de"},
		{"deleted body", `{"score": 5, "body": "[deleted]", "subreddit": "pics"}`, "de"},
		{"empty body", `{"score": 5, "body": "", "subreddit": "pics"}`, "de"},
		{"banned subreddit", `{"score": 5, "body": "text", "subreddit": "fatpeoplehate"}`, "de"},
		{"english needs score above 1", `{"score": 1, "body": "plain english comment", "subreddit": "pics"}`, "en"},
		{"url-only body", `{"score": 5, "body": "http://example.com/x", "subreddit": "pics"}`, "de"},
		{"truncated json", `{"score": 5, "body": "tex`, "de"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := processLines(t, tc.line+"\n", tc.lang); got != "" {
				t.Errorf("comment not filtered: %q", got)
			}
		})
	}
}

func TestProcessEnglishWithHighScore(t *testing.T) {
	input := `{"score": 2, "body": "an english comment that scores", "subreddit": "pics"}` + "\n"
	got := processLines(t, input, "en")
	if got != "en\tan english comment that scores\n" {
		t.Errorf("Process output = %q", got)
	}
}

func TestProcessFlattensAndUnescapes(t *testing.T) {
	input := `{"score": 5, "body": "erste Zeile\nzweite &amp; dritte", "subreddit": "de"}` + "\n"
	got := processLines(t, input, "de")
	want := "de\terste Zeile zweite & dritte\n"
	if got != want {
		t.Errorf("Process output = %q, want %q", got, want)
	}
}

func TestBanned(t *testing.T) {
	// Capitalization must not matter.
	if !Banned("fatpeoplehate") || !Banned("FatPeopleHate") {
		t.Errorf("known banned subreddit not detected")
	}
	if Banned("AskHistorians") {
		t.Errorf("innocent subreddit flagged as banned")
	}
}

func TestProcessTwitter(t *testing.T) {
	input := "12345\thallo @jemand schau mal https://t.co/abc123 an\n"
	var buf bytes.Buffer
	err := ProcessTwitter(strings.NewReader(input), &buf, alwaysLang("de"), textclean.NoopFixer{})
	if err != nil {
		t.Fatalf("ProcessTwitter: %v", err)
	}
	got := buf.String()
	if strings.Contains(got, "@jemand") || strings.Contains(got, "t.co") {
		t.Errorf("handles or links not stripped: %q", got)
	}
	if !strings.HasPrefix(got, "de\thallo") {
		t.Errorf("ProcessTwitter output = %q", got)
	}
	if strings.Contains(got, "12345") {
		t.Errorf("leading ID column not removed: %q", got)
	}
}
