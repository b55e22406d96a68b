package countfile

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/corpustools/freqpipe/internal/freqdict"
	"github.com/corpustools/freqpipe/internal/textclean"
)

// CountTable accumulates token counts for one corpus source. The total
// counts every token occurrence seen, including tokens later dropped by the
// hapax adjustment.
type CountTable struct {
	counts map[string]int64
	total  int64
}

// NewCountTable creates an empty count table.
func NewCountTable() *CountTable {
	return &CountTable{counts: make(map[string]int64)}
}

// Add records n occurrences of a token.
func (t *CountTable) Add(token string, n int64) {
	t.counts[token] += n
	t.total += n
}

// AddLine counts one line of space-separated tokens, uncurling quotes and
// stripping apostrophes from token edges.
func (t *CountTable) AddLine(line string) {
	line = textclean.UncurlQuotes(strings.TrimRight(line, "\r\n"))
	if line == "" {
		return
	}
	for _, tok := range strings.Split(line, " ") {
		t.Add(strings.Trim(tok, "'"), 1)
	}
}

// Size returns the number of distinct tokens counted so far.
func (t *CountTable) Size() int { return len(t.counts) }

// Total returns the total number of token occurrences counted.
func (t *CountTable) Total() int64 { return t.total }

// Snapshot returns a copy of the counts and the total.
func (t *CountTable) Snapshot() (map[string]int64, int64) {
	counts := make(map[string]int64, len(t.counts))
	for token, count := range t.counts {
		counts[token] = count
	}
	return counts, t.total
}

// Reset clears the table for the next counting window.
func (t *CountTable) Reset() {
	t.counts = make(map[string]int64)
	t.total = 0
}

// WriteCounts serialises the table in count-file format: the __total__ line
// first, then tokens by descending count. Tokens that occurred only once are
// dropped (they are noise at corpus scale, and dropping them keeps count
// files bounded), as are tokens that start with punctuation. The dropped
// tokens still contribute to __total__.
func (t *CountTable) WriteCounts(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\t%d\n", freqdict.TotalToken, t.total); err != nil {
		return fmt.Errorf("writing total line: %w", err)
	}

	for _, e := range t.sortedEntries(2) {
		if _, err := fmt.Fprintf(bw, "%s\t%d\n", e.token, e.count); err != nil {
			return fmt.Errorf("writing count line: %w", err)
		}
	}
	return bw.Flush()
}

type tokenCount struct {
	token string
	count int64
}

// sortedEntries returns tokens with count >= minCount and a non-punctuation
// leading character, by descending count with lexicographic tie-break.
func (t *CountTable) sortedEntries(minCount int64) []tokenCount {
	entries := make([]tokenCount, 0, len(t.counts))
	for token, count := range t.counts {
		if count < minCount {
			continue
		}
		if startsWithPunct(token) {
			continue
		}
		entries = append(entries, tokenCount{token, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].token < entries[j].token
	})
	return entries
}

// CountTokenized counts a stream of pre-tokenized lines (space-separated
// tokens, one sentence per line) and writes the resulting count file.
func CountTokenized(r io.Reader, w io.Writer) error {
	table := NewCountTable()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		table.AddLine(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return table.WriteCounts(w)
}

// startsWithPunct reports whether the token's first rune is punctuation or a
// symbol.
func startsWithPunct(token string) bool {
	if token == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(token)
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
