package countfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/corpustools/freqpipe/internal/freqdict"
	"github.com/corpustools/freqpipe/internal/tokenizer"
	apperrors "github.com/corpustools/freqpipe/pkg/errors"
)

// Recount takes counts from a foreign source (such as Google Books n-grams),
// re-tokenizes each entry with our tokenizer, and writes a count file
// consistent with our tokenization. Any __total__ line in the input is
// discarded; the output total is recomputed from the re-tokenized counts.
func Recount(r io.Reader, w io.Writer, language string, tok tokenizer.Tokenizer) error {
	table := NewCountTable()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r\n")
		if text == "" || strings.HasPrefix(text, freqdict.TotalToken) {
			continue
		}
		entry, count, err := parseLine(text, line)
		if err != nil {
			return err
		}
		tokens, err := tok.Tokenize(entry, language, false, false)
		if err != nil {
			return fmt.Errorf("retokenizing line %d: %w", line, err)
		}
		for _, token := range tokens {
			table.Add(token, count)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return table.writeAllCounts(w)
}

// writeAllCounts is WriteCounts without the hapax adjustment: recounted
// sources already applied their own minimum-count thresholds.
func (t *CountTable) writeAllCounts(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\t%d\n", freqdict.TotalToken, t.total); err != nil {
		return fmt.Errorf("writing total line: %w", err)
	}
	for _, e := range t.sortedEntries(1) {
		if _, err := fmt.Fprintf(bw, "%s\t%d\n", e.token, e.count); err != nil {
			return fmt.Errorf("writing count line: %w", err)
		}
	}
	return bw.Flush()
}

// CountsToFreqs writes a `frequency<TAB>count` diagnostic listing of a count
// file, in input order. Useful for eyeballing where a source's noise floor
// sits.
func CountsToFreqs(r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)
	sc := bufio.NewScanner(r)
	var total int64
	haveTotal := false
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r\n")
		token, count, err := parseLine(text, line)
		if err != nil {
			return err
		}
		if token == freqdict.TotalToken {
			total = count
			haveTotal = true
			continue
		}
		if !haveTotal {
			return apperrors.Newf(apperrors.ErrMissingTotal, 3,
				"token %q on line %d appears before %s", token, line, freqdict.TotalToken)
		}
		freq := float64(count) / float64(total)
		if _, err := fmt.Fprintf(bw, "%.5g\t%d\n", freq, count); err != nil {
			return fmt.Errorf("writing frequency line: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return bw.Flush()
}
