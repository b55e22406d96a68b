// Package export writes frequency lists in the dictionary formats expected
// by external segmenters.
package export

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/corpustools/freqpipe/internal/cbpack"
	"github.com/corpustools/freqpipe/internal/freqdict"
)

// jiebaScale converts a relative frequency to the integer pseudo-count jieba
// dictionaries carry.
const jiebaScale = 1e9

// Jieba converts a frequency file into the `token<SP>count` dictionary
// format consumed by the jieba segmenter. The same centibel cutoff as the
// tier packer applies; the input is assumed sorted descending, so the stream
// stops at the first token past the cutoff. Tokens that are empty or
// all-whitespace are skipped. Input order is preserved: jieba does not need
// tier ordering.
func Jieba(r io.Reader, w io.Writer, cutoff int) error {
	if cutoff <= 0 {
		cutoff = cbpack.DefaultCutoff
	}
	bw := bufio.NewWriter(w)
	sc := freqdict.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Token()) == "" {
			continue
		}
		// The cutoff compares against the unrounded centibel value, so a
		// token a hair above the cutoff tier is still excluded.
		negCB := -math.Log10(sc.Freq()) * 100
		if negCB >= float64(cutoff) {
			break
		}
		pseudoCount := int64(math.Round(sc.Freq() * jiebaScale))
		if _, err := fmt.Fprintf(bw, "%s %d\n", sc.Token(), pseudoCount); err != nil {
			return fmt.Errorf("writing jieba entry: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return bw.Flush()
}
