// Package countfile implements the tab-separated count-file format: one
// `token<TAB>count` record per line plus a distinguished __total__ line
// carrying the corpus-wide token total, including singletons not otherwise
// listed. It reads count files into frequency mappings and writes them from
// counted token streams.
package countfile

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/corpustools/freqpipe/internal/freqdict"
	"github.com/corpustools/freqpipe/internal/textclean"
	apperrors "github.com/corpustools/freqpipe/pkg/errors"
)

// ReadOptions controls count-file reading.
type ReadOptions struct {
	// CleanTokens uncurls quotes and strips apostrophe/space edges from
	// tokens before using them as keys. Needed on the multi-source merge
	// path, where upstream quoting conventions disagree; cleaned tokens
	// that collide have their frequencies added together.
	CleanTokens bool
}

// Read parses a count file into a frequency mapping, normalizing each count
// by the file's __total__. Input is expected sorted by descending count, so
// reading stops once a token's frequency falls below the noise floor.
func Read(r io.Reader) (freqdict.Mapping, error) {
	return ReadWith(r, ReadOptions{})
}

// ReadWith is Read with explicit options.
func ReadWith(r io.Reader, opts ReadOptions) (freqdict.Mapping, error) {
	dict := make(freqdict.Mapping)
	var total int64
	haveTotal := false

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r\n")
		token, count, err := parseLine(text, line)
		if err != nil {
			return nil, err
		}
		if opts.CleanTokens {
			token = textclean.CleanToken(token)
			if token == "" {
				continue
			}
		}
		if token == freqdict.TotalToken {
			total = count
			haveTotal = true
			continue
		}
		if !haveTotal {
			return nil, apperrors.Newf(apperrors.ErrMissingTotal, 3,
				"token %q on line %d appears before %s", token, line, freqdict.TotalToken)
		}
		freq := float64(count) / float64(total)
		if freq < freqdict.MinFrequency {
			// Input is sorted by descending count; everything after
			// this is below the noise floor.
			break
		}
		dict[token] += freq
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !haveTotal {
		return nil, apperrors.Newf(apperrors.ErrMissingTotal, 3,
			"no %s line in %d lines of input", freqdict.TotalToken, line)
	}
	return dict, nil
}

// parseLine splits a count-file line on its first tab and parses the count
// as a non-negative integer.
func parseLine(text string, line int) (string, int64, error) {
	token, strcount, found := strings.Cut(text, "\t")
	if !found {
		return "", 0, apperrors.Newf(apperrors.ErrParse, 2,
			"line %d: expected token<TAB>count, got %q", line, text)
	}
	count, err := strconv.ParseInt(strcount, 10, 64)
	if err != nil || count < 0 {
		return "", 0, apperrors.Newf(apperrors.ErrParse, 2,
			"line %d: invalid count %q", line, strcount)
	}
	return token, count, nil
}
