package freqdict

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	apperrors "github.com/corpustools/freqpipe/pkg/errors"
)

// Scanner streams token/frequency pairs from a frequency file. It is the
// shared front end of the tier packer and the jieba exporter: both consume a
// frequency file once, front to back, and both must refuse a raw count file.
type Scanner struct {
	s     *bufio.Scanner
	token string
	freq  float64
	line  int
	err   error
}

// NewScanner wraps a frequency-file stream.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{s: bufio.NewScanner(r)}
}

// Scan advances to the next entry. It returns false at end of input or on
// error; check Err afterwards.
func (sc *Scanner) Scan() bool {
	if sc.err != nil {
		return false
	}
	if !sc.s.Scan() {
		sc.err = sc.s.Err()
		return false
	}
	sc.line++
	line := strings.TrimRight(sc.s.Text(), "\r\n")
	token, strfreq, found := strings.Cut(line, "\t")
	if !found {
		sc.err = apperrors.Newf(apperrors.ErrParse, 2,
			"line %d: expected token<TAB>frequency, got %q", sc.line, line)
		return false
	}
	if token == TotalToken {
		sc.err = apperrors.Newf(apperrors.ErrFormatMismatch, 5,
			"line %d contains %s", sc.line, TotalToken)
		return false
	}
	freq, err := strconv.ParseFloat(strfreq, 64)
	if err != nil {
		sc.err = apperrors.Newf(apperrors.ErrParse, 2,
			"line %d: invalid frequency %q", sc.line, strfreq)
		return false
	}
	sc.token = token
	sc.freq = freq
	return true
}

// Token returns the current entry's token.
func (sc *Scanner) Token() string { return sc.token }

// Freq returns the current entry's frequency.
func (sc *Scanner) Freq() float64 { return sc.freq }

// Line returns the 1-based line number of the current entry.
func (sc *Scanner) Line() int { return sc.line }

// Err returns the first error encountered, if any.
func (sc *Scanner) Err() error { return sc.err }
