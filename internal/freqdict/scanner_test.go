package freqdict

import (
	"errors"
	"strings"
	"testing"

	apperrors "github.com/corpustools/freqpipe/pkg/errors"
)

func TestScannerReadsEntries(t *testing.T) {
	sc := NewScanner(strings.NewReader("cat\t0.1\ndog\t0.05\n"))
	var tokens []string
	var freqs []float64
	for sc.Scan() {
		tokens = append(tokens, sc.Token())
		freqs = append(freqs, sc.Freq())
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if len(tokens) != 2 || tokens[0] != "cat" || tokens[1] != "dog" {
		t.Errorf("tokens = %v", tokens)
	}
	if freqs[0] != 0.1 || freqs[1] != 0.05 {
		t.Errorf("freqs = %v", freqs)
	}
}

func TestScannerErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"no tab", "cat 0.1\n", apperrors.ErrParse},
		{"bad frequency", "cat\tlots\n", apperrors.ErrParse},
		{"count file", "__total__\t100\ncat\t10\n", apperrors.ErrFormatMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc := NewScanner(strings.NewReader(tc.input))
			for sc.Scan() {
			}
			if !errors.Is(sc.Err(), tc.want) {
				t.Fatalf("Err = %v, want %v", sc.Err(), tc.want)
			}
		})
	}
}
