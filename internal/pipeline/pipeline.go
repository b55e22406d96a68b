// Package pipeline wires the file-level stages of the wordlist build
// together: counting, merging, and exporting.
package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/corpustools/freqpipe/internal/cbpack"
	"github.com/corpustools/freqpipe/internal/countfile"
	"github.com/corpustools/freqpipe/internal/export"
	"github.com/corpustools/freqpipe/internal/freqdict"
	"github.com/corpustools/freqpipe/pkg/metrics"
)

// CountFilesToFreqs reads count files from several corpus sources, merges
// them with the outlier-trimmed average, and writes the merged frequency
// list to output. m may be nil.
func CountFilesToFreqs(inputs []string, output string, opts freqdict.MergeOptions, m *metrics.Metrics) error {
	logger := slog.Default().With("component", "pipeline")
	dicts := make([]freqdict.Mapping, 0, len(inputs))
	for _, input := range inputs {
		f, err := os.Open(input)
		if err != nil {
			return fmt.Errorf("opening count file %s: %w", input, err)
		}
		dict, err := countfile.ReadWith(f, countfile.ReadOptions{CleanTokens: true})
		f.Close()
		if err != nil {
			return fmt.Errorf("reading count file %s: %w", input, err)
		}
		logger.Debug("count file read", "file", input, "vocabulary", len(dict))
		dicts = append(dicts, dict)
	}

	merged, err := mergeObserved(dicts, opts, m)
	if err != nil {
		return err
	}
	logger.Info("sources merged",
		"sources", len(dicts),
		"vocabulary", len(merged),
	)

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating frequency file %s: %w", output, err)
	}
	defer out.Close()
	return freqdict.Write(out, merged)
}

// mergeObserved runs the cross-source merge and records its duration and
// source count.
func mergeObserved(dicts []freqdict.Mapping, opts freqdict.MergeOptions, m *metrics.Metrics) (freqdict.Mapping, error) {
	start := time.Now()
	merged, err := freqdict.MergeWith(dicts, opts)
	if err != nil {
		return nil, err
	}
	if m != nil {
		m.MergeDuration.Observe(time.Since(start).Seconds())
		m.MergeSourcesCount.Observe(float64(len(dicts)))
	}
	return merged, nil
}

// SingleCountFileToFreqs converts one count file stream to a frequency file
// stream, with no token cleanup and no merging.
func SingleCountFileToFreqs(r io.Reader, w io.Writer) error {
	dict, err := countfile.Read(r)
	if err != nil {
		return err
	}
	return freqdict.Write(w, dict)
}

// FreqsToCBpack packs a frequency file into a cBpack wordlist on disk. The
// output is written atomically: a partial export never replaces an existing
// wordlist. m may be nil.
func FreqsToCBpack(input, output string, cutoff int, m *metrics.Metrics) error {
	start := time.Now()
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening frequency file %s: %w", input, err)
	}
	defer f.Close()
	tiers, err := cbpack.Pack(f, cutoff)
	if err != nil {
		return err
	}
	if err := cbpack.WriteFile(output, tiers); err != nil {
		return err
	}
	if m != nil {
		m.ExportDuration.WithLabelValues("cbpack").Observe(time.Since(start).Seconds())
	}
	slog.Default().Info("wordlist packed",
		"input", input,
		"output", output,
		"tiers", len(tiers),
	)
	return nil
}

// FreqsToJieba exports a frequency file as a jieba dictionary. m may be nil.
func FreqsToJieba(input, output string, cutoff int, m *metrics.Metrics) error {
	start := time.Now()
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening frequency file %s: %w", input, err)
	}
	defer f.Close()
	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating jieba dictionary %s: %w", output, err)
	}
	defer out.Close()
	if err := export.Jieba(f, out, cutoff); err != nil {
		return err
	}
	if m != nil {
		m.ExportDuration.WithLabelValues("jieba").Observe(time.Since(start).Seconds())
	}
	return nil
}
