package freqdict

import (
	"runtime"
	"sort"

	apperrors "github.com/corpustools/freqpipe/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// oovReserve is the probability mass a merged wordlist adds up to. The
// remaining 1% is an estimate of how many tokens will be out-of-vocabulary
// in a wordlist of this size class. It is a fixed domain constant, not
// configuration: two builds of the same wordlist must agree on total mass.
const oovReserve = 0.99

// MergeOptions controls the cross-source merge.
type MergeOptions struct {
	// MinSources is the number of frequency lists a merge requires. The
	// trimmed mean needs at least 3, so values below that (including the
	// zero value) are raised to 3; builds that want broader agreement can
	// set it higher.
	MinSources int
	// AllowFewSources admits merges below MinSources for compatibility
	// with older wordlist builds. With fewer than 3 sources there are no
	// outliers to trim, so the merged value degrades to the plain mean.
	AllowFewSources bool
	// Shards is the number of goroutines the vocabulary is split across.
	// Zero or one means single-threaded. Each token's merged value depends
	// only on its own per-source observations, so shards need no
	// coordination.
	Shards int
}

// Merge combines multiple frequency mappings into one, representing each
// token with the "figure skating average" of its frequency over all sources:
// the highest and lowest observations are dropped and the rest are averaged.
// A source that does not list a token contributes a zero observation, so
// tokens idiosyncratic to a single source are suppressed. The result is
// renormalized to a total mass of 0.99.
func Merge(dicts []Mapping) (Mapping, error) {
	return MergeWith(dicts, MergeOptions{})
}

// MergeWith is Merge with explicit options.
func MergeWith(dicts []Mapping, opts MergeOptions) (Mapping, error) {
	if len(dicts) == 0 {
		return nil, apperrors.Newf(apperrors.ErrInsufficientSources, 4, "got 0 frequency lists")
	}
	minSources := opts.MinSources
	if minSources < 3 {
		minSources = 3
	}
	if len(dicts) < minSources && !opts.AllowFewSources {
		return nil, apperrors.Newf(apperrors.ErrInsufficientSources, 4,
			"got %d frequency lists, need %d", len(dicts), minSources)
	}

	vocab := make([]string, 0)
	seen := make(map[string]struct{})
	for _, dict := range dicts {
		for token := range dict {
			if _, ok := seen[token]; !ok {
				seen[token] = struct{}{}
				vocab = append(vocab, token)
			}
		}
	}

	shards := opts.Shards
	if shards < 1 {
		shards = 1
	}
	if shards > runtime.NumCPU() {
		shards = runtime.NumCPU()
	}
	if shards > len(vocab) {
		shards = 1
	}

	merged := make(Mapping, len(vocab))
	if shards == 1 {
		mergeShard(dicts, vocab, merged)
	} else {
		parts := make([]Mapping, shards)
		var g errgroup.Group
		chunk := (len(vocab) + shards - 1) / shards
		for i := 0; i < shards; i++ {
			lo := i * chunk
			hi := min(lo+chunk, len(vocab))
			part := make(Mapping, hi-lo)
			parts[i] = part
			g.Go(func() error {
				mergeShard(dicts, vocab[lo:hi], part)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		for _, part := range parts {
			for token, freq := range part {
				merged[token] = freq
			}
		}
	}

	total := merged.Total()
	if total > 0 {
		for token := range merged {
			merged[token] = merged[token] / total * oovReserve
		}
	}
	return merged, nil
}

// mergeShard computes the trimmed mean for each token in its slice of the
// vocabulary, writing survivors into out.
func mergeShard(dicts []Mapping, vocab []string, out Mapping) {
	freqs := make([]float64, len(dicts))
	for _, token := range vocab {
		for i, dict := range dicts {
			freqs[i] = dict[token]
		}
		sort.Float64s(freqs)
		inliers := freqs
		if len(freqs) >= 3 {
			inliers = freqs[1 : len(freqs)-1]
		}
		var sum float64
		for _, f := range inliers {
			sum += f
		}
		mean := sum / float64(len(inliers))
		if mean > 0 {
			out[token] = mean
		}
	}
}
