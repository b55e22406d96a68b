// Package cbpack implements the tiered "cBpack" wordlist format. A packed
// wordlist is a sequence of tiers where tier i holds the tokens whose
// frequency rounds to i centibels below certainty: frequency(token) ≈
// 10^(-i/100). Tiers are lexicographically sorted so output is diff-stable.
//
// On disk the tiers are wrapped in a msgpack envelope:
//
//	[ {"format": "cB", "version": 1}, tier_0, tier_1, ... ]
package cbpack

import (
	"io"
	"math"
	"sort"

	"github.com/corpustools/freqpipe/internal/freqdict"
	apperrors "github.com/corpustools/freqpipe/pkg/errors"
)

// DefaultCutoff is the standard export depth: 600 centibels, i.e. tokens
// down to a frequency of 10^-6.
const DefaultCutoff = 600

// Tiers is a packed wordlist: Tiers[i] lists the tokens in tier i. Gaps
// between populated tiers are present as empty slices, never skipped.
type Tiers [][]string

// TierIndex converts a frequency to its centibel tier index.
func TierIndex(freq float64) int {
	return -int(math.Round(math.Log10(freq) * 100))
}

// Frequency returns the approximate frequency represented by a tier index.
func Frequency(tier int) float64 {
	return math.Pow(10, -float64(tier)/100)
}

// Pack reads a frequency file sorted by descending frequency and buckets its
// tokens into centibel tiers. Tokens at or beyond the cutoff tier are never
// packed; since the input is sorted, reading stops at the first such token.
// A count file (one containing the __total__ sentinel) is rejected before
// any tier is built.
func Pack(r io.Reader, cutoff int) (Tiers, error) {
	if cutoff <= 0 {
		cutoff = DefaultCutoff
	}
	tiers := Tiers{}
	lastTier := 0
	sc := freqdict.NewScanner(r)
	for sc.Scan() {
		tier := TierIndex(sc.Freq())
		if tier < 0 {
			return nil, apperrors.Newf(apperrors.ErrParse, 2,
				"line %d: frequency %g is greater than 1", sc.Line(), sc.Freq())
		}
		if tier >= cutoff {
			break
		}
		// Descending frequency implies non-decreasing tier index; a
		// decrease means the input violates the sort contract.
		if tier < lastTier {
			return nil, apperrors.Newf(apperrors.ErrValueUsage, 6,
				"line %d: input is not sorted by descending frequency", sc.Line())
		}
		lastTier = tier
		for tier >= len(tiers) {
			tiers = append(tiers, []string{})
		}
		tiers[tier] = append(tiers[tier], sc.Token())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for _, tier := range tiers {
		sort.Strings(tier)
	}
	return tiers, nil
}

// Lookup finds the tier a token is packed in. Tokens are sorted within each
// tier, so each tier is probed with a binary search.
func (t Tiers) Lookup(token string) (int, bool) {
	for tier, tokens := range t {
		i := sort.SearchStrings(tokens, token)
		if i < len(tokens) && tokens[i] == token {
			return tier, true
		}
	}
	return 0, false
}
