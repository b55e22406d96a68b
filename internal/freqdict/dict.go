// Package freqdict holds the central data model of the pipeline: relative
// word frequencies, the cross-source merge that combines them, and the
// tab-separated frequency-file interchange format.
package freqdict

import (
	"sort"
)

// TotalToken is the sentinel token that carries a count file's total token
// count. It must never appear in a frequency mapping or a frequency file.
const TotalToken = "__total__"

// MinFrequency is the noise floor: tokens whose relative frequency falls
// below it are dropped everywhere in the pipeline.
const MinFrequency = 1e-9

// Mapping maps a token to its relative frequency in (0, 1].
type Mapping map[string]float64

// Entry is one token/frequency pair of a sorted frequency list.
type Entry struct {
	Token string
	Freq  float64
}

// FromCounts builds a Mapping from raw token counts and a corpus total.
// Tokens below the noise floor are dropped.
func FromCounts(counts map[string]int64, total int64) Mapping {
	m := make(Mapping, len(counts))
	for token, count := range counts {
		freq := float64(count) / float64(total)
		if freq < MinFrequency {
			continue
		}
		m[token] += freq
	}
	return m
}

// Sorted returns the mapping's entries sorted by descending frequency.
// Ties break lexicographically so the order is deterministic.
func (m Mapping) Sorted() []Entry {
	entries := make([]Entry, 0, len(m))
	for token, freq := range m {
		entries = append(entries, Entry{Token: token, Freq: freq})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Freq != entries[j].Freq {
			return entries[i].Freq > entries[j].Freq
		}
		return entries[i].Token < entries[j].Token
	})
	return entries
}

// Total returns the probability mass held by the mapping.
func (m Mapping) Total() float64 {
	var sum float64
	for _, freq := range m {
		sum += freq
	}
	return sum
}
