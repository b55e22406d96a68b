package freqdict

import (
	"errors"
	"math"
	"testing"

	apperrors "github.com/corpustools/freqpipe/pkg/errors"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestMergeRequiresThreeSources(t *testing.T) {
	cases := []struct {
		name  string
		dicts []Mapping
	}{
		{"none", nil},
		{"one", []Mapping{{"cat": 0.5}}},
		{"two", []Mapping{{"cat": 0.5}, {"cat": 0.4}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Merge(tc.dicts)
			if !errors.Is(err, apperrors.ErrInsufficientSources) {
				t.Fatalf("Merge(%d sources) error = %v, want ErrInsufficientSources", len(tc.dicts), err)
			}
		})
	}
}

func TestMergeHonorsMinSources(t *testing.T) {
	dicts := []Mapping{
		{"a": 0.5}, {"a": 0.4}, {"a": 0.45}, {"a": 0.42},
	}
	if _, err := MergeWith(dicts, MergeOptions{MinSources: 5}); !errors.Is(err, apperrors.ErrInsufficientSources) {
		t.Fatalf("MergeWith(4 sources, min 5) error = %v, want ErrInsufficientSources", err)
	}
	if _, err := MergeWith(dicts, MergeOptions{MinSources: 4}); err != nil {
		t.Fatalf("MergeWith(4 sources, min 4): %v", err)
	}
	// A configured minimum below 3 cannot weaken the trimmed mean's own
	// floor.
	two := []Mapping{{"a": 0.5}, {"a": 0.4}}
	if _, err := MergeWith(two, MergeOptions{MinSources: 2}); !errors.Is(err, apperrors.ErrInsufficientSources) {
		t.Fatalf("MergeWith(2 sources, min 2) error = %v, want ErrInsufficientSources", err)
	}
	// AllowFewSources still bypasses the configured minimum.
	if _, err := MergeWith(dicts, MergeOptions{MinSources: 5, AllowFewSources: true}); err != nil {
		t.Fatalf("MergeWith(allow few): %v", err)
	}
}

func TestMergeAllowFewSources(t *testing.T) {
	dicts := []Mapping{
		{"cat": 0.6, "dog": 0.2},
		{"cat": 0.4, "dog": 0.4},
	}
	merged, err := MergeWith(dicts, MergeOptions{AllowFewSources: true})
	if err != nil {
		t.Fatalf("MergeWith: %v", err)
	}
	// With two sources nothing is trimmed: plain means 0.5 and 0.3,
	// renormalized to sum to 0.99.
	wantCat := 0.5 / 0.8 * 0.99
	wantDog := 0.3 / 0.8 * 0.99
	if !almostEqual(merged["cat"], wantCat, 1e-12) {
		t.Errorf("cat = %g, want %g", merged["cat"], wantCat)
	}
	if !almostEqual(merged["dog"], wantDog, 1e-12) {
		t.Errorf("dog = %g, want %g", merged["dog"], wantDog)
	}
}

func TestMergeTrimsOutliers(t *testing.T) {
	// Four sources: for each token the highest and lowest observations are
	// dropped and the middle two averaged, then the result is renormalized.
	dicts := []Mapping{
		{"a": 0.30, "b": 0.10},
		{"a": 0.20, "b": 0.00},
		{"a": 0.25, "b": 0.05},
		{"a": 0.40, "b": 0.20},
	}
	merged, err := Merge(dicts)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	// a: [0.20 0.25 0.30 0.40] trimmed to [0.25 0.30], mean 0.275.
	// b: [0.00 0.05 0.10 0.20] trimmed to [0.05 0.10], mean 0.075.
	// Renormalizing 0.35 of mass to 0.99 gives a≈0.7757, b≈0.2143.
	if !almostEqual(merged["a"], 0.275/0.35*0.99, 1e-12) {
		t.Errorf("a = %g, want %g", merged["a"], 0.275/0.35*0.99)
	}
	if !almostEqual(merged["b"], 0.075/0.35*0.99, 1e-12) {
		t.Errorf("b = %g, want %g", merged["b"], 0.075/0.35*0.99)
	}
}

func TestMergeSuppressesSingleSourceTokens(t *testing.T) {
	// A token listed by only one of three sources has observations
	// [0, 0, x]; trimming drops 0 and x, leaving a mean of 0.
	dicts := []Mapping{
		{"shared": 0.5, "quirk": 0.5},
		{"shared": 0.5},
		{"shared": 0.5},
	}
	merged, err := Merge(dicts)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if _, ok := merged["quirk"]; ok {
		t.Errorf("single-source token survived the merge: %v", merged)
	}
	if _, ok := merged["shared"]; !ok {
		t.Errorf("shared token missing from merge result")
	}
}

func TestMergeTotalMass(t *testing.T) {
	dicts := []Mapping{
		{"a": 0.5, "b": 0.3, "c": 0.1},
		{"a": 0.4, "b": 0.35, "c": 0.15},
		{"a": 0.45, "b": 0.3, "c": 0.2},
	}
	merged, err := Merge(dicts)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if !almostEqual(merged.Total(), 0.99, 1e-9) {
		t.Errorf("total mass = %g, want 0.99", merged.Total())
	}
}

func TestMergeOrderIndependent(t *testing.T) {
	dicts := []Mapping{
		{"a": 0.5, "b": 0.3},
		{"a": 0.4, "b": 0.35, "c": 0.1},
		{"a": 0.45, "c": 0.2},
		{"b": 0.3, "c": 0.15},
	}
	forward, err := Merge(dicts)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	reversed := []Mapping{dicts[3], dicts[2], dicts[1], dicts[0]}
	backward, err := Merge(reversed)
	if err != nil {
		t.Fatalf("Merge reversed: %v", err)
	}
	if len(forward) != len(backward) {
		t.Fatalf("vocabulary differs: %d vs %d tokens", len(forward), len(backward))
	}
	for token, freq := range forward {
		if !almostEqual(freq, backward[token], 1e-12) {
			t.Errorf("token %q: %g vs %g", token, freq, backward[token])
		}
	}
}

func TestMergeShardedMatchesSingleThreaded(t *testing.T) {
	dicts := []Mapping{
		{"a": 0.5, "b": 0.3, "c": 0.05, "d": 0.01},
		{"a": 0.4, "b": 0.35, "c": 0.1, "e": 0.02},
		{"a": 0.45, "b": 0.3, "c": 0.2, "d": 0.03, "e": 0.01},
	}
	single, err := MergeWith(dicts, MergeOptions{Shards: 1})
	if err != nil {
		t.Fatalf("MergeWith shards=1: %v", err)
	}
	sharded, err := MergeWith(dicts, MergeOptions{Shards: 4})
	if err != nil {
		t.Fatalf("MergeWith shards=4: %v", err)
	}
	if len(single) != len(sharded) {
		t.Fatalf("vocabulary differs: %d vs %d tokens", len(single), len(sharded))
	}
	for token, freq := range single {
		if !almostEqual(freq, sharded[token], 1e-12) {
			t.Errorf("token %q: %g vs %g", token, freq, sharded[token])
		}
	}
}
