package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/corpustools/freqpipe/internal/cbpack"
	"github.com/corpustools/freqpipe/internal/freqdict"
	"github.com/corpustools/freqpipe/internal/langid"
	"github.com/corpustools/freqpipe/internal/tokenizer"
	apperrors "github.com/corpustools/freqpipe/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestCountFilesToFreqs(t *testing.T) {
	dir := t.TempDir()
	inputs := []string{
		writeFile(t, dir, "one.counts", "__total__\t100\ncat\t50\ndog\t30\n"),
		writeFile(t, dir, "two.counts", "__total__\t200\ncat\t90\ndog\t70\n"),
		writeFile(t, dir, "three.counts", "__total__\t1000\ncat\t480\ndog\t320\n"),
	}
	output := filepath.Join(dir, "merged.freqs")
	if err := CountFilesToFreqs(inputs, output, freqdict.MergeOptions{}, nil); err != nil {
		t.Fatalf("CountFilesToFreqs: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d output lines, want 2: %q", len(lines), string(data))
	}
	if !strings.HasPrefix(lines[0], "cat\t") || !strings.HasPrefix(lines[1], "dog\t") {
		t.Errorf("unexpected ordering: %q", lines)
	}
}

func TestCountFilesToFreqsRejectsTwoSources(t *testing.T) {
	dir := t.TempDir()
	inputs := []string{
		writeFile(t, dir, "one.counts", "__total__\t100\ncat\t50\n"),
		writeFile(t, dir, "two.counts", "__total__\t100\ncat\t40\n"),
	}
	err := CountFilesToFreqs(inputs, filepath.Join(dir, "out"), freqdict.MergeOptions{}, nil)
	if !errors.Is(err, apperrors.ErrInsufficientSources) {
		t.Fatalf("error = %v, want ErrInsufficientSources", err)
	}
}

func TestSingleCountFileToFreqs(t *testing.T) {
	var out strings.Builder
	input := "__total__\t100\ncat\t10\ndog\t5\n"
	if err := SingleCountFileToFreqs(strings.NewReader(input), &out); err != nil {
		t.Fatalf("SingleCountFileToFreqs: %v", err)
	}
	want := "cat\t0.1\ndog\t0.05\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestFreqsToCBpackEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "en.freqs", "the\t0.0398\ncat\t0.001\n")
	output := filepath.Join(dir, "wordlists", "en.cb")
	if err := FreqsToCBpack(input, output, 600, nil); err != nil {
		t.Fatalf("FreqsToCBpack: %v", err)
	}
	tiers, err := cbpack.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if tier, found := tiers.Lookup("the"); !found || tier != 140 {
		t.Errorf("Lookup(the) = %d, %v", tier, found)
	}
	if tier, found := tiers.Lookup("cat"); !found || tier != 300 {
		t.Errorf("Lookup(cat) = %d, %v", tier, found)
	}
}

func TestFreqsToJieba(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "zh.freqs", "的\t0.05\n")
	output := filepath.Join(dir, "jieba_zh.txt")
	if err := FreqsToJieba(input, output, 600, nil); err != nil {
		t.Fatalf("FreqsToJieba: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "的 50000000\n" {
		t.Errorf("jieba output = %q", string(data))
	}
}

func TestTokenizeFile(t *testing.T) {
	var out strings.Builder
	input := "The Cat!\nDon't stop\n"
	err := TokenizeFile(strings.NewReader(input), &out, "en", tokenizer.Simple{}, nil)
	if err != nil {
		t.Fatalf("TokenizeFile: %v", err)
	}
	want := "the cat !\ndon't stop\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestTokenizeByLanguage(t *testing.T) {
	dir := t.TempDir()
	det := langid.DetectorFunc(func(text string) (string, bool) {
		if strings.Contains(text, "bonjour") {
			return "fr", true
		}
		return "und", false
	})
	input := "en\tHello World\nbonjour tout le monde\nuntagged mystery line\n"
	if err := TokenizeByLanguage(strings.NewReader(input), dir, tokenizer.Simple{}, det); err != nil {
		t.Fatalf("TokenizeByLanguage: %v", err)
	}

	en, err := os.ReadFile(filepath.Join(dir, "en.txt"))
	if err != nil {
		t.Fatalf("reading en.txt: %v", err)
	}
	if string(en) != "hello world\n" {
		t.Errorf("en.txt = %q", string(en))
	}
	fr, err := os.ReadFile(filepath.Join(dir, "fr.txt"))
	if err != nil {
		t.Fatalf("reading fr.txt: %v", err)
	}
	if string(fr) != "bonjour tout le monde\n" {
		t.Errorf("fr.txt = %q", string(fr))
	}
	// The unidentified line lands nowhere.
	if _, err := os.Stat(filepath.Join(dir, "und.txt")); !os.IsNotExist(err) {
		t.Errorf("unconfident line was written somewhere")
	}
}
