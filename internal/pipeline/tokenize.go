package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/corpustools/freqpipe/internal/langid"
	"github.com/corpustools/freqpipe/internal/textclean"
	"github.com/corpustools/freqpipe/internal/tokenizer"
)

// TokenizeFile tokenizes a plain-text stream as the given language and
// writes lines of space-separated tokens. When det is non-nil, lines whose
// identified language does not match are dropped.
func TokenizeFile(r io.Reader, w io.Writer, language string, tok tokenizer.Tokenizer, det langid.Detector) error {
	bw := bufio.NewWriter(w)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024*1024), 16*1024*1024)
	for sc.Scan() {
		line := textclean.UnescapeHTML(strings.TrimRight(sc.Text(), "\r\n"))
		if det != nil {
			lang, confident := det.Detect(line)
			if !confident || lang != language {
				continue
			}
		}
		tokens, err := tok.Tokenize(line, language, true, true)
		if err != nil {
			return fmt.Errorf("tokenizing line: %w", err)
		}
		if _, err := fmt.Fprintln(bw, strings.Join(tokens, " ")); err != nil {
			return fmt.Errorf("writing tokenized line: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return bw.Flush()
}

// TokenizeByLanguage splits a mixed-language stream into per-language token
// files under outDir, one `<lang>.txt` per identified language. Input lines
// are either plain text or `lang<TAB>text` as produced by the preprocessing
// filters; a present language tag takes precedence over detection.
func TokenizeByLanguage(r io.Reader, outDir string, tok tokenizer.Tokenizer, det langid.Detector) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	outputs := make(map[string]*bufio.Writer)
	files := make([]*os.File, 0)
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()

	writerFor := func(lang string) (*bufio.Writer, error) {
		if bw, ok := outputs[lang]; ok {
			return bw, nil
		}
		f, err := os.Create(filepath.Join(outDir, lang+".txt"))
		if err != nil {
			return nil, fmt.Errorf("creating output for language %s: %w", lang, err)
		}
		files = append(files, f)
		bw := bufio.NewWriter(f)
		outputs[lang] = bw
		return bw, nil
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		lang, text, tagged := strings.Cut(line, "\t")
		if !tagged {
			text = line
			var confident bool
			lang, confident = det.Detect(text)
			if !confident {
				continue
			}
		}
		text = textclean.UnescapeHTML(text)
		tokens, err := tok.Tokenize(text, lang, true, true)
		if err != nil {
			return fmt.Errorf("tokenizing line: %w", err)
		}
		if len(tokens) == 0 {
			continue
		}
		bw, err := writerFor(lang)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(bw, strings.Join(tokens, " ")); err != nil {
			return fmt.Errorf("writing tokenized line: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	for _, bw := range outputs {
		if err := bw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
