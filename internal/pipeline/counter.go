package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/corpustools/freqpipe/internal/countfile"
	"github.com/corpustools/freqpipe/internal/langid"
	"github.com/corpustools/freqpipe/internal/store"
	"github.com/corpustools/freqpipe/internal/tokenizer"
	"github.com/corpustools/freqpipe/pkg/config"
	"github.com/corpustools/freqpipe/pkg/kafka"
	"github.com/corpustools/freqpipe/pkg/metrics"
)

// Counter accumulates token counts from a stream of corpus lines, keeping
// one count table per language, and flushes them to count files (and
// optionally PostgreSQL) on demand.
type Counter struct {
	cfg      config.CounterConfig
	tok      tokenizer.Tokenizer
	det      langid.Detector
	store    *store.Store
	producer *kafka.Producer
	metrics  *metrics.Metrics
	logger   *slog.Logger

	mu     sync.Mutex
	tables map[string]*countfile.CountTable
}

// NewCounter creates a Counter. store, producer, and m may be nil: counting
// to files alone is a valid deployment.
func NewCounter(cfg config.CounterConfig, tok tokenizer.Tokenizer, det langid.Detector, st *store.Store, producer *kafka.Producer, m *metrics.Metrics) *Counter {
	return &Counter{
		cfg:      cfg,
		tok:      tok,
		det:      det,
		store:    st,
		producer: producer,
		metrics:  m,
		logger:   slog.Default().With("component", "counter", "source", cfg.Source),
		tables:   make(map[string]*countfile.CountTable),
	}
}

// HandleMessage is the Kafka message handler: it decodes a CorpusLine,
// attributes it to a language, tokenizes it, and counts its tokens.
func (c *Counter) HandleMessage(ctx context.Context, key []byte, value []byte) error {
	line, err := kafka.DecodeJSON[CorpusLine](value)
	if err != nil {
		c.observeSkip("malformed")
		c.logger.Error("failed to decode corpus line", "error", err)
		return nil
	}
	return c.CountLine(line.Text)
}

// CountLine counts one line of raw text.
func (c *Counter) CountLine(text string) error {
	if c.metrics != nil {
		c.metrics.LinesReadTotal.WithLabelValues(c.cfg.Source).Inc()
	}
	if text == "" {
		c.observeSkip("empty")
		return nil
	}
	language := c.cfg.Language
	if c.cfg.CheckLanguage {
		lang, confident := c.det.Detect(text)
		if !confident {
			c.observeSkip("wrong_language")
			return nil
		}
		language = lang
	}
	tokens, err := c.tok.Tokenize(text, language, false, true)
	if err != nil {
		return fmt.Errorf("tokenizing corpus line: %w", err)
	}

	c.mu.Lock()
	table, ok := c.tables[language]
	if !ok {
		table = countfile.NewCountTable()
		c.tables[language] = table
	}
	for _, token := range tokens {
		table.Add(token, 1)
	}
	size := table.Size()
	c.mu.Unlock()

	if c.metrics != nil {
		c.metrics.TokensCountedTotal.WithLabelValues(language).Add(float64(len(tokens)))
		c.metrics.VocabularySize.WithLabelValues(language).Set(float64(size))
	}
	return nil
}

// Flush writes every language's count table to a count file under the
// configured output directory, persists it to the store when one is wired,
// publishes a flush notice, and resets the tables.
func (c *Counter) Flush(ctx context.Context) error {
	c.mu.Lock()
	tables := c.tables
	c.tables = make(map[string]*countfile.CountTable)
	c.mu.Unlock()

	for language, table := range tables {
		if table.Size() == 0 {
			continue
		}
		path := filepath.Join(c.cfg.OutputDir,
			fmt.Sprintf("%s.%s.%d.counts", c.cfg.Source, language, time.Now().Unix()))
		if err := c.flushTable(ctx, language, table, path); err != nil {
			c.observeFlush("error")
			return err
		}
		c.observeFlush("ok")
	}
	return nil
}

func (c *Counter) flushTable(ctx context.Context, language string, table *countfile.CountTable, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating count directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating count file %s: %w", path, err)
	}
	if err := table.WriteCounts(f); err != nil {
		f.Close()
		return fmt.Errorf("writing count file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing count file %s: %w", path, err)
	}

	if c.store != nil {
		if _, err := c.store.SaveCountTable(ctx, c.cfg.Source, language, table); err != nil {
			return fmt.Errorf("persisting count table: %w", err)
		}
	}
	if c.producer != nil {
		notice := FlushNotice{
			Source:     c.cfg.Source,
			Language:   language,
			Path:       path,
			Vocabulary: table.Size(),
			Total:      table.Total(),
			FlushedAt:  time.Now().UTC(),
		}
		if err := c.producer.Publish(ctx, kafka.Event{Key: c.cfg.Source, Value: notice}); err != nil {
			c.logger.Error("failed to publish flush notice", "error", err)
		}
	}

	c.logger.Info("count table flushed",
		"language", language,
		"path", path,
		"vocabulary", table.Size(),
		"total", table.Total(),
	)
	return nil
}

// StartFlushLoop flushes on the configured interval until ctx is cancelled,
// then performs a final flush.
func (c *Counter) StartFlushLoop(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(c.cfg.FlushInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := c.Flush(ctx); err != nil {
					c.logger.Error("periodic flush failed", "error", err)
				}
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				if err := c.Flush(shutdownCtx); err != nil {
					c.logger.Error("final flush failed", "error", err)
				}
				cancel()
				return
			}
		}
	}()
	c.logger.Info("flush loop started", "interval", c.cfg.FlushInterval)
}

func (c *Counter) observeSkip(reason string) {
	if c.metrics != nil {
		c.metrics.LinesSkippedTotal.WithLabelValues(reason).Inc()
	}
}

func (c *Counter) observeFlush(status string) {
	if c.metrics != nil {
		c.metrics.CountFlushesTotal.WithLabelValues(status).Inc()
	}
}
