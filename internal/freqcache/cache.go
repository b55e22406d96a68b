// Package freqcache serves word-frequency lookups from a packed wordlist
// through Redis, so repeated lookups by downstream tools do not re-probe the
// tier structure.
package freqcache

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/corpustools/freqpipe/internal/cbpack"
	"github.com/corpustools/freqpipe/pkg/config"
	"github.com/corpustools/freqpipe/pkg/metrics"
	pkgredis "github.com/corpustools/freqpipe/pkg/redis"
	"golang.org/x/sync/singleflight"
)

const keyPrefix = "freq:"

// Cache resolves word frequencies for one language's wordlist.
type Cache struct {
	client   *pkgredis.Client
	cfg      config.RedisConfig
	language string
	tiers    cbpack.Tiers
	group    singleflight.Group
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// New creates a Cache over a packed wordlist. m may be nil.
func New(client *pkgredis.Client, cfg config.RedisConfig, language string, tiers cbpack.Tiers, m *metrics.Metrics) *Cache {
	return &Cache{
		client:   client,
		cfg:      cfg,
		language: language,
		tiers:    tiers,
		metrics:  m,
		logger:   slog.Default().With("component", "freq-cache", "language", language),
	}
}

// Frequency returns the approximate frequency of a word, or false when the
// word is out of vocabulary. Out-of-vocabulary results are cached too: the
// words most often looked up and missed are exactly the ones worth
// remembering.
func (c *Cache) Frequency(ctx context.Context, word string) (float64, bool) {
	key := c.key(word)
	if data, err := c.client.Get(ctx, key); err == nil {
		c.observeHit()
		return parseCached(data)
	} else if !pkgredis.IsNilError(err) {
		c.logger.Error("cache get failed", "key", key, "error", err)
	}
	c.observeMiss()

	value, _, _ := c.group.Do(key, func() (any, error) {
		tier, found := c.tiers.Lookup(word)
		freq := 0.0
		if found {
			freq = cbpack.Frequency(tier)
		}
		cached := strconv.FormatFloat(freq, 'g', -1, 64)
		if err := c.client.Set(ctx, key, cached, c.cfg.CacheTTL); err != nil {
			c.logger.Error("cache set failed", "key", key, "error", err)
		}
		return freq, nil
	})
	freq := value.(float64)
	return freq, freq > 0
}

// Invalidate drops every cached lookup for this language. Called after the
// wordlist is rebuilt.
func (c *Cache) Invalidate(ctx context.Context) error {
	deleted, err := c.client.FlushByPattern(ctx, keyPrefix+c.language+":*")
	if err != nil {
		return fmt.Errorf("invalidating frequency cache: %w", err)
	}
	c.logger.Info("frequency cache invalidated", "deleted", deleted)
	return nil
}

func (c *Cache) key(word string) string {
	return keyPrefix + c.language + ":" + word
}

func parseCached(data string) (float64, bool) {
	freq, err := strconv.ParseFloat(data, 64)
	if err != nil || freq <= 0 {
		return 0, false
	}
	return freq, true
}

func (c *Cache) observeHit() {
	if c.metrics != nil {
		c.metrics.CacheHitsTotal.Inc()
	}
}

func (c *Cache) observeMiss() {
	if c.metrics != nil {
		c.metrics.CacheMissesTotal.Inc()
	}
}
