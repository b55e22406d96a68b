package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Builder.Cutoff != 600 {
		t.Errorf("Builder.Cutoff = %d, want 600", cfg.Builder.Cutoff)
	}
	if cfg.Builder.MinSources != 3 {
		t.Errorf("Builder.MinSources = %d, want 3", cfg.Builder.MinSources)
	}
	if cfg.Kafka.Topics.CorpusLines != "corpus-lines" {
		t.Errorf("Kafka.Topics.CorpusLines = %q", cfg.Kafka.Topics.CorpusLines)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q", cfg.Logging.Format)
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `
builder:
  cutoff: 300
counter:
  source: reddit
  language: de
logging:
  level: debug
`
	path := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Builder.Cutoff != 300 {
		t.Errorf("Builder.Cutoff = %d, want 300", cfg.Builder.Cutoff)
	}
	if cfg.Counter.Source != "reddit" || cfg.Counter.Language != "de" {
		t.Errorf("Counter = %+v", cfg.Counter)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	// Untouched sections keep their defaults.
	if cfg.Postgres.Port != 5432 {
		t.Errorf("Postgres.Port = %d, want default", cfg.Postgres.Port)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("Load of a missing file succeeded")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FP_BUILDER_CUTOFF", "450")
	t.Setenv("FP_COUNTER_SOURCE", "wikipedia")
	t.Setenv("FP_KAFKA_BROKERS", "k1:9092,k2:9092")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Builder.Cutoff != 450 {
		t.Errorf("Builder.Cutoff = %d, want 450", cfg.Builder.Cutoff)
	}
	if cfg.Counter.Source != "wikipedia" {
		t.Errorf("Counter.Source = %q", cfg.Counter.Source)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "k2:9092" {
		t.Errorf("Kafka.Brokers = %v", cfg.Kafka.Brokers)
	}
}
