// Command countd is the streaming counting service: it consumes corpus lines
// from Kafka, tokenizes them, accumulates per-language count tables, and
// flushes count files on an interval.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/corpustools/freqpipe/internal/langid"
	"github.com/corpustools/freqpipe/internal/pipeline"
	"github.com/corpustools/freqpipe/internal/store"
	"github.com/corpustools/freqpipe/internal/tokenizer"
	"github.com/corpustools/freqpipe/pkg/config"
	"github.com/corpustools/freqpipe/pkg/health"
	"github.com/corpustools/freqpipe/pkg/kafka"
	"github.com/corpustools/freqpipe/pkg/logger"
	"github.com/corpustools/freqpipe/pkg/metrics"
	"github.com/corpustools/freqpipe/pkg/postgres"
)

func main() {
	configPath := flag.String("config", "configs/development.yaml", "path to config file")
	withStore := flag.Bool("store", false, "persist flushed count tables to postgres")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("starting count service",
		"source", cfg.Counter.Source,
		"language", cfg.Counter.Language,
		"check_language", cfg.Counter.CheckLanguage,
	)

	m := metrics.New()
	var stopMetrics func(context.Context) error
	if cfg.Metrics.Enabled {
		stopMetrics = metrics.StartServer(cfg.Metrics.Port)
	}

	checker := health.NewChecker()

	var st *store.Store
	if *withStore {
		db, err := postgres.New(cfg.Postgres)
		if err != nil {
			slog.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		st = store.NewStore(db)
		checker.RegisterPing("postgres", db.Ping)
		checker.Register("count-store", st.HealthCheck())
	}

	producer := kafka.NewProducer(cfg.Kafka, cfg.Kafka.Topics.CountFlush)
	defer producer.Close()

	counter := pipeline.NewCounter(
		cfg.Counter,
		tokenizer.Simple{},
		langid.NewDefault(),
		st,
		producer,
		m,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	counter.StartFlushLoop(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/health/live", checker.LiveHandler())
	mux.HandleFunc("/health/ready", checker.ReadyHandler())
	healthServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Counter.Port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		slog.Info("health server listening", "addr", healthServer.Addr)
		if err := healthServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("health server error", "error", err)
		}
	}()

	consumer := kafka.NewConsumer(
		cfg.Kafka,
		cfg.Kafka.Topics.CorpusLines,
		counter.HandleMessage,
		m,
	)

	slog.Info("count service ready, consuming from kafka",
		"topic", cfg.Kafka.Topics.CorpusLines,
		"group", cfg.Kafka.ConsumerGroup,
	)

	if err := consumer.Start(ctx); err != nil {
		slog.Error("consumer error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := counter.Flush(shutdownCtx); err != nil {
		slog.Error("final flush failed", "error", err)
	}
	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("health server shutdown failed", "error", err)
	}
	if stopMetrics != nil {
		if err := stopMetrics(shutdownCtx); err != nil {
			slog.Error("metrics server shutdown failed", "error", err)
		}
	}

	slog.Info("count service stopped")
}
