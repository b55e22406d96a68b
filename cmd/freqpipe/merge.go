package main

import (
	"time"

	"github.com/corpustools/freqpipe/internal/freqdict"
	"github.com/corpustools/freqpipe/internal/pipeline"
	"github.com/corpustools/freqpipe/internal/store"
	"github.com/corpustools/freqpipe/pkg/logger"
	"github.com/corpustools/freqpipe/pkg/postgres"
	"github.com/spf13/cobra"
)

var mergeAllowFew bool

var mergeCmd = &cobra.Command{
	Use:   "merge [output] [count files...]",
	Short: "merge count files from several sources into a frequency file",
	Long: `Merge reads one count file per corpus source, takes the outlier-trimmed
average of each token's frequencies across sources, and writes a merged
frequency file. At least three sources are required unless --allow-few is
set.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := freqdict.MergeOptions{
			MinSources:      cfg.Builder.MinSources,
			AllowFewSources: cfg.Builder.AllowFew || mergeAllowFew,
			Shards:          cfg.Builder.MergeShards,
		}
		start := time.Now()
		if err := pipeline.CountFilesToFreqs(args[1:], args[0], opts, getMetrics()); err != nil {
			return err
		}
		logger.WithComponent("cli").Info("merge finished",
			"output", args[0],
			"sources", len(args)-1,
			"duration", time.Since(start),
		)
		return nil
	},
}

var freqsCmd = &cobra.Command{
	Use:   "freqs [input] [output]",
	Short: "convert a single count file to a frequency file",
	Long: `Freqs normalizes one count file by its __total__ line and writes a
frequency file. No token cleanup or cross-source averaging is applied; use
merge for the real build.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(args[0])
		if err != nil {
			return err
		}
		defer closeNonStd(in)
		out, err := createOutput(args[1])
		if err != nil {
			return err
		}
		defer closeNonStd(out)
		return pipeline.SingleCountFileToFreqs(in, out)
	},
}

var mergeStoreLanguage string

var mergeStoreCmd = &cobra.Command{
	Use:   "merge-store [output]",
	Short: "merge the latest stored count table of every source",
	Long: `Merge-store loads the most recent count table per source from PostgreSQL
for one language, merges them, and writes the frequency file. The build is
recorded as a run in the store.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := postgres.New(cfg.Postgres)
		if err != nil {
			return err
		}
		defer db.Close()
		opts := freqdict.MergeOptions{
			MinSources:      cfg.Builder.MinSources,
			AllowFewSources: cfg.Builder.AllowFew || mergeAllowFew,
			Shards:          cfg.Builder.MergeShards,
		}
		return pipeline.MergeFromStore(cmd.Context(), store.NewStore(db), mergeStoreLanguage, args[0], opts, getMetrics())
	},
}

func init() {
	mergeCmd.Flags().BoolVar(&mergeAllowFew, "allow-few", false, "merge even with fewer than the minimum source count")
	mergeStoreCmd.Flags().BoolVar(&mergeAllowFew, "allow-few", false, "merge even with fewer than the minimum source count")
	mergeStoreCmd.Flags().StringVar(&mergeStoreLanguage, "language", "en", "language whose count tables to merge")
	rootCmd.AddCommand(mergeCmd, mergeStoreCmd, freqsCmd)
}
