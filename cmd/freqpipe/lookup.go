package main

import (
	"context"
	"fmt"

	"github.com/corpustools/freqpipe/internal/cbpack"
	"github.com/corpustools/freqpipe/internal/freqcache"
	pkgredis "github.com/corpustools/freqpipe/pkg/redis"
	"github.com/spf13/cobra"
)

var (
	lookupLanguage string
	lookupCached   bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [wordlist] [words...]",
	Short: "look up word frequencies in a packed wordlist",
	Long: `Lookup prints the approximate frequency of each word according to a
cBpack wordlist, one "word frequency" line per word, with 0 for words out of
vocabulary. With --cached, lookups go through the Redis frequency cache.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tiers, err := cbpack.ReadFile(args[0])
		if err != nil {
			return err
		}
		words := args[1:]

		if lookupCached {
			client, err := pkgredis.NewClient(cfg.Redis)
			if err != nil {
				return err
			}
			defer client.Close()
			cache := freqcache.New(client, cfg.Redis, lookupLanguage, tiers, nil)
			for _, word := range words {
				freq, _ := cache.Frequency(cmd.Context(), word)
				fmt.Fprintf(cmd.OutOrStdout(), "%s %.5g\n", word, freq)
			}
			return nil
		}

		for _, word := range words {
			var freq float64
			if tier, found := tiers.Lookup(word); found {
				freq = cbpack.Frequency(tier)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %.5g\n", word, freq)
		}
		return nil
	},
}

var invalidateCmd = &cobra.Command{
	Use:   "invalidate-cache",
	Short: "drop cached frequency lookups after a wordlist rebuild",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := pkgredis.NewClient(cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()
		cache := freqcache.New(client, cfg.Redis, lookupLanguage, nil, nil)
		return cache.Invalidate(context.Background())
	},
}

func init() {
	lookupCmd.Flags().StringVar(&lookupLanguage, "language", "en", "language the wordlist covers")
	lookupCmd.Flags().BoolVar(&lookupCached, "cached", false, "serve lookups through the redis cache")
	invalidateCmd.Flags().StringVar(&lookupLanguage, "language", "en", "language whose cache entries to drop")
	rootCmd.AddCommand(lookupCmd, invalidateCmd)
}
