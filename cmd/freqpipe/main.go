// Command freqpipe is the batch CLI for the wordlist pipeline: it counts
// tokenized corpora, merges per-source counts into frequency lists, and
// exports them as packed wordlists or segmenter dictionaries.
package main

import (
	"fmt"
	"os"

	"github.com/corpustools/freqpipe/internal/langid"
	"github.com/corpustools/freqpipe/internal/tokenizer"
	"github.com/corpustools/freqpipe/pkg/config"
	apperrors "github.com/corpustools/freqpipe/pkg/errors"
	"github.com/corpustools/freqpipe/pkg/logger"
	"github.com/corpustools/freqpipe/pkg/metrics"
	"github.com/spf13/cobra"
)

var (
	cfgPath       string
	cfg           *config.Config
	tokenizerName string
	cliMetrics    *metrics.Metrics
)

var rootCmd = &cobra.Command{
	Use:           "freqpipe",
	Short:         "build word frequency lists from multi-source corpora",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&tokenizerName, "tokenizer", "simple", "tokenizer backend (simple, prose)")
}

// newTokenizer resolves the --tokenizer flag.
func newTokenizer() (tokenizer.Tokenizer, error) {
	switch tokenizerName {
	case "simple":
		return tokenizer.Simple{}, nil
	case "prose":
		return tokenizer.Prose{}, nil
	default:
		return nil, fmt.Errorf("unknown tokenizer %q", tokenizerName)
	}
}

func newDetector() langid.Detector {
	return langid.NewDefault()
}

// getMetrics returns the process-wide metrics set, creating it on first use.
// Registration with the default Prometheus registry must happen once.
func getMetrics() *metrics.Metrics {
	if cliMetrics == nil {
		cliMetrics = metrics.New()
	}
	return cliMetrics
}

// openInput opens a file argument, with "-" meaning stdin.
func openInput(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdin, nil
	}
	return os.Open(path)
}

// createOutput creates a file argument, with "-" meaning stdout.
func createOutput(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdout, nil
	}
	return os.Create(path)
}

func closeNonStd(f *os.File) {
	if f != os.Stdin && f != os.Stdout {
		f.Close()
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "freqpipe: %s: %v\n", apperrors.Class(err), err)
		os.Exit(apperrors.ExitCode(err))
	}
}
