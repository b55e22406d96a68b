package main

import (
	"github.com/corpustools/freqpipe/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	cbpackCutoff int
	jiebaCutoff  int
)

var cbpackCmd = &cobra.Command{
	Use:   "cbpack [input] [output]",
	Short: "pack a frequency file into a cBpack wordlist",
	Long: `Cbpack groups a frequency file's tokens into centibel tiers and writes
them as a msgpack-framed cBpack file. Tokens quieter than the cutoff are
dropped. The output file is replaced atomically.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cutoff := cbpackCutoff
		if cutoff == 0 {
			cutoff = cfg.Builder.Cutoff
		}
		return pipeline.FreqsToCBpack(args[0], args[1], cutoff, getMetrics())
	},
}

var jiebaCmd = &cobra.Command{
	Use:   "jieba [input] [output]",
	Short: "export a frequency file as a jieba dictionary",
	Long: `Jieba writes "word count" lines with frequencies scaled to counts out
of a billion, for use as a jieba segmenter dictionary.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cutoff := jiebaCutoff
		if cutoff == 0 {
			cutoff = cfg.Builder.Cutoff
		}
		return pipeline.FreqsToJieba(args[0], args[1], cutoff, getMetrics())
	},
}

func init() {
	cbpackCmd.Flags().IntVar(&cbpackCutoff, "cutoff", 0, "centibel cutoff (0 means use the configured default)")
	jiebaCmd.Flags().IntVar(&jiebaCutoff, "cutoff", 0, "centibel cutoff (0 means use the configured default)")
	rootCmd.AddCommand(cbpackCmd, jiebaCmd)
}
