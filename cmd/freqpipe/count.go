package main

import (
	"github.com/corpustools/freqpipe/internal/countfile"
	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count [input] [output]",
	Short: "count tokens in a tokenized corpus into a count file",
	Long: `Count reads lines of space-separated tokens and writes a count file:
a __total__ line followed by token counts in descending order. Tokens seen
only once are dropped.`,
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
		return countfile.CountTokenized(in, out)
	},
}

var recountLanguage string

var recountCmd = &cobra.Command{
	Use:   "recount [input] [output]",
	Short: "re-tokenize a foreign count file with our tokenizer",
	Long: `Recount reads token counts produced by another tool, splits each entry
with our tokenizer, and writes a count file whose tokenization matches the
rest of the pipeline.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tok, err := newTokenizer()
		if err != nil {
			return err
		}
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
		return countfile.Recount(in, out, recountLanguage, tok)
	},
}

var countsToFreqsCmd = &cobra.Command{
	Use:   "counts-to-freqs [input] [output]",
	Short: "list a count file as frequency/count pairs, in input order",
	Args:  cobra.ExactArgs(2),
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
		return countfile.CountsToFreqs(in, out)
	},
}

func init() {
	recountCmd.Flags().StringVar(&recountLanguage, "language", "en", "language to tokenize as")
	rootCmd.AddCommand(countCmd, recountCmd, countsToFreqsCmd)
}
