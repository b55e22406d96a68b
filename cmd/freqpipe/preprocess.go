package main

import (
	"io"

	"github.com/corpustools/freqpipe/internal/langid"
	"github.com/corpustools/freqpipe/internal/pipeline"
	"github.com/corpustools/freqpipe/internal/redditfilter"
	"github.com/corpustools/freqpipe/internal/textclean"
	"github.com/spf13/cobra"
)

var (
	tokenizeLanguage string
	tokenizeCheck    bool
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [input] [output]",
	Short: "tokenize plain text into space-separated token lines",
	Args:  cobra.ExactArgs(2),
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
		var det langid.Detector
		if tokenizeCheck {
			det = newDetector()
		}
		return pipeline.TokenizeFile(in, out, tokenizeLanguage, tok, det)
	},
}

var tokenizeByLanguageCmd = &cobra.Command{
	Use:   "tokenize-by-language [input] [output dir]",
	Short: "split a mixed-language stream into per-language token files",
	Long: `Tokenize-by-language reads plain or language-tagged lines and writes one
<lang>.txt token file per identified language under the output directory.`,
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
		return pipeline.TokenizeByLanguage(in, args[1], tok, newDetector())
	},
}

var preprocessTwitterCmd = &cobra.Command{
	Use:   "preprocess-twitter [input] [output]",
	Short: "clean a tweet dump into language-tagged text",
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
		return redditfilter.ProcessTwitter(in, out, newDetector(), textclean.FixerFunc(textclean.UncurlQuotes))
	},
}

var preprocessRedditCmd = &cobra.Command{
	Use:   "preprocess-reddit [input] [output]",
	Short: "filter a Reddit comment dump into language-tagged text",
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
		return redditfilter.Process(in, out,
			redditfilter.PassthroughRenderer, newDetector(),
			textclean.FixerFunc(textclean.UncurlQuotes))
	},
}

var preprocessHTMLCmd = &cobra.Command{
	Use:   "preprocess-html [input] [output]",
	Short: "flatten an HTML document dump to plain text",
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
		doc, err := io.ReadAll(in)
		if err != nil {
			return err
		}
		text, err := textclean.HTMLToText(string(doc))
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, text+"\n")
		return err
	},
}

func init() {
	tokenizeCmd.Flags().StringVar(&tokenizeLanguage, "language", "en", "language to tokenize as")
	tokenizeCmd.Flags().BoolVar(&tokenizeCheck, "check-language", false, "drop lines not identified as the target language")
	rootCmd.AddCommand(tokenizeCmd, tokenizeByLanguageCmd, preprocessTwitterCmd, preprocessRedditCmd, preprocessHTMLCmd)
}
