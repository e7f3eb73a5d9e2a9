/*
Command orthography detects and converts between the two orthographic
standards of written Aromanian, and builds the resources the conversion
relies on.

Usage:

	orthography detect [--explain] [text…]
	orthography convert --to a|b|unified [text…]
	orthography clean [--variant rup|ron] [--to a|b] [text…]
	orthography build-freq --out dir corpus-file…
	orthography train --a file --b file --out model.json [--min-df n]

Text is taken from the arguments or, if there are none, line by line from
a piped stdin.
*/
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/orthography/config"
	"github.com/npillmayer/orthography/corpus"
	"github.com/npillmayer/orthography/nbclassifier"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const maxLineLength = 1 << 20

var (
	configPath string
	traceLevel string
	cfg        config.Config
)

func tracer() tracing.Trace {
	return tracing.Select("orthography")
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "orthography",
		Short:        "Detect and convert Aromanian orthographic standards",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.LoadConfig(configPath); err != nil {
				return err
			}
			if traceLevel != "" {
				cfg.TraceLevel["root"] = traceLevel
				cfg.TraceLevel["orthography"] = traceLevel
			}
			return config.ConfigureTracing(&cfg)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "orthography.toml", "configuration file")
	root.PersistentFlags().StringVar(&traceLevel, "trace", "", "trace level (Debug, Info, Error)")
	root.AddCommand(detectCmd(), convertCmd(), cleanCmd(), buildFreqCmd(), trainCmd())
	return root
}

func detectCmd() *cobra.Command {
	var explain bool
	cmd := &cobra.Command{
		Use:   "detect [text…]",
		Short: "Classify text as standardA, standardB, mixed or unknown",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := config.NewEngine(&cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return eachInput(args, func(text string) error {
				if !explain {
					_, err := fmt.Fprintln(out, engine.Classify(text))
					return err
				}
				c := engine.Explain(text)
				_, err := fmt.Fprintf(out, "%s\theuristic=%s p=%.3f overridden=%v\n",
					c.Label, c.Heuristic, c.Probability, c.Overridden)
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "report heuristic verdict and classifier probability")
	return cmd
}

func convertCmd() *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "convert [text…]",
		Short: "Convert text to a target standard",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := config.NewEngine(&cfg)
			if err != nil {
				return err
			}
			convert := func(text string) (string, error) {
				return engine.Convert(text, target)
			}
			if strings.EqualFold(target, "unified") {
				convert = func(text string) (string, error) {
					return engine.ToUnified(text), nil
				}
			}
			out := cmd.OutOrStdout()
			return eachInput(args, func(text string) error {
				s, err := convert(text)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, s)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&target, "to", "a", "target standard: a, b or unified")
	return cmd
}

func cleanCmd() *cobra.Command {
	var variant, target string
	cmd := &cobra.Command{
		Use:   "clean [text…]",
		Short: "Clean raw text, optionally converting it afterwards",
		RunE: func(cmd *cobra.Command, args []string) error {
			if variant != "" {
				cfg.Cleaner.Variant = variant
			}
			engine, err := config.NewEngine(&cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return eachInput(args, func(text string) error {
				if target == "" {
					_, err := fmt.Fprintln(out, engine.Clean(text))
					return err
				}
				s, err := engine.Normalize(text, target)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, s)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "", "language variant: rup or ron (default from config)")
	cmd.Flags().StringVar(&target, "to", "", "convert cleaned text to standard a or b")
	return cmd
}

func buildFreqCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "build-freq --out dir corpus-file…",
		Short: "Count vowel contexts of Standard A corpora into frequency tables",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				outDir = cfg.Resources.Dir
			}
			b := corpus.NewBuilder()
			for _, path := range args {
				if err := addCorpusFile(b, path); err != nil {
					return err
				}
			}
			return b.WriteDir(outDir)
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default: resource directory)")
	return cmd
}

func addCorpusFile(b *corpus.Builder, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return b.AddReader(f)
}

func trainCmd() *cobra.Command {
	var pathA, pathB, outPath string
	opts := nbclassifier.DefaultTrainOptions()
	cmd := &cobra.Command{
		Use:   "train --a file --b file",
		Short: "Train the standard classifier from two single-standard corpora",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outPath == "" {
				outPath = cfg.Resources.Classifier
			}
			a, err := os.Open(pathA)
			if err != nil {
				return err
			}
			defer a.Close()
			b, err := os.Open(pathB)
			if err != nil {
				return err
			}
			defer b.Close()
			samples, err := corpus.TrainingPairs(a, b)
			if err != nil {
				return err
			}
			model, err := nbclassifier.Train(samples, opts)
			if err != nil {
				return err
			}
			return saveModel(model, outPath)
		},
	}
	cmd.Flags().StringVar(&pathA, "a", "", "Standard A corpus, one sample per line")
	cmd.Flags().StringVar(&pathB, "b", "", "Standard B corpus, one sample per line")
	cmd.Flags().StringVar(&outPath, "out", "", "model file (default from config)")
	cmd.Flags().IntVar(&opts.MinDF, "min-df", opts.MinDF, "minimum number of samples a feature occurs in")
	cmd.Flags().IntVar(&opts.NGramMax, "ngram-max", opts.NGramMax, "longest grapheme n-gram")
	cmd.Flags().Float64Var(&opts.Alpha, "alpha", opts.Alpha, "additive smoothing")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
	return cmd
}

func saveModel(model *nbclassifier.Model, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err = model.Save(f); err == nil {
		tracer().Infof("classifier written to %s", path)
	}
	return err
}

// eachInput calls fn with the joined arguments or, without arguments, with
// every line of stdin.
func eachInput(args []string, fn func(string) error) error {
	if len(args) > 0 {
		return fn(strings.Join(args, " "))
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("no text given: pass it as arguments or pipe it to stdin")
	}
	return eachLine(os.Stdin, fn)
}

func eachLine(r io.Reader, fn func(string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
