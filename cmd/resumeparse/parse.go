package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/artem13815/resumeparser/pkg/config"
	"github.com/artem13815/resumeparser/pkg/nlp"
	"github.com/artem13815/resumeparser/pkg/resume"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a PDF or DOCX resume and print the extracted fields as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

var (
	parseStrict       bool
	parseWordBoundary bool
	parseNoNames      bool
	parseNames        string
	parseOutputFile   string
)

func init() {
	parseCmd.Flags().BoolVar(&parseStrict, "strict", false, "Fail when no text can be extracted instead of parsing empty text")
	parseCmd.Flags().BoolVar(&parseWordBoundary, "word-boundary", false, "Match skills on whole words only (\"go\" does not match \"google\")")
	parseCmd.Flags().BoolVar(&parseNoNames, "no-ner", false, "Disable name recognition; the first short line is used as the name")
	parseCmd.Flags().StringVar(&parseNames, "names", "", "Name recognizer: prose, heuristic or off (defaults to NAME_RECOGNIZER)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Write JSON to this file instead of stdout")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}
	opts := cliParserOptions(cfg, cmd)

	parsed, err := resume.NewParser(opts).ParseFile(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	var out io.Writer = cmd.OutOrStdout()
	if parseOutputFile != "" {
		f, err := os.Create(parseOutputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(parsed)
}

// cliParserOptions starts from the environment and lets explicitly set flags override it.
func cliParserOptions(cfg config.Config, cmd *cobra.Command) resume.ParserOptions {
	opts := resume.ParserOptions{
		Strict:    cfg.StrictExtraction,
		SkillMode: nlp.MatchMode(cfg.SkillMatchMode),
	}
	mode := nlp.NameMode(cfg.NameRecognizer)
	if parseNames != "" {
		mode = nlp.NameMode(parseNames)
	}
	if parseNoNames {
		mode = nlp.NamesOff
	}
	opts.Names = nlp.NewNameRecognizer(mode)
	if cmd.Flags().Changed("strict") {
		opts.Strict = parseStrict
	}
	if parseWordBoundary {
		opts.SkillMode = nlp.MatchWordBoundary
	}
	return opts
}
