package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/draftwatch/authorisk"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	var (
		catalogPath string
		register    int
	)

	root := &cobra.Command{
		Use:   "authorisk",
		Short: "Deterministic document authorship-risk analysis",
		Long: "authorisk scans documents for lexical and structural patterns associated\n" +
			"with machine-generated prose, scores the fused risk, and validates drafted\n" +
			"rewrites against the original.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&catalogPath, "catalog", getEnv("AUTHORISK_CATALOG", ""),
		"YAML catalog override file (env: AUTHORISK_CATALOG)")
	root.PersistentFlags().IntVar(&register, "register", 5,
		"target register, academic 0 to casual 10")

	engine := func() *authorisk.Engine {
		opts := []authorisk.Option{authorisk.WithLogger(logger)}
		if catalogPath != "" {
			f, err := os.Open(catalogPath)
			if err != nil {
				logger.Warn("cannot open catalog override, using built-in catalog",
					"path", catalogPath, "error", err)
			} else {
				defer f.Close()
				opts = append(opts, authorisk.WithCatalogOverride(f))
			}
		}
		return authorisk.New(opts...)
	}

	root.AddCommand(newScanCmd(engine))
	root.AddCommand(newStructureCmd(engine))
	root.AddCommand(newScoreCmd(engine, &register))
	root.AddCommand(newGateCmd(engine, &register))
	return root
}

func newScanCmd(engine func() *authorisk.Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [file]",
		Short: "List catalog pattern matches with replacement suggestions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}
			e := engine()
			out := struct {
				Matches []authorisk.PatternMatch `json:"matches"`
				Density float64                  `json:"density"`
			}{
				Matches: e.Scan(text),
				Density: e.Density(text),
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

func newStructureCmd(engine func() *authorisk.Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "structure [file]",
		Short: "Report structural indicators and the risk card",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), engine().AnalyzeStructure(text))
		},
	}
}

func newScoreCmd(engine func() *authorisk.Engine, register *int) *cobra.Command {
	return &cobra.Command{
		Use:   "score [file]",
		Short: "Compute the fused 0-100 authorship-risk score",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), engine().Score(text, *register))
		},
	}
}

func newGateCmd(engine func() *authorisk.Engine, register *int) *cobra.Command {
	var (
		originalPath  string
		candidatePath string
		termsPath     string
	)

	cmd := &cobra.Command{
		Use:   "gate",
		Short: "Validate a candidate rewrite against the original",
		RunE: func(cmd *cobra.Command, args []string) error {
			original, err := os.ReadFile(originalPath)
			if err != nil {
				return fmt.Errorf("reading original: %w", err)
			}
			candidate, err := os.ReadFile(candidatePath)
			if err != nil {
				return fmt.Errorf("reading candidate: %w", err)
			}
			var whitelist []string
			if termsPath != "" {
				data, err := os.ReadFile(termsPath)
				if err != nil {
					return fmt.Errorf("reading protected terms: %w", err)
				}
				if err := yaml.Unmarshal(data, &whitelist); err != nil {
					return fmt.Errorf("parsing protected terms: %w", err)
				}
			}

			e := engine()
			terms := e.IdentifyProtected(string(original), whitelist)
			verdict := e.EvaluateRewrite(string(original), string(candidate), terms, *register, authorisk.GateOptions{})
			return printJSON(cmd.OutOrStdout(), verdict)
		},
	}

	cmd.Flags().StringVar(&originalPath, "original", "", "path to the original document (required)")
	cmd.Flags().StringVar(&candidatePath, "candidate", "", "path to the candidate rewrite (required)")
	cmd.Flags().StringVar(&termsPath, "terms", "", "YAML list of whitelisted protected terms")
	_ = cmd.MarkFlagRequired("original")
	_ = cmd.MarkFlagRequired("candidate")
	return cmd
}

// readInput reads the named file, or stdin when no file is given.
func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
