// Package cmd wires the tidylint command-line interface: flag parsing,
// configuration assembly, and the run/report/exit sequence.
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/tidylint/internal/logger"
	"github.com/harrison/tidylint/internal/models"
	"github.com/harrison/tidylint/internal/report"
	"github.com/harrison/tidylint/internal/scanner"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for tidylint
func NewRootCommand() *cobra.Command {
	var (
		jsonOut  bool
		yamlOut  bool
		ignores  []string
		output   string
		gitFlag  string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "tidylint [flags] [DIR...]",
		Short: "Lint text files for whitespace and line ending issues",
		Long: `Tidylint checks text files for common whitespace and line ending
issues: trailing whitespace, missing newline at end of file, CRLF line
endings, and multiple blank lines at end of file.

It scans one or more directories recursively (default: the current
directory). Inside a git repository only tracked files are linted
unless --git=false is given.

Exit code: 0 on a clean pass, 1 when issues were found or a fatal
error occurred.

Examples:
  # Lint the current directory
  tidylint

  # Lint two directories, skipping generated files
  tidylint --ignore '*.pb.go' --ignore vendor src/ docs/

  # Machine-readable output for CI
  tidylint --json -o lint-report.json

  # Lint everything, tracked or not
  tidylint --git=false`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			git, err := parseGitMode(gitFlag)
			if err != nil {
				return err
			}

			cfg := models.DefaultScanConfig()
			cfg.JSON = jsonOut
			cfg.YAML = yamlOut
			cfg.Ignore = ignores
			cfg.Output = output
			cfg.Git = git
			cfg.LogLevel = logLevel
			if len(args) > 0 {
				cfg.Dirs = args
			}

			return runLint(cmd, cfg)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output results in JSON format (wins over --yaml if both are set)")
	cmd.Flags().BoolVar(&yamlOut, "yaml", false, "Output results in YAML format")
	cmd.Flags().StringArrayVar(&ignores, "ignore", nil, "Ignore file or path (supports glob, can be set multiple times)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write output to file instead of stdout")
	cmd.Flags().StringVar(&gitFlag, "git", "", "Only lint files tracked by git (auto-enabled in a git repository)")
	cmd.Flags().Lookup("git").NoOptDefVal = "true"
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log verbosity (trace, debug, info, warn, error)")

	return cmd
}

// parseGitMode maps the --git flag value onto the tri-state tracking
// preference. An absent flag means auto-detect.
func parseGitMode(value string) (models.GitMode, error) {
	switch value {
	case "":
		return models.GitAuto, nil
	case "true":
		return models.GitOn, nil
	case "false":
		return models.GitOff, nil
	default:
		return models.GitAuto, fmt.Errorf("invalid value %q for --git: expected true or false", value)
	}
}

// runLint executes one full lint pass: scan, render, deliver, and
// translate the result into the exit contract.
func runLint(cmd *cobra.Command, cfg *models.ScanConfig) error {
	return runLintWithOutput(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// runLintWithOutput is the testable core of runLint: diagnostics go to
// errOut, the report goes to out (unless cfg.Output redirects it).
func runLintWithOutput(ctx context.Context, cfg *models.ScanConfig, out, errOut io.Writer) error {
	log := logger.NewConsoleLogger(errOut, cfg.LogLevel)

	s, err := scanner.New(cfg, log)
	if err != nil {
		return err
	}

	result, err := s.Run(ctx)
	if err != nil {
		return err
	}

	return report.Write(out, result, cfg)
}
