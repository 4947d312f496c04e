// Package report serializes an aggregated lint result into one of three
// formats (JSON, YAML, or the default human-readable markdown) and
// delivers it to the configured destination.
package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/harrison/tidylint/internal/filelock"
	"github.com/harrison/tidylint/internal/models"
	"github.com/harrison/tidylint/internal/scanner"
)

// ErrIssuesFound marks a run that completed normally but detected at
// least one issue. It is returned only after the report bytes have been
// fully written, and callers translate it into a failing exit status
// rather than a diagnostic.
var ErrIssuesFound = errors.New("issues found")

// Render serializes the result according to cfg. Exactly one format is
// produced: JSON when cfg.JSON is set, otherwise YAML when cfg.YAML is
// set, otherwise the default human-readable report. JSON deliberately
// wins over YAML when both are requested; the tie-break is documented
// on the flags.
func Render(result *scanner.Result, cfg *models.ScanConfig) ([]byte, error) {
	switch {
	case cfg.JSON:
		return renderJSON(result)
	case cfg.YAML:
		return renderYAML(result)
	default:
		return renderDefault(result), nil
	}
}

// Write renders the result and delivers it to cfg.Output when set, or
// to w otherwise. Delivery failures (including the destination being a
// directory) are fatal errors distinct from ErrIssuesFound, which is
// returned only after a fully successful write of a non-clean report.
func Write(w io.Writer, result *scanner.Result, cfg *models.ScanConfig) error {
	data, err := Render(result, cfg)
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		if info, err := os.Stat(cfg.Output); err == nil && info.IsDir() {
			return fmt.Errorf("output path is a directory: %s", cfg.Output)
		}
		if err := filelock.LockAndWrite(cfg.Output, data); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", cfg.Output, err)
		}
	} else {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if result.HasIssues() {
		return ErrIssuesFound
	}
	return nil
}

// stripped returns the flat issue list with messages removed, ready for
// structured serialization. Always non-nil so an empty run serializes
// as an empty list, never null.
func stripped(result *scanner.Result) []models.Issue {
	issues := result.AllIssues()
	for i := range issues {
		issues[i].Message = ""
	}
	return issues
}

func renderJSON(result *scanner.Result) ([]byte, error) {
	data, err := json.MarshalIndent(stripped(result), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal issues to JSON: %w", err)
	}
	return append(data, '\n'), nil
}

func renderYAML(result *scanner.Result) ([]byte, error) {
	data, err := yaml.Marshal(stripped(result))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal issues to YAML: %w", err)
	}
	return data, nil
}

// renderDefault produces the human-readable markdown report: a title
// line, then per root (in input order) a section per contiguous run of
// the same file with one bullet per issue. The grouping follows the
// aggregator's natural order; it is not a global re-sort.
func renderDefault(result *scanner.Result) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# Tidylint report\n\n")

	for _, dir := range result.Dirs {
		curFile := ""
		for _, issue := range dir.Issues {
			if issue.File != curFile {
				if curFile != "" {
					fmt.Fprintln(&buf)
				}
				fmt.Fprintf(&buf, "## %s\n\n", issue.File)
				curFile = issue.File
			}
			fmt.Fprintf(&buf, "- **Line:** `%d` %s\n", issue.Line, issue.Message)
		}
		fmt.Fprintln(&buf)
	}

	if !result.HasIssues() {
		fmt.Fprintf(&buf, "No lint issues found.\n\n")
	}
	return buf.Bytes()
}
