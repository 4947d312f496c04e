// Package scanner drives one lint run: per-root file discovery,
// tracked-file and ignore filtering, content decoding, defect
// detection, and issue aggregation.
package scanner

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/harrison/tidylint/internal/detector"
	"github.com/harrison/tidylint/internal/fileutil"
	"github.com/harrison/tidylint/internal/gitutil"
	"github.com/harrison/tidylint/internal/ignore"
	"github.com/harrison/tidylint/internal/logger"
	"github.com/harrison/tidylint/internal/models"
)

// DirResult holds the issues detected under one root directory, in the
// order files were processed.
type DirResult struct {
	// Dir is the root directory as given on input.
	Dir string

	// Issues is the append-only, non-deduplicated issue list for this
	// root. Within one file, issues keep the detector's order.
	Issues []models.Issue
}

// Result aggregates a full run across all configured roots, preserving
// input order.
type Result struct {
	Dirs []DirResult
}

// AllIssues flattens the per-root issue lists into a single slice in
// processing order. The returned slice is never nil.
func (r *Result) AllIssues() []models.Issue {
	issues := []models.Issue{}
	for _, d := range r.Dirs {
		issues = append(issues, d.Issues...)
	}
	return issues
}

// HasIssues reports whether any issue was found anywhere in the run.
func (r *Result) HasIssues() bool {
	for _, d := range r.Dirs {
		if len(d.Issues) > 0 {
			return true
		}
	}
	return false
}

// Scanner performs sequential, single-pass lint runs. Each file's
// detection is independent; processing order only affects report
// ordering.
type Scanner struct {
	cfg     *models.ScanConfig
	log     *logger.ConsoleLogger
	matcher *ignore.Matcher
	scanID  string
}

// New creates a Scanner for the given configuration. The ignore
// patterns are compiled here, so an invalid glob fails the run before
// any directory is touched.
func New(cfg *models.ScanConfig, log *logger.ConsoleLogger) (*Scanner, error) {
	matcher, err := ignore.NewMatcher(cfg.Ignore)
	if err != nil {
		return nil, err
	}
	return &Scanner{
		cfg:     cfg,
		log:     log,
		matcher: matcher,
		scanID:  uuid.NewString(),
	}, nil
}

// Run lints every configured root in order and returns the aggregated
// result. It aborts on the first fatal error: a missing root directory
// or a failed tracking query. Unreadable and non-UTF-8 files are
// warned about and skipped; they never fail the run.
func (s *Scanner) Run(ctx context.Context) (*Result, error) {
	result := &Result{}
	for _, dir := range s.cfg.Dirs {
		dirResult, err := s.scanDir(ctx, dir)
		if err != nil {
			return nil, err
		}
		result.Dirs = append(result.Dirs, *dirResult)
	}
	return result, nil
}

func (s *Scanner) scanDir(ctx context.Context, dir string) (*DirResult, error) {
	s.log.Debugf("scan %s: linting directory %s", s.scanID, dir)

	// Walk first so a missing root fails with a directory error, not a
	// tracking-query error.
	files, err := fileutil.Walk(dir)
	if err != nil {
		return nil, err
	}

	tracked, err := s.resolveTracked(ctx, dir)
	if err != nil {
		return nil, err
	}

	dirResult := &DirResult{Dir: dir}
	for _, path := range files {
		if tracked != nil {
			if _, ok := tracked[path]; !ok {
				continue
			}
		}
		if s.matcher.Match(path) {
			s.log.Tracef("scan %s: ignoring %s", s.scanID, path)
			continue
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			s.log.Warnf("failed to read file '%s': %v", path, err)
			continue
		}
		if !utf8.Valid(raw) {
			s.log.Warnf("file '%s' is not a valid UTF-8 text file, skipped", path)
			continue
		}

		dirResult.Issues = append(dirResult.Issues, detector.Detect(path, string(raw))...)
	}

	s.log.Debugf("scan %s: %s yielded %d issue(s)", s.scanID, dir, len(dirResult.Issues))
	return dirResult, nil
}

// resolveTracked applies the tracking-filter selection policy for one
// root. A nil map means no tracked-file filtering.
func (s *Scanner) resolveTracked(ctx context.Context, dir string) (map[string]struct{}, error) {
	useGit := false
	switch s.cfg.Git {
	case models.GitOn:
		// Explicit request: the oracle runs even without a repository
		// marker, and its failure fails the run.
		useGit = true
	case models.GitOff:
		useGit = false
	case models.GitAuto:
		useGit = gitutil.IsRepo(dir)
	}
	if !useGit {
		return nil, nil
	}

	tracked, err := gitutil.TrackedFiles(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("tracking query failed for %s: %w", dir, err)
	}
	s.log.Debugf("scan %s: %d tracked file(s) in %s", s.scanID, len(tracked), dir)
	return tracked, nil
}
