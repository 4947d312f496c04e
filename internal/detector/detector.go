// Package detector implements the per-file defect checks.
//
// Detection operates on fully decoded text: callers are responsible for
// reading the file and rejecting content that is not valid UTF-8 before
// handing it to Detect. The four checks are independent pure functions
// over the same content; a single line may contribute to more than one
// issue kind, and no check suppresses another.
package detector

import (
	"strings"
	"unicode"

	"github.com/harrison/tidylint/internal/models"
)

// Detect runs all four defect checks against content and returns the
// issues in detection order: trailing-whitespace scan, missing-newline
// check, CRLF scan, blank-lines-at-EOF check. The returned slice is nil
// when the content is clean. Zero-length content yields no issues.
func Detect(path, content string) []models.Issue {
	if content == "" {
		return nil
	}

	var issues []models.Issue
	lines := strings.Split(content, "\n")

	issues = append(issues, trailingWhitespace(path, lines)...)

	if !strings.HasSuffix(content, "\n") {
		issues = append(issues, models.Issue{
			Kind:    models.MissingNewline,
			Line:    len(lines),
			File:    path,
			Message: "Missing newline at end of file",
		})
	}

	issues = append(issues, crlfLineEndings(path, content, lines)...)

	if n := trailingLineBreaks(content); n > 1 {
		issues = append(issues, models.Issue{
			Kind:    models.MultipleBlankLinesEOF,
			Line:    len(lines),
			File:    path,
			Message: "Multiple blank lines at end of file",
		})
	}

	return issues
}

// trailingWhitespace flags every line whose length shrinks when trailing
// whitespace is stripped. The final segment (content after the last line
// feed) is empty for newline-terminated files, so checking it
// unconditionally only ever fires on an unterminated last line. That
// line can therefore be reported both here and by the missing-newline
// check; the overlap is intentional.
func trailingWhitespace(path string, lines []string) []models.Issue {
	var issues []models.Issue
	for i, line := range lines[:len(lines)-1] {
		if trimmed := strings.TrimRightFunc(line, unicode.IsSpace); len(trimmed) != len(line) {
			issues = append(issues, models.Issue{
				Kind:    models.TrailingWhitespace,
				Line:    i + 1,
				File:    path,
				Message: "Trailing whitespace",
			})
		}
	}
	last := lines[len(lines)-1]
	if trimmed := strings.TrimRightFunc(last, unicode.IsSpace); len(trimmed) != len(last) {
		issues = append(issues, models.Issue{
			Kind:    models.TrailingWhitespace,
			Line:    len(lines),
			File:    path,
			Message: "Trailing whitespace",
		})
	}
	return issues
}

// crlfLineEndings flags every line containing a carriage return, but
// only when the content holds at least one CRLF sequence. A stray CR
// with no CRLF anywhere in the file is not treated as a line-ending
// defect.
func crlfLineEndings(path, content string, lines []string) []models.Issue {
	if !strings.Contains(content, "\r\n") {
		return nil
	}
	var issues []models.Issue
	for i, line := range lines {
		if strings.ContainsRune(line, '\r') {
			issues = append(issues, models.Issue{
				Kind:    models.CrlfLineEnding,
				Line:    i + 1,
				File:    path,
				Message: "Contains CRLF line endings",
			})
		}
	}
	return issues
}

// trailingLineBreaks counts the run of line-feed and carriage-return
// characters at the very end of content.
func trailingLineBreaks(content string) int {
	n := 0
	for i := len(content) - 1; i >= 0; i-- {
		if content[i] != '\n' && content[i] != '\r' {
			break
		}
		n++
	}
	return n
}
