// Package models defines the core data types shared across tidylint:
// the issue record produced by the detector, the closed set of issue
// kinds, and the read-only scan configuration assembled by the CLI layer.
package models

// IssueKind identifies one of the defect categories tidylint detects.
// The underlying string is the wire name used in JSON and YAML output.
type IssueKind string

// The closed set of issue kinds. No other values are ever produced.
const (
	TrailingWhitespace    IssueKind = "trailing_whitespace"
	MissingNewline        IssueKind = "missing_newline"
	CrlfLineEnding        IssueKind = "crlf_line_ending"
	MultipleBlankLinesEOF IssueKind = "multiple_blank_lines_eof"
)

// Issue records a single detected defect occurrence.
//
// Issues are immutable after creation: the detector builds them fully
// populated and nothing downstream modifies them, with the single
// exception of the renderer clearing Message before structured output.
type Issue struct {
	// Kind is the defect category.
	Kind IssueKind `json:"type" yaml:"type"`

	// Line is the 1-based line number where the defect was observed.
	Line int `json:"line" yaml:"line"`

	// File is the path as resolved during traversal, joined with the
	// root directory given on input. It is not canonicalized.
	File string `json:"file" yaml:"file"`

	// Message is a human-readable description. It is present during
	// detection and stripped before JSON/YAML serialization.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}
