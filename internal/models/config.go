package models

// GitMode is the tri-state tracked-file filtering preference.
// It is deliberately not a bool: the auto-detect state drives a
// different selection policy than an explicit yes or no.
type GitMode int

const (
	// GitAuto filters by tracked files only when the directory
	// contains a .git marker.
	GitAuto GitMode = iota

	// GitOn always queries the tracking oracle; a failing query is a
	// fatal error even when no repository marker exists.
	GitOn

	// GitOff never filters by tracked status.
	GitOff
)

// String returns the flag-level spelling of the mode.
func (m GitMode) String() string {
	switch m {
	case GitOn:
		return "true"
	case GitOff:
		return "false"
	default:
		return "auto"
	}
}

// ScanConfig holds one invocation's options. It is constructed once by
// the CLI layer and is read-only thereafter.
type ScanConfig struct {
	// JSON selects structured JSON output. Takes precedence over YAML
	// when both are set.
	JSON bool

	// YAML selects structured YAML output.
	YAML bool

	// Ignore lists glob patterns; a file matching any pattern (against
	// its full path or its base name) is excluded from scanning.
	Ignore []string

	// Output is the report destination path. Empty means stdout.
	Output string

	// Dirs lists the root directories to lint.
	Dirs []string

	// Git is the tracked-file filtering preference.
	Git GitMode

	// LogLevel sets console logging verbosity (trace, debug, info,
	// warn, error).
	LogLevel string
}

// DefaultScanConfig returns a ScanConfig with the defaults used when no
// flags are given: lint the current directory, human-readable output to
// stdout, auto-detected git filtering.
func DefaultScanConfig() *ScanConfig {
	return &ScanConfig{
		Dirs:     []string{"."},
		Git:      GitAuto,
		LogLevel: "info",
	}
}
