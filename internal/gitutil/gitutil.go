// Package gitutil queries git for the set of tracked files. Git is
// treated as a black-box oracle: tidylint shells out to `git ls-files`
// rather than reading repository internals itself.
package gitutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// IsRepo reports whether dir carries a .git marker. The marker's
// validity is not checked here; a corrupt repository is only diagnosed
// when the tracking query actually runs.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// TrackedFiles runs `git ls-files` in dir and returns the set of
// tracked paths, each joined with dir so they compare directly against
// walker output. An abnormal process exit is returned as an error
// carrying the exit code (or signal description) and git's stderr; the
// caller treats that as fatal for the whole run.
func TrackedFiles(ctx context.Context, dir string) (map[string]struct{}, error) {
	cmd := exec.CommandContext(ctx, "git", "ls-files")
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			detail := strings.TrimSpace(stderr.String())
			if code := exitErr.ExitCode(); code >= 0 {
				return nil, fmt.Errorf("`git ls-files` exited with code %d: %s", code, detail)
			}
			// Negative exit code means the process was killed by a signal.
			return nil, fmt.Errorf("`git ls-files` terminated abnormally (%s): %s", exitErr.ProcessState, detail)
		}
		return nil, fmt.Errorf("failed to run `git ls-files` in %s: %w", dir, err)
	}

	tracked := make(map[string]struct{})
	for _, name := range strings.Split(stdout.String(), "\n") {
		if name == "" {
			continue
		}
		tracked[filepath.Join(dir, name)] = struct{}{}
	}
	return tracked, nil
}
