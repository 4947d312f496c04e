// Package fileutil provides the recursive directory walker used for
// file discovery.
//
// The walker is error-tolerant by design: individual entries that
// cannot be visited (permission-denied subdirectories, dangling
// symlinks) are skipped silently and never abort the walk. Symbolic
// links are reported as their own entry type and never descended into,
// so cycles created by symlinked directories cannot cause
// non-termination.
package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Walk enumerates every regular file under root, recursively, in
// stable lexical order. Paths are returned joined with root as given,
// not canonicalized.
//
// Only the root itself is validated: a missing or non-directory root is
// an error. Everything below it is best-effort.
func Walk(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("directory not found: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", root)
	}

	var files []string
	// The walk function never returns a non-nil error, so WalkDir
	// cannot fail past the root stat above.
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entry. Skip it and keep walking.
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})

	return files, nil
}
