// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discover enumerates PDF files under a directory tree.
package discover

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Ext is the file extension matched by PDFs. The match is case-sensitive.
const Ext = ".pdf"

// PDFs returns every regular file below root whose name ends in ".pdf",
// sorted by full path. Symlinks count only when they resolve to a regular
// file; symlinked directories are not followed. Subdirectories that cannot
// be read are reported on warn and skipped. An error is returned only when
// root itself cannot be walked.
func PDFs(root string, warn io.Writer) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			fmt.Fprintf(warn, "warning: skipping %s: %v\n", path, walkErr)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), Ext) {
			return nil
		}
		if !isRegular(path, d) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// isRegular reports whether the entry is, or links to, a regular file.
func isRegular(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path) // dangling links fail here
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
