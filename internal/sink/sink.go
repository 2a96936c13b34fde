// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sink prepares the directory that receives extracted text files.
package sink

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirName is the fixed name of the output directory under the run root.
const DirName = "__pdf_text"

// Path returns the output directory for root without touching the filesystem.
func Path(root string) string {
	return filepath.Join(root, DirName)
}

// Prepare creates root/__pdf_text and any missing ancestors, returning its
// path. Calling it when the directory already exists is not an error. It
// fails when the path is occupied by a non-directory or cannot be created.
func Prepare(root string) (string, error) {
	dir := Path(root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return dir, nil
}
