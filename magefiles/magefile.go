//go:build mage

// Package main contains Mage build targets for pdf-text developer tooling.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/pdiddy/pdf-text/internal/sink"
)

const (
	binDir  = "bin"
	binName = "pdf-text"
	cmdPkg  = "./cmd/pdf-text"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s (%s)\n", out, version)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Extract builds the CLI and runs it on the current directory.
func Extract() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName))
}

// Clean removes build output and the extracted text directory.
func Clean() error {
	for _, dir := range []string{binDir, sink.DirName} {
		if err := sh.Rm(dir); err != nil {
			return fmt.Errorf("removing %s: %w", dir, err)
		}
		fmt.Println("  removed", dir)
	}
	return nil
}

// Stats prints Go production and test line counts.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	return nil
}

// countGoLines counts non-blank lines in Go files under root, skipping
// underscore-prefixed directories. If testOnly is true, only _test.go files
// count; otherwise only non-test files do.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != root && strings.HasPrefix(info.Name(), "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		if strings.HasSuffix(path, "_test.go") != testOnly {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range bytes.Split(data, []byte("\n")) {
			if len(bytes.TrimSpace(line)) > 0 {
				total++
			}
		}
		return nil
	})
	return total, err
}
