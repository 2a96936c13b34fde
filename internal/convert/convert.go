// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert extracts plain text from PDFs through pluggable backends
// and drives a batch run over a directory tree.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/pdiddy/pdf-text/internal/discover"
	"github.com/pdiddy/pdf-text/internal/sink"
	"github.com/pdiddy/pdf-text/pkg/types"
)

// textExt is the extension of generated files.
const textExt = ".txt"

// Converter extracts the text content of a PDF. Different backends (native,
// pdftotext, markitdown) implement this interface.
type Converter interface {
	// Convert reads the PDF at pdfPath and returns its text.
	Convert(pdfPath string) (string, error)
}

var (
	okLabel   = color.New(color.FgGreen).SprintFunc()
	failLabel = color.New(color.FgRed).SprintFunc()
)

// OutputPath returns the text file written for pdfPath: the same base name
// with a .txt extension, inside outDir. Inputs from different directories
// that share a base name map to the same output.
func OutputPath(pdfPath, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	return filepath.Join(outDir, base+textExt)
}

// NormalizeText converts CRLF and lone CR line endings to LF and drops byte
// sequences that are not valid UTF-8.
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ToValidUTF8(s, "")
}

// ConvertFile extracts the text of one PDF and writes it to outDir,
// replacing any existing file of the same name. It returns the path written.
func ConvertFile(c Converter, pdfPath, outDir string) (string, error) {
	text, err := extract(c, pdfPath)
	if err != nil {
		return "", err
	}

	txtPath := OutputPath(pdfPath, outDir)
	if err := writeText(txtPath, NormalizeText(text)); err != nil {
		return "", err
	}
	return txtPath, nil
}

// extract calls the converter, turning a parser panic into an error so one
// malformed file cannot take down the run.
func extract(c Converter, pdfPath string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extracting text: parser panic: %v", r)
		}
	}()
	text, err = c.Convert(pdfPath)
	if err != nil {
		return "", fmt.Errorf("extracting text: %w", err)
	}
	return text, nil
}

func writeText(path, text string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := io.WriteString(f, text); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// ConvertBatch extracts each PDF in order, printing a success line to stdout
// or a failure line to stderr for every file, and never stops early.
func ConvertBatch(c Converter, pdfPaths []string, outDir string, stdout, stderr io.Writer) types.RunSummary {
	summary := types.RunSummary{OutputDir: outDir}
	for _, p := range pdfPaths {
		out, err := ConvertFile(c, p, outDir)
		summary.Results = append(summary.Results, types.ExtractionResult{
			Input:  p,
			Output: out,
			Err:    err,
		})
		if err != nil {
			fmt.Fprintf(stderr, "%s %s: %v\n", failLabel("Failed to extract"), p, err)
			continue
		}
		fmt.Fprintf(stdout, "%s %s -> %s\n", okLabel("Extracted:"), p, out)
	}
	return summary
}

// Run converts every PDF under root into root/__pdf_text. The output
// directory is prepared before anything else; if that fails, Run returns the
// error without touching any input. Per-file failures are reported and
// recorded in the summary but never returned as an error.
func Run(root string, c Converter, stdout, stderr io.Writer) (types.RunSummary, error) {
	outDir, err := sink.Prepare(root)
	if err != nil {
		return types.RunSummary{}, err
	}

	pdfs, err := discover.PDFs(root, stderr)
	if err != nil {
		return types.RunSummary{OutputDir: outDir}, err
	}
	if len(pdfs) == 0 {
		fmt.Fprintln(stderr, "No PDF files found.")
		return types.RunSummary{OutputDir: outDir}, nil
	}

	summary := ConvertBatch(c, pdfs, outDir, stdout, stderr)
	fmt.Fprintf(stdout, "Done. Created %d text file(s) in %s\n", summary.Created(), outDir)
	return summary, nil
}
