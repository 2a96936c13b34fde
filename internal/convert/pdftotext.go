// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"io"
)

const binPdftotext = "pdftotext"

// Tool runs a host binary. container.Host implements it.
type Tool interface {
	Name() string
	Available() bool
	Run(args []string, stdout io.Writer) error
}

// PdftotextConverter shells out to poppler's pdftotext, asking for UTF-8
// output on stdout.
type PdftotextConverter struct {
	tool Tool
}

// NewPdftotextConverter returns a converter backed by the given tool. It
// fails when the binary is not on PATH.
func NewPdftotextConverter(tool Tool) (*PdftotextConverter, error) {
	if !tool.Available() {
		return nil, fmt.Errorf("%s not found on PATH (install poppler-utils)", tool.Name())
	}
	return &PdftotextConverter{tool: tool}, nil
}

// Convert runs pdftotext on pdfPath and returns what it printed.
func (p *PdftotextConverter) Convert(pdfPath string) (string, error) {
	var out bytes.Buffer
	if err := p.tool.Run([]string{"-enc", "UTF-8", pdfPath, "-"}, &out); err != nil {
		return "", fmt.Errorf("converting %s with pdftotext: %w", pdfPath, err)
	}
	return out.String(), nil
}
