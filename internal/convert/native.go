// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// NativeConverter reads the embedded text layer of a PDF in-process with
// github.com/ledongthuc/pdf. It needs no external tools. Image-only pages
// yield no text.
type NativeConverter struct{}

// NewNativeConverter returns the in-process converter.
func NewNativeConverter() *NativeConverter {
	return &NativeConverter{}
}

// Convert returns the plain text of every page in order.
func (n *NativeConverter) Convert(pdfPath string) (string, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	txt, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("reading text layer: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, txt); err != nil {
		return "", fmt.Errorf("reading text layer: %w", err)
	}
	return buf.String(), nil
}
