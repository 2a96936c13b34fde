// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pdiddy/pdf-text/internal/container"
)

const imageMarkitdown = "markitdown:latest"

// MarkitdownConverter extracts text by piping PDFs through the markitdown
// container image. The output is lightly marked-up text; it is written as is.
type MarkitdownConverter struct {
	runtime container.Runtime
}

// NewMarkitdownConverter creates a converter that uses the given container
// runtime. It verifies that the markitdown image exists locally before
// returning.
func NewMarkitdownConverter(rt container.Runtime) (*MarkitdownConverter, error) {
	if err := rt.ImageExists(imageMarkitdown); err != nil {
		return nil, fmt.Errorf("markitdown image not available in %s: %w", rt.Name(), err)
	}
	return &MarkitdownConverter{runtime: rt}, nil
}

// Convert streams the PDF at pdfPath into the container and returns its
// standard output.
func (m *MarkitdownConverter) Convert(pdfPath string) (string, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	var out bytes.Buffer
	if err := m.runtime.Run(imageMarkitdown, f, &out); err != nil {
		return "", fmt.Errorf("converting %s with markitdown: %w", pdfPath, err)
	}
	return out.String(), nil
}
