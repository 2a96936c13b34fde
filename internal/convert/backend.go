// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"

	"github.com/pdiddy/pdf-text/internal/container"
	"github.com/pdiddy/pdf-text/pkg/types"
)

// NewConverter builds the converter selected by cfg. An empty backend means
// native. Errors here happen before any file is touched.
func NewConverter(cfg types.ConversionConfig) (Converter, error) {
	var (
		c   Converter
		err error
	)
	switch cfg.Backend {
	case types.BackendNative, "":
		c = NewNativeConverter()
	case types.BackendPdftotext:
		c, err = NewPdftotextConverter(container.NewHost(binPdftotext))
	case types.BackendMarkitdown:
		var rt container.Runtime
		rt, err = container.DetectRuntime()
		if err == nil {
			c, err = NewMarkitdownConverter(rt)
		}
	default:
		return nil, fmt.Errorf("unknown conversion backend %q (want %s, %s, or %s)",
			cfg.Backend, types.BackendNative, types.BackendPdftotext, types.BackendMarkitdown)
	}
	if err != nil {
		return nil, fmt.Errorf("setting up %s backend: %w", cfg.Backend, err)
	}

	if cfg.Validate {
		c = NewValidatingConverter(c)
	}
	return c, nil
}
