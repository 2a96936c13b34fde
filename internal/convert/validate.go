// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ValidatingConverter checks each PDF's structure with pdfcpu before handing
// it to the wrapped converter. Files that fail validation, including
// encrypted ones without an empty user password, are rejected with the
// validator's reason.
type ValidatingConverter struct {
	next Converter
	conf *model.Configuration
}

// NewValidatingConverter wraps next with relaxed-mode pdfcpu validation.
func NewValidatingConverter(next Converter) *ValidatingConverter {
	// pdfcpu would otherwise create a config directory under the user's home.
	api.DisableConfigDir()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &ValidatingConverter{next: next, conf: conf}
}

// Convert validates pdfPath and, if it passes, delegates to the wrapped
// converter.
func (v *ValidatingConverter) Convert(pdfPath string) (string, error) {
	if err := api.ValidateFile(pdfPath, v.conf); err != nil {
		return "", fmt.Errorf("validating PDF %s: %w", pdfPath, err)
	}
	return v.next.Convert(pdfPath)
}
