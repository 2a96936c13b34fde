// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionBackend identifies the tool that turns a PDF into text.
type ConversionBackend string

const (
	BackendNative     ConversionBackend = "native"
	BackendPdftotext  ConversionBackend = "pdftotext"
	BackendMarkitdown ConversionBackend = "markitdown"
)

// ConversionConfig holds settings for the extraction stage.
type ConversionConfig struct {
	// Backend selects the extraction tool: native, pdftotext, or markitdown.
	Backend ConversionBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// Validate runs a structural check on each PDF before extraction so that
	// corrupt files fail with a validation reason instead of a parser error.
	Validate bool `json:"validate" yaml:"validate" mapstructure:"validate"`
}

// Config is the top-level configuration read from pdf-text.yaml and
// PDF_TEXT_* environment variables.
type Config struct {
	Conversion ConversionConfig `json:"conversion" yaml:"conversion" mapstructure:"conversion"`
}

// DefaultConfig returns the configuration used when no file or environment
// overrides are present.
func DefaultConfig() Config {
	return Config{
		Conversion: ConversionConfig{
			Backend: BackendNative,
		},
	}
}
