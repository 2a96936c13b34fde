// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractionStatus indicates the outcome of extracting one PDF.
type ExtractionStatus string

const (
	ExtractionDone   ExtractionStatus = "extracted"
	ExtractionFailed ExtractionStatus = "failed"
)

// ExtractionResult is the per-file outcome of a run. Exactly one of Output
// and Err is set.
type ExtractionResult struct {
	// Input is the discovered PDF path.
	Input string `json:"input" yaml:"input"`

	// Output is the text file written for Input.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Err is the reason extraction failed.
	Err error `json:"-" yaml:"-"`
}

// Status reports whether the result is a success or a failure.
func (r ExtractionResult) Status() ExtractionStatus {
	if r.Err != nil {
		return ExtractionFailed
	}
	return ExtractionDone
}

// RunSummary collects the results of one invocation, in processing order.
// It lives in memory only.
type RunSummary struct {
	// OutputDir is the directory receiving text files.
	OutputDir string

	Results []ExtractionResult
}

// Created returns the number of text files written. Two inputs that share a
// base name count twice even though the second overwrote the first.
func (s RunSummary) Created() int {
	n := 0
	for _, r := range s.Results {
		if r.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the number of inputs that could not be extracted.
func (s RunSummary) Failed() int {
	return len(s.Results) - s.Created()
}

// HasFailures reports whether any input failed extraction.
func (s RunSummary) HasFailures() bool {
	return s.Failed() > 0
}

// Outputs returns the written text file paths in processing order.
func (s RunSummary) Outputs() []string {
	var out []string
	for _, r := range s.Results {
		if r.Err == nil {
			out = append(out, r.Output)
		}
	}
	return out
}
