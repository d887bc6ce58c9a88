// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data types for the doc2txt pipeline:
// run options, configuration, and per-file conversion outcomes.
package types

// ConversionStatus tracks the outcome of a single document conversion.
type ConversionStatus string

const (
	// ConversionDone means the document was converted and wrapped.
	ConversionDone ConversionStatus = "converted"

	// ConversionSkipped means an output already existed and the
	// overwrite option was not set.
	ConversionSkipped ConversionStatus = "skipped"
)

// FileOutcome records what happened to one source document during a run.
type FileOutcome struct {
	// Source is the input document path.
	Source string `json:"source" yaml:"source"`

	// Output is the renamed text output path. Empty when skipped.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Wrapped is the wrapped companion file path. Empty when skipped.
	Wrapped string `json:"wrapped,omitempty" yaml:"wrapped,omitempty"`

	// Status is the conversion outcome.
	Status ConversionStatus `json:"status" yaml:"status"`
}
