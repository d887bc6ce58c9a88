// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Options holds the command-line selections for one conversion run.
// Built once at startup and never mutated.
type Options struct {
	// Paths lists the files and/or directories to process, in the
	// order given on the command line.
	Paths []string

	// Recurse extends directory searches into subdirectories.
	Recurse bool

	// Overwrite permits replacing an existing output file. By default
	// existing outputs are skipped with a warning.
	Overwrite bool

	// DateTimeTag inserts the source document's last-modified timestamp
	// into the output filename.
	DateTimeTag bool
}

// ConvertConfig holds the tunable settings for the conversion run,
// layered from flags, environment, and the optional config file.
type ConvertConfig struct {
	// Binary overrides office binary detection. Empty means auto-detect.
	Binary string `json:"binary" yaml:"binary"`

	// WrapWidth is the column at which companion files are wrapped
	// (default 112).
	WrapWidth int `json:"wrap_width" yaml:"wrap_width"`

	// HistoryDB is the path to the SQLite conversion ledger. Empty
	// disables recording.
	HistoryDB string `json:"history_db" yaml:"history_db"`

	// ReportPath is the destination for the YAML run report. Empty
	// disables the report.
	ReportPath string `json:"report_path" yaml:"report_path"`
}
