// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes a YAML summary of a conversion run.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/wmelvin/libreoffice-doc-to-txt/pkg/types"
)

// Report is the YAML document describing one conversion run.
type Report struct {
	GeneratedAt string              `yaml:"generated_at"`
	Converted   int                 `yaml:"converted"`
	Skipped     int                 `yaml:"skipped"`
	Files       []types.FileOutcome `yaml:"files,omitempty"`
	Warnings    []string            `yaml:"warnings,omitempty"`
}

// New builds a report stamped with the current time.
func New(converted, skipped int, files []types.FileOutcome, warnings []string) Report {
	return Report{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Converted:   converted,
		Skipped:     skipped,
		Files:       files,
		Warnings:    warnings,
	}
}

// Write marshals the report to YAML at path, creating parent directories
// and replacing any existing file.
func Write(path string, r Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling run report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run report %s: %w", path, err)
	}
	return nil
}
