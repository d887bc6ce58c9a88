// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package office implements LibreOffice binary detection and invocation
// of its command-line document conversion mode.
package office

import (
	"fmt"
	"os"
	"os/exec"
)

const (
	binLibreOffice = "libreoffice"
	binSoffice     = "soffice"
)

// Runner invokes the office suite's headless conversion mode.
type Runner interface {
	// Name returns the office binary name ("libreoffice" or "soffice").
	Name() string

	// Available reports whether the binary exists on PATH and responds
	// to a version query.
	Available() bool

	// ConvertToText converts the document at inputPath to plain text,
	// writing the result into outDir with the source stem and a .txt
	// extension.
	ConvertToText(inputPath, outDir string) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	RunQuiet(name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// RunQuiet runs a command with stdout passed through and stderr
// suppressed. LibreOffice writes noisy diagnostics to stderr even on
// successful conversions.
func (o *osExecutor) RunQuiet(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	return cmd.Run()
}

// runner implements Runner for a specific office binary. The desktop
// wrapper and plain soffice accept identical conversion arguments; they
// differ only in binary name.
type runner struct {
	bin  string
	exec executor
}

func (r *runner) Name() string { return r.bin }

func (r *runner) Available() bool {
	if _, err := r.exec.LookPath(r.bin); err != nil {
		return false
	}
	return r.exec.RunSilent(r.bin, "--version") == nil
}

func (r *runner) ConvertToText(inputPath, outDir string) error {
	args := []string{"--convert-to", "txt", "--outdir", outDir, inputPath}
	if err := r.exec.RunQuiet(r.bin, args...); err != nil {
		return fmt.Errorf("converting %s with %s: %w", inputPath, r.bin, err)
	}
	return nil
}

func newRunner(bin string, exec executor) *runner {
	return &runner{bin: bin, exec: exec}
}

var defaultExec = &osExecutor{}

// DetectRunner tries the libreoffice binary first, falls back to soffice.
// Returns an error if neither is available.
func DetectRunner() (Runner, error) {
	return detectRunner(defaultExec)
}

func detectRunner(exec executor) (Runner, error) {
	lo := newRunner(binLibreOffice, exec)
	if lo.Available() {
		return lo, nil
	}

	so := newRunner(binSoffice, exec)
	if so.Available() {
		return so, nil
	}

	return nil, fmt.Errorf(
		"no office binary available: neither %s nor %s found or operational",
		binLibreOffice, binSoffice,
	)
}

// ForBinary returns a Runner for an explicitly configured binary name,
// bypassing detection. It fails when the binary is not operational.
func ForBinary(bin string) (Runner, error) {
	return forBinary(bin, defaultExec)
}

func forBinary(bin string, exec executor) (Runner, error) {
	r := newRunner(bin, exec)
	if !r.Available() {
		return nil, fmt.Errorf("office binary %s not found or not operational", bin)
	}
	return r, nil
}
