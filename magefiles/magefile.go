//go:build mage

// Package main contains Mage build targets for doc2txt developer tooling.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "doc2txt"
	cmdPkg  = "./cmd/doc2txt"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Check builds and then tests.
func Check() {
	mg.SerialDeps(Build, Test)
}

// Clean removes build output.
func Clean() error {
	if err := os.RemoveAll(binDir); err != nil {
		return fmt.Errorf("removing %s: %w", binDir, err)
	}
	fmt.Println("Removed", binDir)
	return nil
}

// Stats prints project metrics: Go production and test LOC.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	return nil
}

// countGoLines walks the tree and counts non-blank lines in Go files.
// If testOnly is true, count only _test.go files; otherwise count
// non-test .go files.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == binDir || strings.HasPrefix(info.Name(), "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		if strings.HasSuffix(path, "_test.go") != testOnly {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range bytes.Split(data, []byte("\n")) {
			if len(bytes.TrimSpace(line)) > 0 {
				total++
			}
		}
		return nil
	})
	return total, err
}
