// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the document conversion run: output naming,
// per-file conversion through the office runner, directory discovery,
// and warning collection.
package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wmelvin/libreoffice-doc-to-txt/internal/history"
	"github.com/wmelvin/libreoffice-doc-to-txt/internal/office"
	"github.com/wmelvin/libreoffice-doc-to-txt/internal/wrap"
	"github.com/wmelvin/libreoffice-doc-to-txt/pkg/types"
)

const (
	// outputSuffix is appended to the full source filename to form the
	// text output name.
	outputSuffix = "-as.txt"

	// tagFormat renders the source modification time for --datetime-tag.
	tagFormat = "20060102_1504"
)

// docExtensions are the supported document types, in directory pass order.
var docExtensions = []string{".odt", ".docx", ".doc"}

// RunResult summarizes one conversion run.
type RunResult struct {
	Converted int
	Skipped   int
	Files     []types.FileOutcome
}

// Processor walks the user-supplied paths and converts each discovered
// document. Warnings accumulate on the processor and are reported once
// at the end of the run; conversion failures abort the run.
type Processor struct {
	Office    office.Runner
	Opts      types.Options
	WrapWidth int
	History   *history.Store // nil disables ledger recording
	Out       io.Writer

	warnings []string
	result   RunResult
}

// ProcessPaths handles each path from the run options in order: files
// are converted directly, directories are searched for documents, and
// anything else produces a warning.
func (p *Processor) ProcessPaths(ctx context.Context) error {
	for _, path := range p.Opts.Paths {
		info, err := os.Stat(path)
		if err != nil {
			p.warnf("Path not found: '%s'", path)
			continue
		}

		switch {
		case info.Mode().IsRegular():
			if !supportedExtension(path) {
				p.warnf("Not a supported file type: '%s'", path)
				continue
			}
			if err := p.ConvertFile(ctx, path); err != nil {
				return err
			}
		case info.IsDir():
			if err := p.processDir(ctx, path); err != nil {
				return err
			}
		default:
			p.warnf("Cannot process path '%s'.", path)
		}
	}
	return nil
}

// processDir converts documents found in dir: all .odt, then all .docx,
// then all .doc, then .bak files whose names contain ".odt" or ".doc".
// The ".doc" substring also matches ".docx" backups; the substring check
// is needed because the true extension of a backup is ".bak". Backups
// matching neither substring are skipped with a console notice.
func (p *Processor) processDir(ctx context.Context, dir string) error {
	for _, ext := range docExtensions {
		files, err := Discover(dir, ext, p.Opts.Recurse)
		if err != nil {
			return err
		}
		for _, f := range files {
			if err := p.ConvertFile(ctx, f); err != nil {
				return err
			}
		}
	}

	baks, err := Discover(dir, ".bak", p.Opts.Recurse)
	if err != nil {
		return err
	}
	for _, f := range baks {
		base := filepath.Base(f)
		if strings.Contains(base, ".odt") || strings.Contains(base, ".doc") {
			if err := p.ConvertFile(ctx, f); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(p.Out, "SKIP: %s\n", f)
		}
	}
	return nil
}

// ConvertFile converts a single document: it computes the output name,
// invokes the office runner, renames the produced text file, and writes
// the wrapped companion. An existing output without the overwrite option
// is skipped with warnings.
func (p *Processor) ConvertFile(ctx context.Context, path string) error {
	fmt.Fprintf(p.Out, "ODT: '%s'\n", path)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading source %s: %w", path, err)
	}

	outName := OutputName(path, info, p.Opts.DateTimeTag)

	if _, err := os.Stat(outName); err == nil && !p.Opts.Overwrite {
		p.warnf("SKIP EXISTING '%s'", outName)
		p.warnf("  Existing files are not overwritten unless the --overwrite (-o) option is used.")
		p.result.Skipped++
		p.result.Files = append(p.result.Files, types.FileOutcome{
			Source: path,
			Status: types.ConversionSkipped,
		})
		return nil
	}

	if err := p.Office.ConvertToText(path, filepath.Dir(path)); err != nil {
		return err
	}

	produced := producedPath(path)
	if _, err := os.Stat(produced); err != nil {
		return fmt.Errorf("converter output %s not found after converting %s: %w", produced, path, err)
	}

	fmt.Fprintf(p.Out, "  as: '%s'\n", outName)
	if err := os.Rename(produced, outName); err != nil {
		return fmt.Errorf("moving %s to %s: %w", produced, outName, err)
	}

	wrapped, err := wrap.File(outName, p.WrapWidth, p.Out)
	if err != nil {
		return err
	}

	if p.History != nil {
		err := p.History.Add(ctx, history.Record{
			Source:        path,
			Output:        outName,
			SourceModTime: info.ModTime(),
			ConvertedAt:   time.Now(),
			Status:        types.ConversionDone,
		})
		if err != nil {
			return err
		}
	}

	p.result.Converted++
	p.result.Files = append(p.result.Files, types.FileOutcome{
		Source:  path,
		Output:  outName,
		Wrapped: wrapped,
		Status:  types.ConversionDone,
	})
	return nil
}

// Warnings returns the warnings collected so far, in encounter order.
func (p *Processor) Warnings() []string {
	return p.warnings
}

// Result returns the run summary.
func (p *Processor) Result() RunResult {
	return p.result
}

// PrintWarnings writes the collected warnings to w under a WARNINGS
// header. Nothing is printed when no warnings were recorded.
func (p *Processor) PrintWarnings(w io.Writer) {
	if len(p.warnings) == 0 {
		return
	}
	fmt.Fprintln(w, "\nWARNINGS:")
	for _, warning := range p.warnings {
		fmt.Fprintln(w, warning)
	}
}

func (p *Processor) warnf(format string, args ...any) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}

// OutputName computes the text output name for a source document by
// appending "-as.txt" to the full original filename. With dtTag set, the
// source modification time is inserted: "<name>-YYYYMMDD_HHMM-as.txt".
func OutputName(path string, info os.FileInfo, dtTag bool) string {
	if dtTag {
		return path + "-" + info.ModTime().Format(tagFormat) + outputSuffix
	}
	return path + outputSuffix
}

// producedPath is where the office converter writes its output: the
// source path with its extension replaced by ".txt".
func producedPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".txt"
}

// supportedExtension reports whether path has one of the supported
// document extensions, compared case-insensitively.
func supportedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range docExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}
