// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wrap rewrites text files so that no line exceeds a fixed
// column width, preserving blank lines.
package wrap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// DefaultWidth is the wrap column used when no width is configured.
const DefaultWidth = 112

// Line soft-wraps a single line of text at width, measured in
// characters rather than bytes. Words are separated by runs of
// whitespace, which collapse to single spaces in the output. A word
// longer than width is emitted whole on its own line. A blank or
// whitespace-only line yields no segments.
func Line(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var segments []string
	current := words[0]
	currentWidth := utf8.RuneCountInString(current)
	for _, word := range words[1:] {
		wordWidth := utf8.RuneCountInString(word)
		if currentWidth+1+wordWidth <= width {
			current += " " + word
			currentWidth += 1 + wordWidth
			continue
		}
		segments = append(segments, current)
		current = word
		currentWidth = wordWidth
	}
	return append(segments, current)
}

// TargetPath computes the wrap companion path for a converted output:
// the base name truncated at its first dot, with "-wrap.txt" appended,
// in the same directory ("report.odt-as.txt" -> "report-wrap.txt").
func TargetPath(srcPath string) string {
	base := filepath.Base(srcPath)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return filepath.Join(filepath.Dir(srcPath), base+"-wrap.txt")
}

// File writes a wrapped companion for the text file at srcPath and
// returns the companion path. Each input line becomes one output line
// per wrapped segment; a blank input line becomes exactly one blank
// output line. The companion is always rewritten. A console notice is
// printed to w.
func File(srcPath string, width int, w io.Writer) (string, error) {
	if width <= 0 {
		width = DefaultWidth
	}

	in, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("opening %s for wrapping: %w", srcPath, err)
	}
	defer in.Close()

	targetPath := TargetPath(srcPath)
	fmt.Fprintf(w, "Wrap: '%s'\n", targetPath)

	out, err := os.Create(targetPath)
	if err != nil {
		return "", fmt.Errorf("creating wrap file %s: %w", targetPath, err)
	}

	bw := bufio.NewWriter(out)
	br := bufio.NewReader(in)
	for {
		// ReadString imposes no line length limit; converted documents
		// can hold arbitrarily long paragraphs on a single line.
		line, readErr := br.ReadString('\n')
		if line != "" {
			segments := Line(line, width)
			if len(segments) == 0 {
				fmt.Fprintln(bw)
			} else {
				for _, segment := range segments {
					fmt.Fprintln(bw, segment)
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			out.Close()
			return "", fmt.Errorf("reading %s: %w", srcPath, readErr)
		}
	}

	if err := bw.Flush(); err != nil {
		out.Close()
		return "", fmt.Errorf("writing %s: %w", targetPath, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", targetPath, err)
	}
	return targetPath, nil
}
