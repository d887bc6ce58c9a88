// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover returns the regular files under dir whose extension matches
// ext (including the dot, compared case-insensitively), sorted
// lexicographically by path. With recurse set the search descends into
// subdirectories; otherwise only direct children are considered.
func Discover(dir, ext string, recurse bool) ([]string, error) {
	ext = strings.ToLower(ext)
	var files []string

	if recurse {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if strings.ToLower(filepath.Ext(path)) != ext {
				return nil
			}
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("searching %s: %w", dir, err)
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("reading directory %s: %w", dir, err)
		}
		for _, entry := range entries {
			if strings.ToLower(filepath.Ext(entry.Name())) != ext {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			files = append(files, path)
		}
	}

	sort.Strings(files)
	return files, nil
}
