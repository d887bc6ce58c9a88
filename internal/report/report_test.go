// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/wmelvin/libreoffice-doc-to-txt/pkg/types"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.yaml")

	r := New(2, 1, []types.FileOutcome{
		{
			Source:  "/docs/a.odt",
			Output:  "/docs/a.odt-as.txt",
			Wrapped: "/docs/a-wrap.txt",
			Status:  types.ConversionDone,
		},
		{
			Source: "/docs/b.doc",
			Status: types.ConversionSkipped,
		},
	}, []string{"SKIP EXISTING '/docs/b.doc-as.txt'"})

	require.NoError(t, Write(path, r))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Report
	require.NoError(t, yaml.Unmarshal(data, &got))

	assert.Equal(t, 2, got.Converted)
	assert.Equal(t, 1, got.Skipped)
	require.Len(t, got.Files, 2)
	assert.Equal(t, types.ConversionDone, got.Files[0].Status)
	assert.Empty(t, got.Files[1].Output)
	assert.Len(t, got.Warnings, 1)
	assert.NotEmpty(t, got.GeneratedAt)
}

func TestWrite_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stale: true\n"), 0o644))

	require.NoError(t, Write(path, New(0, 0, nil, nil)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}
