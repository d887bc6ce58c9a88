// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package office

import (
	"errors"
	"strings"
	"testing"
)

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	availableBins map[string]bool // binary -> whether LookPath succeeds
	runnableCmds  map[string]bool // "bin arg1 arg2" -> whether RunSilent succeeds
	quietCalls    []string        // recorded RunQuiet invocations
	quietErr      error
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) RunSilent(name string, args ...string) error {
	key := name + " " + strings.Join(args, " ")
	if m.runnableCmds[key] {
		return nil
	}
	return errors.New("command failed: " + key)
}

func (m *mockExecutor) RunQuiet(name string, args ...string) error {
	m.quietCalls = append(m.quietCalls, name+" "+strings.Join(args, " "))
	return m.quietErr
}

func TestDetectRunner(t *testing.T) {
	tests := []struct {
		name     string
		exec     *mockExecutor
		wantName string
		wantErr  bool
	}{
		{
			name: "libreoffice available",
			exec: &mockExecutor{
				availableBins: map[string]bool{"libreoffice": true},
				runnableCmds:  map[string]bool{"libreoffice --version": true},
			},
			wantName: "libreoffice",
		},
		{
			name: "soffice fallback when libreoffice missing",
			exec: &mockExecutor{
				availableBins: map[string]bool{"soffice": true},
				runnableCmds:  map[string]bool{"soffice --version": true},
			},
			wantName: "soffice",
		},
		{
			name: "neither available",
			exec: &mockExecutor{
				availableBins: map[string]bool{},
				runnableCmds:  map[string]bool{},
			},
			wantErr: true,
		},
		{
			name: "libreoffice on PATH but version fails, soffice works",
			exec: &mockExecutor{
				availableBins: map[string]bool{"libreoffice": true, "soffice": true},
				runnableCmds:  map[string]bool{"soffice --version": true},
			},
			wantName: "soffice",
		},
		{
			name: "both available, libreoffice preferred",
			exec: &mockExecutor{
				availableBins: map[string]bool{"libreoffice": true, "soffice": true},
				runnableCmds:  map[string]bool{"libreoffice --version": true, "soffice --version": true},
			},
			wantName: "libreoffice",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := detectRunner(tt.exec)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), "no office binary available") {
					t.Errorf("error should mention no binary available, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Name() != tt.wantName {
				t.Errorf("got runner %q, want %q", r.Name(), tt.wantName)
			}
		})
	}
}

func TestForBinary(t *testing.T) {
	exec := &mockExecutor{
		availableBins: map[string]bool{"soffice.bin": true},
		runnableCmds:  map[string]bool{"soffice.bin --version": true},
	}

	r, err := forBinary("soffice.bin", exec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Name() != "soffice.bin" {
		t.Errorf("got runner %q, want %q", r.Name(), "soffice.bin")
	}

	if _, err := forBinary("missing-office", exec); err == nil {
		t.Fatal("expected error for unavailable binary, got nil")
	}
}

func TestConvertToText(t *testing.T) {
	exec := &mockExecutor{}
	r := newRunner("libreoffice", exec)

	if err := r.ConvertToText("/docs/report.odt", "/docs"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "libreoffice --convert-to txt --outdir /docs /docs/report.odt"
	if len(exec.quietCalls) != 1 || exec.quietCalls[0] != want {
		t.Errorf("got calls %v, want [%q]", exec.quietCalls, want)
	}
}

func TestConvertToText_Failure(t *testing.T) {
	exec := &mockExecutor{quietErr: errors.New("exit status 77")}
	r := newRunner("soffice", exec)

	err := r.ConvertToText("/docs/report.doc", "/docs")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "report.doc") {
		t.Errorf("error should mention the input file, got: %v", err)
	}
}
