package shell

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func envValue(env []string, key string) (string, bool) {
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, key+"="); ok {
			return v, true
		}
	}
	return "", false
}

func TestMergeEnvironment_PrependsPath(t *testing.T) {
	sys := []string{"PATH=/usr/bin:/bin", "HOME=/home/user"}
	realized := []string{"PATH=/nix/store/abc/bin", "PYTHONPATH=/nix/store/abc/site-packages"}

	merged := mergeEnvironment(sys, realized)

	path, ok := envValue(merged, "PATH")
	if !ok {
		t.Fatal("merged environment has no PATH")
	}
	want := "/nix/store/abc/bin" + string(os.PathListSeparator) + "/usr/bin:/bin"
	if path != want {
		t.Errorf("PATH = %q, want %q", path, want)
	}

	if v, _ := envValue(merged, "HOME"); v != "/home/user" {
		t.Errorf("system HOME should survive, got %q", v)
	}
	if v, _ := envValue(merged, "PYTHONPATH"); v != "/nix/store/abc/site-packages" {
		t.Errorf("realized PYTHONPATH missing, got %q", v)
	}
}

func TestMergeEnvironment_RealizedOverridesNonPath(t *testing.T) {
	sys := []string{"CC=gcc"}
	realized := []string{"CC=/nix/store/abc/bin/cc"}

	merged := mergeEnvironment(sys, realized)
	if v, _ := envValue(merged, "CC"); v != "/nix/store/abc/bin/cc" {
		t.Errorf("realized CC should win, got %q", v)
	}
}

func TestMergeEnvironment_NoSystemPath(t *testing.T) {
	merged := mergeEnvironment(nil, []string{"PATH=/nix/store/abc/bin"})
	if v, _ := envValue(merged, "PATH"); v != "/nix/store/abc/bin" {
		t.Errorf("PATH = %q", v)
	}
}

func TestLookPath(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "mytool")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755); err != nil { //nolint:gosec // test fixture must be executable
		t.Fatal(err)
	}

	found, err := lookPath("mytool", []string{"PATH=" + dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != exe {
		t.Errorf("lookPath = %q, want %q", found, exe)
	}

	if _, err := lookPath("missing", []string{"PATH=" + dir}); err == nil {
		t.Error("expected error for missing executable")
	}

	if _, err := lookPath("mytool", nil); err == nil {
		t.Error("expected error when env has no PATH")
	}
}

func TestLoginShell_Fallback(t *testing.T) {
	t.Setenv("SHELL", "")
	if sh := loginShell(); sh != "/bin/sh" {
		t.Errorf("loginShell = %q", sh)
	}

	t.Setenv("SHELL", "/bin/zsh")
	if sh := loginShell(); sh != "/bin/zsh" {
		t.Errorf("loginShell = %q", sh)
	}
}

func TestMergeEnvironment_Deterministic(t *testing.T) {
	sys := []string{"A=1", "B=2", "C=3"}
	realized := []string{"D=4", "E=5"}

	merged := mergeEnvironment(sys, realized)
	slices.Sort(merged)
	if len(merged) != 5 {
		t.Fatalf("expected 5 entries, got %d: %v", len(merged), merged)
	}
}
