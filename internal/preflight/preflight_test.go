package preflight

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"goprotransfer/internal/config"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckOutputParent_Missing(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "a", "b")
	result := CheckOutputParent("out", target)
	if !result.Passed {
		t.Fatalf("expected pass when ancestor is writable, got: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "will be created") {
		t.Fatalf("unexpected detail %q", result.Detail)
	}
}

func TestCheckOutputParent_FileInTheWay(t *testing.T) {
	base := t.TempDir()
	f := filepath.Join(base, "file")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckOutputParent("out", filepath.Join(f, "sub")); result.Passed {
		t.Fatal("expected failure when ancestor is a file")
	}
}

func stubLookPath(t *testing.T, available map[string]string) {
	t.Helper()
	orig := lookPath
	lookPath = func(name string) (string, error) {
		if p, ok := available[name]; ok {
			return p, nil
		}
		return "", errors.New("not found")
	}
	t.Cleanup(func() { lookPath = orig })
}

func TestCheckBinaries(t *testing.T) {
	stubLookPath(t, map[string]string{"exiftool": "/usr/bin/exiftool"})

	got := CheckBinaries([]Requirement{
		{Name: "ExifTool", Command: "exiftool"},
		{Name: "Missing", Command: "nothere"},
		{Name: "Optional", Command: "nothere", Optional: true},
		{Name: "Blank", Command: "  "},
	})
	if len(got) != 4 {
		t.Fatalf("expected 4 statuses, got %d", len(got))
	}
	if !got[0].Available || got[0].Command != "/usr/bin/exiftool" {
		t.Fatalf("unexpected status %+v", got[0])
	}
	if got[1].Available || !strings.Contains(got[1].Detail, "not found") {
		t.Fatalf("unexpected status %+v", got[1])
	}
	if !got[2].Result().Passed {
		t.Fatal("optional binary should pass")
	}
	if got[3].Detail != "command not configured" {
		t.Fatalf("unexpected detail %q", got[3].Detail)
	}
}

func TestRunAllReportsFailures(t *testing.T) {
	stubLookPath(t, map[string]string{})

	cfg := config.Default()
	cfg.Paths.StateDir = t.TempDir()
	input := t.TempDir()

	results := RunAll(context.Background(), &cfg, input, filepath.Join(t.TempDir(), "out"))
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d: %+v", len(results), results)
	}
	failed := Failed(results)
	if len(failed) != 1 || failed[0].Name != "ExifTool" {
		t.Fatalf("expected only exiftool to fail, got %+v", failed)
	}
}
