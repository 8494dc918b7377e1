package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// StubRecord describes the exiftool answer for one file, keyed by base name.
// Empty tag fields are omitted from the JSON, matching exiftool's behaviour
// for tags a file does not carry.
type StubRecord struct {
	Name       string
	FileName   string
	Serial     string
	Model      string
	CreateDate string
	// Fail makes the stub exit non-zero for this file.
	Fail bool
}

// WriteStubExiftool writes an executable shell script into dir that mimics
// `exiftool -j <path>` for the given records and returns its path. Unknown
// files produce an exiftool-style error. The test is skipped on Windows.
func WriteStubExiftool(t testing.TB, dir string, records ...StubRecord) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub exiftool requires a POSIX shell")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir stub dir: %v", err)
	}

	var script strings.Builder
	script.WriteString("#!/bin/sh\n")
	script.WriteString("path=\"$2\"\n")
	script.WriteString("name=$(basename \"$path\")\n")
	script.WriteString("case \"$name\" in\n")
	for _, rec := range records {
		script.WriteString("'" + rec.Name + "')\n")
		if rec.Fail {
			script.WriteString("  echo \"Error: Unknown file type - $path\" >&2\n  exit 1\n  ;;\n")
			continue
		}
		payload, err := json.Marshal([]map[string]string{rec.fields()})
		if err != nil {
			t.Fatalf("marshal stub record: %v", err)
		}
		script.WriteString("  cat <<'JSON'\n")
		script.Write(payload)
		script.WriteString("\nJSON\n  ;;\n")
	}
	script.WriteString("*)\n  echo \"Error: File not found - $path\" >&2\n  exit 1\n  ;;\nesac\n")

	target := filepath.Join(dir, "exiftool")
	if err := os.WriteFile(target, []byte(script.String()), 0o755); err != nil {
		t.Fatalf("write stub exiftool: %v", err)
	}
	return target
}

func (r StubRecord) fields() map[string]string {
	fileName := r.FileName
	if fileName == "" {
		fileName = r.Name
	}
	out := map[string]string{
		"SourceFile": r.Name,
		"FileName":   fileName,
	}
	if r.Serial != "" {
		out["CameraSerialNumber"] = r.Serial
	}
	if r.Model != "" {
		out["Model"] = r.Model
	}
	if r.CreateDate != "" {
		out["TrackCreateDate"] = r.CreateDate
	}
	return out
}
