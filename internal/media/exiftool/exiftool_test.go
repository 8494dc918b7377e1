package exiftool

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestParseFirstRecord(t *testing.T) {
	output := []byte(`[{
		"SourceFile": "/in/GH010001.MP4",
		"FileName": "GH010001.MP4",
		"CameraSerialNumber": "C3441324567890",
		"Model": "HERO11 Black",
		"TrackCreateDate": "2023:06:01 10:00:00"
	}, {
		"SourceFile": "/in/other.MP4"
	}]`)

	record, err := Parse(output)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if record.SourceFile != "/in/GH010001.MP4" {
		t.Fatalf("expected first record, got %q", record.SourceFile)
	}
	if record.FileName.Value() != "GH010001.MP4" {
		t.Fatalf("unexpected file name: %v", record.FileName)
	}
	if record.CameraSerialNumber.Value() != "C3441324567890" {
		t.Fatalf("unexpected serial: %v", record.CameraSerialNumber)
	}
	if record.Model.Value() != "HERO11 Black" {
		t.Fatalf("unexpected model: %v", record.Model)
	}
	if record.TrackCreateDate.Value() != "2023:06:01 10:00:00" {
		t.Fatalf("unexpected create date: %v", record.TrackCreateDate)
	}
	if len(record.RawJSON()) != len(output) {
		t.Fatal("expected raw JSON to be retained")
	}
}

func TestParseMissingTagsAreAbsent(t *testing.T) {
	record, err := Parse([]byte(`[{"SourceFile":"/in/clip.mov","FileName":"clip.mov","CameraSerialNumber":12345}]`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if record.Model.Present() || record.TrackCreateDate.Present() {
		t.Fatalf("expected absent tags, got model=%v date=%v", record.Model, record.TrackCreateDate)
	}
	if record.CameraSerialNumber.Value() != "12345" {
		t.Fatalf("expected numeric serial to decode as string, got %v", record.CameraSerialNumber)
	}
}

func TestParseFailures(t *testing.T) {
	if _, err := Parse([]byte(`[]`)); !errors.Is(err, ErrNoRecord) {
		t.Fatalf("expected ErrNoRecord, got %v", err)
	}
	if _, err := Parse([]byte(`not json`)); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := Parse([]byte(`{"FileName":"x"}`)); err == nil {
		t.Fatal("expected error for non-array output")
	}
}

func TestInspectRunsBinary(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stub requires a POSIX shell")
	}
	dir := t.TempDir()
	stub := filepath.Join(dir, "exiftool")
	script := "#!/bin/sh\n" +
		"[ \"$1\" = \"-j\" ] || exit 3\n" +
		"printf '[{\"SourceFile\":\"%s\",\"FileName\":\"GH010001.MP4\",\"TrackCreateDate\":\"2023:06:01 10:00:00\"}]' \"$2\"\n"
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	record, err := Inspect(context.Background(), stub, "/in/GH010001.MP4")
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if record.SourceFile != "/in/GH010001.MP4" {
		t.Fatalf("expected path to be passed through, got %q", record.SourceFile)
	}
}

func TestInspectReportsProcessFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stub requires a POSIX shell")
	}
	dir := t.TempDir()
	stub := filepath.Join(dir, "exiftool")
	script := "#!/bin/sh\necho 'Error: File not found' >&2\nexit 1\n"
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	_, err := Inspect(context.Background(), stub, "/in/missing.MP4")
	if err == nil {
		t.Fatal("expected error from failing binary")
	}
}

func TestInspectRejectsEmptyPath(t *testing.T) {
	if _, err := Inspect(context.Background(), "", "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
