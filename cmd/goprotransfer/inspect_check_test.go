package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"goprotransfer/internal/testsupport"
)

func TestInspectCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{
		"inspect", "--json",
		filepath.Join(env.inputDir, "GX010042.MP4"),
		filepath.Join(env.inputDir, "GHAA0007.MP4"),
	}, env.configPath)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}

	var entries []struct {
		Path     string `json:"path"`
		Metadata struct {
			CameraSerialNumber *string `json:"camera_serial_number"`
			VideoType          string  `json:"video_type"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Metadata.VideoType != "Chaptered" || entries[1].Metadata.VideoType != "Looped" {
		t.Fatalf("unexpected classification %+v", entries)
	}
	if entries[1].Metadata.CameraSerialNumber == nil || *entries[1].Metadata.CameraSerialNumber != "S2" {
		t.Fatalf("unexpected serial %+v", entries[1].Metadata)
	}
}

func TestInspectCommandReportsFailures(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.StubRecord{Name: "bad.mp4", Fail: true})

	out, _, err := runCLI(t, []string{"inspect", filepath.Join(env.inputDir, "bad.mp4")}, env.configPath)
	if err == nil {
		t.Fatal("expected error for unreadable file")
	}
	requireContains(t, out, "bad.mp4")
}

func TestCheckCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"check", env.inputDir, env.outputDir}, env.configPath)
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	requireContains(t, out, "ExifTool")
	requireContains(t, out, "Input directory")

	if _, _, err := runCLI(t, []string{"check", filepath.Join(env.baseDir, "missing")}, env.configPath); err == nil {
		t.Fatal("expected failure for missing input dir")
	}
}

func TestInspectCommandRawAndMissingFile(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"inspect", "--raw", filepath.Join(env.inputDir, "GHAA0007.MP4")}, env.configPath)
	if err != nil {
		t.Fatalf("inspect --raw: %v", err)
	}
	requireContains(t, out, `"CameraSerialNumber":"S2"`)

	_, _, err = runCLI(t, []string{"inspect", filepath.Join(env.inputDir, "nope.mp4")}, env.configPath)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
