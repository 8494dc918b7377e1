package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"goprotransfer/internal/config"
	"goprotransfer/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	inputDir   string
	outputDir  string
	baseDir    string
}

var defaultStubRecords = []testsupport.StubRecord{
	{Name: "GX010042.MP4", Serial: "S1", Model: "HERO11 Black", CreateDate: "2023:06:01 10:00:00"},
	{Name: "GX020042.MP4", Serial: "S1", Model: "HERO11 Black", CreateDate: "2023:06:01 10:11:00"},
	{Name: "GHAA0007.MP4", Serial: "S2", Model: "HERO9 Black", CreateDate: "2023:06:03 08:00:00"},
}

func setupCLITestEnv(t *testing.T, records ...testsupport.StubRecord) *cliTestEnv {
	t.Helper()

	if len(records) == 0 {
		records = defaultStubRecords
	}

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv(config.ExiftoolEnv, "")

	cfg := testsupport.NewConfig(t, testsupport.WithStubExiftool(records...))
	cfg.Logging.Level = "error"

	env := &cliTestEnv{
		cfg:        cfg,
		configPath: filepath.Join(base, "config.toml"),
		inputDir:   filepath.Join(base, "in"),
		outputDir:  filepath.Join(base, "out"),
		baseDir:    base,
	}
	writeTestConfig(t, env.configPath, cfg)

	for _, rec := range records {
		testsupport.WriteFile(t, filepath.Join(env.inputDir, rec.Name), 128)
	}
	return env
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func requireExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected %s to exist: %v", path, err)
	}
}
