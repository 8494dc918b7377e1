package testsupport

import (
	"path/filepath"
	"testing"

	"goprotransfer/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Exiftool.TimeoutSeconds = 10

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithStubExiftool writes a fake exiftool that answers with the given records
// and points the config at it.
func WithStubExiftool(records ...StubRecord) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Exiftool.Binary = WriteStubExiftool(b.t, filepath.Join(b.baseDir, "bin"), records...)
	}
}
