package config

const (
	defaultConfigPath        = "~/.config/goprotransfer/config.toml"
	defaultStateDir          = "~/.local/share/goprotransfer"
	defaultLogDir            = "~/.local/share/goprotransfer/logs"
	defaultExiftoolBinary    = "exiftool"
	defaultExiftoolTimeout   = 30
	defaultTransferOperation = "move"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"

	// ExiftoolEnv overrides exiftool.binary when set.
	ExiftoolEnv = "GOPROTRANSFER_EXIFTOOL"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		Exiftool: Exiftool{
			Binary:         defaultExiftoolBinary,
			TimeoutSeconds: defaultExiftoolTimeout,
		},
		Transfer: Transfer{
			Operation:       defaultTransferOperation,
			VideoExtensions: []string{".mp4", ".mov", ".avi"},
			ImageExtensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".tif", ".webp"},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
