package config

const (
	defaultConfigPath     = "~/.config/mediaprobe/config.toml"
	projectConfigName     = "mediaprobe.toml"
	defaultBackendMode    = ModeAuto
	defaultTimeoutSeconds = 120
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultOutputFormat   = OutputAuto
)

// Backend modes.
const (
	ModeAuto      = "auto"
	ModeFFprobe   = "ffprobe"
	ModeMediaInfo = "mediainfo"
)

// Output formats.
const (
	OutputAuto  = "auto"
	OutputTable = "table"
	OutputJSON  = "json"
)

// Environment overrides applied after the config file is read.
const (
	EnvBackend     = "MEDIAPROBE_BACKEND"
	EnvBackendMode = "MEDIAPROBE_BACKEND_MODE"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Backend: Backend{
			Mode:           defaultBackendMode,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		FFprobe: FFprobe{
			CountFrames: true,
		},
		MediaInfo: MediaInfo{
			RelativePath: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
	}
}
