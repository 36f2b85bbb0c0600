package config

// Default value constants to avoid magic numbers and strings.
const (
	// FileName is the optional project config file in the target directory.
	FileName = ".dockergen.yaml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "DOCKERGEN_"

	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Environment variable names.
const (
	EnvPlatform  = EnvPrefix + "PLATFORM"
	EnvOS        = EnvPrefix + "OS"
	EnvPort      = EnvPrefix + "PORT"
	EnvLogLevel  = EnvPrefix + "LOG_LEVEL"
	EnvLogFormat = EnvPrefix + "LOG_FORMAT"
)

// NewDefaultConfig returns a Config with defaults applied. Parameters have
// no default here; their defaults belong to the platform.
func NewDefaultConfig() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// applyDefaults fills empty ambient fields.
func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
}
