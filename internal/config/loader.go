package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LookupFunc reports the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// Loader reads the project config file and environment overrides.
type Loader struct {
	lookup LookupFunc
	logger *slog.Logger
}

// NewLoader creates a Loader reading the process environment.
func NewLoader(logger *slog.Logger) *Loader {
	return NewLoaderWithLookup(os.LookupEnv, logger)
}

// NewLoaderWithLookup creates a Loader reading environment values through
// lookup. A nil logger discards output.
func NewLoaderWithLookup(lookup LookupFunc, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{lookup: lookup, logger: logger}
}

// Load reads FileName from dir when present, then applies environment
// overrides. Values from envFile (dotenv format) apply beneath the process
// environment; the process environment is never modified. The merged
// config is validated before it is returned.
func (l *Loader) Load(dir, envFile string) (*Config, error) {
	cfg := &Config{}

	loaded, err := loadYAMLFile(filepath.Clean(dir), FileName, cfg)
	if err != nil {
		return nil, err
	}
	if loaded {
		l.logger.Debug("project config loaded", "path", filepath.Join(dir, FileName))
	}

	fileEnv := map[string]string{}
	if envFile != "" {
		fileEnv, err = godotenv.Read(envFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrEnvFile, envFile, err)
		}
		l.logger.Debug("env file loaded", "path", envFile, "keys", len(fileEnv))
	}

	l.applyEnv(cfg, fileEnv)
	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides cfg fields with DOCKERGEN_* values. The process
// environment takes precedence over fileEnv.
func (l *Loader) applyEnv(cfg *Config, fileEnv map[string]string) {
	overrides := []struct {
		key   string
		field *string
	}{
		{EnvPlatform, &cfg.Platform},
		{EnvOS, &cfg.OS},
		{EnvPort, &cfg.Port},
		{EnvLogLevel, &cfg.LogLevel},
		{EnvLogFormat, &cfg.LogFormat},
	}

	for _, o := range overrides {
		v, ok := l.lookup(o.key)
		if !ok {
			v, ok = fileEnv[o.key]
		}
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		*o.field = strings.TrimSpace(v)
	}
}

// loadYAMLFile reads a YAML file from the given directory and unmarshals it
// into the target struct. Returns (true, nil) if the file was found and parsed,
// (false, nil) if the file does not exist, or (false, error) on failure.
func loadYAMLFile(dir, filename string, target any) (bool, error) {
	path := filepath.Join(dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w: %v", filename, ErrInvalidYAML, err)
	}

	return true, nil
}
