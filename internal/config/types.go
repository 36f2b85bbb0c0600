package config

import (
	"github.com/modu-ai/dockergen/internal/prompt"
)

// Config is the project configuration. Every parameter is kept as the raw
// string the user wrote so that parsing errors surface from the resolver
// with the same messages as typed answers.
type Config struct {
	Platform  string `yaml:"platform"`
	OS        string `yaml:"os"`
	Port      string `yaml:"port"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// PromptValues returns the non-empty parameters keyed by prompt field.
func (c *Config) PromptValues() map[prompt.Field]string {
	values := make(map[prompt.Field]string, 3)
	if c.Platform != "" {
		values[prompt.FieldPlatform] = c.Platform
	}
	if c.OS != "" {
		values[prompt.FieldOS] = c.OS
	}
	if c.Port != "" {
		values[prompt.FieldPort] = c.Port
	}
	return values
}
