package ollama

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultHost is the local Ollama endpoint used when no host is configured.
const DefaultHost = "http://localhost:11434"

// Config holds the provider configuration shared by all streams of one
// bridge. Pointer fields distinguish "unset" from a zero value so only
// configured sampling parameters reach the wire request.
type Config struct {
	Model         string         `yaml:"model" json:"model"`
	Host          string         `yaml:"host" json:"host"`
	Temperature   *float64       `yaml:"temperature,omitempty" json:"temperature,omitempty"`
	MaxTokens     *int           `yaml:"max_tokens,omitempty" json:"max_tokens,omitempty"`
	TopP          *float64       `yaml:"top_p,omitempty" json:"top_p,omitempty"`
	StopSequences []string       `yaml:"stop_sequences,omitempty" json:"stop_sequences,omitempty"`
	KeepAlive     string         `yaml:"keep_alive,omitempty" json:"keep_alive,omitempty"`
	Options       map[string]any `yaml:"options,omitempty" json:"options,omitempty"`
	Params        map[string]any `yaml:"params,omitempty" json:"params,omitempty"`
}

// DefaultConfig returns a baseline configuration targeting a local Ollama.
func DefaultConfig() Config {
	return Config{Host: DefaultHost}
}

// LoadConfig loads a Config from a YAML file. Fields absent from the file
// keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	return cfg, nil
}
