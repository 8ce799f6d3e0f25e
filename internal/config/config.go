package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds project-level settings loaded from paperscope.yml.
type ProjectConfig struct {
	BackendURL           string `yaml:"backendURL,omitempty"`
	LockMillis           int    `yaml:"lockMillis,omitempty"`
	HighlightDelayMillis int    `yaml:"highlightDelayMillis,omitempty"`
	Verbose              bool   `yaml:"verbose,omitempty"`
}

// Load attempts to read paperscope.yml or paperscope.yaml from the
// given directory. Returns a zero-value config (not an error) if no
// config file exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range []string{"paperscope.yml", "paperscope.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &ProjectConfig{}, nil
}

// LockDuration converts LockMillis to a duration; zero means "use the
// engine default".
func (c *ProjectConfig) LockDuration() time.Duration {
	return time.Duration(c.LockMillis) * time.Millisecond
}

// HighlightDelay converts HighlightDelayMillis to a duration; zero
// means "use the engine default".
func (c *ProjectConfig) HighlightDelay() time.Duration {
	return time.Duration(c.HighlightDelayMillis) * time.Millisecond
}
