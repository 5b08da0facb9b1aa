package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/featdiibs/simple-chord-transposer/constants"
	"github.com/featdiibs/simple-chord-transposer/pitch"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Shift          int      `yaml:"shift"`
	Flats          bool     `yaml:"flats"`
	Color          bool     `yaml:"color"`
	Addr           string   `yaml:"addr"`
	LogLevel       string   `yaml:"log_level"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	// From and To, when both set, override Shift.
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

func Default() Config {
	return Config{
		Color:          true,
		Addr:           constants.GetAddr(),
		LogLevel:       constants.GetLogLevel(),
		AllowedOrigins: []string{"*"},
	}
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.resolveKeys(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the config at path. A missing file is not an error, the
// defaults are returned instead.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

func (c *Config) resolveKeys() error {
	if c.From == "" || c.To == "" {
		return nil
	}
	shift, err := pitch.ShiftBetween(c.From, c.To)
	if err != nil {
		return fmt.Errorf("config keys: %w", err)
	}
	c.Shift = shift
	return nil
}
