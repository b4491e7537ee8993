package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Flag defaults. loadConfigFile only applies a config-file value when the
// corresponding flag is still at its default, so flags win over the file.
const (
	defaultIgnoreFile = ".standardignore"
	defaultFormat     = "text"
	defaultOutput     = "-"
)

// CheckConfig holds configuration for a check run.
type CheckConfig struct {
	Paths      []string
	IgnoreFile string `validate:"required"`
	ConfigPath string
	Format     string `validate:"oneof=text json yaml yml"`
	Output     string `validate:"required"`
	NoColor    bool
}

// loadConfigFile merges values from a .standardcheck.yml config file into
// the configuration. Flags that were set explicitly keep their values.
func loadConfigFile(config *CheckConfig) error {
	if config.ConfigPath == "" {
		return nil
	}

	data, err := os.ReadFile(filepath.Clean(config.ConfigPath))
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var cfg struct {
		Check struct {
			Ignore  string `yaml:"ignore"`
			Format  string `yaml:"format"`
			Output  string `yaml:"output"`
			NoColor bool   `yaml:"no-color"`
		} `yaml:"check"`
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if config.IgnoreFile == defaultIgnoreFile && cfg.Check.Ignore != "" {
		config.IgnoreFile = cfg.Check.Ignore
	}
	if config.Format == defaultFormat && cfg.Check.Format != "" {
		config.Format = cfg.Check.Format
	}
	if config.Output == defaultOutput && cfg.Check.Output != "" {
		config.Output = cfg.Check.Output
	}
	if !config.NoColor && cfg.Check.NoColor {
		config.NoColor = true
	}

	return nil
}

var validate = validator.New()

func validateConfig(config *CheckConfig) error {
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
