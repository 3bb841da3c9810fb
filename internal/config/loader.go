package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "LANERUNNER_"

// configFile is the file name looked up in the user and local config dirs.
const configFile = "runner.yaml"

// Source describes where a configuration was read from.
type Source string

const (
	SourceBuiltin  Source = "builtin"
	SourceEmbedded Source = "embedded"
	SourceLocal    Source = "local"
	SourceUser     Source = "user"
	SourceCustom   Source = "custom"
)

// LoadOption customizes Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	onSkip func(path string, err error)
}

// WithSkipHandler reports config files that were found in the search
// directories but could not be parsed. Load moves on to the next candidate.
func WithSkipHandler(fn func(path string, err error)) LoadOption {
	return func(o *loadOptions) {
		if fn != nil {
			o.onSkip = fn
		}
	}
}

// Load loads the runner configuration.
// Search order: customPath -> ~/.lanerunner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are layered over the built-in defaults, so a partial file only
// overrides the keys it names. Environment overrides are applied last and
// the result is validated.
func Load(customPath string, opts ...LoadOption) (RunnerConfig, Source, error) {
	o := loadOptions{onSkip: func(string, error) {}}
	for _, opt := range opts {
		opt(&o)
	}

	cfg, source, err := loadFile(customPath, o.onSkip)
	if err != nil {
		return cfg, source, err
	}

	if err := ApplyEnv(&cfg); err != nil {
		return cfg, source, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("invalid config (%s): %w", source, err)
	}
	return cfg, source, nil
}

// loadFile resolves the first readable config file and decodes it.
func loadFile(customPath string, onSkip func(path string, err error)) (RunnerConfig, Source, error) {
	cfg := DefaultRunnerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, SourceCustom, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if candidate, ok := tryFile(userCfgPath, onSkip); ok {
			return candidate, SourceUser, nil
		}
	}

	// Try local configs directory
	if candidate, ok := tryFile(filepath.Join("configs", configFile), onSkip); ok {
		return candidate, SourceLocal, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// tryFile decodes path over the defaults. A missing file is not reported;
// a file that exists but does not parse goes to onSkip.
func tryFile(path string, onSkip func(path string, err error)) (RunnerConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunnerConfig{}, false
	}
	candidate := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &candidate); err != nil {
		onSkip(path, fmt.Errorf("failed to parse config %s: %w", path, err))
		return RunnerConfig{}, false
	}
	return candidate, true
}

// ApplyEnv overrides fields of cfg from LANERUNNER_* environment variables.
// Variables that are not set leave the field untouched.
func ApplyEnv(cfg *RunnerConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lanerunner", "configs", filename)
}
