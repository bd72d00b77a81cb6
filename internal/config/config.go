package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cityscout/internal/eventbus"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pelletier/go-toml/v2"
)

// FileName is the config file name inside the config directory
const FileName = "config.toml"

// Config represents the application configuration
type Config struct {
	Version int             `toml:"version"`
	Suggest SuggestSettings `toml:"suggest"`
	Data    DataSettings    `toml:"data"`
	Log     LogSettings     `toml:"log"`
	UI      UISettings      `toml:"ui"`
	Session SessionState    `toml:"session"`
}

// SuggestSettings tunes the city suggestion engine. Delays are milliseconds.
type SuggestSettings struct {
	MinLength       int `toml:"min_length"        env:"CITYSCOUT_MIN_LENGTH"`
	MaxSuggestions  int `toml:"max_suggestions"   env:"CITYSCOUT_MAX_SUGGESTIONS"`
	DebounceDelayMS int `toml:"debounce_delay_ms" env:"CITYSCOUT_DEBOUNCE_DELAY_MS"`
	BlurGraceMS     int `toml:"blur_grace_ms"     env:"CITYSCOUT_BLUR_GRACE_MS"`
	SubmitDelayMS   int `toml:"submit_delay_ms"   env:"CITYSCOUT_SUBMIT_DELAY_MS"`
}

// DebounceDelay is the quiet period before suggestions are recomputed
func (s SuggestSettings) DebounceDelay() time.Duration {
	return time.Duration(s.DebounceDelayMS) * time.Millisecond
}

// BlurGrace is how long a dropdown survives its field losing focus
func (s SuggestSettings) BlurGrace() time.Duration {
	return time.Duration(s.BlurGraceMS) * time.Millisecond
}

// SubmitDelay is the pause between committing the primary field and submitting its form
func (s SuggestSettings) SubmitDelay() time.Duration {
	return time.Duration(s.SubmitDelayMS) * time.Millisecond
}

// DataSettings points at the city and event datasets
type DataSettings struct {
	// Path is a dataset file or a directory of *.toml datasets. Empty uses the built-in data.
	Path string `toml:"path" env:"CITYSCOUT_DATA"`
}

// LogSettings controls the log file
type LogSettings struct {
	Level string `toml:"level" env:"CITYSCOUT_LOG_LEVEL"`
	File  string `toml:"file"  env:"CITYSCOUT_LOG_FILE"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	DisableMouse bool `toml:"disable_mouse" env:"CITYSCOUT_DISABLE_MOUSE"`
	HideFeatured bool `toml:"hide_featured" env:"CITYSCOUT_HIDE_FEATURED"`
}

// SessionState is rewritten by the app as the user searches
type SessionState struct {
	LastQuery string `toml:"last_query"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "cityscout", FileName)
}

// NewConfigService creates a config service for the given file. An empty path uses DefaultPath.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file Load and Save operate on
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the
// defaults with environment overrides applied.
func (cs *configService) Load() (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if _, statErr := os.Stat(cs.filePath); os.IsNotExist(statErr) {
		cfg, err = FromEnv()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. The file is
// decoded over DefaultConfig, so keys it omits keep their defaults and keys
// it sets, zero included, are kept as written. Environment variables override both.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("config: parse %s:%d:%d: %w", path, row, col, err)
		}
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// FromEnv builds a configuration from environment variables and defaults only
func FromEnv() (*Config, error) {
	cfg := DefaultConfig()
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate env: %w", err)
	}
	return cfg, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Suggest: SuggestSettings{
			MinLength:       1,
			MaxSuggestions:  5,
			DebounceDelayMS: 300,
			BlurGraceMS:     150,
			SubmitDelayMS:   100,
		},
		Log: LogSettings{
			Level: "info",
			File:  "cityscout.log",
		},
	}
}
