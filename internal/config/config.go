package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/errors"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Selection modes.
const (
	ModeSingle = "single"
	ModeRange  = "range"
)

// Environment variables that override the config file.
const (
	EnvMode       = "DATEPICK_MODE"
	EnvDateFormat = "DATEPICK_DATE_FORMAT"
	EnvUseActions = "DATEPICK_USE_ACTIONS"
)

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the picker configuration
type Config struct {
	Version        int        `toml:"version"`
	Mode           string     `toml:"mode"`
	DateFormat     string     `toml:"date_format"`
	FirstDayOfWeek int        `toml:"first_day_of_week"` // 0 = Sunday
	ShowPreview    bool       `toml:"show_preview"`
	UseActions     bool       `toml:"use_actions"` // buffer edits until applied
	StartDate      string     `toml:"start_date,omitempty"`
	UISettings     UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelp bool `toml:"show_help"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
	envFile  string
}

// NewConfigService creates a config service using the default location
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return NewConfigServiceAt(filepath.Join(configDir, "datepick", "config.toml"))
}

// NewConfigServiceAt creates a config service for a specific file. A .env
// file next to the working directory is consulted for overrides.
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path, envFile: ".env"}
}

// Load loads the configuration from file, falling back to the defaults
// when the file does not exist. Environment overrides are applied last.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded config from %s", cs.filePath)
	}

	if err := cs.applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	log.Printf("Config saved to %s", cs.filePath)
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from the defaults so missing keys keep sensible values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// applyEnv loads the optional .env file and applies DATEPICK_* overrides.
func (cs *configService) applyEnv(cfg *Config) error {
	if cs.envFile != "" {
		if _, err := os.Stat(cs.envFile); err == nil {
			// Load never overrides variables that are already set
			if err := godotenv.Load(cs.envFile); err != nil {
				return fmt.Errorf("failed to load %s: %w", cs.envFile, err)
			}
		}
	}
	return ApplyEnv(cfg, os.LookupEnv)
}

// ApplyEnv overrides cfg fields from the DATEPICK_* variables returned by
// lookup.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvMode); ok && v != "" {
		cfg.Mode = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvDateFormat); ok && v != "" {
		cfg.DateFormat = v
	}
	if v, ok := lookup(EnvUseActions); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvUseActions, v, err)
		}
		cfg.UseActions = b
	}
	return nil
}

// Validate reports every problem with cfg at once.
func (cfg *Config) Validate() error {
	errs := &errors.M{}
	switch cfg.Mode {
	case ModeSingle, ModeRange:
	default:
		errs.Append(fmt.Errorf("mode must be %q or %q, not %q", ModeSingle, ModeRange, cfg.Mode))
	}
	if cfg.DateFormat == "" {
		errs.Append(fmt.Errorf("date_format must not be empty"))
	} else {
		sample := time.Date(2006, time.January, 2, 0, 0, 0, 0, time.UTC)
		if _, err := time.Parse(cfg.DateFormat, sample.Format(cfg.DateFormat)); err != nil {
			errs.Append(fmt.Errorf("date_format %q does not round trip: %w", cfg.DateFormat, err))
		}
	}
	if cfg.FirstDayOfWeek < 0 || cfg.FirstDayOfWeek > 6 {
		errs.Append(fmt.Errorf("first_day_of_week must be 0-6, not %d", cfg.FirstDayOfWeek))
	}
	if cfg.StartDate != "" && cfg.DateFormat != "" {
		if _, err := time.Parse(cfg.DateFormat, cfg.StartDate); err != nil {
			errs.Append(fmt.Errorf("start_date %q: %w", cfg.StartDate, err))
		}
	}
	if err := errs.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:        1,
		Mode:           ModeRange,
		DateFormat:     time.DateOnly,
		FirstDayOfWeek: int(time.Monday),
		ShowPreview:    true,
		UseActions:     false,
		UISettings: UISettings{
			ShowHelp: true,
		},
	}
}
