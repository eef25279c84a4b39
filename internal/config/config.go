// Package config loads liftlog settings from defaults, an optional YAML file
// and LIFTLOG_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. LIFTLOG_DATABASE_PATH.
const EnvPrefix = "LIFTLOG"

// ConfigEnvVar names an explicit config file path.
const ConfigEnvVar = "LIFTLOG_CONFIG"

type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Workouts  WorkoutsConfig  `mapstructure:"workouts"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Writeback WritebackConfig `mapstructure:"writeback"`
}

type DatabaseConfig struct {
	// Path to the SQLite file. A leading ~ expands to the home directory and
	// ":memory:" opens a throwaway database.
	Path string `mapstructure:"path"`
}

type WorkoutsConfig struct {
	// PersistOnStart writes a workout when it starts so it can be resumed
	// after a restart.
	PersistOnStart bool `mapstructure:"persist_on_start"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// UseCases logs one line per service use case.
	UseCases bool `mapstructure:"use_cases"`
}

type WritebackConfig struct {
	Buffer int `mapstructure:"buffer"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: filepath.Join("~", ".liftlog", "liftlog.db"),
		},
		Workouts: WorkoutsConfig{
			PersistOnStart: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Writeback: WritebackConfig{
			Buffer: 64,
		},
	}
}

func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("database.path", defaults.Database.Path)
	v.SetDefault("workouts.persist_on_start", defaults.Workouts.PersistOnStart)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.use_cases", defaults.Logging.UseCases)
	v.SetDefault("writeback.buffer", defaults.Writeback.Buffer)
}

// Load builds the configuration. An empty path falls back to ConfigFile and
// tolerates the file being absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = ConfigFile()
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Database.Path = expandHome(cfg.Database.Path)

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return &cfg, nil
}

// ConfigFile returns $LIFTLOG_CONFIG, or ~/.liftlog/config.yaml.
func ConfigFile() string {
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".liftlog", "config.yaml")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// ValidationError is a single invalid setting.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects every invalid setting found by Validate.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:", len(e))
	for _, err := range e {
		sb.WriteString("\n  ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

func ValidLogFormats() []string {
	return []string{"text", "json"}
}

// Validate returns every invalid setting in c.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError
	if strings.TrimSpace(c.Database.Path) == "" {
		errs = append(errs, ValidationError{Field: "database.path", Value: c.Database.Path, Message: "must not be empty"})
	}
	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: "must be one of " + strings.Join(ValidLogLevels(), ", "),
		})
	}
	if !slices.Contains(ValidLogFormats(), strings.ToLower(c.Logging.Format)) {
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Value:   c.Logging.Format,
			Message: "must be one of " + strings.Join(ValidLogFormats(), ", "),
		})
	}
	if c.Writeback.Buffer <= 0 {
		errs = append(errs, ValidationError{Field: "writeback.buffer", Value: c.Writeback.Buffer, Message: "must be positive"})
	}
	return errs
}
