package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/jask/skincare/internal/prefs"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Config holds application configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
	UI      UIConfig      `mapstructure:"ui"`
}

// StorageConfig selects where saved routines live.
type StorageConfig struct {
	Backend  string `mapstructure:"backend"`
	Path     string `mapstructure:"path"`
	FilePath string `mapstructure:"file_path"`
	Key      string `mapstructure:"key"`
}

// LogConfig holds logger settings. The TUI owns the terminal, so logs go to a file.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AltScreen    bool   `mapstructure:"alt_screen"`
	Markdown     bool   `mapstructure:"markdown"`
	GlamourStyle string `mapstructure:"glamour_style"`
}

// Path returns the config file in use: $SKINCARE_CONFIG or ~/.config/skincare/config.toml.
func Path() string {
	if p := os.Getenv("SKINCARE_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(home(), ".config", "skincare", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix SKINCARE_.
// A .env file in the working directory is applied first; existing env wins.
func Load() (Config, error) {
	_ = godotenv.Load()
	return LoadFrom(Path())
}

// LoadFrom is Load with an explicit config file. A missing file is not an error.
func LoadFrom(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("storage.backend", BackendSQLite)
	v.SetDefault("storage.path", filepath.Join(home(), ".local", "share", "skincare", "skincare.db"))
	v.SetDefault("storage.file_path", defaultFilePath())
	v.SetDefault("storage.key", "savedRoutines")
	v.SetDefault("log.path", filepath.Join(home(), ".local", "state", "skincare", "skincare.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.markdown", true)
	v.SetDefault("ui.glamour_style", "auto")

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix("SKINCARE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	return c, nil
}

// Save writes the provided config to path, creating the config directory if needed.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("storage.backend", cfg.Storage.Backend)
	v.Set("storage.path", cfg.Storage.Path)
	v.Set("storage.file_path", cfg.Storage.FilePath)
	v.Set("storage.key", cfg.Storage.Key)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)
	v.Set("ui.markdown", cfg.UI.Markdown)
	v.Set("ui.glamour_style", cfg.UI.GlamourStyle)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func home() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.Getenv("HOME")
}

func defaultFilePath() string {
	if p, err := prefs.DefaultPath(); err == nil {
		return p
	}
	return filepath.Join(home(), ".config", "skincare", "routines.json")
}
