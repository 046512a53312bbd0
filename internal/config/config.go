package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	ThemeName  string `mapstructure:"theme_name"`
	ThemeDir   string `mapstructure:"theme_dir"`
	ThemeIndex int    `mapstructure:"theme_index"`
	DBPath     string `mapstructure:"db_path"`
	LogLevel   string `mapstructure:"log_level"`
	LogFile    string `mapstructure:"log_file"`
}

var (
	configDir  string
	configFile string
)

func init() {
	// get home dir
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}

	SetConfigDir(filepath.Join(homeDir, ".themeshift"))
}

// SetConfigDir moves the config file and the default paths derived from it.
func SetConfigDir(dir string) {
	configDir = dir
	configFile = filepath.Join(dir, "config.yaml")
}

func GetConfigDir() string {
	return configDir
}

func GetConfigFile() string {
	return configFile
}

func ConfigExists() bool {
	_, err := os.Stat(configFile)
	return err == nil
}

func EnsureConfigDir() error {
	return os.MkdirAll(configDir, 0755)
}

// loads config from file, THEMESHIFT_* env vars override it
func LoadConfig() (*Config, error) {
	if err := EnsureConfigDir(); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper()

	if ConfigExists() {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// saves config to file
func SaveConfig(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("theme_name", cfg.ThemeName)
	v.Set("theme_dir", cfg.ThemeDir)
	v.Set("theme_index", cfg.ThemeIndex)
	v.Set("db_path", cfg.DBPath)
	v.Set("log_level", cfg.LogLevel)
	v.Set("log_file", cfg.LogFile)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// returns default config
func GetDefaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// updates theme in config file
func UpdateTheme(themeName string) error {
	return update(func(cfg *Config) {
		cfg.ThemeName = themeName
	})
}

// updates theme index in config file
func UpdateThemeIndex(index int) error {
	return update(func(cfg *Config) {
		cfg.ThemeIndex = index
	})
}

func update(fn func(*Config)) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fn(cfg)
	return SaveConfig(cfg)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("themeshift")

	// Unmarshal only sees env vars for keys viper already knows
	for _, key := range []string{"theme_name", "theme_dir", "theme_index", "db_path", "log_level", "log_file"} {
		_ = v.BindEnv(key)
	}

	return v
}

func applyDefaults(cfg *Config) {
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(configDir, "themes.db")
	}
	if cfg.ThemeDir == "" {
		cfg.ThemeDir = filepath.Join(configDir, "themes")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
}
