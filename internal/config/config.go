// Package config handles loading, defaulting, and hot-reloading of the
// grimoire configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// Config is the full application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server" yaml:"server"`
	Parser ParserConfig `mapstructure:"parser" yaml:"parser"`
	Export ExportConfig `mapstructure:"export" yaml:"export"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port string `mapstructure:"port" yaml:"port"`
}

// ParserConfig tunes the block detector heuristics. The title/lookahead
// shapes are inherently heuristic; these knobs exist so garbled sources can
// be accommodated without code changes.
type ParserConfig struct {
	// MinBlockChars drops candidate blocks shorter than this as noise.
	MinBlockChars int `mapstructure:"min_block_chars" yaml:"min_block_chars"`

	// TitleLookahead is how many lines past a candidate title to scan for a
	// genre signature before splitting.
	TitleLookahead int `mapstructure:"title_lookahead" yaml:"title_lookahead"`
}

// ExportConfig holds record export settings.
type ExportConfig struct {
	// Dir overrides the default exports directory under the home dir.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// Format is the default export format: yaml or json.
	Format string `mapstructure:"format" yaml:"format"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: "8080",
		},
		Parser: ParserConfig{
			MinBlockChars:  40,
			TitleLookahead: 4,
		},
		Export: ExportConfig{
			Format: "yaml",
		},
	}
}

// Manager handles loading and hot-reloading configuration.
type Manager struct {
	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)
}

// NewManager creates a new config manager and loads initial config.
func NewManager(cfgFile string) (*Manager, error) {
	cm := &Manager{
		callbacks: make([]func(*Config), 0),
	}

	if err := cm.initViper(cfgFile); err != nil {
		return nil, err
	}

	cfg, err := cm.load()
	if err != nil {
		return nil, err
	}
	cm.config = cfg

	return cm, nil
}

// initViper sets up viper with defaults and config file.
func (cm *Manager) initViper(cfgFile string) error {
	defaults := DefaultConfig()
	viper.SetDefault("server", defaults.Server)
	viper.SetDefault("parser", defaults.Parser)
	viper.SetDefault("export", defaults.Export)

	// Environment variables with GRIMOIRE_ prefix
	viper.SetEnvPrefix("GRIMOIRE")
	viper.AutomaticEnv()

	// Config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.grimoire")
	}

	// Try to read config file (not required)
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// load parses the current viper state into a Config struct.
func (cm *Manager) load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Get returns the current configuration (thread-safe).
func (cm *Manager) Get() *Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config
}

// OnChange registers a callback for config changes.
func (cm *Manager) OnChange(fn func(*Config)) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.callbacks = append(cm.callbacks, fn)
}

// WatchConfig enables hot-reloading of configuration.
func (cm *Manager) WatchConfig() {
	viper.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := cm.load()
		if err != nil {
			return
		}

		cm.mu.Lock()
		cm.config = cfg
		callbacks := make([]func(*Config), len(cm.callbacks))
		copy(callbacks, cm.callbacks)
		cm.mu.Unlock()

		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	viper.WatchConfig()
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# Grimoire configuration
# parser knobs tune block-detection heuristics for poorly scanned sources

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
