package config

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DriverMattn  = "sqlite3"
	DriverModern = "sqlite"

	configFileName = "config.yaml"
	dbFileName     = "listOfTasks.db"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Theme    ThemeConfig    `yaml:"theme"`
	Log      LogConfig      `yaml:"log"`
}

type AppConfig struct {
	Name         string `yaml:"name"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
}

type DatabaseConfig struct {
	Path   string `yaml:"path"`
	Driver string `yaml:"driver"`
}

type ThemeConfig struct {
	DarkMode bool `yaml:"dark_mode"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig keeps the database next to the config file in dir.
func DefaultConfig(dir string) *Config {
	return &Config{
		App: AppConfig{
			Name:         "📝 To-Do List Manager",
			WindowWidth:  850,
			WindowHeight: 520,
		},
		Database: DatabaseConfig{
			Path:   filepath.Join(dir, dbFileName),
			Driver: DriverMattn,
		},
		Theme: ThemeConfig{
			DarkMode: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverMattn, DriverModern:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database path is empty")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

type Manager struct {
	config     *Config
	configPath string
}

func NewManager() (*Manager, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return nil, err
	}
	return NewManagerAt(configDir)
}

// NewManagerAt loads config.yaml from dir, writing the defaults there when
// the file is missing or cannot be parsed.
func NewManagerAt(dir string) (*Manager, error) {
	manager := &Manager{
		configPath: filepath.Join(dir, configFileName),
	}

	if err := manager.loadConfig(); err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).WithField("path", manager.configPath).Warn("config unreadable, restoring defaults")
		}
		manager.config = DefaultConfig(dir)
		if err := manager.SaveConfig(); err != nil {
			return nil, err
		}
	}

	if err := manager.config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", manager.configPath, err)
	}
	return manager, nil
}

func (m *Manager) loadConfig() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return err
	}

	// Missing keys keep their defaults.
	config := DefaultConfig(filepath.Dir(m.configPath))
	if err := yaml.Unmarshal(data, config); err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) SaveConfig() error {
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	return os.WriteFile(m.configPath, data, 0644)
}

func (m *Manager) GetConfig() *Config {
	return m.config
}

func (m *Manager) Path() string {
	return m.configPath
}

func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".tasktracker"), nil
}

func (m *Manager) UpdateThemeConfig(config ThemeConfig) error {
	m.config.Theme = config
	return m.SaveConfig()
}
