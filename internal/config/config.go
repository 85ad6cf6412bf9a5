package config

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix of environment variables overriding config keys,
// e.g. DATATABLE_SERVER_PORT for server.port
const EnvPrefix = "DATATABLE"

// Config represents the complete datatable configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Data    DataConfig    `mapstructure:"data"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig controls the HTTP server
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	// ShutdownTimeout is the graceful shutdown deadline
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns host:port
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// DataConfig controls where explorer data comes from
type DataConfig struct {
	// PayloadFile is a JSON array of explorer items
	PayloadFile string `mapstructure:"payload_file"`
	// PageSize is the number of records per page (0 = no paging)
	PageSize int `mapstructure:"page_size"`
}

// ThemeConfig controls theme persistence
type ThemeConfig struct {
	// StorageDir contains the file storing the theme preference
	StorageDir string `mapstructure:"storage_dir"`
}

// UIConfig controls rendering
type UIConfig struct {
	// Locale of the table texts: "en", "de", "es"
	Locale string `mapstructure:"locale"`
	// Margin in pixels below the HTML table scroll region
	Margin int `mapstructure:"margin"`
	// WindowHeight in pixels assumed for server rendered pages
	// until the browser reports its own height
	WindowHeight int `mapstructure:"window_height"`
	// TerminalMargin in lines below the terminal table
	TerminalMargin int `mapstructure:"terminal_margin"`
}

// LoggingConfig controls structured logging
type LoggingConfig struct {
	// Level: "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
	// Format: "text", "json"
	Format string `mapstructure:"format"`
	// File receives the log of the terminal UI,
	// empty discards it because stdout belongs to the UI
	File string `mapstructure:"file"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			ShutdownTimeout: 10 * time.Second,
		},
		Data: DataConfig{
			PayloadFile: "explorer.json",
			PageSize:    25,
		},
		Theme: ThemeConfig{
			StorageDir: ConfigDir(),
		},
		UI: UIConfig{
			Locale:         "en",
			Margin:         20,
			WindowHeight:   900,
			TerminalMargin: 3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("server.host", defaults.Server.Host)
	v.SetDefault("server.port", defaults.Server.Port)
	v.SetDefault("server.shutdown_timeout", defaults.Server.ShutdownTimeout)

	v.SetDefault("data.payload_file", defaults.Data.PayloadFile)
	v.SetDefault("data.page_size", defaults.Data.PageSize)

	v.SetDefault("theme.storage_dir", defaults.Theme.StorageDir)

	v.SetDefault("ui.locale", defaults.UI.Locale)
	v.SetDefault("ui.margin", defaults.UI.Margin)
	v.SetDefault("ui.window_height", defaults.UI.WindowHeight)
	v.SetDefault("ui.terminal_margin", defaults.UI.TerminalMargin)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.file", defaults.Logging.File)
}

// Init prepares v with defaults, the config file and
// environment overrides. A missing config file is not an error.
// If configFile is empty config.yaml is searched in
// ConfigDir and the working directory.
func Init(v *viper.Viper, configFile string) error {
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix(EnvPrefix)
	// Replace dots with underscores for nested keys in env vars
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || configFile != "" {
			return err
		}
	}
	return nil
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "datatable")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".datatable"
	}
	return filepath.Join(home, ".config", "datatable")
}
