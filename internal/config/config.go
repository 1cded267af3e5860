package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Session  SessionConfig  `mapstructure:"session"`
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// SessionConfig holds session token settings. An empty Secret makes the auth
// service generate a signing key and keep it in the secrets store.
type SessionConfig struct {
	Secret     string        `mapstructure:"secret"`
	TTL        time.Duration `mapstructure:"ttl"`
	SecretsDir string        `mapstructure:"secrets_dir"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Locale          string              `mapstructure:"locale"`
	DesktopMinWidth int                 `mapstructure:"desktop_min_width"`
	DefaultAvatar   string              `mapstructure:"default_avatar"`
	Mouse           bool                `mapstructure:"mouse"`
	Keybindings     map[string][]string `mapstructure:"keybindings"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Path        string `mapstructure:"path"`
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "navshell")
}

func configPath() string {
	if p := os.Getenv("NAVSHELL_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "navshell", "config.toml")
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(dataDir(), "navshell.db"))
	v.SetDefault("session.secret", "")
	v.SetDefault("session.ttl", 30*24*time.Hour)
	v.SetDefault("session.secrets_dir", filepath.Join(os.Getenv("HOME"), ".config", "navshell"))
	v.SetDefault("ui.locale", "en")
	v.SetDefault("ui.desktop_min_width", 90)
	v.SetDefault("ui.default_avatar", "/images/avatar.png")
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.keybindings", map[string][]string{})
	v.SetDefault("log.path", filepath.Join(dataDir(), "navshell.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("NAVSHELL_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "navshell"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("NAVSHELL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.DesktopMinWidth <= 0 {
		c.UI.DesktopMinWidth = 90
	}
	return c, nil
}

// Load reads configuration from file and env. Env var overrides use prefix NAVSHELL_.
func Load() (Config, error) {
	v := newViper()
	// read config file if present
	_ = v.ReadInConfig()
	return decode(v)
}

// Watch reloads the config file on change and hands the decoded result to
// onChange. It is a no-op when no config file exists.
func Watch(onChange func(Config, error)) {
	v := newViper()
	if err := v.ReadInConfig(); err != nil {
		return
	}
	v.OnConfigChange(func(ev fsnotify.Event) {
		if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
			return
		}
		onChange(decode(v))
	})
	v.WatchConfig()
}

// Save writes the preferences the UI edits (locale and desktop breakpoint)
// into the config file. Every other key already in the file is kept as is,
// and values that only came from NAVSHELL_* env vars are not written.
func Save(cfg Config) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	// missing file is fine, it is created below
	_ = v.ReadInConfig()
	v.Set("ui.locale", cfg.UI.Locale)
	v.Set("ui.desktop_min_width", cfg.UI.DesktopMinWidth)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
