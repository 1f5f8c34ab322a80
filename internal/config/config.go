package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "DTHEME"
	FileName  = "config"
)

// Config holds CLI defaults. Flags override it, it overrides built-ins.
type Config struct {
	Mode      string `mapstructure:"mode"`
	Format    string `mapstructure:"format"`
	Contrast  string `mapstructure:"contrast"`
	Output    string `mapstructure:"output"`
	Theme     string `mapstructure:"theme"`
	Name      string `mapstructure:"name"`
	LogLevel  string `mapstructure:"log_level"`
	NoPreview bool   `mapstructure:"no_preview"`
}

type Loader struct {
	v          *viper.Viper
	fs         afero.Fs
	configFile string
}

func NewLoader(fs afero.Fs) *Loader {
	v := viper.New()
	v.SetFs(fs)
	return &Loader{v: v, fs: fs}
}

// WithConfigFile sets an explicit config file path.
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// Viper returns the underlying viper instance for flag binding.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Load reads defaults, $XDG_CONFIG_HOME/dtheme/config.yaml (or the explicit
// file), DTHEME_* environment variables and bound flags, in increasing
// precedence. A missing default config file is not an error.
func (l *Loader) Load() (*Config, error) {
	l.setDefaults()

	l.v.SetEnvPrefix(EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	l.v.AutomaticEnv()

	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	} else {
		l.v.SetConfigName(FileName)
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath(Dir())
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func (l *Loader) setDefaults() {
	l.v.SetDefault("mode", "light")
	l.v.SetDefault("format", "css")
	l.v.SetDefault("contrast", "dps")
	l.v.SetDefault("output", "")
	l.v.SetDefault("theme", "")
	l.v.SetDefault("name", "dtheme")
	l.v.SetDefault("log_level", "info")
	l.v.SetDefault("no_preview", false)
}

// Dir is the per-user config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dtheme")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "dtheme")
	}
	return "."
}
