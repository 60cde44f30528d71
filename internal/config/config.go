package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/dev-ashishk/github-profile-builder-sub001/internal/urlconvert"
)

var (
	// ErrInvalidBaseURL is returned when app.url is set but unusable as a URL prefix
	ErrInvalidBaseURL = errors.New("invalid base url")
	// ErrMissingBaseURL is returned when app.requireURL is on and app.url is empty
	ErrMissingBaseURL = errors.New("base url is required")
)

// App struct
type App struct {
	URL        string `mapstructure:"url"`
	RequireURL bool   `mapstructure:"requireURL"`
}

// Server struct
type Server struct {
	Port            int           `mapstructure:"port"`
	WriteTimeout    time.Duration `mapstructure:"writeTimeout"`
	ReadTimeout     time.Duration `mapstructure:"readTimeout"`
	IdleTimeout     time.Duration `mapstructure:"idleTimeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

// Cache struct
type Cache struct {
	MaxAge       time.Duration `mapstructure:"maxAge"`
	SharedMaxAge time.Duration `mapstructure:"sharedMaxAge"`
}

// CORS struct
type CORS struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// Log struct
type Log struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// Config struct
type Config struct {
	App    App    `mapstructure:"app"`
	Server Server `mapstructure:"server"`
	Cache  Cache  `mapstructure:"cache"`
	CORS   CORS   `mapstructure:"cors"`
	Log    Log    `mapstructure:"log"`
}

// New returns a viper instance with defaults and env bindings set.
// If configFile is empty, sitemeta_config.yaml is looked up in the working directory.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("app.url", "")
	v.SetDefault("app.requireURL", false)
	v.SetDefault("server.port", 1338)
	v.SetDefault("server.writeTimeout", "10s")
	v.SetDefault("server.readTimeout", "10s")
	v.SetDefault("server.idleTimeout", "1m")
	v.SetDefault("server.shutdownTimeout", "15s")
	v.SetDefault("cache.maxAge", "1h")
	v.SetDefault("cache.sharedMaxAge", "1h")
	v.SetDefault("cors.allowedOrigins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("sitemeta_config")
		v.SetConfigType("yaml")
	}

	replacer := strings.NewReplacer(".", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()
	if err := v.BindEnv("app.url", "BASE_URL", "APP_URL"); err != nil {
		return nil, fmt.Errorf("binding app.url env: %w", err)
	}

	return v, nil
}

// Load reads the optional config file, applies env overrides and
// returns the validated config. A missing config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	config := Config{}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("decoding config: %w", err)
	}

	if err := config.normalize(); err != nil {
		return config, err
	}

	return config, nil
}

func (c *Config) normalize() error {
	base, err := urlconvert.NormalizeBase(strings.TrimSpace(c.App.URL))
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidBaseURL, c.App.URL, err)
	}
	if base == "" && c.App.RequireURL {
		return ErrMissingBaseURL
	}
	c.App.URL = base

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Cache.MaxAge < 0 || c.Cache.SharedMaxAge < 0 {
		return errors.New("cache durations must not be negative")
	}

	return nil
}
