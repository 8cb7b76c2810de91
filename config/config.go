// Package config loads photogallery configuration from defaults, an optional
// YAML file, GALLERY_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aouyang1/photogallery/gallery"
)

// EnvPrefix is prepended to every environment variable, e.g. GALLERY_GALLERY_DIR.
const EnvPrefix = "GALLERY"

// Config is the root configuration struct.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Gallery GalleryConfig `mapstructure:"gallery"`
	Log     LogConfig     `mapstructure:"log"`
	Remote  RemoteConfig  `mapstructure:"remote"`
	Client  ClientConfig  `mapstructure:"client"`
}

// ServerConfig holds HTTP server configuration. Timeouts are in seconds.
type ServerConfig struct {
	Addr            string `mapstructure:"addr" validate:"required"`
	ReadTimeout     int    `mapstructure:"read_timeout" validate:"min=1"`
	WriteTimeout    int    `mapstructure:"write_timeout" validate:"min=1"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" validate:"min=1"`
}

// GalleryConfig describes the photo directory.
type GalleryConfig struct {
	Dir        string   `mapstructure:"dir" validate:"required"`
	Extensions []string `mapstructure:"extensions" validate:"required,min=1,dive,required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// RemoteConfig points at the S3 bucket mirrored by the sync command.
type RemoteConfig struct {
	Profile string `mapstructure:"profile"`
	Region  string `mapstructure:"region"`
	Bucket  string `mapstructure:"bucket"`
	Prefix  string `mapstructure:"prefix"`
	Prune   bool   `mapstructure:"prune"`
	Timeout int    `mapstructure:"timeout" validate:"min=1"`
}

// ClientConfig is used by the ls command to reach a running server.
type ClientConfig struct {
	Server string `mapstructure:"server" validate:"required,url"`
}

// GalleryConfig converts the loaded values into the lister's configuration.
func (c *Config) GalleryConfig() gallery.Config {
	return gallery.NewConfig(c.Gallery.Dir, c.Gallery.Extensions)
}

func (s ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

func (s ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

func (s ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(s.ShutdownTimeout) * time.Second
}

func (r RemoteConfig) TimeoutDuration() time.Duration {
	return time.Duration(r.Timeout) * time.Second
}

// flagToViperKey maps CLI flag names to viper configuration keys.
var flagToViperKey = map[string]string{
	"addr":       "server.addr",
	"dir":        "gallery.dir",
	"ext":        "gallery.extensions",
	"log-level":  "log.level",
	"log-format": "log.format",
	"profile":    "remote.profile",
	"region":     "remote.region",
	"bucket":     "remote.bucket",
	"prefix":     "remote.prefix",
	"prune":      "remote.prune",
	"server":     "client.server",
}

// bindFlags binds explicitly set flags to their viper keys.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		key, ok := flagToViperKey[f.Name]
		if !ok || !f.Changed {
			return
		}
		_ = v.BindPFlag(key, f)
	})
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.shutdown_timeout", 10)

	v.SetDefault("gallery.dir", gallery.DefaultDir)
	v.SetDefault("gallery.extensions", []string{"png", "jpg", "jpeg", "gif"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("remote.profile", "")
	v.SetDefault("remote.region", "")
	v.SetDefault("remote.bucket", "")
	v.SetDefault("remote.prefix", "")
	v.SetDefault("remote.prune", false)
	v.SetDefault("remote.timeout", 1800)

	v.SetDefault("client.server", "http://localhost:8080")
}

// Load reads configuration and returns a validated Config.
// Precedence, highest first: flags, environment, config file, defaults.
// An empty configFile looks for ./config.yaml and ignores its absence.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				slog.Warn("error reading config file", "err", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		bindFlags(v, flags)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
