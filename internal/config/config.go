// Package config loads coverart settings from an optional YAML file and
// COVERART_* environment variables.
package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is the environment variable prefix, e.g. COVERART_LOG_LEVEL.
const EnvPrefix = "COVERART"

// Config is the resolved configuration.
type Config struct {
	Log      Log      `mapstructure:"log"`
	Extract  Extract  `mapstructure:"extract"`
	Playlist Playlist `mapstructure:"playlist"`
	Watch    Watch    `mapstructure:"watch"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

type Extract struct {
	Out          string `mapstructure:"out"`
	FixedMIME    string `mapstructure:"fixed_mime"`
	MaxImageSize int    `mapstructure:"max_image_size"`
	Concurrency  int    `mapstructure:"concurrency"`
}

type Playlist struct {
	DB string `mapstructure:"db"`
}

type Watch struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("extract.out", ".")
	v.SetDefault("extract.fixed_mime", "")
	v.SetDefault("extract.max_image_size", 0)
	v.SetDefault("extract.concurrency", 0)
	v.SetDefault("playlist.db", "coverart.db")
	v.SetDefault("watch.debounce", "500ms")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads cfgFile (when non-empty) into v and decodes the result.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "could not read config file `%v`", cfgFile)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrapf(err, "could not decode configuration")
	}
	if _, err := cfg.Log.ZapLevel(); err != nil {
		return nil, err
	}
	if cfg.Extract.MaxImageSize < 0 {
		return nil, errors.Errorf("extract.max_image_size must not be negative, got %d", cfg.Extract.MaxImageSize)
	}
	return &cfg, nil
}

// ZapLevel parses the configured level.
func (l Log) ZapLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return lvl, errors.Wrapf(err, "invalid log.level `%v`", l.Level)
	}
	return lvl, nil
}
