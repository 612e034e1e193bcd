// Package config loads process configuration from an optional file and
// FIRESENSE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. FIRESENSE_LOG_LEVEL.
const EnvPrefix = "FIRESENSE"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Log    LogConf    `mapstructure:"log"`
	Server ServerConf `mapstructure:"server"`
	Audio  AudioConf  `mapstructure:"audio"`
	Game   GameConf   `mapstructure:"game"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

type ServerConf struct {
	Addr        string `mapstructure:"addr"`
	MetricsAddr string `mapstructure:"metricsAddr"` // empty disables the dashboard
	FrameRate   int    `mapstructure:"frameRate"`
}

type AudioConf struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

type GameConf struct {
	Level int `mapstructure:"level"`
}

// Validate checks ranges that would otherwise surface as odd runtime behaviour.
func (c Config) Validate() error {
	if c.Server.FrameRate <= 0 || c.Server.FrameRate > 240 {
		return fmt.Errorf("server.frameRate %d outside 1..240: %w", c.Server.FrameRate, ErrInvalidConfig)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume %.2f outside 0..1: %w", c.Audio.Volume, ErrInvalidConfig)
	}
	if c.Game.Level != 1 && c.Game.Level != 2 {
		return fmt.Errorf("game.level %d: %w", c.Game.Level, ErrInvalidConfig)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is empty: %w", ErrInvalidConfig)
	}
	return nil
}

// Loader wraps a viper instance with defaults and env binding applied.
type Loader struct {
	v    *viper.Viper
	file string
}

// NewLoader prepares a loader. file may be empty to run on defaults and env only.
func NewLoader(file string) *Loader {
	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.metricsAddr", "")
	v.SetDefault("server.frameRate", 30)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.8)
	v.SetDefault("game.level", 1)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if file != "" {
		v.SetConfigFile(file)
	}
	return &Loader{v: v, file: file}
}

// Viper exposes the underlying instance so commands can bind flags to keys.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Load reads the file (if any), applies env overrides and validates.
func (l *Loader) Load() (Config, error) {
	if l.file != "" {
		if err := l.v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", l.file, err)
		}
	}
	return l.decode()
}

func (l *Loader) decode() (Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Watch calls fn with the new configuration every time the file changes and
// still validates. Invalid edits are reported to onErr and otherwise ignored.
// It does nothing without a config file.
func (l *Loader) Watch(fn func(Config), onErr func(error)) {
	if l.file == "" {
		return
	}
	l.v.OnConfigChange(func(in fsnotify.Event) {
		cfg, err := l.decode()
		if err != nil {
			if onErr != nil {
				onErr(fmt.Errorf("reload %s: %w", in.Name, err))
			}
			return
		}
		fn(cfg)
	})
	l.v.WatchConfig()
}
