package config

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/vango-dev/primitives/internal/errors"
	"github.com/vango-dev/primitives/pkg/primitives/platform"
	"github.com/vango-dev/primitives/pkg/runtime"
)

const (
	// FileName is the configuration file looked up in the working
	// directory.
	FileName = "primitives.toml"

	// EnvPrefix prefixes environment overrides.
	EnvPrefix = "PRIMITIVES"

	DefaultAddr      = ":7070"
	DefaultExportDir = "dist"
	DefaultPrefix    = "gallery"
)

// Config is the complete configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server" toml:"server"`
	Render RenderConfig `mapstructure:"render" toml:"render"`
	Portal PortalConfig `mapstructure:"portal" toml:"portal"`
	Export ExportConfig `mapstructure:"export" toml:"export"`
	Log    LogConfig    `mapstructure:"log" toml:"log"`
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Addr string `mapstructure:"addr" toml:"addr"`

	// Metrics exposes /metrics.
	Metrics bool `mapstructure:"metrics" toml:"metrics"`
}

// RenderConfig configures rendering.
type RenderConfig struct {
	// Backend is the default backend, "web" or "native".
	Backend string `mapstructure:"backend" toml:"backend"`

	// TrackWidth is the slider width in the terminal preview.
	TrackWidth int `mapstructure:"track_width" toml:"track_width"`
}

// PortalConfig configures portal scopes and the runtime.
type PortalConfig struct {
	ReclaimEmptyHosts bool `mapstructure:"reclaim_empty_hosts" toml:"reclaim_empty_hosts"`
	MaxPasses         int  `mapstructure:"max_passes" toml:"max_passes"`
}

// ExportConfig configures the static export. With Bucket set the gallery
// is written to S3, otherwise to Dir.
type ExportConfig struct {
	Dir    string `mapstructure:"dir" toml:"dir"`
	Bucket string `mapstructure:"bucket" toml:"bucket"`
	Prefix string `mapstructure:"prefix" toml:"prefix"`
	Region string `mapstructure:"region" toml:"region"`

	// Endpoint overrides the S3 endpoint, for S3-compatible stores.
	Endpoint  string `mapstructure:"endpoint" toml:"endpoint"`
	PathStyle bool   `mapstructure:"path_style" toml:"path_style"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `mapstructure:"level" toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: DefaultAddr, Metrics: true},
		Render: RenderConfig{Backend: string(platform.Web), TrackWidth: 24},
		Portal: PortalConfig{MaxPasses: runtime.DefaultMaxPasses},
		Export: ExportConfig{Dir: DefaultExportDir, Prefix: DefaultPrefix, Region: "us-east-1"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads the configuration. An empty path means FileName in the
// working directory, which may be absent. An explicit path must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetConfigType("toml")
	explicit := path != ""
	if !explicit {
		path = FileName
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := stderrors.As(err, &notFound) || stderrors.Is(err, os.ErrNotExist)
		if explicit || !missing {
			return Config{}, errors.New(errors.CodeConfigRead).WithDetail(path).Wrap(err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.New(errors.CodeConfigRead).WithDetail("unmarshal").Wrap(err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// setDefaults registers every key so AutomaticEnv can override keys the
// file does not mention.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.metrics", d.Server.Metrics)
	v.SetDefault("render.backend", d.Render.Backend)
	v.SetDefault("render.track_width", d.Render.TrackWidth)
	v.SetDefault("portal.reclaim_empty_hosts", d.Portal.ReclaimEmptyHosts)
	v.SetDefault("portal.max_passes", d.Portal.MaxPasses)
	v.SetDefault("export.dir", d.Export.Dir)
	v.SetDefault("export.bucket", d.Export.Bucket)
	v.SetDefault("export.prefix", d.Export.Prefix)
	v.SetDefault("export.region", d.Export.Region)
	v.SetDefault("export.endpoint", d.Export.Endpoint)
	v.SetDefault("export.path_style", d.Export.PathStyle)
	v.SetDefault("log.level", d.Log.Level)
}

// Validate checks the configuration, returning a C001 error that names
// every invalid field.
func (c Config) Validate() error {
	var problems []string
	if c.Server.Addr == "" {
		problems = append(problems, "server.addr must not be empty")
	}
	if _, err := platform.ParseOS(c.Render.Backend); err != nil {
		problems = append(problems, fmt.Sprintf("render.backend %q is not web or native", c.Render.Backend))
	}
	if c.Render.TrackWidth < 4 {
		problems = append(problems, "render.track_width must be at least 4")
	}
	if c.Portal.MaxPasses < 1 {
		problems = append(problems, "portal.max_passes must be positive")
	}
	if c.Export.Bucket == "" && c.Export.Dir == "" {
		problems = append(problems, "export needs a bucket or a dir")
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) == 0 {
		return nil
	}
	return errors.New(errors.CodeInvalidConfig).WithDetail(strings.Join(problems, "; "))
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level %q is not debug, info, warn or error", l.Level)
	}
	return level, nil
}

// Write saves c as TOML at path, creating parent directories.
func Write(path string, c Config) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
