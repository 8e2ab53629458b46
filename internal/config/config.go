package config

import (
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/vmini/internal/errors"
	"github.com/vango-dev/vmini/pkg/snapshot"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "vmini.yaml"

	// DefaultApp is the demo app used when none is configured.
	DefaultApp = "counter"

	// DefaultAddr is the default playground listen address.
	DefaultAddr = ":8080"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"
)

// Config represents the complete vmini.yaml configuration.
type Config struct {
	// App is the name of the app to render or serve.
	App string `yaml:"app,omitempty"`

	// Data is an optional YAML or JSON file applied to the store after mount.
	Data string `yaml:"data,omitempty"`

	// Watch re-applies Data whenever the file changes (serve only).
	Watch bool `yaml:"watch,omitempty"`

	// Server contains playground server settings.
	Server ServerConfig `yaml:"server,omitempty"`

	// Snapshot contains publishing settings for rendered HTML.
	Snapshot SnapshotConfig `yaml:"snapshot,omitempty"`

	// Log contains logging settings.
	Log LogConfig `yaml:"log,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains playground server settings.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `yaml:"addr,omitempty"`

	// Title is the page title. Empty uses the server default.
	Title string `yaml:"title,omitempty"`

	// Metrics exposes GET /metrics.
	Metrics bool `yaml:"metrics,omitempty"`
}

// SnapshotConfig contains publishing settings.
type SnapshotConfig struct {
	// Out is a directory or s3://bucket[/prefix].
	Out string `yaml:"out,omitempty"`

	// Region is the AWS region for s3:// targets.
	Region string `yaml:"region,omitempty"`

	// Endpoint overrides the S3 endpoint (MinIO, LocalStack).
	Endpoint string `yaml:"endpoint,omitempty"`

	// PathStyle forces path-style bucket addressing.
	PathStyle bool `yaml:"pathStyle,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from the specified directory.
// It looks for vmini.yaml in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadOptional is like Load but returns defaults when dir has no vmini.yaml.
func LoadOptional(dir string) (*Config, error) {
	if !Exists(dir) {
		return New(), nil
	}
	return Load(dir)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E040").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Create " + ConfigFileName + " or pass --app on the command line")
		}
		return nil, errors.New("E040").Wrap(err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E041").
			WithDetail("Failed to parse " + path + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid YAML")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.App == "" {
		c.App = DefaultApp
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Server.Addr); err != nil {
		return errors.New("E042").
			WithDetail("server.addr " + c.Server.Addr + " is not host:port").
			Wrap(err)
	}
	if c.Snapshot.Out != "" {
		if _, err := snapshot.ParseTarget(c.Snapshot.Out); err != nil {
			return errors.New("E042").
				WithDetail("snapshot.out: " + err.Error())
		}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("E042").
			WithDetail("log.level must be debug, info, warn or error, got " + c.Log.Level)
	}
	if c.Watch && c.Data == "" {
		return errors.New("E042").
			WithDetail("watch is set but no data file is configured")
	}
	return nil
}

// DataPath returns Data resolved against the config directory.
func (c *Config) DataPath() string {
	return c.resolve(c.Data)
}

// SnapshotTarget parses Snapshot.Out. Directory targets are resolved
// against the config directory.
func (c *Config) SnapshotTarget() (snapshot.Target, error) {
	t, err := snapshot.ParseTarget(c.Snapshot.Out)
	if err != nil {
		return t, err
	}
	if !t.IsS3() {
		t.Dir = c.resolve(t.Dir)
	}
	return t, nil
}

// S3 returns the S3 client settings.
func (c *Config) S3() snapshot.S3Config {
	return snapshot.S3Config{
		Region:    c.Snapshot.Region,
		Endpoint:  c.Snapshot.Endpoint,
		PathStyle: c.Snapshot.PathStyle,
	}
}

// LogLevel returns Log.Level as a slog level.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.configPath == "" {
		return p
	}
	return filepath.Join(c.Dir(), p)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}
