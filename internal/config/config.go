// Package config loads the YAML configuration of the andie command.
package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/andie"
	"github.com/gogpu/andie/internal/imaging"
)

// ErrInvalid is returned when a configuration value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the command configuration.
type Config struct {
	Log    Log    `yaml:"log"`
	Editor Editor `yaml:"editor"`
}

// Log selects the log handler.
type Log struct {
	// Level is one of debug, info, warn or error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// Editor holds editor defaults.
type Editor struct {
	// Seed fixes the source of RandomScattering seeds. Unset means
	// entropy.
	Seed *uint64 `yaml:"seed,omitempty"`
	// JPEGQuality is used for .jpg and .jpeg output, in [1, 100].
	JPEGQuality int `yaml:"jpeg_quality"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log: Log{
			Level:  "warn",
			Format: FormatText,
		},
		Editor: Editor{
			JPEGQuality: imaging.DefaultJPEGQuality,
		},
	}
}

// Load reads the file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrap(err, "config: read")
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "config: decode")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case FormatText, FormatJSON:
	default:
		return errors.Wrapf(ErrInvalid, "log.format %q", c.Log.Format)
	}
	if q := c.Editor.JPEGQuality; q < 1 || q > 100 {
		return errors.Wrapf(ErrInvalid, "editor.jpeg_quality %d", q)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, errors.Wrapf(ErrInvalid, "log.level %q", s)
	}
	return l, nil
}

// Level returns the configured slog level, or Warn if it does not parse.
func (c *Config) Level() slog.Level {
	l, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelWarn
	}
	return l
}

// Debug reports whether the level is Debug or lower.
func (c *Config) Debug() bool {
	return c.Level() <= slog.LevelDebug
}

// Logger builds a logger writing to w in the configured format.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level()}
	if strings.EqualFold(c.Log.Format, FormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Options returns the editor options for this configuration.
func (c *Config) Options() []andie.Option {
	opts := []andie.Option{andie.WithJPEGQuality(c.Editor.JPEGQuality)}
	if c.Editor.Seed != nil {
		opts = append(opts, andie.WithSeed(*c.Editor.Seed))
	}
	return opts
}

// String returns the configuration as YAML.
func (c *Config) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err.Error()
	}
	return string(data)
}
