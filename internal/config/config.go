package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dastanaron/html2nix/internal/logger"
	"github.com/dastanaron/html2nix/internal/nix"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration
type Config struct {
	InputPath   string // NETSCAPE bookmarks HTML export
	OutputPath  string // empty = stdout
	IndentSize  int    // characters per indent level
	IndentStyle string // "space" | "tab"
	Brackets    bool   // wrap the output in [ ... ]
	Depth       int    // starting indent depth of the document

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	Preview bool // open the terminal preview instead of writing output
}

// fileConfig mirrors Config for YAML files. Pointers tell unset keys apart
// from zero values.
type fileConfig struct {
	Input       *string `yaml:"input"`
	Output      *string `yaml:"output"`
	Indent      *int    `yaml:"indent"`
	IndentStyle *string `yaml:"indent_style"`
	Brackets    *bool   `yaml:"brackets"`
	Depth       *int    `yaml:"depth"`
	LogLevel    *string `yaml:"log_level"`
	PrettyLog   *bool   `yaml:"pretty_log"`
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	return &Config{
		InputPath:   "./bookmarks.html",
		OutputPath:  "",
		IndentSize:  2,
		IndentStyle: nix.IndentSpace,
		Brackets:    true,
		Depth:       0,
		LogLevel:    "info",
		PrettyLog:   true,
	}
}

// WithInputPath sets the bookmarks file to read
func (c *Config) WithInputPath(path string) *Config {
	c.InputPath = path
	return c
}

// WithOutputPath sets the file to write; empty means stdout
func (c *Config) WithOutputPath(path string) *Config {
	c.OutputPath = path
	return c
}

// WithIndent sets the indent width and style
func (c *Config) WithIndent(size int, style string) *Config {
	c.IndentSize = size
	c.IndentStyle = style
	return c
}

// WithBrackets toggles the surrounding [ ... ]
func (c *Config) WithBrackets(on bool) *Config {
	c.Brackets = on
	return c
}

// ApplyEnv overrides fields from HTML2NIX_* environment variables.
// Unparsable numbers and booleans keep the current value.
func (c *Config) ApplyEnv() *Config {
	c.InputPath = getenv("HTML2NIX_INPUT", c.InputPath)
	c.OutputPath = getenv("HTML2NIX_OUTPUT", c.OutputPath)
	c.IndentSize = getenvInt("HTML2NIX_INDENT", c.IndentSize)
	c.IndentStyle = getenv("HTML2NIX_INDENT_STYLE", c.IndentStyle)
	c.LogLevel = getenv("HTML2NIX_LOG_LEVEL", c.LogLevel)
	c.PrettyLog = mustBool("HTML2NIX_PRETTY_LOG", c.PrettyLog)
	return c
}

// LoadFile merges a YAML config file into c. Keys missing from the file
// leave the current values untouched.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	if fc.Input != nil {
		c.InputPath = *fc.Input
	}
	if fc.Output != nil {
		c.OutputPath = *fc.Output
	}
	if fc.Indent != nil {
		c.IndentSize = *fc.Indent
	}
	if fc.IndentStyle != nil {
		c.IndentStyle = *fc.IndentStyle
	}
	if fc.Brackets != nil {
		c.Brackets = *fc.Brackets
	}
	if fc.Depth != nil {
		c.Depth = *fc.Depth
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	if fc.PrettyLog != nil {
		c.PrettyLog = *fc.PrettyLog
	}
	return nil
}

// Validate checks the configuration before any file is touched
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("%w: input path is empty", ErrInvalidConfig)
	}
	if c.IndentSize <= 0 {
		return fmt.Errorf("%w: indent size %d is not positive", ErrInvalidConfig, c.IndentSize)
	}
	if c.IndentStyle != nix.IndentSpace && c.IndentStyle != nix.IndentTab {
		return fmt.Errorf("%w: indent style %q must be %q or %q", ErrInvalidConfig, c.IndentStyle, nix.IndentSpace, nix.IndentTab)
	}
	if c.Depth < 0 {
		return fmt.Errorf("%w: depth %d is negative", ErrInvalidConfig, c.Depth)
	}
	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("%w: log level %q must be debug, info, warn or error", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// RendererOptions returns the renderer settings held by c
func (c *Config) RendererOptions() nix.Options {
	return nix.Options{
		IndentSize:  c.IndentSize,
		IndentStyle: c.IndentStyle,
		Brackets:    c.Brackets,
	}
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
