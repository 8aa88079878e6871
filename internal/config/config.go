package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/MichaelHallik/python-docstring-generator/internal/docstring"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Defaults struct {
		Style      string `yaml:"style"`
		LineLength int    `yaml:"line_length"` // 0 means the style's own default
	} `yaml:"defaults"`
	Output struct {
		TripleQuotes    bool `yaml:"triple_quotes"`
		CopyToClipboard bool `yaml:"copy_to_clipboard"`
	} `yaml:"output"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	var cfg Config
	cfg.Defaults.Style = string(docstring.StyleGoogle)
	cfg.Output.TripleQuotes = true
	cfg.Server.Addr = ":8080"
	return &cfg
}

func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config; a missing file keeps the defaults
	file, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	}

	// 3. Override with Environment Variables if present
	if style := os.Getenv("DOCSTR_STYLE"); style != "" {
		cfg.Defaults.Style = style
	}
	if length := os.Getenv("DOCSTR_LINE_LENGTH"); length != "" {
		n, err := strconv.Atoi(length)
		if err != nil {
			return nil, fmt.Errorf("failed to parse DOCSTR_LINE_LENGTH: %w", err)
		}
		cfg.Defaults.LineLength = n
	}
	if addr := os.Getenv("DOCSTR_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}

	return cfg, nil
}

// Style resolves the configured default style name.
func (c *Config) Style() (docstring.Style, error) {
	return docstring.ParseStyle(c.Defaults.Style)
}

// ResolveLineLength picks the effective width: an explicit request wins,
// then the configured default, then the style's own default.
func (c *Config) ResolveLineLength(style docstring.Style, requested int) int {
	if requested > 0 {
		return requested
	}
	if c.Defaults.LineLength > 0 {
		return c.Defaults.LineLength
	}
	return style.DefaultLineLength()
}

// requestFile mirrors docstring.Request with the style as a free-form name.
type requestFile struct {
	Summary       string            `yaml:"summary"`
	Description   string            `yaml:"description"`
	Style         string            `yaml:"style"`
	MaxLineLength int               `yaml:"max_line_length"`
	Args          []docstring.Entry `yaml:"args"`
	Returns       string            `yaml:"returns"`
	Raises        []docstring.Entry `yaml:"raises"`
}

// LoadRequest reads a docstring request from a YAML file. Style and width
// fall back to the configured defaults when the file leaves them out.
func (c *Config) LoadRequest(path string) (docstring.Request, error) {
	var req docstring.Request

	file, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("failed to read request file: %w", err)
	}
	var raw requestFile
	if err := yaml.Unmarshal(file, &raw); err != nil {
		return req, fmt.Errorf("failed to parse request file: %w", err)
	}

	name := raw.Style
	if name == "" {
		name = c.Defaults.Style
	}
	style, err := docstring.ParseStyle(name)
	if err != nil {
		return req, err
	}

	return docstring.Request{
		Summary:       raw.Summary,
		Description:   raw.Description,
		Style:         style,
		MaxLineLength: c.ResolveLineLength(style, raw.MaxLineLength),
		Args:          raw.Args,
		Returns:       raw.Returns,
		Raises:        raw.Raises,
	}, nil
}
