// Package config loads whiteboard settings from an optional TOML file and
// command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"MyWhiteboard/internal/board"
	"MyWhiteboard/internal/state"
)

// Config holds every user-tunable setting.
type Config struct {
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	Tool      string  `toml:"tool"`
	LineColor string  `toml:"line_color"`
	FillColor string  `toml:"fill_color"`
	LineWidth float64 `toml:"line_width"`
	LogLevel  string  `toml:"log_level"`
	Remote    Remote  `toml:"remote"`
}

// Remote configures the remote input device endpoint.
type Remote struct {
	Enabled   bool `toml:"enabled"`
	Port      int  `toml:"port"`
	Advertise bool `toml:"advertise"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Width:     1280,
		Height:    800,
		Tool:      "freehand",
		LineColor: "#000000",
		FillColor: "#ffffff",
		LineWidth: 3,
		LogLevel:  "info",
		Remote: Remote{
			Port:      8888,
			Advertise: true,
		},
	}
}

// DefaultPath is where Load looks when no -config flag is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "mywhiteboard", "config.toml")
}

// Load reads path into a copy of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse loads the config file named by -config (or DefaultPath) and applies
// the remaining flags on top of it.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	path := DefaultPath()
	for i, a := range args {
		// the file has to be read before the other flags override it
		switch {
		case a == "-config" || a == "--config":
			if i+1 < len(args) {
				path = args[i+1]
			}
		case strings.HasPrefix(a, "-config="), strings.HasPrefix(a, "--config="):
			path = a[strings.Index(a, "=")+1:]
		}
	}
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}

	fs.String("config", path, "path to the TOML config file")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "surface width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "surface height in pixels")
	fs.StringVar(&cfg.Tool, "tool", cfg.Tool, "initial tool (select, line, rectangle, freehand, text, sticky)")
	fs.StringVar(&cfg.LineColor, "line-color", cfg.LineColor, "initial line colour as #rrggbb")
	fs.StringVar(&cfg.FillColor, "fill-color", cfg.FillColor, "initial fill colour as #rrggbb")
	fs.Float64Var(&cfg.LineWidth, "line-width", cfg.LineWidth, "initial freehand width")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.BoolVar(&cfg.Remote.Enabled, "remote", cfg.Remote.Enabled, "accept a remote input device over websocket")
	fs.IntVar(&cfg.Remote.Port, "remote-port", cfg.Remote.Port, "port of the remote input endpoint")
	fs.BoolVar(&cfg.Remote.Advertise, "advertise", cfg.Remote.Advertise, "advertise the remote input endpoint over mDNS")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("surface size %dx%d must be positive", c.Width, c.Height)
	}
	if _, err := board.ParseTool(c.Tool); err != nil {
		return fmt.Errorf("tool: %w", err)
	}
	if _, err := ParseColor(c.LineColor); err != nil {
		return fmt.Errorf("line colour: %w", err)
	}
	if _, err := ParseColor(c.FillColor); err != nil {
		return fmt.Errorf("fill colour: %w", err)
	}
	if c.LineWidth <= 0 {
		return fmt.Errorf("line width %v must be positive", c.LineWidth)
	}
	if c.Remote.Port <= 0 || c.Remote.Port > 65535 {
		return fmt.Errorf("remote port %d out of range", c.Remote.Port)
	}
	return nil
}

// ParseColor parses a #rrggbb colour.
func ParseColor(s string) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("colour %q is not #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("colour %q is not #rrggbb", s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// FormatColor is the inverse of ParseColor. Alpha is dropped.
func FormatColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// BoardOptions turns the pen and tool settings into board options. The
// config must be valid.
func (c Config) BoardOptions() []board.Option {
	tool, _ := board.ParseTool(c.Tool)
	stroke, _ := ParseColor(c.LineColor)
	fill, _ := ParseColor(c.FillColor)
	return []board.Option{
		board.WithTool(tool),
		board.WithStyle(state.Style{Stroke: stroke, Fill: fill, Width: c.LineWidth}),
	}
}
