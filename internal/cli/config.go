package cli

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
)

// fileConfig is the TOML config file format. Every field is optional, and
// command line flags take precedence.
//
//	width = 100
//	color = "always"
//	autonewlines = false
//	center = true
//	header_color = "green"
//
//	# or, per header kind, with H as the fallback:
//	[header_colors]
//	H = "blue2"
//	H2 = "magenta2"
type fileConfig struct {
	Width        *int              `toml:"width"`
	Color        string            `toml:"color"`
	AutoNewlines *bool             `toml:"autonewlines"`
	Center       *bool             `toml:"center"`
	HeaderColor  string            `toml:"header_color"`
	HeaderColors map[string]string `toml:"header_colors"`
}

func loadConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.HeaderColor != "" && len(cfg.HeaderColors) > 0 {
		return fileConfig{}, errors.New("config file may set header_color or header_colors, not both")
	}
	return cfg, nil
}

// applyTo copies config values into opts, except where the corresponding
// flag was given explicitly.
func (cfg fileConfig) applyTo(opts *globalOpts, flags *pflag.FlagSet) {
	if cfg.Width != nil && !flags.Changed("width") {
		opts.width = *cfg.Width
	}
	if cfg.Color != "" && !flags.Changed("color") {
		opts.color = cfg.Color
	}
	if cfg.AutoNewlines != nil && !flags.Changed("no-autonewlines") {
		opts.noAutoNewlines = !*cfg.AutoNewlines
	}
	if cfg.Center != nil && !flags.Changed("center") {
		opts.center = *cfg.Center
	}
	if cfg.HeaderColor != "" && !flags.Changed("header-color") {
		opts.headerColor = cfg.HeaderColor
	}
}
