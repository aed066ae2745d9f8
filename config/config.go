// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the hsla tool.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"cogentcore.org/hsla/names"
	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml/v2"
)

// Config is the main config struct that contains all of
// the configuration options for the hsla tool.
type Config struct {

	// Format is the output format: text, json, yaml or toml.
	Format string `toml:"format" default:"text" desc:"the output format: text, json, yaml or toml"`

	// Swatch is whether to print a colored swatch next to each
	// color in text output on color terminals.
	Swatch bool `toml:"swatch" default:"false" desc:"whether to print a colored swatch next to each color"`

	// Names are additional named colors, as "#rrggbb" values keyed
	// by lowercase name, that take precedence over the CSS names.
	Names map[string]string `toml:"names" desc:"additional named colors as #rrggbb values"`
}

// New returns a new config with default values set.
func New() *Config {
	cfg := &Config{}
	SetFromDefaults(cfg)
	return cfg
}

// Open reads the config from the given TOML file on top
// of the current values.
func (cfg *Config) Open(file string) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("config.Open: %w", err)
	}
	if err := toml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("config.Open: %s: %w", file, err)
	}
	return cfg.Validate()
}

// Save writes the config to the given TOML file.
func (cfg *Config) Save(file string) error {
	b, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.WriteFile(file, b, 0666); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

// Formats are the supported values of [Config.Format].
var Formats = []string{"text", "json", "yaml", "toml"}

// Validate returns an error if the config has an unknown format.
func (cfg *Config) Validate() error {
	for _, f := range Formats {
		if cfg.Format == f {
			return nil
		}
	}
	return fmt.Errorf("config: unknown format %q; must be one of %v", cfg.Format, Formats)
}

// NameTable returns the table of named colors to use: the custom
// [Config.Names] followed by [names.CSS]. Invalid custom values are
// skipped and reported together in the returned error.
func (cfg *Config) NameTable() (names.Table, error) {
	if len(cfg.Names) == 0 {
		return names.CSS, nil
	}
	nms := make([]string, 0, len(cfg.Names))
	for nm := range cfg.Names {
		nms = append(nms, nm)
	}
	sort.Strings(nms)

	var errs *multierror.Error
	custom := names.Map{}
	for _, nm := range nms {
		n, err := names.FromHex(cfg.Names[nm])
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("name %q: %w", nm, err))
			continue
		}
		custom[strings.ToLower(nm)] = n
	}
	return names.Chain{custom, names.CSS}, errs.ErrorOrNil()
}
