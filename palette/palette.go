// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette reads sets of named colors from TOML, YAML, JSON
// and CSS files, normalizes them to HSLA, and writes them back out.
package palette

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/hsla/hsla"
)

// Format is a palette file format.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
	CSS  Format = "css"
)

// FormatFromFile returns the format of the given file based on its extension.
func FormatFromFile(file string) (Format, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".css":
		return CSS, nil
	case ".txt", ".text":
		return Text, nil
	}
	return "", fmt.Errorf("palette: unknown file type %q", filepath.Ext(file))
}

// Entry is one named color in a [Palette].
type Entry struct {
	Name  string
	Color hsla.HSLA
}

// Palette is an ordered list of named colors.
type Palette []Entry

// Get returns the color with the given name and whether it exists.
func (p Palette) Get(name string) (hsla.HSLA, bool) {
	for _, e := range p {
		if e.Name == name {
			return e.Color, true
		}
	}
	return hsla.Default, false
}

// set sets the color with the given name, keeping the
// position of an existing entry.
func (p *Palette) set(name string, c hsla.HSLA) {
	for i := range *p {
		if (*p)[i].Name == name {
			(*p)[i].Color = c
			return
		}
	}
	*p = append(*p, Entry{Name: name, Color: c})
}

// Open reads the palette from the given file, with the format
// determined by [FormatFromFile]. See [Read] for details.
func Open(file string, parser *hsla.Parser) (Palette, error) {
	format, err := FormatFromFile(file)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("palette.Open: %w", err)
	}
	defer f.Close()
	return Read(f, format, parser)
}
