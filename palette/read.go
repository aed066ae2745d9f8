// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"cogentcore.org/hsla/hsla"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Read reads a palette in the given format from r, using the given
// parser for color strings, or [hsla.DefaultParser] if it is nil.
//
// TOML, YAML and JSON palettes are maps from names to color strings or
// structured colors (see [hsla.FromAny]), sorted by name. CSS palettes
// are the custom properties ("--name: color;") declared in any rule, in
// document order. Text palettes have one "name: color" pair per line,
// with blank lines and lines starting with # ignored.
//
// Entries that cannot be converted are skipped and reported together
// in the returned error, along with all of the other entries.
func Read(r io.Reader, format Format, p *hsla.Parser) (Palette, error) {
	if p == nil {
		p = hsla.DefaultParser
	}
	switch format {
	case CSS:
		return readCSS(r, p)
	case Text:
		return readText(r, p)
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("palette.Read: %w", err)
	}
	m := map[string]any{}
	switch format {
	case JSON:
		err = json.Unmarshal(b, &m)
	case YAML:
		err = yaml.Unmarshal(b, &m)
	case TOML:
		err = toml.Unmarshal(b, &m)
	default:
		return nil, fmt.Errorf("palette.Read: unsupported format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("palette.Read: %s: %w", format, err)
	}

	nms := make([]string, 0, len(m))
	for nm := range m {
		nms = append(nms, nm)
	}
	slices.Sort(nms)

	var errs *multierror.Error
	pal := Palette{}
	for _, nm := range nms {
		c, err := convert(p, m[nm])
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", nm, err))
			continue
		}
		pal.set(nm, c)
	}
	return pal, errs.ErrorOrNil()
}

// convert converts one palette value, parsing strings with p.
func convert(p *hsla.Parser, v any) (hsla.HSLA, error) {
	if s, ok := v.(string); ok {
		return p.FromString(s), nil
	}
	return hsla.FromAny(v)
}

func readCSS(r io.Reader, p *hsla.Parser) (Palette, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("palette.Read: %w", err)
	}
	ss, err := parser.Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("palette.Read: css: %w", err)
	}
	pal := Palette{}
	var walk func(rules []*css.Rule)
	walk = func(rules []*css.Rule) {
		for _, rule := range rules {
			for _, decl := range rule.Declarations {
				nm, ok := strings.CutPrefix(decl.Property, "--")
				if !ok || nm == "" {
					continue
				}
				pal.set(nm, p.FromString(decl.Value))
			}
			walk(rule.Rules)
		}
	}
	walk(ss.Rules)
	return pal, nil
}

func readText(r io.Reader, p *hsla.Parser) (Palette, error) {
	var errs *multierror.Error
	pal := Palette{}
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		nm, val, ok := strings.Cut(line, ":")
		if !ok {
			errs = multierror.Append(errs, fmt.Errorf("line %d: missing ':' in %q", ln, line))
			continue
		}
		pal.set(strings.TrimSpace(nm), p.FromString(val))
	}
	if err := sc.Err(); err != nil {
		return pal, fmt.Errorf("palette.Read: %w", err)
	}
	return pal, errs.ErrorOrNil()
}
