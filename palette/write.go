// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"cogentcore.org/hsla/hsla"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Record is the encoded form of one color, with its
// HSLA fields and its CSS string.
type Record struct {
	H   Number `json:"h" yaml:"h" toml:"h"`
	S   Number `json:"s" yaml:"s" toml:"s"`
	L   Number `json:"l" yaml:"l" toml:"l"`
	A   Number `json:"a" yaml:"a" toml:"a"`
	CSS string `json:"css" yaml:"css" toml:"css"`
}

// NewRecord returns the record for the given color.
func NewRecord(c hsla.HSLA) Record {
	return Record{H: Number(c.H), S: Number(c.S), L: Number(c.L), A: Number(c.A), CSS: c.String()}
}

// Number is a record field value. In JSON, NaN and the infinities
// are written as the strings "NaN", "Infinity" and "-Infinity",
// since JSON numbers cannot represent them.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Infinity"`), nil
	}
	return json.Marshal(f)
}

func (n *Number) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var f float64
		if err := json.Unmarshal(b, &f); err != nil {
			return err
		}
		*n = Number(f)
		return nil
	}
	switch s {
	case "NaN":
		*n = Number(math.NaN())
	case "Infinity":
		*n = Number(math.Inf(1))
	case "-Infinity":
		*n = Number(math.Inf(-1))
	default:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("palette: invalid number %q", s)
		}
		*n = Number(f)
	}
	return nil
}

// Records returns the palette as a map of records keyed by name.
func (p Palette) Records() map[string]Record {
	m := make(map[string]Record, len(p))
	for _, e := range p {
		m[e.Name] = NewRecord(e.Color)
	}
	return m
}

// Write writes the palette to w in the given format. Text output has
// one "name: hsla(...)" line per entry in palette order; the other
// formats are maps of [Record] values keyed by name.
func (p Palette) Write(w io.Writer, format Format) error {
	var err error
	switch format {
	case Text:
		for _, e := range p {
			if _, err = fmt.Fprintf(w, "%s: %s\n", e.Name, e.Color); err != nil {
				break
			}
		}
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(p.Records())
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(p.Records())
		if err == nil {
			err = enc.Close()
		}
	case TOML:
		err = toml.NewEncoder(w).Encode(p.Records())
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return fmt.Errorf("palette.Write: %w", err)
	}
	return nil
}
