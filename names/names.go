// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package names provides lookup tables from color names
// to packed 24-bit RGB values (0xRRGGBB).
package names

import (
	"fmt"
	"image/color"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Table is a read-only mapping from lowercase color names
// to packed 0xRRGGBB values. Lookups are exact matches.
type Table interface {
	Lookup(name string) (uint32, bool)
}

// CSS is the table of the 148 CSS named colors: the SVG 1.1
// names in [colornames.Map] plus rebeccapurple.
var CSS Table = Chain{cssExtra, cssTable{}}

// cssExtra holds the CSS names missing from [colornames.Map].
var cssExtra = Map{"rebeccapurple": 0x663399}

type cssTable struct{}

func (cssTable) Lookup(name string) (uint32, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return 0, false
	}
	return Pack(c), true
}

// Map is a [Table] backed by a plain map.
type Map map[string]uint32

func (m Map) Lookup(name string) (uint32, bool) {
	n, ok := m[name]
	return n, ok
}

// Chain is a [Table] that consults each of its tables
// in order and returns the first hit.
type Chain []Table

func (c Chain) Lookup(name string) (uint32, bool) {
	for _, t := range c {
		if t == nil {
			continue
		}
		if n, ok := t.Lookup(name); ok {
			return n, true
		}
	}
	return 0, false
}

// Pack returns the given color as a packed 0xRRGGBB value.
// The alpha channel is ignored.
func Pack(c color.RGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Unpack splits a packed 0xRRGGBB value into its channels.
// Bits above the low 24 are ignored.
func Unpack(n uint32) (r, g, b uint8) {
	return uint8(n >> 16), uint8(n >> 8), uint8(n)
}

// FromHex parses a "#rrggbb" or "#rgb" string into a packed value.
func FromHex(hex string) (uint32, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, fmt.Errorf("names.FromHex: invalid length %d in %q", len(hex), hex)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("names.FromHex: %w", err)
	}
	return uint32(n), nil
}

// AsHex returns the packed value formatted as "#rrggbb".
func AsHex(n uint32) string {
	return fmt.Sprintf("#%06x", n&0xffffff)
}

// CSSNames returns the sorted names of all [CSS] colors.
func CSSNames() []string {
	nms := slices.Clone(colornames.Names)
	for nm := range cssExtra {
		nms = append(nms, nm)
	}
	slices.Sort(nms)
	return nms
}
