// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsla

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"cogentcore.org/hsla/base/errors"
)

// Grammar is one textual color syntax recognized by a [Parser].
type Grammar struct {

	// Name identifies the syntax, for example "hsla" or "hex6".
	Name string

	// Pattern must match the whole trimmed, lowercased string.
	Pattern *regexp.Regexp

	// Convert builds the color from the submatches of Pattern,
	// where m[0] is the whole match.
	Convert func(m []string) (HSLA, error)
}

const (
	number  = `([-+]?\d+(?:\.\d+)?)`
	integer = `([-+]?\d+)`
	percent = number + `%`
	alpha   = `([-+]?[\d.]+)`
)

// function returns a pattern matching a CSS functional notation
// with the given comma separated arguments.
func function(name string, args ...string) *regexp.Regexp {
	return regexp.MustCompile(`^` + name + `\(\s*` + strings.Join(args, `\s*,\s*`) + `\s*\)$`)
}

// Grammars are the syntaxes recognized by [FromString], in the
// order in which they are tried.
var Grammars = []Grammar{
	{"hsl", function("hsl", number, percent, percent), func(m []string) (HSLA, error) {
		v, err := numbers(m[1:4]...)
		if err != nil {
			return Default, err
		}
		return New(math.Trunc(v[0]), v[1]/100, v[2]/100, 1), nil
	}},
	{"hsla", function("hsla", number, percent, percent, alpha), func(m []string) (HSLA, error) {
		v, err := numbers(m[1:4]...)
		if err != nil {
			return Default, err
		}
		return New(math.Trunc(v[0]), v[1]/100, v[2]/100, leadingFloat(m[4])), nil
	}},
	{"hex3", regexp.MustCompile(`^#([0-9a-f]{3})$`), func(m []string) (HSLA, error) {
		v, err := strconv.ParseUint(m[1], 16, 16)
		if err != nil {
			return Default, err
		}
		r, g, b := v>>8&0xf, v>>4&0xf, v&0xf
		return FromRGBA(float64(r<<4|r), float64(g<<4|g), float64(b<<4|b), 1), nil
	}},
	{"hex6", regexp.MustCompile(`^#([0-9a-f]{6})$`), func(m []string) (HSLA, error) {
		v, err := strconv.ParseUint(m[1], 16, 32)
		if err != nil {
			return Default, err
		}
		return FromPacked(uint32(v)), nil
	}},
	{"rgb", function("rgb", integer, integer, integer), func(m []string) (HSLA, error) {
		v, err := numbers(m[1:4]...)
		if err != nil {
			return Default, err
		}
		return FromRGBA(v[0], v[1], v[2], 1), nil
	}},
	{"rgb%", function("rgb", percent, percent, percent), func(m []string) (HSLA, error) {
		v, err := numbers(m[1:4]...)
		if err != nil {
			return Default, err
		}
		return FromRGBA(v[0]*255/100, v[1]*255/100, v[2]*255/100, 1), nil
	}},
	{"rgba", function("rgba", integer, integer, integer, alpha), func(m []string) (HSLA, error) {
		v, err := numbers(m[1:4]...)
		if err != nil {
			return Default, err
		}
		return FromRGBA(v[0], v[1], v[2], leadingFloat(m[4])), nil
	}},
	{"rgba%", function("rgba", percent, percent, percent, alpha), func(m []string) (HSLA, error) {
		v, err := numbers(m[1:4]...)
		if err != nil {
			return Default, err
		}
		return FromRGBA(v[0]*255/100, v[1]*255/100, v[2]*255/100, leadingFloat(m[4])), nil
	}},
}

// numbers parses each of the given strings as a float. Values that
// are out of range become infinities rather than errors.
func numbers(strs ...string) ([]float64, error) {
	v := make([]float64, len(strs))
	for i, s := range strs {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, err
		}
		v[i] = f
	}
	return v, nil
}

var leadingFloatRe = regexp.MustCompile(`^[-+]?(?:\d+(?:\.\d*)?|\.\d+)`)

// leadingFloat parses the longest prefix of s that is a decimal
// number, so "0.5.1" is 0.5. It returns NaN if there is no such prefix.
func leadingFloat(s string) float64 {
	p := leadingFloatRe.FindString(s)
	if p == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(p, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}
