// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsla parses CSS color strings and structured color values
// into a canonical hue, saturation, lightness and alpha representation,
// and formats that representation back into a CSS hsla() string.
package hsla

import (
	"image/color"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// HSLA is a color in the hue, saturation, lightness and alpha model.
// No range is enforced on the fields; [HSLA.String] clamps them
// when formatting.
type HSLA struct {

	// H is the hue in degrees, nominally 0-360.
	H float64 `json:"h" yaml:"h" toml:"h"`

	// S is the saturation, nominally 0-1.
	S float64 `json:"s" yaml:"s" toml:"s"`

	// L is the lightness, nominally 0-1.
	L float64 `json:"l" yaml:"l" toml:"l"`

	// A is the alpha (opacity), nominally 0-1.
	A float64 `json:"a" yaml:"a" toml:"a"`
}

// Default is the color returned for "transparent" and for any
// string that cannot be parsed.
var Default = HSLA{}

// New returns a new HSLA color from the given values as-is,
// without any conversion or range checking.
func New(h, s, l, a float64) HSLA {
	return HSLA{H: h, S: s, L: l, A: a}
}

// String returns the color formatted as "hsla(h, s%, l%, a)". The hue
// is clamped to 0-360 and rounded to a whole degree, saturation and
// lightness are clamped to 0-1 and given in whole percent, and alpha is
// rounded to one decimal place without clamping.
func (c HSLA) String() string {
	h := roundHalfUp(clamp(c.H, 0, 360))
	s := roundHalfUp(clamp(c.S, 0, 1) * 100)
	l := roundHalfUp(clamp(c.L, 0, 1) * 100)
	return "hsla(" + formatNumber(h) + ", " + formatNumber(s) + "%, " + formatNumber(l) + "%, " + formatNumber(roundTenths(c.A)) + ")"
}

// RGBA implements the [color.Color] interface. Saturation,
// lightness and alpha are clamped to 0-1 and the hue wraps
// around 360.
func (c HSLA) RGBA() (r, g, b, a uint32) {
	return c.AsNRGBA().RGBA()
}

// AsNRGBA returns the color as a non alpha-premultiplied [color.NRGBA].
func (c HSLA) AsNRGBA() color.NRGBA {
	r, g, b := HSLToRGB(c.H, clamp(c.S, 0, 1), clamp(c.L, 0, 1))
	return color.NRGBA{to8(r), to8(g), to8(b), to8(clamp(c.A, 0, 1))}
}

// HSLToRGB converts HSL values to RGB 0-1 values (non alpha-premultiplied),
// based on https://www.w3.org/TR/css-color-3/#hsl-color.
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	r = hueToRGB(p, q, h+1.0/3.0)
	g = hueToRGB(p, q, h)
	b = hueToRGB(p, q, h-1.0/3.0)
	return
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, 1) * 255))
}

// clamp propagates NaN.
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// roundHalfUp rounds to the nearest integer, with ties going
// toward positive infinity.
func roundHalfUp(x float64) float64 {
	r := math.Round(x)
	if x-r == 0.5 {
		r++
	}
	return r
}

// roundTenths rounds x to one decimal place, with ties going away
// from zero. Ties are decided on the exact binary value of x, so
// 0.25 rounds to 0.3 while 0.35 (which is slightly below 0.35)
// rounds to 0.3.
func roundTenths(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	t := new(big.Float).SetPrec(256).SetFloat64(math.Abs(x))
	t.Mul(t, big.NewFloat(10))
	n, _ := t.Int(nil)
	frac := new(big.Float).SetPrec(256).SetInt(n)
	frac.Sub(t, frac)
	if frac.Cmp(big.NewFloat(0.5)) >= 0 {
		n.Add(n, big.NewInt(1))
	}
	r, _ := new(big.Float).SetInt(n).Float64()
	r /= 10
	if x < 0 {
		r = -r
	}
	if r == 0 {
		return 0
	}
	return r
}

// formatNumber formats v in its shortest form, switching to exponent
// notation such as 1e+21 or 1e-7 for magnitudes of at least 1e21 or
// below 1e-6.
func formatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	if a := math.Abs(v); a >= 1e21 || a < 1e-6 {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
