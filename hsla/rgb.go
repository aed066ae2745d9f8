// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsla

import (
	"image/color"
	"math"

	"cogentcore.org/hsla/names"
)

// FromRGBA converts the given red, green and blue channels (0-255)
// and alpha (0-1) to HSLA. Channels are not clamped and alpha is
// passed through unchanged. The hue is rounded to a whole degree.
func FromRGBA(r, g, b, a float64) HSLA {
	r /= 255
	g /= 255
	b /= 255
	mn := min(r, g, b)
	mx := max(r, g, b)
	l := (mx + mn) / 2

	var h, s float64
	if d := mx - mn; d != 0 && !math.IsNaN(d) {
		switch mx {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h *= 60
		if l < 0.5 {
			s = d / (mx + mn)
		} else {
			s = d / (2 - mx - mn)
		}
	}
	// achromatic colors keep zero hue and saturation, including
	// pure black and white

	if math.IsNaN(s) {
		s = 0
	}
	if math.IsNaN(l) {
		l = 0
	}
	return HSLA{H: roundHalfUp(h), S: s, L: l, A: a}
}

// FromPacked converts a packed 0xRRGGBB value to an opaque HSLA color.
func FromPacked(n uint32) HSLA {
	r, g, b := names.Unpack(n)
	return FromRGBA(float64(r), float64(g), float64(b), 1)
}

// FromColor converts the given [color.Color] to HSLA.
func FromColor(c color.Color) HSLA {
	if h, ok := c.(HSLA); ok {
		return h
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGBA(float64(n.R), float64(n.G), float64(n.B), float64(n.A)/255)
}
