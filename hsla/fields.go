// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsla

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"cogentcore.org/hsla/base/errors"
)

var (
	// ErrNotColor is returned for values that are neither
	// strings nor structured colors.
	ErrNotColor = errors.New("must pass string or object")

	// ErrUnparsable is returned for structured colors that carry
	// neither the hsl nor the rgb group of fields.
	ErrUnparsable = errors.New("could not parse argument")
)

// MissingKeyError is returned for a structured color that has
// some of the fields of a color type but is missing a later one.
type MissingKeyError struct {

	// Key is the missing field, for example "l".
	Key string

	// Type is the color type, "hsl" or "rgb".
	Type string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing key %q in color type %s", e.Key, e.Type)
}

// Fields is a structured color that carries either the hsl or the rgb
// group of fields. Nil fields are absent. A nil alpha means 1.
type Fields struct {
	H *float64 `json:"h,omitempty" yaml:"h,omitempty" toml:"h,omitempty"`
	S *float64 `json:"s,omitempty" yaml:"s,omitempty" toml:"s,omitempty"`
	L *float64 `json:"l,omitempty" yaml:"l,omitempty" toml:"l,omitempty"`
	R *float64 `json:"r,omitempty" yaml:"r,omitempty" toml:"r,omitempty"`
	G *float64 `json:"g,omitempty" yaml:"g,omitempty" toml:"g,omitempty"`
	B *float64 `json:"b,omitempty" yaml:"b,omitempty" toml:"b,omitempty"`
	A *float64 `json:"a,omitempty" yaml:"a,omitempty" toml:"a,omitempty"`
}

// HSLFields is the hsl group of a structured color.
type HSLFields struct {
	H, S, L, A *float64
}

// RGBFields is the rgb group of a structured color, with channels 0-255.
type RGBFields struct {
	R, G, B, A *float64
}

// Float returns a pointer to v, for use in [Fields].
func Float(v float64) *float64 {
	return &v
}

// HSLA converts the structured color to HSLA. The hsl group is checked
// first, then the rgb group. A group is present once any of its fields
// is, in h-s-l or r-g-b order, and every later field of that group must
// then be present too, or a [*MissingKeyError] is returned. Absent
// earlier fields are 0. If neither group is present, [ErrUnparsable]
// is returned.
func (f Fields) HSLA() (HSLA, error) {
	a := 1.0
	if f.A != nil {
		a = *f.A
	}
	ok, err := group("hsl", f.H, f.S, f.L)
	if err != nil {
		return Default, err
	}
	if ok {
		return New(value(f.H), value(f.S), value(f.L), a), nil
	}
	ok, err = group("rgb", f.R, f.G, f.B)
	if err != nil {
		return Default, err
	}
	if ok {
		return FromRGBA(value(f.R), value(f.G), value(f.B), a), nil
	}
	return Default, ErrUnparsable
}

// HSLA converts the hsl fields to HSLA as-is, without range checking.
// See [Fields.HSLA] for the rules on absent fields.
func (f HSLFields) HSLA() (HSLA, error) {
	return Fields{H: f.H, S: f.S, L: f.L, A: f.A}.HSLA()
}

// HSLA converts the rgb fields to HSLA.
// See [Fields.HSLA] for the rules on absent fields.
func (f RGBFields) HSLA() (HSLA, error) {
	return Fields{R: f.R, G: f.G, B: f.B, A: f.A}.HSLA()
}

// group reports whether any of the fields named by the letters
// of typ is present, requiring all fields after the first
// present one to be present as well.
func group(typ string, fields ...*float64) (bool, error) {
	present := false
	for i, f := range fields {
		switch {
		case f != nil:
			present = true
		case present:
			return true, &MissingKeyError{Key: typ[i : i+1], Type: typ}
		}
	}
	return present, nil
}

func value(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// FieldsFromMap returns the structured color described by the given
// map, where the keys are the single letter field names. Other keys are
// ignored. A key that is present with a nil value counts as present
// with the value 0, except for "a", where nil means 1. Values may be
// of any numeric type, bool, [json.Number] or a numeric string; a
// string that is not a number is NaN.
func FieldsFromMap(m map[string]any) (Fields, error) {
	f := Fields{}
	for k, v := range m {
		var dst **float64
		switch k {
		case "h":
			dst = &f.H
		case "s":
			dst = &f.S
		case "l":
			dst = &f.L
		case "r":
			dst = &f.R
		case "g":
			dst = &f.G
		case "b":
			dst = &f.B
		case "a":
			dst = &f.A
		default:
			continue
		}
		if v == nil {
			if k != "a" {
				*dst = Float(0)
			}
			continue
		}
		n, err := toNumber(v)
		if err != nil {
			return Fields{}, fmt.Errorf("field %q: %w", k, err)
		}
		*dst = &n
	}
	return f, nil
}

func toNumber(v any) (float64, error) {
	switch v := v.(type) {
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return 0, nil
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return math.NaN(), nil
		}
		return n, nil
	case json.Number:
		return toNumber(string(v))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}
	return 0, fmt.Errorf("cannot use value of type %T as a number", v)
}
