// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsla

import (
	"fmt"
	"image/color"
	"reflect"

	"cogentcore.org/hsla/base/errors"
)

// FromAny returns the color represented by the given value. Strings are
// parsed with [FromString] and never fail. Structured colors ([Fields],
// [HSLFields], [RGBFields], pointers to them, and maps with string keys)
// are converted as described in [Fields.HSLA], and return an error if
// they carry an incomplete or no group of fields. [HSLA] values are
// returned as-is and any other [color.Color] is converted with
// [FromColor]. All other values return an error wrapping [ErrNotColor].
// See [MustFromAny] and [LogFromAny] for versions that do not return
// an error.
func FromAny(val any) (HSLA, error) {
	var c HSLA
	var err error
	switch v := val.(type) {
	case string:
		return FromString(v), nil
	case HSLA:
		return v, nil
	case *HSLA:
		if v == nil {
			return Default, notColor(val)
		}
		return *v, nil
	case Fields:
		c, err = v.HSLA()
	case *Fields:
		if v == nil {
			return Default, notColor(val)
		}
		c, err = v.HSLA()
	case HSLFields:
		c, err = v.HSLA()
	case *HSLFields:
		if v == nil {
			return Default, notColor(val)
		}
		c, err = v.HSLA()
	case RGBFields:
		c, err = v.HSLA()
	case *RGBFields:
		if v == nil {
			return Default, notColor(val)
		}
		c, err = v.HSLA()
	case map[string]any:
		c, err = fromMap(v)
	case color.Color:
		return FromColor(v), nil
	default:
		m, ok := stringMap(val)
		if !ok {
			return Default, notColor(val)
		}
		c, err = fromMap(m)
	}
	if err != nil {
		return Default, fmt.Errorf("hsla.FromAny: %w", err)
	}
	return c, nil
}

// MustFromAny returns the color represented by the given value.
// It panics on any resulting error; see [FromAny] for more information
// and a version that returns an error.
func MustFromAny(val any) HSLA {
	return errors.Must1(FromAny(val))
}

// LogFromAny returns the color represented by the given value.
// It logs any resulting error and returns [Default] in that case;
// see [FromAny] for more information and a version that returns an error.
func LogFromAny(val any) HSLA {
	return errors.Log1(FromAny(val))
}

func notColor(val any) error {
	return fmt.Errorf("hsla.FromAny: %w, not %T", ErrNotColor, val)
}

func fromMap(m map[string]any) (HSLA, error) {
	f, err := FieldsFromMap(m)
	if err != nil {
		return Default, err
	}
	return f.HSLA()
}

// stringMap converts any map with string keys to a map[string]any.
func stringMap(val any) (map[string]any, bool) {
	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}
