// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"reflect"
	"strconv"

	"cogentcore.org/hsla/base/errors"
)

// SetFromDefaults sets the values of the fields of the given struct
// pointer from their `default:` struct field tag values, recursing
// into embedded and nested structs. Errors are automatically logged
// in addition to being returned.
func SetFromDefaults(obj any) error {
	val := reflect.ValueOf(obj)
	if val.Kind() != reflect.Pointer || val.Elem().Kind() != reflect.Struct {
		return errors.Log(fmt.Errorf("config.SetFromDefaults: need a pointer to a struct, not %T", obj))
	}
	return errors.Log(setFromDefaults(val.Elem()))
}

func setFromDefaults(val reflect.Value) error {
	typ := val.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		fv := val.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Type.Kind() == reflect.Struct {
			errs = append(errs, setFromDefaults(fv))
			continue
		}
		def, ok := f.Tag.Lookup("default")
		if !ok || def == "" {
			continue
		}
		if err := setString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("config.SetFromDefaults: field %s of %s from %q: %w", f.Name, typ.Name(), def, err))
		}
	}
	return errors.Join(errs...)
}

// setString sets the given value from its string representation.
func setString(v reflect.Value, s string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(n)
	default:
		return fmt.Errorf("unsupported kind %v", v.Kind())
	}
	return nil
}
