// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the structured logging setup used by the
// hsla command, based on [log/slog] with terminal colors.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It is typically set
// from command line flags through [LevelFromFlags]. The default
// is [slog.LevelWarn], or Debug and Error with the debug and
// release build tags.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// userLeveler reports the current [UserLevel].
type userLeveler struct{}

func (userLeveler) Level() slog.Level { return UserLevel }

// NewHandler returns a text [slog.Handler] writing to w at the given
// level, or at [UserLevel] if level is nil. Level names are colored
// when w is a terminal that supports colors.
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	if level == nil {
		level = userLeveler{}
	}
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(out.String(lvl.String()).Foreground(LevelColor(out, lvl)).String())
			return a
		},
	})
}

// LevelColor returns the color used for the given level on the given output.
func LevelColor(out *termenv.Output, lvl slog.Level) termenv.Color {
	switch {
	case lvl >= slog.LevelError:
		return out.Color("1")
	case lvl >= slog.LevelWarn:
		return out.Color("3")
	case lvl >= slog.LevelInfo:
		return out.Color("4")
	default:
		return out.Color("8")
	}
}

// SetDefaultLogger sets the default logger to one writing
// to [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, nil)))
}
