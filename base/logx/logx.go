// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the default slog logger with a user-selected
// verbosity level and terminal colors for the level labels.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set from command line flags via [LevelFromFlags]. The default user
// verbosity level is [slog.LevelWarn].
var UserLevel = slog.LevelWarn

// UseColor is whether to use terminal colors for the level labels.
// Colors are only emitted when the output also supports them.
var UseColor = true

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

// SetDefaultLogger sets the default logger to a text handler on
// [os.Stderr] filtered at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// NewHandler returns a text handler writing to w at [UserLevel], with
// the level label colored when w is a color-capable terminal.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{Level: UserLevel}
	if UseColor && out.Profile != termenv.Ascii {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			lv, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			return slog.String(a.Key, LevelString(out, lv))
		}
	}
	return slog.NewTextHandler(w, opts)
}

// LevelString returns the level label styled for the given output.
func LevelString(out *termenv.Output, lv slog.Level) string {
	st := out.String(lv.String())
	switch {
	case lv >= slog.LevelError:
		st = st.Foreground(out.Color("1")).Bold()
	case lv >= slog.LevelWarn:
		st = st.Foreground(out.Color("3"))
	case lv >= slog.LevelInfo:
		st = st.Foreground(out.Color("4"))
	default:
		st = st.Foreground(out.Color("8"))
	}
	return st.String()
}
