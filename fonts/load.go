// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fonts

import "log/slog"

// Source loads a [Face], possibly blocking.
type Source interface {
	Load() (*Face, error)
}

// SourceFunc is a function that satisfies [Source].
type SourceFunc func() (*Face, error)

func (sf SourceFunc) Load() (*Face, error) { return sf() }

// DefaultSource loads the embedded [Default] face.
var DefaultSource = SourceFunc(Default)

// File is a [Source] that loads the font file at its path.
type File string

func (fl File) Load() (*Face, error) { return Open(string(fl)) }

// Poster runs functions on the owning thread; it is satisfied by
// render.Scheduler.
type Poster interface {
	Post(fn func())
}

// LoadAsync loads the face from the source in a new goroutine
// and posts done with the result, so that done runs on the
// poster's thread and never concurrently with it.
func LoadAsync(src Source, p Poster, done func(*Face, error)) {
	go func() {
		f, err := src.Load()
		if err != nil {
			slog.Error("loading label font", "err", err)
		} else {
			slog.Debug("loaded label font", "name", f.Name)
		}
		p.Post(func() { done(f, err) })
	}()
}
