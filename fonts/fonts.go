// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fonts provides the label font of a diagram: parsing
// TrueType data, measuring label text, and loading a font
// asynchronously with its completion delivered to a poster.
package fonts

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"cogentcore.org/linkdiagram/base/errors"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/go-text/typesetting/font"
)

// Face is a parsed font face along with its raw data,
// which renderers use to build their own faces.
type Face struct {

	// Name identifies the source of the face.
	Name string

	// Data is the raw TrueType / OpenType data.
	Data []byte

	face *font.Face
}

// ErrNoFaces is returned for font data that contains no faces.
var ErrNoFaces = errors.New("fonts: no faces in font data")

// Parse parses the first face of the given font data.
func Parse(name string, data []byte) (*Face, error) {
	faces, err := font.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fonts: parsing %s: %w", name, err)
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("fonts: parsing %s: %w", name, ErrNoFaces)
	}
	return &Face{Name: name, Data: data, face: faces[0]}, nil
}

// Default returns the default label face, Latin Modern Sans.
func Default() (*Face, error) {
	return Parse("lmsans10regular", lmsans10regular.TTF)
}

// Open parses the font file at the given path.
func Open(path string) (*Face, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(filepath.Base(path), b)
}

// Family returns the font family name.
func (f *Face) Family() string {
	return f.face.Describe().Family
}

// Advance returns the horizontal advance of the text at the given
// font size, in the same units as size. Runes without a glyph
// advance by the notdef glyph.
func (f *Face) Advance(text string, size float32) float32 {
	scale := size / float32(f.face.Upem())
	var adv float32
	for _, r := range text {
		gid, _ := f.face.NominalGlyph(r)
		adv += f.face.HorizontalAdvance(gid)
	}
	return adv * scale
}

// Height returns the ascent and descent of the face at the given size,
// with descent positive below the baseline.
func (f *Face) Height(size float32) (ascent, descent float32) {
	scale := size / float32(f.face.Upem())
	if ext, ok := f.face.FontHExtents(); ok {
		return ext.Ascender * scale, -ext.Descender * scale
	}
	return 0.8 * size, 0.2 * size
}
