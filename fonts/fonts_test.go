// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/linkdiagram/base/errors"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "lmsans10regular", f.Name)
	assert.NotEmpty(t, f.Data)
	assert.NotEmpty(t, f.Family())

	one := f.Advance("a", 1)
	assert.Greater(t, one, float32(0))
	assert.Less(t, one, float32(1))
	assert.InDelta(t, 2*one, f.Advance("aa", 1), 1e-5)
	assert.InDelta(t, 10*one, f.Advance("a", 10), 1e-4)
	assert.Equal(t, float32(0), f.Advance("", 1))

	asc, desc := f.Height(1)
	assert.Greater(t, asc, float32(0))
	assert.GreaterOrEqual(t, desc, float32(0))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("junk", []byte("not a font"))
	assert.Error(t, err)

	_, err = Open(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	fn := filepath.Join(t.TempDir(), "lmsans.ttf")
	require.NoError(t, os.WriteFile(fn, lmsans10regular.TTF, 0666))
	f, err := File(fn).Load()
	require.NoError(t, err)
	assert.Equal(t, "lmsans.ttf", f.Name)
}

type chanPoster chan func()

func (cp chanPoster) Post(fn func()) { cp <- fn }

func TestLoadAsync(t *testing.T) {
	cp := make(chanPoster, 1)
	var got *Face
	LoadAsync(DefaultSource, cp, func(f *Face, err error) {
		assert.NoError(t, err)
		got = f
	})
	// done only runs when the posted function runs
	fn := <-cp
	assert.Nil(t, got)
	fn()
	assert.NotNil(t, got)

	fail := errors.New("no font")
	LoadAsync(SourceFunc(func() (*Face, error) { return nil, fail }), cp, func(f *Face, err error) {
		assert.ErrorIs(t, err, fail)
		assert.Nil(t, f)
	})
	(<-cp)()
}
