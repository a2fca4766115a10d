// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#fff", color.RGBA{255, 255, 255, 255}},
		{"#0A0b0C", color.RGBA{10, 11, 12, 255}},
		{"#ff000080", color.RGBA{255, 0, 0, 128}},
		{"rgb(1, 2, 3)", color.RGBA{1, 2, 3, 255}},
		{"rgba(10,20,30,200)", color.RGBA{10, 20, 30, 200}},
		{"LightGray", color.RGBA{0xd3, 0xd3, 0xd3, 0xff}},
		{"none", color.RGBA{}},
		{"", color.RGBA{}},
	}
	for _, tt := range tests {
		c, err := FromString(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, c, tt.in)
	}

	c, err := FromString("rgba(10,20,30,0.5)")
	require.NoError(t, err)
	assert.Equal(t, uint8(128), c.A)

	_, err = FromString("notacolor")
	assert.Error(t, err)
	_, err = FromString("#12345")
	assert.Error(t, err)
	_, err = FromString("rgb(1)")
	assert.Error(t, err)

	assert.Panics(t, func() { MustFromString("nope") })
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#FF8000FF", AsHex(color.RGBA{255, 128, 0, 255}))
	assert.Equal(t, "nil", AsHex(nil))
	c, err := FromHex(AsHex(color.RGBA{1, 2, 3, 4}))
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{1, 2, 3, 4}, c)
}

func TestWithAF32(t *testing.T) {
	c := WithAF32(White, 0.25)
	assert.Equal(t, uint8(64), c.A)
	assert.True(t, IsNil(Transparent))
	assert.False(t, IsNil(Black))
}
