// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = New("test error")

func failing() (int, error) { return 7, errTest }

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	assert.Equal(t, errTest, Log(errTest))
	assert.Equal(t, 7, Log1(failing()))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(errTest) })
	assert.Panics(t, func() { Must1(failing()) })
	assert.Equal(t, 3, Must1(3, nil))
}

func TestWrapped(t *testing.T) {
	err := fmt.Errorf("loading: %w", errTest)
	assert.True(t, Is(err, errTest))
	assert.True(t, Is(Join(nil, err), errTest))
}
