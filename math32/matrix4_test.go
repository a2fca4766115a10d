// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/linkdiagram/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertMatrixTol(t *testing.T, expected, actual *Matrix4, tol float32) {
	t.Helper()
	for i := range expected {
		tolassert.EqualTol(t, expected[i], actual[i], tol, "element %d", i)
	}
}

func translation(v Vector3) *Matrix4 {
	m := Identity4()
	m[12], m[13], m[14] = v.X, v.Y, v.Z
	return m
}

func TestMatrix4Identity(t *testing.T) {
	m := Identity4()
	v := Vec3(1, 2, 3)
	assert.Equal(t, v, v.MulMatrix4(m))

	tr := translation(Vec3(5, -1, 2))
	assert.Equal(t, Vec3(6, 1, 5), v.MulMatrix4(tr))
	assert.Equal(t, Vec3(5, -1, 2), tr.Position())
}

func TestMatrix4Perspective(t *testing.T) {
	m := &Matrix4{}
	m.SetPerspective(90, 2, 1, 11)
	tolassert.Equal(t, 0.5, m[0])
	tolassert.Equal(t, 1, m[5])
	tolassert.Equal(t, -1.2, m[10])
	assert.Equal(t, float32(-1), m[11])
	tolassert.Equal(t, -2.2, m[14])
	assert.Equal(t, float32(0), m[15])

	// points on the near and far planes map to -1 and 1 depth
	near := Vec3(0, 0, -1).MulMatrix4(m)
	far := Vec3(0, 0, -11).MulMatrix4(m)
	tolassert.EqualTol(t, -1, near.Z, 1e-5)
	tolassert.EqualTol(t, 1, far.Z, 1e-5)
}

func TestMatrix4Inverse(t *testing.T) {
	m := &Matrix4{}
	m.SetPerspective(50, 1.5, 0.1, 2000)
	inv := &Matrix4{}
	require.NoError(t, inv.SetInverse(m))
	prod := &Matrix4{}
	prod.MulMatrices(m, inv)
	assertMatrixTol(t, Identity4(), prod, 1e-4)

	lk := &Matrix4{}
	lk.SetLookAt(Vec3(3, 4, 50), Vec3(0, 0, 0), Vec3(0, 1, 0))
	require.NoError(t, inv.SetInverse(lk))
	prod.MulMatrices(inv, lk)
	assertMatrixTol(t, Identity4(), prod, 1e-5)

	assert.ErrorIs(t, inv.SetInverse(&Matrix4{}), ErrSingular)
	assert.Equal(t, Identity4(), inv)
}

func TestMatrix4LookAt(t *testing.T) {
	m := &Matrix4{}
	m.SetLookAt(Vec3(0, 0, 400), Vec3(0, 0, 0), Vec3(0, 1, 0))
	// looking down -Z with +Y up is the identity rotation
	assertMatrixTol(t, translation(Vec3(0, 0, 400)), m, 1e-6)

	// up parallel to the view direction still yields a valid basis
	m.SetLookAt(Vec3(0, 0, 10), Vec3(0, 0, 0), Vec3(0, 0, 1))
	inv := &Matrix4{}
	assert.NoError(t, inv.SetInverse(m))
}

func TestMulMatrices(t *testing.T) {
	a := translation(Vec3(1, 0, 0))
	b := translation(Vec3(0, 2, 0))
	c := &Matrix4{}
	c.MulMatrices(a, b)
	assert.Equal(t, Vec3(1, 2, 0), c.Position())
	assert.Equal(t, Vec3(2, 2, 1), Vec3(1, 0, 1).MulMatrix4(c))
}
