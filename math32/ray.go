// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Ray represents an oriented 3D line segment defined by an origin point and a direction vector.
// Dir is expected to be normalized for the distance-returning methods.
type Ray struct {
	Origin Vector3
	Dir    Vector3
}

// NewRay creates and returns a pointer to a Ray object with
// the specified origin and direction vectors, normalizing the direction.
func NewRay(origin, dir Vector3) *Ray {
	return &Ray{Origin: origin, Dir: dir.Normal()}
}

// At returns the point along the ray at distance t from the origin.
func (ray *Ray) At(t float32) Vector3 {
	return ray.Dir.MulScalar(t).Add(ray.Origin)
}

// DistanceSqToPoint returns the squared distance from the ray to the point.
// Points behind the origin measure to the origin.
func (ray *Ray) DistanceSqToPoint(point Vector3) float32 {
	t := point.Sub(ray.Origin).Dot(ray.Dir)
	if t < 0 {
		return ray.Origin.DistanceToSquared(point)
	}
	return ray.At(t).DistanceToSquared(point)
}

// IntersectSphere returns the distance along the ray to the nearest intersection
// with the sphere at center with the given radius, and whether there was one.
// If the origin is inside the sphere the exit distance is returned.
func (ray *Ray) IntersectSphere(center Vector3, radius float32) (float32, bool) {
	v := center.Sub(ray.Origin)
	tca := v.Dot(ray.Dir)
	d2 := v.Dot(v) - tca*tca
	r2 := radius * radius
	if d2 > r2 {
		return 0, false
	}
	thc := Sqrt(r2 - d2)
	t0 := tca - thc
	t1 := tca + thc
	if t1 < 0 {
		return 0, false
	}
	if t0 < 0 {
		return t1, true
	}
	return t0, true
}

// IntersectBox returns the distance along the ray to the entry point of the box,
// and whether the ray intersects it at all.
func (ray *Ray) IntersectBox(box Box3) (float32, bool) {
	tmin, tmax := -Infinity, Infinity
	o := [3]float32{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	d := [3]float32{ray.Dir.X, ray.Dir.Y, ray.Dir.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}
	for i := range 3 {
		if d[i] == 0 {
			if o[i] < lo[i] || o[i] > hi[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / d[i]
		t0 := (lo[i] - o[i]) * inv
		t1 := (hi[i] - o[i]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tmin = max(tmin, t0)
		tmax = min(tmax, t1)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return 0, true
	}
	return tmin, true
}

// IntersectPlaneZ returns the distance along the ray to the plane z = const,
// and false if the ray is parallel to the plane or points away from it.
func (ray *Ray) IntersectPlaneZ(z float32) (float32, bool) {
	if Abs(ray.Dir.Z) < 1e-6 {
		return 0, false
	}
	t := (z - ray.Origin.Z) / ray.Dir.Z
	if t < 0 {
		return 0, false
	}
	return t, true
}

// DistanceSqToSegment returns the smallest squared distance between the ray
// and the segment from v0 to v1, along with the distance along the ray
// to its closest point.
func (ray *Ray) DistanceSqToSegment(v0, v1 Vector3) (sqrDist, rayT float32) {
	segCenter := v0.Add(v1).MulScalar(0.5)
	seg := v1.Sub(v0)
	segExtent := seg.Length() * 0.5
	segDir := seg.Normal()
	diff := ray.Origin.Sub(segCenter)

	a01 := -ray.Dir.Dot(segDir)
	b0 := diff.Dot(ray.Dir)
	b1 := -diff.Dot(segDir)
	c := diff.LengthSquared()
	det := Abs(1 - a01*a01)

	var s0, s1 float32
	clampExt := func(v float32) float32 { return Clamp(v, -segExtent, segExtent) }

	if det > 0 {
		// the ray and segment are not parallel
		s0 = a01*b1 - b0
		s1 = a01*b0 - b1
		extDet := segExtent * det
		switch {
		case s0 >= 0 && s1 >= -extDet && s1 <= extDet:
			inv := 1 / det
			s0 *= inv
			s1 *= inv
			sqrDist = s0*(s0+a01*s1+2*b0) + s1*(a01*s0+s1+2*b1) + c
		case s0 >= 0 && s1 > extDet:
			s1 = segExtent
			s0 = max(0, -(a01*s1 + b0))
			sqrDist = -s0*s0 + s1*(s1+2*b1) + c
		case s0 >= 0:
			s1 = -segExtent
			s0 = max(0, -(a01*s1 + b0))
			sqrDist = -s0*s0 + s1*(s1+2*b1) + c
		case s1 <= -extDet:
			s0 = max(0, -(-a01*segExtent + b0))
			if s0 > 0 {
				s1 = -segExtent
			} else {
				s1 = clampExt(-b1)
			}
			sqrDist = -s0*s0 + s1*(s1+2*b1) + c
		case s1 <= extDet:
			s0 = 0
			s1 = clampExt(-b1)
			sqrDist = s1*(s1+2*b1) + c
		default:
			s0 = max(0, -(a01*segExtent + b0))
			if s0 > 0 {
				s1 = segExtent
			} else {
				s1 = clampExt(-b1)
			}
			sqrDist = -s0*s0 + s1*(s1+2*b1) + c
		}
	} else {
		s1 = segExtent
		if a01 > 0 {
			s1 = -segExtent
		}
		s0 = max(0, -(a01*s1 + b0))
		sqrDist = -s0*s0 + s1*(s1+2*b1) + c
	}
	return max(sqrDist, 0), s0
}
