package vmath

import (
	"math"
)

// Quat is a rotation quaternion (w + xi + yj + zk)
// Stored unnormalized-tolerant: constructors produce unit quaternions,
// naive lerp intentionally does not (see QLerp)
type Quat struct {
	W, X, Y, Z float64
}

// QIdentity returns the no-rotation quaternion
func QIdentity() Quat {
	return Quat{W: 1}
}

func QMul(a, b Quat) Quat {
	return Quat{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

// QConjugate inverts a unit quaternion
func QConjugate(q Quat) Quat {
	return Quat{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

func QDot(a, b Quat) float64 {
	return a.W*b.W + a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func QMagSq(q Quat) float64 {
	return QDot(q, q)
}

// QNormalize scales q to unit length, identity for the zero quaternion
func QNormalize(q Quat) Quat {
	magSq := QMagSq(q)
	if magSq == 0 {
		return QIdentity()
	}
	inv := 1.0 / math.Sqrt(magSq)
	return Quat{W: q.W * inv, X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv}
}

// QFromAxisAngle builds a rotation of angle radians around axis
// Axis does not need to be normalized
func QFromAxisAngle(axis Vec3, angle float64) Quat {
	n := V3Normalize(axis)
	if n == (Vec3{}) {
		return QIdentity()
	}
	half := angle * 0.5
	s := math.Sin(half)
	return Quat{W: math.Cos(half), X: n.X * s, Y: n.Y * s, Z: n.Z * s}
}

// QBetween returns the shortest-arc rotation taking direction a to direction b
// Antiparallel inputs rotate 180° around an arbitrary perpendicular axis
func QBetween(a, b Vec3) Quat {
	na := V3Normalize(a)
	nb := V3Normalize(b)
	if na == (Vec3{}) || nb == (Vec3{}) {
		return QIdentity()
	}

	d := V3Dot(na, nb)
	if d > 1-1e-12 {
		return QIdentity()
	}
	if d < -1+1e-12 {
		// Pick a stable perpendicular axis
		axis := V3Cross(Vec3{X: 1}, na)
		if V3MagSq(axis) < 1e-12 {
			axis = V3Cross(Vec3{Y: 1}, na)
		}
		return QFromAxisAngle(axis, math.Pi)
	}

	cross := V3Cross(na, nb)
	q := Quat{W: 1 + d, X: cross.X, Y: cross.Y, Z: cross.Z}
	return QNormalize(q)
}

// QRotate applies rotation q to vector v
func QRotate(q Quat, v Vec3) Vec3 {
	// v' = v + 2*cross(q.xyz, cross(q.xyz, v) + w*v)
	u := Vec3{X: q.X, Y: q.Y, Z: q.Z}
	t := V3Scale(V3Cross(u, v), 2)
	return V3Add(v, V3Add(V3Scale(t, q.W), V3Cross(u, t)))
}

// QLerp interpolates component-wise from a to b by t without renormalizing.
// The result drifts off the unit sphere for large angular differences, which
// shows up as a scale wobble mid-transition. Kept as the cheap path, callers
// wanting a constant-length rotation use QNlerp.
func QLerp(a, b Quat, t float64) Quat {
	return Quat{
		W: a.W + (b.W-a.W)*t,
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// QNlerp interpolates from a to b by t along the shorter arc and renormalizes
func QNlerp(a, b Quat, t float64) Quat {
	if QDot(a, b) < 0 {
		b = Quat{W: -b.W, X: -b.X, Y: -b.Y, Z: -b.Z}
	}
	return QNormalize(QLerp(a, b, t))
}

// QFromEuler builds a rotation from Euler angles in radians, YXZ order
// (yaw around Y, then pitch around X, then roll around Z)
func QFromEuler(x, y, z float64) Quat {
	x *= 0.5
	y *= 0.5
	z *= 0.5

	sinX, cosX := math.Sincos(x)
	sinY, cosY := math.Sincos(y)
	sinZ, cosZ := math.Sincos(z)

	return Quat{
		W: cosY*cosX*cosZ + sinY*sinX*sinZ,
		X: cosY*sinX*cosZ + sinY*cosX*sinZ,
		Y: sinY*cosX*cosZ - cosY*sinX*sinZ,
		Z: cosY*cosX*sinZ - sinY*sinX*cosZ,
	}
}

// QToEuler extracts YXZ Euler angles in radians from a unit quaternion
func QToEuler(q Quat) (x, y, z float64) {
	check := 2 * (-q.Y*q.Z + q.W*q.X)

	if check < -0.9999999 {
		return -math.Pi / 2,
			-math.Atan2(2*(q.X*q.Z-q.W*q.Y), 1-2*(q.Y*q.Y+q.Z*q.Z)),
			0
	}
	if check > 0.9999999 {
		return math.Pi / 2,
			math.Atan2(2*(q.X*q.Z-q.W*q.Y), 1-2*(q.Y*q.Y+q.Z*q.Z)),
			0
	}
	return math.Asin(check),
		math.Atan2(2*(q.X*q.Z+q.W*q.Y), 1-2*(q.X*q.X+q.Y*q.Y)),
		math.Atan2(2*(q.X*q.Y+q.W*q.Z), 1-2*(q.X*q.X+q.Z*q.Z))
}

// QNearlyEqual reports whether a and b represent nearly the same rotation,
// treating q and -q as equal
func QNearlyEqual(a, b Quat, eps float64) bool {
	if QDot(a, b) < 0 {
		b = Quat{W: -b.W, X: -b.X, Y: -b.Y, Z: -b.Z}
	}
	return NearlyEqual(a.W, b.W, eps) && NearlyEqual(a.X, b.X, eps) &&
		NearlyEqual(a.Y, b.Y, eps) && NearlyEqual(a.Z, b.Z, eps)
}
