// Package render draws debug geometry for IK chains on a terminal screen:
// projected segments, joint markers and the effector target. It is the
// inspection surface for tuning blend weights, not a scene renderer.
package render

import (
	"math"

	"github.com/lixenwraith/ikchain/vmath"
)

// Camera is a fixed perspective projection looking down +Z.
// FocalLength controls perspective strength, Scale maps world units to rows.
// Horizontal output is doubled for the 1:2 terminal cell aspect.
type Camera struct {
	FocalLength float64
	Scale       float64
}

// DefaultCamera frames a few world units around the origin on a typical
// terminal
func DefaultCamera() Camera {
	return Camera{FocalLength: 14, Scale: 0.11}
}

// Point is a projected screen position with its depth for draw ordering
type Point struct {
	X, Y  float64
	Depth float64
}

// Project maps a world position to screen space. Points at or behind the
// focal plane clamp to a minimum depth instead of flipping.
func (c Camera) Project(p vmath.Vec3, screenW, screenH int) Point {
	denom := p.Z + c.FocalLength
	if denom < 0.5 {
		denom = 0.5
	}
	invZ := c.FocalLength / denom

	viewH := float64(screenH)
	scale := viewH * c.Scale

	return Point{
		X:     float64(screenW)/2 + p.X*invZ*scale*2,
		Y:     viewH/2 - p.Y*invZ*scale,
		Depth: p.Z,
	}
}

// Cell returns the integer cell coordinates of the projected point
func (p Point) Cell() (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}
