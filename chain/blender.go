// Package chain implements the effector weighting and blending pass that
// sits between an external whole-chain IK solver and the scene: given the
// rest (pre-solve) poses and the solver's output, it computes the poses to
// display according to the effector's weight, rotation weight and per-segment
// rotation decay.
package chain

import (
	"fmt"

	"github.com/lixenwraith/ikchain/components"
	"github.com/lixenwraith/ikchain/vmath"
)

// Blend computes the displayed pose for each segment of one chain.
//
// rest and solved are ordered from the effector's own node (index 0) toward
// the chain base (index N-1) and must have equal length. The result is a new
// slice of the same length, inputs are never mutated.
//
// Weight 1 and 0 are exact pass-throughs of solved and rest respectively.
// For fractional weights, segment i blends position by the effector weight
// and rotation by rotationWeight * rotationDecay^i. Segments past a nonzero
// ChainLength stay at the solved pose. Linear mode lerps rotations without
// renormalizing, which wobbles for large angular differences; weighted-nlerp
// mode swings positions around the chain base instead, avoiding the lever
// arm artifact of straight-line blending on long chains.
func Blend(rest, solved []vmath.Pose, eff *components.EffectorComponent) ([]vmath.Pose, error) {
	if len(rest) != len(solved) {
		return nil, fmt.Errorf("%w: %d rest vs %d solved", ErrPoseCountMismatch, len(rest), len(solved))
	}
	if eff.ChainLength < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeChainLength, eff.ChainLength)
	}

	n := len(rest)
	out := make([]vmath.Pose, n)
	if n == 0 {
		return out, nil
	}

	weight := eff.Weight()
	if weight == 1 {
		copy(out, solved)
		return out, nil
	}
	if weight == 0 {
		copy(out, rest)
		return out, nil
	}

	limit := eff.ChainLength
	if limit == 0 || limit > n {
		limit = n
	}

	base := rest[n-1].Position
	decay := 1.0

	for i := 0; i < n; i++ {
		if i >= limit {
			// Past the effector's reach: full solver influence
			out[i] = solved[i]
			continue
		}

		rotFactor := vmath.Clamp01(eff.RotationWeight() * decay)

		if eff.WeightedNlerp {
			out[i].Position = swingPosition(base, rest[i].Position, solved[i].Position, weight)
			out[i].Rotation = vmath.QNlerp(rest[i].Rotation, solved[i].Rotation, rotFactor)
		} else {
			out[i].Position = vmath.V3Lerp(rest[i].Position, solved[i].Position, weight)
			out[i].Rotation = vmath.QLerp(rest[i].Rotation, solved[i].Rotation, rotFactor)
		}

		decay *= eff.RotationDecay()
	}

	return out, nil
}

// swingPosition moves a segment from its rest to its solved position along
// the arc around the chain base: the rest offset is rotated by a partial
// swing toward the solved offset, with the offset length lerped separately.
// Degenerate offsets (segment sitting on the base) fall back to linear.
func swingPosition(base, restPos, solvedPos vmath.Vec3, t float64) vmath.Vec3 {
	restOff := vmath.V3Sub(restPos, base)
	solvedOff := vmath.V3Sub(solvedPos, base)

	restLen := vmath.V3Mag(restOff)
	solvedLen := vmath.V3Mag(solvedOff)
	if restLen == 0 || solvedLen == 0 {
		return vmath.V3Lerp(restPos, solvedPos, t)
	}

	swing := vmath.QBetween(restOff, solvedOff)
	partial := vmath.QNlerp(vmath.QIdentity(), swing, t)
	dir := vmath.V3Normalize(vmath.QRotate(partial, restOff))

	return vmath.V3Add(base, vmath.V3Scale(dir, vmath.Lerp(restLen, solvedLen, t)))
}
