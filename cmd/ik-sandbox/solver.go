package main

import (
	"github.com/lixenwraith/ikchain/chain"
	"github.com/lixenwraith/ikchain/components"
	"github.com/lixenwraith/ikchain/registry"
	"github.com/lixenwraith/ikchain/vmath"
)

// reachSolver is a stand-in for a real IK backend (FABRIK, CCD...): it pins
// the chain base, drags the effector node onto the target and spaces the
// intermediate segments evenly along the new base-to-effector line. Good
// enough to exercise weighting and blending interactively, not a solver.
type reachSolver struct{}

func init() {
	registry.RegisterSolver("reach", func() chain.Solver { return reachSolver{} })
}

func (reachSolver) Solve(rest []vmath.Pose, eff *components.EffectorComponent) ([]vmath.Pose, error) {
	n := len(rest)
	out := make([]vmath.Pose, n)
	copy(out, rest)
	if n < 2 {
		if n == 1 {
			out[0].Position = eff.TargetPosition()
		}
		return out, nil
	}

	base := rest[n-1].Position
	target := eff.TargetPosition()

	for i := 0; i < n-1; i++ {
		// Fraction of the chain between this segment and the base
		t := float64(n-1-i) / float64(n-1)
		out[i].Position = vmath.V3Lerp(base, target, t)
	}

	// Swing each segment's rest rotation by the chain's overall deflection,
	// scaled by how strongly the target rotation is honored
	restDir := vmath.V3Sub(rest[0].Position, base)
	newDir := vmath.V3Sub(target, base)
	swing := vmath.QBetween(restDir, newDir)
	partial := vmath.QNlerp(vmath.QIdentity(), swing, eff.RotationWeight())
	for i := 0; i < n-1; i++ {
		out[i].Rotation = vmath.QMul(partial, rest[i].Rotation)
	}

	return out, nil
}
