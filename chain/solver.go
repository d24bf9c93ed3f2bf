package chain

import (
	"github.com/lixenwraith/ikchain/components"
	"github.com/lixenwraith/ikchain/scene"
	"github.com/lixenwraith/ikchain/vmath"
)

// Solver is the external whole-chain IK algorithm (FABRIK, CCD, analytic
// two-bone...). It receives the rest poses, effector node first, and returns
// solved poses of the same length and order. The effector component carries
// the target pose plus the solver-consumed tuning (rotation weight, inherit
// parent rotation); the solver must not mutate it.
type Solver interface {
	Solve(rest []vmath.Pose, eff *components.EffectorComponent) ([]vmath.Pose, error)
}

// SolverFunc adapts a plain function to the Solver interface
type SolverFunc func(rest []vmath.Pose, eff *components.EffectorComponent) ([]vmath.Pose, error)

func (f SolverFunc) Solve(rest []vmath.Pose, eff *components.EffectorComponent) ([]vmath.Pose, error) {
	return f(rest, eff)
}

// Chain ties one effector to its scene nodes and solver.
// Nodes are ordered from the effector's own node (index 0) toward the chain
// base. Chains are independent: two chains sharing no state may be updated
// from different goroutines, one chain must not.
type Chain struct {
	Name     string
	Nodes    []scene.Handle
	Effector *components.EffectorComponent
	Solver   Solver
}
