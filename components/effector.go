package components

import (
	"github.com/lixenwraith/ikchain/scene"
	"github.com/lixenwraith/ikchain/vmath"
)

// Defaults applied by NewEffector
const (
	DefaultWeight         = 1.0
	DefaultRotationWeight = 1.0
	DefaultRotationDecay  = 0.25
)

// EffectorComponent is the per-effector configuration and live target data
// for one IK chain. The chain is solved such that the node carrying this
// component tries to reach the target pose.
//
// Weight factors are clamped to [0,1] on assignment, silently: out-of-range
// input is tolerated by policy, callers wanting strict validation range-check
// before calling. Not safe for concurrent mutation, serialize per chain.
type EffectorComponent struct {
	// TargetName selects a target node by name. The update pass binds the
	// first node matching this name once it exists in the scene.
	TargetName string

	// TargetNode is the live target reference. While bound (and resolvable),
	// its pose overrides any manually set target pose.
	TargetNode scene.Handle

	// ChainLength is the number of segments affected by this effector.
	// 0 means all segments up to the next solver root.
	ChainLength int

	// WeightedNlerp selects rotational interpolation around the chain base
	// instead of straight-line position blending for fractional weights.
	WeightedNlerp bool

	// InheritParentRotation is consumed by the external solver, carried here
	// untouched.
	InheritParentRotation bool

	targetPosition vmath.Vec3
	targetRotation vmath.Quat
	weight         float64
	rotationWeight float64
	rotationDecay  float64
}

// NewEffector returns an effector with solver-friendly defaults:
// full weight, full rotation weight, quarter rotation decay per segment.
func NewEffector() *EffectorComponent {
	return &EffectorComponent{
		targetRotation: vmath.QIdentity(),
		weight:         DefaultWeight,
		rotationWeight: DefaultRotationWeight,
		rotationDecay:  DefaultRotationDecay,
	}
}

// Weight is the blend factor between rest pose and solved pose
func (e *EffectorComponent) Weight() float64 {
	return e.weight
}

// SetWeight sets how much influence the effector has on the solution,
// clamped to [0,1]. Useful for smoothly transitioning between a solved and
// an initial pose, like lifting a foot off the ground.
func (e *EffectorComponent) SetWeight(w float64) {
	e.weight = vmath.Clamp01(w)
}

// RotationWeight is how strongly the target rotation is honored by the
// solver, and the base factor of the per-segment rotational blend
func (e *EffectorComponent) RotationWeight() float64 {
	return e.rotationWeight
}

// SetRotationWeight clamps to [0,1]. 1 matches the target rotation exactly
// where possible, 0 ignores it.
func (e *EffectorComponent) SetRotationWeight(w float64) {
	e.rotationWeight = vmath.Clamp01(w)
}

// RotationDecay is the geometric per-segment falloff of the rotational blend
func (e *EffectorComponent) RotationDecay() float64 {
	return e.rotationDecay
}

// SetRotationDecay clamps to [0,1]. With decay 0.5 and rotation weight 1 the
// first segment matches the target rotation fully, the next 50%, then 25%,
// which keeps long chains looking natural.
func (e *EffectorComponent) SetRotationDecay(d float64) {
	e.rotationDecay = vmath.Clamp01(d)
}

// SetChainLength sets how many segments the effector affects. Negative
// input is clamped to 0 (the unbounded sentinel).
func (e *EffectorComponent) SetChainLength(n int) {
	if n < 0 {
		n = 0
	}
	e.ChainLength = n
}

// TargetPosition returns the current world-space target position
func (e *EffectorComponent) TargetPosition() vmath.Vec3 {
	return e.targetPosition
}

// TargetRotation returns the current world-space target rotation
func (e *EffectorComponent) TargetRotation() vmath.Quat {
	return e.targetRotation
}

// TargetPose returns position and rotation as one pose
func (e *EffectorComponent) TargetPose() vmath.Pose {
	return vmath.Pose{Position: e.targetPosition, Rotation: e.targetRotation}
}

// SetTargetPosition sets the manual target position. No effect while a
// target node is bound: the node's pose wins over manual poses.
func (e *EffectorComponent) SetTargetPosition(p vmath.Vec3) {
	if !e.TargetNode.IsNil() {
		return
	}
	e.targetPosition = p
}

// SetTargetRotation sets the manual target rotation. No effect while a
// target node is bound.
func (e *EffectorComponent) SetTargetRotation(q vmath.Quat) {
	if !e.TargetNode.IsNil() {
		return
	}
	e.targetRotation = q
}

// SetTargetRotationEuler sets the manual target rotation from YXZ Euler
// angles in radians
func (e *EffectorComponent) SetTargetRotationEuler(x, y, z float64) {
	e.SetTargetRotation(vmath.QFromEuler(x, y, z))
}

// TargetRotationEuler returns the target rotation as YXZ Euler angles in
// radians
func (e *EffectorComponent) TargetRotationEuler() (x, y, z float64) {
	return vmath.QToEuler(e.targetRotation)
}

// SetTargetName selects the target by node name and clears any bound node.
// The node does not have to exist yet, binding happens on the next update
// pass that finds a match.
func (e *EffectorComponent) SetTargetName(name string) {
	e.TargetName = name
	e.TargetNode = scene.NilHandle
}

// BindTarget binds a live node reference as the target
func (e *EffectorComponent) BindTarget(h scene.Handle) {
	e.TargetNode = h
}

// ClearTarget removes both the bound node and the target name, leaving the
// last synced pose in place
func (e *EffectorComponent) ClearTarget() {
	e.TargetName = ""
	e.TargetNode = scene.NilHandle
}

// SyncTarget overwrites the target pose from a resolved node, bypassing the
// node-wins guard. Called by the update pass before blending.
func (e *EffectorComponent) SyncTarget(p vmath.Pose) {
	e.targetPosition = p.Position
	e.targetRotation = p.Rotation
}
