package chain

import (
	"fmt"

	"github.com/lixenwraith/ikchain/components"
	"github.com/lixenwraith/ikchain/scene"
	"github.com/lixenwraith/ikchain/vmath"
)

// Updater drives one chain through a frame tick: sync the effector target
// from the scene, gather rest poses, run the external solver, blend.
// Target sync always happens before blending, a stale target from a prior
// tick is never blended against a fresher solve.
//
// Single-threaded by design, one Updater per update goroutine.
type Updater struct {
	scene *scene.Registry
}

// NewUpdater creates an updater over the given scene
func NewUpdater(reg *scene.Registry) *Updater {
	return &Updater{scene: reg}
}

// Tick runs one frame for the chain and returns the blended poses, effector
// node first. The scene is not modified, use Apply to write the result back.
func (u *Updater) Tick(c *Chain) ([]vmath.Pose, error) {
	u.syncTarget(c.Effector)

	rest := make([]vmath.Pose, len(c.Nodes))
	for i, h := range c.Nodes {
		pose, err := u.scene.Pose(h)
		if err != nil {
			return nil, fmt.Errorf("chain %q node %d: %w", c.Name, i, err)
		}
		rest[i] = pose
	}

	solved, err := c.Solver.Solve(rest, c.Effector)
	if err != nil {
		return nil, fmt.Errorf("chain %q solve: %w", c.Name, err)
	}

	blended, err := Blend(rest, solved, c.Effector)
	if err != nil {
		return nil, fmt.Errorf("chain %q blend: %w", c.Name, err)
	}
	return blended, nil
}

// Apply writes blended poses back onto the chain's scene nodes
func (u *Updater) Apply(c *Chain, poses []vmath.Pose) error {
	if len(poses) != len(c.Nodes) {
		return fmt.Errorf("%w: %d poses vs %d nodes", ErrPoseCountMismatch, len(poses), len(c.Nodes))
	}
	for i, h := range c.Nodes {
		u.scene.SetPose(h, poses[i])
	}
	return nil
}

// Step is Tick followed by Apply
func (u *Updater) Step(c *Chain) error {
	poses, err := u.Tick(c)
	if err != nil {
		return err
	}
	return u.Apply(c, poses)
}

// syncTarget copies the live target pose into the effector. A target name
// with no bound node binds the first matching node. A dangling reference or
// unmatched name leaves the last known pose in place: an undefined pose is
// never blended.
func (u *Updater) syncTarget(e *components.EffectorComponent) {
	if e.TargetNode.IsNil() && e.TargetName != "" {
		if h, ok := u.scene.FindByName(e.TargetName); ok {
			e.BindTarget(h)
		}
	}
	if e.TargetNode.IsNil() {
		return
	}

	pose, err := u.scene.Pose(e.TargetNode)
	if err != nil {
		return
	}
	e.SyncTarget(pose)
}
