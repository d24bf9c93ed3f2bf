package rig

import (
	"fmt"
	"math"

	"github.com/lixenwraith/ikchain/chain"
	"github.com/lixenwraith/ikchain/components"
	"github.com/lixenwraith/ikchain/registry"
	"github.com/lixenwraith/ikchain/scene"
	"github.com/lixenwraith/ikchain/vmath"
)

// Rig is a built scene with its configured chains
type Rig struct {
	Scene  *scene.Registry
	Chains []*chain.Chain
}

// Build materializes the config: nodes into a fresh scene registry, chains
// wired to their nodes, effectors configured, solvers instantiated through
// the solver registry.
func (c *Config) Build() (*Rig, error) {
	reg := scene.NewRegistry()
	handles := make(map[string]scene.Handle, len(c.Nodes))

	for i, nc := range c.Nodes {
		if nc.Name == "" {
			return nil, fmt.Errorf("rig: node %d has no name", i)
		}
		if _, dup := handles[nc.Name]; dup {
			return nil, fmt.Errorf("rig: duplicate node name %q", nc.Name)
		}
		pose := vmath.Pose{
			Position: vmath.Vec3{X: nc.Position[0], Y: nc.Position[1], Z: nc.Position[2]},
			Rotation: vmath.QFromEuler(
				degToRad(nc.Rotation[0]),
				degToRad(nc.Rotation[1]),
				degToRad(nc.Rotation[2]),
			),
		}
		handles[nc.Name] = reg.Create(nc.Name, pose)
	}

	// Parent links are resolved after all nodes exist, order in the file
	// does not matter
	for _, nc := range c.Nodes {
		if nc.Parent == "" {
			continue
		}
		parent, ok := handles[nc.Parent]
		if !ok {
			return nil, fmt.Errorf("rig: node %q references unknown parent %q", nc.Name, nc.Parent)
		}
		if n, ok := reg.Get(handles[nc.Name]); ok {
			n.Parent = parent
		}
	}

	r := &Rig{Scene: reg}
	for _, cc := range c.Chains {
		built, err := buildChain(cc, handles)
		if err != nil {
			return nil, err
		}
		r.Chains = append(r.Chains, built)
	}
	return r, nil
}

func buildChain(cc ChainConfig, handles map[string]scene.Handle) (*chain.Chain, error) {
	if len(cc.Nodes) == 0 {
		return nil, fmt.Errorf("rig: chain %q has no nodes", cc.Name)
	}

	nodes := make([]scene.Handle, len(cc.Nodes))
	for i, name := range cc.Nodes {
		h, ok := handles[name]
		if !ok {
			return nil, fmt.Errorf("rig: chain %q references unknown node %q", cc.Name, name)
		}
		nodes[i] = h
	}

	solver, err := registry.NewSolver(cc.Solver)
	if err != nil {
		return nil, fmt.Errorf("rig: chain %q: %w", cc.Name, err)
	}

	eff := components.NewEffector()
	ec := cc.Effector
	if ec.Weight != nil {
		eff.SetWeight(*ec.Weight)
	}
	if ec.RotationWeight != nil {
		eff.SetRotationWeight(*ec.RotationWeight)
	}
	if ec.RotationDecay != nil {
		eff.SetRotationDecay(*ec.RotationDecay)
	}
	eff.SetChainLength(ec.ChainLength)
	eff.WeightedNlerp = ec.WeightedNlerp
	eff.InheritParentRotation = ec.InheritParentRotation
	if ec.Target != "" {
		eff.SetTargetName(ec.Target)
	}

	return &chain.Chain{
		Name:     cc.Name,
		Nodes:    nodes,
		Effector: eff,
		Solver:   solver,
	}, nil
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
