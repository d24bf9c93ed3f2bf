// Package rig loads chain rig definitions from YAML or JSON into a scene
// registry plus configured chains. A rig file lists the named nodes with
// their world poses, then the chains with per-effector tuning and the name
// of the registered solver to drive them.
package rig

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk rig description, decodable from JSON or YAML
type Config struct {
	Nodes  []NodeConfig  `json:"nodes" yaml:"nodes"`
	Chains []ChainConfig `json:"chains" yaml:"chains"`
}

// NodeConfig describes one scene node
type NodeConfig struct {
	Name string `json:"name" yaml:"name"`
	// Position is world-space x, y, z
	Position [3]float64 `json:"position" yaml:"position"`
	// Rotation is world-space YXZ Euler angles in degrees
	Rotation [3]float64 `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Parent   string     `json:"parent,omitempty" yaml:"parent,omitempty"`
}

// ChainConfig describes one chain with its effector tuning
type ChainConfig struct {
	Name string `json:"name" yaml:"name"`
	// Nodes is ordered effector-first toward the chain base
	Nodes    []string       `json:"nodes" yaml:"nodes"`
	Solver   string         `json:"solver" yaml:"solver"`
	Effector EffectorConfig `json:"effector,omitempty" yaml:"effector,omitempty"`
}

// EffectorConfig carries the tunable effector parameters. Weight factors
// out of [0,1] are clamped on load, the silent-clamp policy of the
// component setters.
type EffectorConfig struct {
	Target                string   `json:"target,omitempty" yaml:"target,omitempty"`
	Weight                *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
	RotationWeight        *float64 `json:"rotation_weight,omitempty" yaml:"rotation_weight,omitempty"`
	RotationDecay         *float64 `json:"rotation_decay,omitempty" yaml:"rotation_decay,omitempty"`
	ChainLength           int      `json:"chain_length,omitempty" yaml:"chain_length,omitempty"`
	WeightedNlerp         bool     `json:"weighted_nlerp,omitempty" yaml:"weighted_nlerp,omitempty"`
	InheritParentRotation bool     `json:"inherit_parent_rotation,omitempty" yaml:"inherit_parent_rotation,omitempty"`
}

// LoadYAML decodes a rig config from YAML
func LoadYAML(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadJSON decodes a rig config from JSON
func LoadJSON(r io.Reader) (*Config, error) {
	var c Config
	dec := json.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
