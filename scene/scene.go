// Package scene holds the node registry the IK subsystem resolves targets
// against. It is an arena of pose-carrying nodes addressed by generational
// handles: a handle kept across a node removal dangles and lookups report
// that instead of returning a recycled node.
package scene

import (
	"errors"

	"github.com/lixenwraith/ikchain/vmath"
)

// ErrTargetNotFound is returned when a handle dangles or a name matches no
// live node. Non-fatal for callers syncing effector targets: the effector
// keeps its last known pose.
var ErrTargetNotFound = errors.New("scene: target not found")

// Handle is a generational reference to a node.
// The zero Handle is NilHandle and never resolves.
type Handle struct {
	index   int
	version uint32
}

// NilHandle is the unbound reference
var NilHandle = Handle{}

// IsNil reports whether h is the unbound reference
func (h Handle) IsNil() bool {
	return h == NilHandle
}

// Node is one pose-carrying scene entry
type Node struct {
	Name   string
	Pose   vmath.Pose
	Parent Handle

	version uint32
	alive   bool
}

// Registry is the node arena. Not safe for concurrent mutation, callers
// serialize access per update pass.
type Registry struct {
	nodes []Node
	free  []int
}

// NewRegistry creates an empty node registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Create adds a node and returns its handle
func (r *Registry) Create(name string, pose vmath.Pose) Handle {
	if len(r.free) > 0 {
		idx := r.free[len(r.free)-1]
		r.free = r.free[:len(r.free)-1]

		version := r.nodes[idx].version + 1
		if version == 0 {
			version = 1
		}
		r.nodes[idx] = Node{Name: name, Pose: pose, version: version, alive: true}
		return Handle{index: idx, version: version}
	}

	r.nodes = append(r.nodes, Node{Name: name, Pose: pose, version: 1, alive: true})
	return Handle{index: len(r.nodes) - 1, version: 1}
}

// Remove deletes the node, invalidating every handle to it
func (r *Registry) Remove(h Handle) {
	n := r.lookup(h)
	if n == nil {
		return
	}
	n.alive = false
	r.free = append(r.free, h.index)
}

// Get returns the node for h, or false if the handle dangles
func (r *Registry) Get(h Handle) (*Node, bool) {
	n := r.lookup(h)
	if n == nil {
		return nil, false
	}
	return n, true
}

// Pose returns the node's world pose, or ErrTargetNotFound for a dangling
// handle
func (r *Registry) Pose(h Handle) (vmath.Pose, error) {
	n := r.lookup(h)
	if n == nil {
		return vmath.Pose{}, ErrTargetNotFound
	}
	return n.Pose, nil
}

// SetPose overwrites the node's world pose, a no-op for dangling handles
func (r *Registry) SetPose(h Handle, pose vmath.Pose) {
	if n := r.lookup(h); n != nil {
		n.Pose = pose
	}
}

// FindByName returns the handle of the first live node with the given name.
// Creation order decides ties between duplicate names.
func (r *Registry) FindByName(name string) (Handle, bool) {
	if name == "" {
		return NilHandle, false
	}
	for i := range r.nodes {
		if r.nodes[i].alive && r.nodes[i].Name == name {
			return Handle{index: i, version: r.nodes[i].version}, true
		}
	}
	return NilHandle, false
}

// Len returns the number of live nodes
func (r *Registry) Len() int {
	return len(r.nodes) - len(r.free)
}

func (r *Registry) lookup(h Handle) *Node {
	if h.IsNil() || h.index < 0 || h.index >= len(r.nodes) {
		return nil
	}
	n := &r.nodes[h.index]
	if !n.alive || n.version != h.version {
		return nil
	}
	return n
}
