package components

import (
	"testing"

	"github.com/lixenwraith/ikchain/scene"
	"github.com/lixenwraith/ikchain/vmath"
)

func TestWeightClamping(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"Inside range", 0.4, 0.4},
		{"Negative", -0.5, 0},
		{"Above one", 3.2, 1},
		{"Zero", 0, 0},
		{"One", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEffector()

			e.SetWeight(tt.in)
			if got := e.Weight(); got != tt.want {
				t.Errorf("Weight: expected %v, got %v", tt.want, got)
			}

			e.SetRotationWeight(tt.in)
			if got := e.RotationWeight(); got != tt.want {
				t.Errorf("RotationWeight: expected %v, got %v", tt.want, got)
			}

			e.SetRotationDecay(tt.in)
			if got := e.RotationDecay(); got != tt.want {
				t.Errorf("RotationDecay: expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	e := NewEffector()

	if e.Weight() != DefaultWeight {
		t.Errorf("Expected weight %v, got %v", DefaultWeight, e.Weight())
	}
	if e.RotationWeight() != DefaultRotationWeight {
		t.Errorf("Expected rotation weight %v, got %v", DefaultRotationWeight, e.RotationWeight())
	}
	if e.RotationDecay() != DefaultRotationDecay {
		t.Errorf("Expected rotation decay %v, got %v", DefaultRotationDecay, e.RotationDecay())
	}
	if e.ChainLength != 0 {
		t.Errorf("Expected unbounded chain length, got %d", e.ChainLength)
	}
	if e.TargetRotation() != vmath.QIdentity() {
		t.Errorf("Expected identity target rotation, got %v", e.TargetRotation())
	}
}

func TestSetChainLength(t *testing.T) {
	e := NewEffector()

	e.SetChainLength(3)
	if e.ChainLength != 3 {
		t.Errorf("Expected 3, got %d", e.ChainLength)
	}

	e.SetChainLength(-2)
	if e.ChainLength != 0 {
		t.Errorf("Negative input should clamp to 0, got %d", e.ChainLength)
	}
}

func TestNodeTargetWinsOverManualPose(t *testing.T) {
	reg := scene.NewRegistry()
	h := reg.Create("target", vmath.IdentityPose())

	e := NewEffector()
	e.SetTargetPosition(vmath.Vec3{X: 1})
	e.BindTarget(h)

	// Manual pose is ignored while a node is bound
	e.SetTargetPosition(vmath.Vec3{X: 9})
	e.SetTargetRotation(vmath.QFromAxisAngle(vmath.Vec3{Y: 1}, 1))

	if got := e.TargetPosition(); got != (vmath.Vec3{X: 1}) {
		t.Errorf("Expected manual set to be ignored, got %v", got)
	}
	if got := e.TargetRotation(); got != vmath.QIdentity() {
		t.Errorf("Expected manual rotation to be ignored, got %v", got)
	}

	// SyncTarget bypasses the guard, that is the resolver's write path
	e.SyncTarget(vmath.Pose{Position: vmath.Vec3{X: 5}, Rotation: vmath.QIdentity()})
	if got := e.TargetPosition(); got != (vmath.Vec3{X: 5}) {
		t.Errorf("Expected synced position, got %v", got)
	}

	// Clearing the binding re-enables manual poses
	e.ClearTarget()
	e.SetTargetPosition(vmath.Vec3{X: 9})
	if got := e.TargetPosition(); got != (vmath.Vec3{X: 9}) {
		t.Errorf("Expected manual set after clear, got %v", got)
	}
}

func TestSetTargetNameClearsBoundNode(t *testing.T) {
	reg := scene.NewRegistry()
	h := reg.Create("target", vmath.IdentityPose())

	e := NewEffector()
	e.BindTarget(h)
	e.SetTargetName("other")

	if !e.TargetNode.IsNil() {
		t.Errorf("Expected bound node to be cleared by SetTargetName")
	}
	if e.TargetName != "other" {
		t.Errorf("Expected target name to be set, got %q", e.TargetName)
	}
}

func TestTargetRotationEuler(t *testing.T) {
	e := NewEffector()
	e.SetTargetRotationEuler(0.3, -0.7, 0.1)

	x, y, z := e.TargetRotationEuler()
	back := vmath.QFromEuler(x, y, z)
	if !vmath.QNearlyEqual(back, e.TargetRotation(), 1e-9) {
		t.Errorf("Euler round trip mismatch: %v vs %v", back, e.TargetRotation())
	}
}
