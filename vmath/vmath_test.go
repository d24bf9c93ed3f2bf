package vmath

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"Inside", 0.5, 0, 1, 0.5},
		{"Below", -2, 0, 1, 0},
		{"Above", 7, 0, 1, 1},
		{"At low edge", 0, 0, 1, 0},
		{"At high edge", 1, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 4, 0.25); got != 2.5 {
		t.Errorf("Expected 2.5, got %v", got)
	}
	if got := Lerp(-1, 1, 0.5); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}
}

func TestPoseNearlyEqual(t *testing.T) {
	a := IdentityPose()
	b := Pose{Position: Vec3{0, 1e-13, 0}, Rotation: QIdentity()}
	if !PoseNearlyEqual(a, b, 1e-12) {
		t.Errorf("Expected poses to match within eps")
	}

	c := Pose{Position: Vec3{0, 0.1, 0}, Rotation: QIdentity()}
	if PoseNearlyEqual(a, c, 1e-12) {
		t.Errorf("Expected poses to differ")
	}
}
