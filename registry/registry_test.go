package registry

import (
	"testing"

	"github.com/lixenwraith/ikchain/chain"
	"github.com/lixenwraith/ikchain/components"
	"github.com/lixenwraith/ikchain/vmath"
)

var noopSolver = chain.SolverFunc(func(rest []vmath.Pose, _ *components.EffectorComponent) ([]vmath.Pose, error) {
	out := make([]vmath.Pose, len(rest))
	copy(out, rest)
	return out, nil
})

func TestRegisterAndNew(t *testing.T) {
	RegisterSolver("noop", func() chain.Solver { return noopSolver })

	s, err := NewSolver("noop")
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	if s == nil {
		t.Fatalf("Expected solver instance")
	}

	out, err := s.Solve([]vmath.Pose{vmath.IdentityPose()}, components.NewEffector())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(out) != 1 {
		t.Errorf("Expected 1 pose, got %d", len(out))
	}
}

func TestUnknownSolver(t *testing.T) {
	if _, err := NewSolver("no-such-solver"); err == nil {
		t.Errorf("Expected error for unknown solver")
	}
}

func TestSolverNames(t *testing.T) {
	RegisterSolver("listed", func() chain.Solver { return noopSolver })

	found := false
	for _, name := range SolverNames() {
		if name == "listed" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected registered name in SolverNames")
	}
}
