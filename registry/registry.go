package registry

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/ikchain/chain"
)

// Solver implementations live outside this module (FABRIK, CCD, analytic
// solvers...). They register a factory by name in their init and rig files
// select them by that name.

// SolverFactory creates a Solver instance
type SolverFactory func() chain.Solver

var (
	solversMu sync.RWMutex
	solvers   = make(map[string]SolverFactory)
)

// RegisterSolver adds a solver factory by name, overwriting any previous
// registration under the same name
func RegisterSolver(name string, factory SolverFactory) {
	solversMu.Lock()
	defer solversMu.Unlock()
	solvers[name] = factory
}

// GetSolver retrieves a solver factory by name
func GetSolver(name string) (SolverFactory, bool) {
	solversMu.RLock()
	defer solversMu.RUnlock()
	f, ok := solvers[name]
	return f, ok
}

// NewSolver instantiates a registered solver
func NewSolver(name string) (chain.Solver, error) {
	f, ok := GetSolver(name)
	if !ok {
		return nil, fmt.Errorf("registry: unknown solver %q", name)
	}
	return f(), nil
}

// SolverNames returns all registered solver names
func SolverNames() []string {
	solversMu.RLock()
	defer solversMu.RUnlock()
	names := make([]string, 0, len(solvers))
	for name := range solvers {
		names = append(names, name)
	}
	return names
}
