package render

import (
	"testing"

	"github.com/lixenwraith/ikchain/vmath"
)

func TestProjectCentersOrigin(t *testing.T) {
	cam := DefaultCamera()
	p := cam.Project(vmath.Vec3{}, 80, 24)

	if p.X != 40 || p.Y != 12 {
		t.Errorf("Expected screen center (40, 12), got (%v, %v)", p.X, p.Y)
	}
}

func TestProjectAxes(t *testing.T) {
	cam := DefaultCamera()
	w, h := 80, 24

	right := cam.Project(vmath.Vec3{X: 1}, w, h)
	if right.X <= 40 {
		t.Errorf("+X should project right of center, got %v", right.X)
	}
	if right.Y != 12 {
		t.Errorf("+X should stay on the center row, got %v", right.Y)
	}

	// Screen Y grows downward, world Y grows upward
	up := cam.Project(vmath.Vec3{Y: 1}, w, h)
	if up.Y >= 12 {
		t.Errorf("+Y should project above center, got %v", up.Y)
	}
}

func TestProjectPerspectiveShrink(t *testing.T) {
	cam := DefaultCamera()
	w, h := 80, 24

	near := cam.Project(vmath.Vec3{X: 2, Z: 0}, w, h)
	far := cam.Project(vmath.Vec3{X: 2, Z: 20}, w, h)

	if far.X-40 >= near.X-40 {
		t.Errorf("Distant point should project closer to center: near %v, far %v", near.X, far.X)
	}
	if far.Depth <= near.Depth {
		t.Errorf("Expected depth ordering, near %v far %v", near.Depth, far.Depth)
	}
}

func TestProjectClampsBehindFocalPlane(t *testing.T) {
	cam := DefaultCamera()

	p := cam.Project(vmath.Vec3{X: 1, Z: -cam.FocalLength}, 80, 24)
	if p.X < 40 {
		t.Errorf("Point behind the focal plane should not flip, got %v", p.X)
	}
}

func TestCellRounds(t *testing.T) {
	x, y := (Point{X: 10.6, Y: 3.2}).Cell()
	if x != 11 || y != 3 {
		t.Errorf("Expected (11, 3), got (%d, %d)", x, y)
	}
}
