package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ikchain/vmath"
)

// ChainView renders chains onto a tcell screen
type ChainView struct {
	screen tcell.Screen
	cam    Camera
}

// NewChainView creates a view over the screen with the given camera
func NewChainView(screen tcell.Screen, cam Camera) *ChainView {
	return &ChainView{screen: screen, cam: cam}
}

// DrawChain draws the segment links and joint markers for one pose array,
// effector first. The effector joint gets a distinct marker.
func (v *ChainView) DrawChain(poses []vmath.Pose, style tcell.Style) {
	w, h := v.screen.Size()

	for i := 0; i+1 < len(poses); i++ {
		a := v.cam.Project(poses[i].Position, w, h)
		b := v.cam.Project(poses[i+1].Position, w, h)
		v.drawLine(a, b, style)
	}

	for i := len(poses) - 1; i >= 0; i-- {
		p := v.cam.Project(poses[i].Position, w, h)
		x, y := p.Cell()
		marker := 'o'
		if i == 0 {
			marker = '@'
		}
		v.set(x, y, marker, style)
	}
}

// DrawMarker draws a single world-space marker, used for the target
func (v *ChainView) DrawMarker(pos vmath.Vec3, marker rune, style tcell.Style) {
	w, h := v.screen.Size()
	x, y := v.cam.Project(pos, w, h).Cell()
	v.set(x, y, marker, style)
}

// DrawText writes a string starting at a cell position, clipped to the
// screen
func (v *ChainView) DrawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.set(x, y, r, style)
		x++
	}
}

// drawLine rasterizes the link between two projected joints
func (v *ChainView) drawLine(a, b Point, style tcell.Style) {
	x0, y0 := a.Cell()
	x1, y1 := b.Cell()

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		v.set(x0, y0, lineRune(dx, dy), style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// lineRune picks a glyph by dominant direction
func lineRune(dx, dy int) rune {
	if dx > -dy*2 {
		return '─'
	}
	if -dy > dx*2 {
		return '│'
	}
	return '·'
}

func (v *ChainView) set(x, y int, r rune, style tcell.Style) {
	w, h := v.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	v.screen.SetContent(x, y, r, nil, style)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
