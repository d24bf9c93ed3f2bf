// ik-sandbox is an interactive viewer for chain blending: move the target
// around a small arm rig, tweak effector weights live and watch the rest,
// solved and blended chains side by side.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ikchain/chain"
	"github.com/lixenwraith/ikchain/render"
	"github.com/lixenwraith/ikchain/rig"
	"github.com/lixenwraith/ikchain/scene"
	"github.com/lixenwraith/ikchain/vmath"
)

const (
	targetFPS   = 30
	framePeriod = time.Second / targetFPS
	targetStep  = 0.25
	weightStep  = 0.05
)

// defaultRig is a four-segment arm with a free-floating target node
const defaultRig = `
nodes:
  - name: base
    position: [0, -3, 10]
  - name: hip
    position: [0, -1, 10]
  - name: knee
    position: [0, 1, 10]
  - name: tip
    position: [0, 3, 10]
  - name: target
    position: [3, 2, 10]
chains:
  - name: arm
    nodes: [tip, knee, hip, base]
    solver: reach
    effector:
      target: target
      weight: 1.0
      rotation_decay: 0.5
`

var (
	styleRest    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 90, 110))
	styleBlended = tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 255, 120))
	styleTarget  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 90, 90))
	styleHUD     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 100, 110))
	styleStatus  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(220, 220, 160))
)

type sandbox struct {
	rig      *rig.Rig
	updater  *chain.Updater
	arm      *chain.Chain
	target   scene.Handle
	rest     []vmath.Pose
	restCopy []vmath.Pose
	blended  []vmath.Pose
	paused   bool
}

func newSandbox(cfg *rig.Config) (*sandbox, error) {
	built, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	if len(built.Chains) == 0 {
		return nil, fmt.Errorf("rig defines no chains")
	}

	s := &sandbox{
		rig:     built,
		updater: chain.NewUpdater(built.Scene),
		arm:     built.Chains[0],
	}

	// The sandbox keeps the rig's initial poses as the rest reference and
	// never writes blends back, each frame re-blends from the same rest
	s.rest = make([]vmath.Pose, len(s.arm.Nodes))
	for i, h := range s.arm.Nodes {
		pose, err := built.Scene.Pose(h)
		if err != nil {
			return nil, err
		}
		s.rest[i] = pose
	}
	s.restCopy = append([]vmath.Pose(nil), s.rest...)

	if s.arm.Effector.TargetName != "" {
		if h, ok := built.Scene.FindByName(s.arm.Effector.TargetName); ok {
			s.target = h
		}
	}
	return s, nil
}

func (s *sandbox) moveTarget(dx, dy, dz float64) {
	if s.target.IsNil() {
		return
	}
	pose, err := s.rig.Scene.Pose(s.target)
	if err != nil {
		return
	}
	pose.Position = vmath.V3Add(pose.Position, vmath.Vec3{X: dx, Y: dy, Z: dz})
	s.rig.Scene.SetPose(s.target, pose)
}

func (s *sandbox) reset() {
	for i, h := range s.arm.Nodes {
		s.rig.Scene.SetPose(h, s.restCopy[i])
	}
	s.rest = append([]vmath.Pose(nil), s.restCopy...)
}

func (s *sandbox) frame(view *render.ChainView, screenH int) {
	if !s.paused || s.blended == nil {
		blended, err := s.updater.Tick(s.arm)
		if err != nil {
			blended = s.rest
		}
		s.blended = blended
	}

	view.DrawChain(s.rest, styleRest)
	view.DrawChain(s.blended, styleBlended)

	if !s.target.IsNil() {
		if pose, err := s.rig.Scene.Pose(s.target); err == nil {
			view.DrawMarker(pose.Position, 'x', styleTarget)
		}
	}

	s.drawHUD(view, screenH)
}

func (s *sandbox) drawHUD(view *render.ChainView, screenH int) {
	eff := s.arm.Effector

	mode := "lerp"
	if eff.WeightedNlerp {
		mode = "nlerp"
	}
	status := fmt.Sprintf("w=%.2f  rw=%.2f  decay=%.2f  len=%d  mode=%s",
		eff.Weight(), eff.RotationWeight(), eff.RotationDecay(), eff.ChainLength, mode)
	if s.paused {
		status += "  [PAUSED]"
	}
	view.DrawText(1, screenH-2, status, styleStatus)

	controls := "arrows/f/b:target  w/W:weight  d/D:decay  t/T:rot-weight  n:nlerp  0-9:len  space:pause  r:reset  q:quit"
	view.DrawText(1, screenH-1, controls, styleHUD)
}

func (s *sandbox) handleKey(ev *tcell.EventKey) bool {
	eff := s.arm.Effector

	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyUp:
		s.moveTarget(0, targetStep, 0)
	case tcell.KeyDown:
		s.moveTarget(0, -targetStep, 0)
	case tcell.KeyLeft:
		s.moveTarget(-targetStep, 0, 0)
	case tcell.KeyRight:
		s.moveTarget(targetStep, 0, 0)
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q':
			return false
		case 'f':
			s.moveTarget(0, 0, -targetStep)
		case 'b':
			s.moveTarget(0, 0, targetStep)
		case 'w':
			eff.SetWeight(eff.Weight() - weightStep)
		case 'W':
			eff.SetWeight(eff.Weight() + weightStep)
		case 'd':
			eff.SetRotationDecay(eff.RotationDecay() - weightStep)
		case 'D':
			eff.SetRotationDecay(eff.RotationDecay() + weightStep)
		case 't':
			eff.SetRotationWeight(eff.RotationWeight() - weightStep)
		case 'T':
			eff.SetRotationWeight(eff.RotationWeight() + weightStep)
		case 'n':
			eff.WeightedNlerp = !eff.WeightedNlerp
		case ' ':
			s.paused = !s.paused
		case 'r':
			s.reset()
		default:
			if r >= '0' && r <= '9' {
				eff.SetChainLength(int(r - '0'))
			}
		}
	}
	return true
}

func loadConfig(path string) (*rig.Config, error) {
	if path == "" {
		return rig.LoadYAML(strings.NewReader(defaultRig))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if strings.HasSuffix(path, ".json") {
		return rig.LoadJSON(f)
	}
	return rig.LoadYAML(f)
}

func main() {
	rigPath := flag.String("rig", "", "rig file (.yaml or .json), built-in arm rig when empty")
	flag.Parse()

	cfg, err := loadConfig(*rigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load rig: %v\n", err)
		os.Exit(1)
	}

	s, err := newSandbox(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build rig: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	view := render.NewChainView(screen, render.DefaultCamera())

	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()

	running := true
	for running {
		select {
		case ev, ok := <-events:
			if !ok {
				running = false
				break
			}
			switch tev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				running = s.handleKey(tev)
			}
		case <-ticker.C:
			_, h := screen.Size()
			screen.Clear()
			s.frame(view, h)
			screen.Show()
		}
	}
}
