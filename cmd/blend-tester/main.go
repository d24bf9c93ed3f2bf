// blend-tester prints blend tables for a straight test chain: per-segment
// decay factors and blended positions across the weight range, for checking
// effector tuning without the interactive sandbox.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/ikchain/chain"
	"github.com/lixenwraith/ikchain/components"
	"github.com/lixenwraith/ikchain/vmath"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== CHAIN BLEND TESTER ===")

		segments := getInt(reader, "Segments (default 4): ", 4)
		rotWeight := getFloat(reader, "Rotation weight [0.0 - 1.0] (default 1.0): ", 1.0)
		decay := getFloat(reader, "Rotation decay [0.0 - 1.0] (default 0.5): ", 0.5)
		chainLen := getInt(reader, "Chain length [0 = all] (default 0): ", 0)

		fmt.Print("Mode: Weighted nlerp? [y/N]: ")
		nlerpStr, _ := reader.ReadString('\n')
		nlerp := strings.ToLower(strings.TrimSpace(nlerpStr)) == "y"

		printTable(segments, rotWeight, decay, chainLen, nlerp)

		fmt.Print("\nAnother run? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

// printTable blends a unit ladder chain (rest at origin, solved one unit
// apart along +Y) across the weight range
func printTable(segments int, rotWeight, decay float64, chainLen int, nlerp bool) {
	rest := make([]vmath.Pose, segments)
	solved := make([]vmath.Pose, segments)
	for i := range rest {
		rest[i] = vmath.IdentityPose()
		solved[i] = vmath.Pose{
			Position: vmath.Vec3{Y: float64(i + 1)},
			Rotation: vmath.QIdentity(),
		}
	}

	eff := components.NewEffector()
	eff.SetRotationWeight(rotWeight)
	eff.SetRotationDecay(decay)
	eff.SetChainLength(chainLen)
	eff.WeightedNlerp = nlerp

	fmt.Println("\nPer-segment rotation factors:")
	factor := rotWeight
	for i := 0; i < segments; i++ {
		fmt.Printf("  segment %d: %.4f\n", i, vmath.Clamp01(factor))
		factor *= decay
	}

	fmt.Println("\nBlended Y position of each segment by weight:")
	fmt.Print("  weight")
	for i := 0; i < segments; i++ {
		fmt.Printf("    seg%d", i)
	}
	fmt.Println()

	for _, w := range []float64{0, 0.25, 0.5, 0.75, 1} {
		eff.SetWeight(w)
		out, err := chain.Blend(rest, solved, eff)
		if err != nil {
			fmt.Fprintf(os.Stderr, "blend: %v\n", err)
			return
		}
		fmt.Printf("  %6.2f", w)
		for i := range out {
			fmt.Printf("  %6.2f", out[i].Position.Y)
		}
		fmt.Println()
	}
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return def
	}
	return v
}

func getFloat(r *bufio.Reader, prompt string, def float64) float64 {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}
