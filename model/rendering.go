package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	gridPosAlive = " x "
	gridPosDead  = " . "

	clearCmd = "clear"
)

// TerminalRenderer draws a fixed window of the lattice as ASCII. Cells
// outside the window are not drawn.
type TerminalRenderer struct {
	Out    io.Writer
	Extent int
}

// NewTerminalRenderer creates a renderer for an extent x extent window
func NewTerminalRenderer(out io.Writer, extent int) *TerminalRenderer {
	return &TerminalRenderer{Out: out, Extent: extent}
}

// Bound returns the exclusive upper edge of the window on both axes
func Bound(extent int) int {
	return extent / 2
}

// Display renders the generation covering [bound-extent, bound) on both
// axes, highest y on top
func (r *TerminalRenderer) Display(g *Generation) {
	fmt.Fprint(r.Out, r.Render(g))
}

// Render returns the grid text Display would print
func (r *TerminalRenderer) Render(g *Generation) string {
	var (
		sb    strings.Builder
		upper = Bound(r.Extent)
		lower = upper - r.Extent
	)
	sb.Grow(r.Extent * (r.Extent*len(gridPosDead) + 1))

	for y := upper - 1; y >= lower; y-- {
		for x := lower; x < upper; x++ {
			if g.Contains(Cell{X: x, Y: y}) {
				sb.WriteString(gridPosAlive)
			} else {
				sb.WriteString(gridPosDead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.Out, "Error clearing terminal:", err)
	}
}
