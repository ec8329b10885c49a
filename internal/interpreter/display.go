package interpreter

import (
	"fmt"
	"io"
	"strings"

	"martianrobots/internal/mars"
)

// grids wider or taller than this are summarised instead of drawn
const displayLimit = 80

// Display draws the grid with north at the top. Surviving robots show their
// heading letter, squares robots were lost from show x, other scents show *.
func Display(w io.Writer, b mars.Bounds, scents *mars.ScentRegistry, results []mars.Result) error {
	if b.MaxX >= displayLimit || b.MaxY >= displayLimit {
		_, err := fmt.Fprintf(w, "grid %dx%d too large to display, %d scents\n", b.MaxX+1, b.MaxY+1, scents.Len())
		return err
	}

	cells := make(map[mars.Position]string)
	for _, p := range scents.Positions() {
		cells[p] = "*"
	}
	for _, r := range results {
		if r.Lost {
			cells[r.Pose.Position] = "x"
		}
	}
	for _, r := range results {
		if !r.Lost {
			cells[r.Pose.Position] = r.Pose.Orientation.String()
		}
	}

	var sb strings.Builder
	row := make([]string, b.MaxX+1)
	for y := b.MaxY; y >= 0; y-- {
		for x := 0; x <= b.MaxX; x++ {
			if c, ok := cells[mars.Position{X: x, Y: y}]; ok {
				row[x] = c
			} else {
				row[x] = "."
			}
		}
		sb.WriteString(strings.Join(row, " "))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
