package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/rreflab/internal/engine"
	"github.com/san-kum/rreflab/internal/matrix"
)

// DisplayValue normalizes near-zero values to exactly zero for display. The
// stored matrix is never touched; this only cleans up rounding residue like
// 1e-16 in rendered output.
func DisplayValue(v float64) float64 {
	if math.Abs(v) < engine.Epsilon {
		return 0
	}
	return v
}

// FormatCell renders a value with at most precision decimal places,
// trimming trailing zeros.
func FormatCell(v float64, precision int) string {
	v = DisplayValue(v)
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// leadingOneColumns returns the columns holding a row's leading entry, for
// post-run highlighting of pivot columns.
func leadingOneColumns(m *matrix.Matrix) map[int]bool {
	cols := make(map[int]bool)
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			if math.Abs(m.At(r, c)) > engine.Epsilon {
				cols[c] = true
				break
			}
		}
	}
	return cols
}

type gridView struct {
	snapshot  *matrix.Matrix
	cursorRow int
	cursorCol int
	active    bool
	finished  bool
	precision int
	cellWidth int
	pal       palette
}

// render draws the matrix as an aligned grid. While the run is active the
// pivot row and column are highlighted, with the cursor cell strongest;
// after completion the constant column and the leading-one columns are
// highlighted instead.
func (g gridView) render() string {
	var b strings.Builder

	var leads map[int]bool
	if g.finished {
		leads = leadingOneColumns(g.snapshot)
	}
	constCol := g.snapshot.Cols() - 1

	for r := 0; r < g.snapshot.Rows(); r++ {
		b.WriteString("   ")
		b.WriteString(g.pal.dimmer.Render("│"))
		for c := 0; c < g.snapshot.Cols(); c++ {
			cell := fmt.Sprintf("%*s", g.cellWidth, FormatCell(g.snapshot.At(r, c), g.precision))

			switch {
			case g.active && r == g.cursorRow && c == g.cursorCol:
				cell = g.pal.pivotCell.Render(cell)
			case g.active && (r == g.cursorRow || c == g.cursorCol):
				cell = g.pal.pivotLine.Render(cell)
			case g.finished && g.snapshot.Cols() > 1 && c == constCol:
				cell = g.pal.constCol.Render(cell)
			case g.finished && leads[c]:
				cell = g.pal.leadCol.Render(cell)
			default:
				cell = g.pal.text.Render(cell)
			}
			b.WriteString(cell)
		}
		b.WriteString(" " + g.pal.dimmer.Render("│"))
		b.WriteString("\n")
	}

	return b.String()
}
