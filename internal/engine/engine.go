// Package engine drives Gauss-Jordan elimination one step at a time.
//
// The algorithm is reified as an explicit state machine: a phase tag plus the
// loop indices it would otherwise keep on the stack (pivot cursor, candidate
// pivot row, pending scale factor, in-progress elimination row). Each
// [Engine.Advance] call re-enters the dispatch at the saved phase, emits
// exactly one [Step], and applies at most one row operation. Mutating actions
// take two steps: one announcing the intent, one confirming the result.
//
// Once forward elimination exhausts the cursor the engine classifies the
// system (no solution, unique solution, or infinite solutions with a free
// variable count) and finishes.
package engine

import (
	"fmt"

	"github.com/san-kum/rreflab/internal/matrix"
)

// Epsilon is the tolerance below which a value is treated as zero. All
// zero and one comparisons route through it; floats are never compared
// for exact equality.
const Epsilon = 1e-9

type phase int

const (
	phaseSearch phase = iota
	phaseResolvePivot
	phaseSwap
	phaseNormalize
	phaseScale
	phaseElimStart
	phaseElimScan
	phaseElimApply
	phaseComplete
	phaseClassify
	phaseNoSolution
	phaseAnalysisDone
	phaseFinished
)

// State describes where a run is in its lifecycle.
type State int

const (
	NotStarted State = iota
	InProgress
	Finished
)

// Engine owns a matrix for the duration of one elimination run. It is not
// safe for concurrent use; a single caller drives it by repeated Advance
// calls.
type Engine struct {
	m *matrix.Matrix

	row int // pivot cursor row
	col int // pivot cursor column

	phase    phase
	started  bool
	pivotRow int     // candidate row found by the pivot search
	scale    float64 // factor announced before a row scaling
	elimRow  int     // next row to examine during elimination
	factor   float64 // entry announced before a row elimination
}

// New builds an engine over m. The engine takes exclusive ownership of the
// matrix; callers read it through Snapshot only.
func New(m *matrix.Matrix) *Engine {
	return &Engine{m: m, phase: phaseSearch}
}

// Reset discards all run state and starts over on m. It never fails.
func (e *Engine) Reset(m *matrix.Matrix) {
	*e = Engine{m: m, phase: phaseSearch}
}

// Snapshot returns a copy of the current matrix.
func (e *Engine) Snapshot() *matrix.Matrix { return e.m.Clone() }

// Cursor returns the pivot cursor. It is meaningful only while Active
// reports true.
func (e *Engine) Cursor() (row, col int) { return e.row, e.col }

// Active reports whether forward elimination is still in progress. The
// cursor-based highlighting a renderer shows only makes sense while this
// is true.
func (e *Engine) Active() bool { return e.phase < phaseComplete }

// Finished reports whether the run has emitted its final step.
func (e *Engine) Finished() bool { return e.phase == phaseFinished }

// RunState returns the coarse lifecycle state of the run.
func (e *Engine) RunState() State {
	switch {
	case !e.started:
		return NotStarted
	case e.phase == phaseFinished:
		return Finished
	default:
		return InProgress
	}
}

// Advance performs the next step of the run. It returns ok=false once the
// run is exhausted; calling it again after that stays a no-op.
func (e *Engine) Advance() (Step, bool) {
	e.started = true

	switch e.phase {
	case phaseSearch:
		return e.announceSearch(), true
	case phaseResolvePivot:
		return e.resolvePivot(), true
	case phaseSwap:
		return e.performSwap(), true
	case phaseNormalize:
		return e.checkPivotValue(), true
	case phaseScale:
		return e.performScale(), true
	case phaseElimStart:
		return e.announceElimination(), true
	case phaseElimScan:
		return e.scanEliminationRow(), true
	case phaseElimApply:
		return e.performElimination(), true
	case phaseComplete:
		return e.announceComplete(), true
	case phaseClassify:
		return e.classify(), true
	case phaseNoSolution:
		e.phase = phaseFinished
		return Step{NoSolution, "The system has no solution."}, true
	case phaseAnalysisDone:
		e.phase = phaseFinished
		return Step{AnalysisComplete, "Analysis complete."}, true
	default:
		return Step{}, false
	}
}

func (e *Engine) announceSearch() Step {
	e.phase = phaseResolvePivot
	return Step{PivotSearch, fmt.Sprintf(
		"Searching column %d for a pivot, starting at row %d.", e.col+1, e.row+1)}
}

func (e *Engine) resolvePivot() Step {
	found := -1
	for r := e.row; r < e.m.Rows(); r++ {
		if abs(e.m.At(r, e.col)) > Epsilon {
			found = r
			break
		}
	}

	if found < 0 {
		col := e.col
		e.col++
		e.nextColumnOrComplete()
		return Step{NoPivotInColumn, fmt.Sprintf(
			"Column %d has no usable pivot at or below row %d; moving to the next column.",
			col+1, e.row+1)}
	}

	e.pivotRow = found
	if found != e.row {
		e.phase = phaseSwap
		return Step{PivotFound, fmt.Sprintf(
			"Pivot %g found in row %d; rows %d and %d will be swapped.",
			e.m.At(found, e.col), found+1, e.row+1, found+1)}
	}

	e.phase = phaseNormalize
	return Step{PivotFound, fmt.Sprintf(
		"Pivot %g found in row %d; no swap needed.", e.m.At(found, e.col), found+1)}
}

func (e *Engine) performSwap() Step {
	e.m.SwapRows(e.row, e.pivotRow)
	e.phase = phaseNormalize
	return Step{SwapPerformed, fmt.Sprintf(
		"Swapped rows %d and %d.", e.row+1, e.pivotRow+1)}
}

func (e *Engine) checkPivotValue() Step {
	v := e.m.At(e.row, e.col)
	if abs(v-1.0) > Epsilon {
		e.scale = 1.0 / v
		e.phase = phaseScale
		return Step{ScaleNeeded, fmt.Sprintf(
			"Pivot is %g; row %d will be scaled by %g to make it 1.", v, e.row+1, e.scale)}
	}

	e.phase = phaseElimStart
	return Step{PivotAlreadyOne, fmt.Sprintf(
		"Pivot in row %d is already 1.", e.row+1)}
}

func (e *Engine) performScale() Step {
	e.m.ScaleRow(e.row, e.scale)
	e.phase = phaseElimStart
	return Step{ScalePerformed, fmt.Sprintf(
		"Scaled row %d by %g; pivot is now 1.", e.row+1, e.scale)}
}

func (e *Engine) announceElimination() Step {
	e.elimRow = 0
	e.phase = phaseElimScan
	return Step{EliminationStart, fmt.Sprintf(
		"Eliminating all other entries in column %d using row %d.", e.col+1, e.row+1)}
}

func (e *Engine) scanEliminationRow() Step {
	// Rows already zero in this column are skipped without an emission.
	for e.elimRow < e.m.Rows() {
		if e.elimRow != e.row && abs(e.m.At(e.elimRow, e.col)) > Epsilon {
			break
		}
		e.elimRow++
	}

	if e.elimRow < e.m.Rows() {
		e.factor = e.m.At(e.elimRow, e.col)
		e.phase = phaseElimApply
		return Step{EliminationRow, fmt.Sprintf(
			"Row %d has %g in column %d; subtracting %g times row %d.",
			e.elimRow+1, e.factor, e.col+1, e.factor, e.row+1)}
	}

	col := e.col
	e.row++
	e.col++
	e.nextColumnOrComplete()
	return Step{ColumnComplete, fmt.Sprintf("Column %d is complete.", col+1)}
}

func (e *Engine) performElimination() Step {
	e.m.AddScaledRow(e.elimRow, e.row, -e.factor)
	e.phase = phaseElimScan
	row := e.elimRow
	e.elimRow++
	return Step{EliminationRowDone, fmt.Sprintf("Row %d updated.", row+1)}
}

func (e *Engine) nextColumnOrComplete() {
	if e.row < e.m.Rows() && e.col < e.m.Cols() {
		e.phase = phaseSearch
	} else {
		e.phase = phaseComplete
	}
}

func (e *Engine) announceComplete() Step {
	e.phase = phaseClassify
	return Step{Complete, "Forward elimination complete; the matrix is in reduced row-echelon form."}
}

func (e *Engine) classify() Step {
	if e.m.Cols() <= 1 {
		e.phase = phaseFinished
		return Step{NotApplicable,
			"The matrix has a single column; solution analysis is not applicable."}
	}

	numVariables := e.m.Cols() - 1
	last := e.m.Cols() - 1

	for r := 0; r < e.m.Rows(); r++ {
		allZero := true
		for c := 0; c < numVariables; c++ {
			if abs(e.m.At(r, c)) > Epsilon {
				allZero = false
				break
			}
		}
		if allZero && abs(e.m.At(r, last)) > Epsilon {
			e.phase = phaseNoSolution
			return Step{ContradictionFound, fmt.Sprintf(
				"Row %d reads 0 = %g, which is a contradiction.", r+1, e.m.At(r, last))}
		}
	}

	numPivots := e.row
	e.phase = phaseAnalysisDone

	if numPivots < numVariables {
		free := numVariables - numPivots
		return Step{InfiniteSolutions, fmt.Sprintf(
			"%d pivot(s) for %d variable(s): infinitely many solutions with %d free variable(s).",
			numPivots, numVariables, free)}
	}

	return Step{UniqueSolution, fmt.Sprintf(
		"%d pivot(s) for %d variable(s): the system has a unique solution.",
		numPivots, numVariables)}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
