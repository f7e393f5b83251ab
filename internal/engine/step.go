package engine

// Kind identifies what a single elimination step did.
type Kind int

const (
	PivotSearch Kind = iota
	NoPivotInColumn
	PivotFound
	SwapPerformed
	ScaleNeeded
	ScalePerformed
	PivotAlreadyOne
	EliminationStart
	EliminationRow
	EliminationRowDone
	ColumnComplete
	Complete
	ContradictionFound
	NoSolution
	UniqueSolution
	InfiniteSolutions
	AnalysisComplete
	NotApplicable
)

var kindNames = map[Kind]string{
	PivotSearch:        "pivot_search",
	NoPivotInColumn:    "no_pivot_in_column",
	PivotFound:         "pivot_found",
	SwapPerformed:      "swap_performed",
	ScaleNeeded:        "scale_needed",
	ScalePerformed:     "scale_performed",
	PivotAlreadyOne:    "pivot_already_one",
	EliminationStart:   "elimination_start",
	EliminationRow:     "elimination_row",
	EliminationRowDone: "elimination_row_done",
	ColumnComplete:     "column_complete",
	Complete:           "complete",
	ContradictionFound: "contradiction_found",
	NoSolution:         "no_solution",
	UniqueSolution:     "unique_solution",
	InfiniteSolutions:  "infinite_solutions",
	AnalysisComplete:   "analysis_complete",
	NotApplicable:      "not_applicable",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Step is one emitted unit of work. Any matrix mutation the step describes
// has already been applied when the step is returned. Steps are not retained
// by the engine; callers keep their own history if they want one.
type Step struct {
	Kind        Kind
	Description string
}
