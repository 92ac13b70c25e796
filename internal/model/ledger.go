package model

import "fmt"

// Issue ledger categories, in the order they are reported.
const (
	CategoryMergedEmptyCells  = "merged_empty_cells"
	CategoryEmptyVersionRow2  = "empty_cell_in_enm_version_row2"
	CategoryUnusableRows      = "unusable_rows"
	CategoryIncompleteRows    = "incomplete_rows"
	CategoryNodeHeaderRows    = "node_header_rows"
	CategoryRemovedHeaderRows = "removed_header_rows"
)

// Ledger accumulates the defects discovered during one processing run.
// It is owned by the caller, freshly allocated per run, and append-only:
// entries are never deduplicated, because separate components may record the
// same coordinate under different categories.
type Ledger struct {
	// MergedEmptyCells holds range references ("A3:A5") of merged regions
	// whose anchor cell was blank.
	MergedEmptyCells []string
	// EmptyVersionRow2 holds cell references ("E2") of blank version labels.
	EmptyVersionRow2 []string
	// UnusableRows, IncompleteRows, NodeHeaderRows and RemovedHeaderRows hold
	// 1-based row indices. RemovedHeaderRows records the index each row had
	// before any deletion shifted the grid.
	UnusableRows      []int
	IncompleteRows    []int
	NodeHeaderRows    []int
	RemovedHeaderRows []int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Entry is one rendered category of the ledger.
type Entry struct {
	Category string
	Values   []string
}

// Entries renders every category in fixed report order, including empty ones,
// the way the processing summary prints them.
func (l *Ledger) Entries() []Entry {
	return []Entry{
		{CategoryMergedEmptyCells, l.MergedEmptyCells},
		{CategoryEmptyVersionRow2, l.EmptyVersionRow2},
		{CategoryUnusableRows, rowsToStrings(l.UnusableRows)},
		{CategoryIncompleteRows, rowsToStrings(l.IncompleteRows)},
		{CategoryNodeHeaderRows, rowsToStrings(l.NodeHeaderRows)},
		{CategoryRemovedHeaderRows, rowsToStrings(l.RemovedHeaderRows)},
	}
}

// Total returns the number of recorded defects across all categories.
func (l *Ledger) Total() int {
	return len(l.MergedEmptyCells) + len(l.EmptyVersionRow2) +
		len(l.UnusableRows) + len(l.IncompleteRows) +
		len(l.NodeHeaderRows) + len(l.RemovedHeaderRows)
}

func rowsToStrings(rows []int) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = fmt.Sprintf("%d", r)
	}
	return out
}
