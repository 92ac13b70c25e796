package extract

import (
	"fmt"
)

// HeaderIncompleteError indicates the version header row has blank labels
// inside the data column span, so no column window can be resolved.
type HeaderIncompleteError struct {
	Cells []string // references of the blank label cells
}

func (e *HeaderIncompleteError) Error() string {
	return fmt.Sprintf("version header row 2 has blank labels at %v", e.Cells)
}

// VersionNotFoundError indicates a requested window bound is absent from the
// version header row. An expected, reportable outcome, not a crash.
type VersionNotFoundError struct {
	Version string
	Bound   string // "start" or "end"
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("%s version %q not found in version row", e.Bound, e.Version)
}

// InvalidRangeError indicates the resolved start column is not strictly
// before the resolved end column.
type InvalidRangeError struct {
	StartCol int
	EndCol   int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("start version column %d must be less than end version column %d", e.StartCol, e.EndCol)
}
