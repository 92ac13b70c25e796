package normalize

import (
	"fmt"

	"nodeparser/internal/sheet"
)

const (
	// minRequiredColumns: 3 fixed key columns + at least 1 version column +
	// 1 comment column.
	minRequiredColumns = 5
	// minRequiredRows: 2 header rows + at least 1 data row.
	minRequiredRows = 3
)

// ShapeError reports a grid that does not meet the minimum shape required for
// processing.
type ShapeError struct {
	Dimension string // "columns" or "rows"
	Got       int
	Want      int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("sheet has only %d %s, expected at least %d", e.Got, e.Dimension, e.Want)
}

// ValidateShape checks that the grid can contain the 3 key columns, at least
// one version column, the comment column and the header rows. Pure: no
// mutation, no ledger entries.
func ValidateShape(s *sheet.Sheet) error {
	lastCol, err := LastColWithValue(s)
	if err != nil {
		return err
	}
	lastRow, err := LastRowWithValue(s)
	if err != nil {
		return err
	}

	if lastCol < minRequiredColumns {
		return &ShapeError{Dimension: "columns", Got: lastCol, Want: minRequiredColumns}
	}
	if lastRow < minRequiredRows {
		return &ShapeError{Dimension: "rows", Got: lastRow, Want: minRequiredRows}
	}
	return nil
}
