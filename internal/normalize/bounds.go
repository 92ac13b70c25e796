// Package normalize turns a free-form node details worksheet into a clean
// rectangular grid: merged regions are dissolved, structurally invalid rows
// are flagged or removed, and every defect is recorded in an issue ledger.
package normalize

import (
	"nodeparser/internal/logger"
	"nodeparser/internal/sheet"
)

// LastRowWithValue finds the last row containing any non-empty value,
// scanning from the highest populated row downward. Returns 0 when the grid
// is completely empty.
func LastRowWithValue(s *sheet.Sheet) (int, error) {
	rows, err := s.Rows()
	if err != nil {
		return 0, err
	}

	for r := len(rows) - 1; r >= 0; r-- {
		for _, v := range rows[r] {
			if !sheet.IsBlank(v) {
				logger.Debug("Last row with value: %d", r+1)
				return r + 1, nil
			}
		}
	}
	logger.Debug("No rows with values found")
	return 0, nil
}

// LastColWithValue finds the last column containing any non-empty value,
// checked across all rows, scanning from the highest populated column
// downward. Returns 0 when the grid is completely empty.
func LastColWithValue(s *sheet.Sheet) (int, error) {
	rows, err := s.Rows()
	if err != nil {
		return 0, err
	}

	maxCol := 0
	for _, row := range rows {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}

	for c := maxCol - 1; c >= 0; c-- {
		for _, row := range rows {
			if c < len(row) && !sheet.IsBlank(row[c]) {
				logger.Debug("Last column with value: %d", c+1)
				return c + 1, nil
			}
		}
	}
	logger.Debug("No columns with values found")
	return 0, nil
}
