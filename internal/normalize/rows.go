package normalize

import (
	"fmt"
	"sort"
	"strings"

	"nodeparser/internal/logger"
	"nodeparser/internal/model"
	"nodeparser/internal/sheet"
)

// HeaderRowPolicy selects how duplicate-key header rows injected by the
// source spreadsheet tool are handled.
type HeaderRowPolicy string

const (
	// PolicyHighlight flags duplicate header rows but keeps them in place.
	PolicyHighlight HeaderRowPolicy = "highlight"
	// PolicyDelete physically removes duplicate header rows.
	PolicyDelete HeaderRowPolicy = "delete"
)

// ParsePolicy validates a policy string from config or flags.
func ParsePolicy(v string) (HeaderRowPolicy, error) {
	switch HeaderRowPolicy(strings.ToLower(strings.TrimSpace(v))) {
	case PolicyHighlight:
		return PolicyHighlight, nil
	case PolicyDelete:
		return PolicyDelete, nil
	}
	return "", fmt.Errorf("invalid header row policy %q (want %q or %q)", v, PolicyHighlight, PolicyDelete)
}

// keyTriple reads and trims the three key fields of a data row.
func keyTriple(s *sheet.Sheet, row int) (tech, nodeType, nodeVersion string) {
	tech = strings.TrimSpace(s.Cell(row, 1))
	nodeType = strings.TrimSpace(s.Cell(row, 2))
	nodeVersion = strings.TrimSpace(s.Cell(row, 3))
	return
}

// ClassifyRows walks the data rows (3..last row) and sorts each into exactly
// one category based on the key triple in columns 1-3:
//
//   - all three blank          -> unusable_rows, full row highlighted
//   - all three equal, filled  -> node_header_rows, full row highlighted
//   - one or two blank         -> incomplete_rows, full row highlighted and
//     each blank key cell marked with the stronger missing-field style
//   - all filled, not equal    -> valid, untouched
//
// A failure while processing one row is logged and that row skipped; only a
// bounds failure aborts the pass.
func ClassifyRows(s *sheet.Sheet, ledger *model.Ledger, styles *StyleSet) error {
	lastCol, err := LastColWithValue(s)
	if err != nil {
		return err
	}
	lastRow, err := LastRowWithValue(s)
	if err != nil {
		return err
	}

	for row := 3; row <= lastRow; row++ {
		tech, nodeType, nodeVersion := keyTriple(s, row)
		blanks := 0
		for _, v := range []string{tech, nodeType, nodeVersion} {
			if v == "" {
				blanks++
			}
		}

		var rowErr error
		switch {
		case blanks == 3:
			ledger.UnusableRows = append(ledger.UnusableRows, row)
			rowErr = s.SetRowStyle(row, lastCol, styles.RowIssue)
			logger.Debug("Row %d unusable -> highlighted full row", row)

		case blanks == 0 && tech == nodeType && tech == nodeVersion:
			ledger.NodeHeaderRows = append(ledger.NodeHeaderRows, row)
			rowErr = s.SetRowStyle(row, lastCol, styles.RowIssue)
			logger.Debug("Row %d node header -> highlighted full row", row)

		case blanks > 0:
			ledger.IncompleteRows = append(ledger.IncompleteRows, row)
			rowErr = s.SetRowStyle(row, lastCol, styles.RowIssue)
			for col, v := range []string{tech, nodeType, nodeVersion} {
				if v != "" {
					continue
				}
				if err := s.SetStyle(row, col+1, styles.MissingField); err != nil && rowErr == nil {
					rowErr = err
				}
			}
			logger.Debug("Row %d partial -> row highlighted, blank key cells marked", row)

		default:
			// Valid data row.
		}

		if rowErr != nil {
			logger.Warn("Error processing row %d: %v", row, rowErr)
		}
	}

	logger.Info("Row classification completed: %d unusable, %d incomplete, %d node header",
		len(ledger.UnusableRows), len(ledger.IncompleteRows), len(ledger.NodeHeaderRows))
	return nil
}

// RemoveDuplicateHeaderRows physically removes rows where the key triple is
// all-equal, or where node_type and node_version are both blank. Matching
// rows are collected in one pass and deleted from the highest index down, so
// the recorded indices refer to the grid before any deletion shifted it.
func RemoveDuplicateHeaderRows(s *sheet.Sheet, ledger *model.Ledger) error {
	lastRow, err := LastRowWithValue(s)
	if err != nil {
		return err
	}

	var doomed []int
	for row := 3; row <= lastRow; row++ {
		tech, nodeType, nodeVersion := keyTriple(s, row)
		if (tech == nodeType && tech == nodeVersion) || (nodeType == "" && nodeVersion == "") {
			doomed = append(doomed, row)
			logger.Debug("Removing header row %d: tech=%q, node_type=%q, node_version=%q",
				row, tech, nodeType, nodeVersion)
		}
	}

	ledger.RemovedHeaderRows = append(ledger.RemovedHeaderRows, doomed...)

	// Delete bottom-up so earlier indices stay valid.
	sort.Sort(sort.Reverse(sort.IntSlice(doomed)))
	for _, row := range doomed {
		if err := s.RemoveRow(row); err != nil {
			return fmt.Errorf("failed to remove row %d: %w", row, err)
		}
	}

	logger.Info("Node header removal completed. Removed %d rows", len(doomed))
	return nil
}
