// Package extract folds the cleaned grid into the hierarchical
// tech -> node_type -> node_version mapping, bounded by a caller-chosen
// version window.
package extract

import (
	"strconv"
	"strings"

	"nodeparser/internal/logger"
	"nodeparser/internal/model"
	"nodeparser/internal/normalize"
	"nodeparser/internal/sheet"

	"github.com/xuri/excelize/v2"
)

// Extract builds the nested mapping from the data rows, restricted to the
// version columns between startVersion and endVersion (both inclusive; empty
// means the first and last version column respectively). Rows with a blank
// key field or an all-equal key triple are skipped and their indices
// returned. The version label lookup is rebuilt on every call because the
// grid may have been mutated since the last one.
func Extract(s *sheet.Sheet, startVersion, endVersion string) (*model.Hierarchy, []int, error) {
	lastRow, err := normalize.LastRowWithValue(s)
	if err != nil {
		return nil, nil, err
	}
	lastCol, err := normalize.LastColWithValue(s)
	if err != nil {
		return nil, nil, err
	}

	// Version labels occupy row 2, columns 4..lastCol-1; the last column is
	// the free-text comment column.
	var labels []string
	var blankCells []string
	for col := 4; col <= lastCol-1; col++ {
		label := strings.TrimSpace(s.Cell(2, col))
		if label == "" {
			ref, _ := excelize.CoordinatesToCellName(col, 2)
			blankCells = append(blankCells, ref)
		}
		labels = append(labels, label)
	}
	if len(blankCells) > 0 {
		return nil, nil, &HeaderIncompleteError{Cells: blankCells}
	}

	startCol, err := resolveBound(labels, startVersion, "start", 4)
	if err != nil {
		return nil, nil, err
	}
	endCol, err := resolveBound(labels, endVersion, "end", lastCol-1)
	if err != nil {
		return nil, nil, err
	}
	if startCol >= endCol {
		return nil, nil, &InvalidRangeError{StartCol: startCol, EndCol: endCol}
	}

	logger.Info("Processing rows 3 to %d, columns %d to %d", lastRow, startCol, endCol)

	data := model.NewHierarchy()
	var skipped []int

	for row := 3; row <= lastRow; row++ {
		tech := strings.TrimSpace(s.Cell(row, 1))
		nodeType := strings.TrimSpace(s.Cell(row, 2))
		nodeVersion := strings.TrimSpace(s.Cell(row, 3))
		comment := strings.TrimSpace(s.Cell(row, lastCol))

		if tech == "" || nodeType == "" || nodeVersion == "" ||
			(tech == nodeType && tech == nodeVersion) {
			logger.Warn("Skipping incomplete row %d: tech=%q, node_type=%q, node_version=%q",
				row, tech, nodeType, nodeVersion)
			skipped = append(skipped, row)
			continue
		}

		supported := model.NewHierarchy()
		for col := startCol; col <= endCol; col++ {
			val := s.Cell(row, col)
			if sheet.IsBlank(val) {
				continue
			}
			supported.Set(labels[col-4], parseValue(val))
		}

		logger.Debug("Row %d: %s/%s/%s supports %d versions", row, tech, nodeType, nodeVersion, supported.Len())

		if supported.Len() == 0 {
			continue
		}
		if comment != "" {
			supported.Set(strings.TrimSpace(s.Cell(2, lastCol)), comment)
		}
		data.Child(tech).Child(nodeType).Set(nodeVersion, supported)
	}

	return data, skipped, nil
}

// resolveBound turns a version label into its absolute column index. An
// empty label falls back to the given default column.
func resolveBound(labels []string, version, bound string, fallback int) (int, error) {
	if strings.TrimSpace(version) == "" {
		logger.Debug("Using default %s column: %d", bound, fallback)
		return fallback, nil
	}
	for i, label := range labels {
		if label == version {
			// +4 because the label span starts at column 4.
			logger.Debug("%s version %q found at column %d", bound, version, i+4)
			return i + 4, nil
		}
	}
	return 0, &VersionNotFoundError{Version: version, Bound: bound}
}

// parseValue narrows a cell string to int64 or float64 when it is numeric,
// so numeric cells emit as JSON numbers rather than quoted strings.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
