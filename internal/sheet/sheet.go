package sheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet is the grid the normalization engine operates on: one worksheet of an
// open workbook, addressed by 1-based (row, column) coordinates.
type Sheet struct {
	file *excelize.File
	name string
}

// Region is a merged rectangular range. Anchor is the top-left cell that holds
// the region's logical value.
type Region struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
	Ref      string // e.g. "A1:B2"
}

// Open loads a workbook and selects the named worksheet.
// The returned error lists the available sheets when the name does not match.
func Open(path, sheetName string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %q: %w", path, err)
	}

	names := f.GetSheetList()
	for _, n := range names {
		if n == sheetName {
			return &Sheet{file: f, name: sheetName}, nil
		}
	}
	f.Close()
	return nil, fmt.Errorf("sheet %q not found, available sheets: %v", sheetName, names)
}

// FromFile wraps an already-open workbook. Used by tests and by callers that
// build workbooks in memory.
func FromFile(f *excelize.File, sheetName string) *Sheet {
	return &Sheet{file: f, name: sheetName}
}

// Name returns the worksheet name.
func (s *Sheet) Name() string {
	return s.name
}

// File exposes the underlying workbook for style registration and saving.
func (s *Sheet) File() *excelize.File {
	return s.file
}

// Cell returns the literal value at (row, col). Merged cells other than the
// anchor read as empty until the merge is resolved.
func (s *Sheet) Cell(row, col int) string {
	addr, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return ""
	}
	v, _ := s.file.GetCellValue(s.name, addr)
	return v
}

// SetCell writes a literal value at (row, col).
func (s *Sheet) SetCell(row, col int, value interface{}) error {
	addr, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return s.file.SetCellValue(s.name, addr, value)
}

// SetStyle applies a registered style ID to the single cell at (row, col).
func (s *Sheet) SetStyle(row, col, styleID int) error {
	addr, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return s.file.SetCellStyle(s.name, addr, addr, styleID)
}

// SetRowStyle applies a style ID to the cells (row, 1)..(row, lastCol).
func (s *Sheet) SetRowStyle(row, lastCol, styleID int) error {
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(lastCol, row)
	if err != nil {
		return err
	}
	return s.file.SetCellStyle(s.name, start, end, styleID)
}

// StyleID returns the style currently applied at (row, col), 0 if none.
func (s *Sheet) StyleID(row, col int) int {
	addr, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return 0
	}
	id, _ := s.file.GetCellStyle(s.name, addr)
	return id
}

// MergedRegions enumerates the merged ranges currently on the sheet.
func (s *Sheet) MergedRegions() ([]Region, error) {
	merges, err := s.file.GetMergeCells(s.name)
	if err != nil {
		return nil, err
	}

	regions := make([]Region, 0, len(merges))
	for _, m := range merges {
		startCol, startRow, err := excelize.CellNameToCoordinates(m.GetStartAxis())
		if err != nil {
			return nil, err
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(m.GetEndAxis())
		if err != nil {
			return nil, err
		}
		regions = append(regions, Region{
			StartRow: startRow,
			StartCol: startCol,
			EndRow:   endRow,
			EndCol:   endCol,
			Ref:      m.GetStartAxis() + ":" + m.GetEndAxis(),
		})
	}
	return regions, nil
}

// Unmerge dissolves a merged region. Only the anchor keeps its value; callers
// broadcast it to the rest of the range themselves.
func (s *Sheet) Unmerge(r Region) error {
	start, err := excelize.CoordinatesToCellName(r.StartCol, r.StartRow)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(r.EndCol, r.EndRow)
	if err != nil {
		return err
	}
	return s.file.UnmergeCell(s.name, start, end)
}

// RemoveRow deletes a row, shifting all subsequent rows up by one.
func (s *Sheet) RemoveRow(row int) error {
	return s.file.RemoveRow(s.name, row)
}

// Rows returns the populated cell values as a dense [row][col] grid of
// strings. Trailing empty rows and cells are not included; callers needing
// absolute bounds scan this result.
func (s *Sheet) Rows() ([][]string, error) {
	return s.file.GetRows(s.name)
}

// Save writes the workbook to path.
func (s *Sheet) Save(path string) error {
	return s.file.SaveAs(path)
}

// Close releases the underlying workbook.
func (s *Sheet) Close() error {
	return s.file.Close()
}

// IsBlank reports whether a cell value counts as empty: the zero value or
// whitespace only. Every component uses this single predicate.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
