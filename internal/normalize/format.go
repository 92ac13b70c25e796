package normalize

import (
	"nodeparser/internal/logger"
	"nodeparser/internal/sheet"
)

// ApplyFormatting centers every populated cell. Cells already carrying a
// highlight style are left alone: excelize styles are whole-cell, so writing
// the plain centered style over them would erase the fill. The highlight
// styles carry the same alignment themselves.
func ApplyFormatting(s *sheet.Sheet, styles *StyleSet) error {
	rows, err := s.Rows()
	if err != nil {
		return err
	}

	count := 0
	for r, row := range rows {
		for c, v := range row {
			if sheet.IsBlank(v) {
				continue
			}
			if styles.isHighlight(s.StyleID(r+1, c+1)) {
				continue
			}
			if err := s.SetStyle(r+1, c+1, styles.Centered); err != nil {
				return err
			}
			count++
		}
	}

	logger.Info("Cell formatting completed. Formatted %d cells", count)
	return nil
}
