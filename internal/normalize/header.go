package normalize

import (
	"nodeparser/internal/logger"
	"nodeparser/internal/model"
	"nodeparser/internal/sheet"

	"github.com/xuri/excelize/v2"
)

// CheckVersionHeader verifies the version-label header row (row 2) across
// columns 4..last column. Blank cells get the missing-field highlight and are
// recorded in the ledger; the check itself never blocks later stages, since
// the extractor re-validates the header span before extracting.
func CheckVersionHeader(s *sheet.Sheet, ledger *model.Ledger, styles *StyleSet) error {
	lastCol, err := LastColWithValue(s)
	if err != nil {
		return err
	}

	for col := 4; col <= lastCol; col++ {
		if !sheet.IsBlank(s.Cell(2, col)) {
			continue
		}
		if err := s.SetStyle(2, col, styles.MissingField); err != nil {
			return err
		}
		ref, err := excelize.CoordinatesToCellName(col, 2)
		if err != nil {
			return err
		}
		ledger.EmptyVersionRow2 = append(ledger.EmptyVersionRow2, ref)
		logger.Debug("Highlighted empty version header cell at %s", ref)
	}

	logger.Info("Empty cell highlighting completed. Highlighted %d cells", len(ledger.EmptyVersionRow2))
	return nil
}
