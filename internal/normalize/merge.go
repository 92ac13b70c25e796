package normalize

import (
	"fmt"

	"nodeparser/internal/logger"
	"nodeparser/internal/model"
	"nodeparser/internal/sheet"
)

// ResolveMerges dissolves every merged region on the sheet. A region with a
// non-empty anchor value has that value broadcast to every cell of the former
// range; a region with a blank anchor is recorded under merged_empty_cells
// and every cell of it gets the empty-merge highlight instead of a value.
//
// The operation is idempotent: a second call sees no merged regions and does
// nothing. Failures are best-effort: regions dissolved before the error are
// not re-merged.
func ResolveMerges(s *sheet.Sheet, ledger *model.Ledger, styles *StyleSet) error {
	regions, err := s.MergedRegions()
	if err != nil {
		return fmt.Errorf("failed to enumerate merged regions: %w", err)
	}
	logger.Debug("Found %d merged cell ranges", len(regions))

	// Iterate over the snapshot; the sheet's region list shrinks as we go.
	for _, region := range regions {
		anchorValue := s.Cell(region.StartRow, region.StartCol)
		empty := sheet.IsBlank(anchorValue)
		if empty {
			ledger.MergedEmptyCells = append(ledger.MergedEmptyCells, region.Ref)
			logger.Debug("Empty merged cell range found: %s", region.Ref)
		}

		if err := s.Unmerge(region); err != nil {
			return fmt.Errorf("failed to unmerge %s: %w", region.Ref, err)
		}
		logger.Debug("Unmerged range: %s", region.Ref)

		for row := region.StartRow; row <= region.EndRow; row++ {
			for col := region.StartCol; col <= region.EndCol; col++ {
				if empty {
					if err := s.SetStyle(row, col, styles.EmptyMerge); err != nil {
						return fmt.Errorf("failed to highlight empty merge at %s: %w", region.Ref, err)
					}
					continue
				}
				if err := s.SetCell(row, col, anchorValue); err != nil {
					return fmt.Errorf("failed to fill %s: %w", region.Ref, err)
				}
			}
		}
	}

	logger.Info("Cell unmerging completed. Processed %d merged ranges", len(regions))
	return nil
}
