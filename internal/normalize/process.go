package normalize

import (
	"fmt"

	"nodeparser/internal/logger"
	"nodeparser/internal/model"
	"nodeparser/internal/sheet"
)

// Options configures one normalization run.
type Options struct {
	// HeaderRowPolicy selects highlight-only or physical removal of
	// duplicate-key header rows.
	HeaderRowPolicy HeaderRowPolicy
}

// DefaultOptions matches the shipped behavior: duplicate header rows are
// highlighted, never deleted.
func DefaultOptions() Options {
	return Options{HeaderRowPolicy: PolicyHighlight}
}

// Process runs the full normalization pipeline over the sheet:
//
//  1. shape validation (gate)
//  2. merge resolution
//  3. version header integrity check
//  4. row classification (or duplicate header removal, per policy)
//  5. alignment formatting
//
// Mutating stages run strictly in this order; a stage failure stops the
// pipeline without undoing earlier mutations. The ledger is valid either way.
func Process(s *sheet.Sheet, ledger *model.Ledger, styles *StyleSet, opts Options) error {
	logger.Info("Starting normalization of sheet %q", s.Name())

	if err := ValidateShape(s); err != nil {
		return fmt.Errorf("worksheet validation failed: %w", err)
	}
	logger.Info("Worksheet validation passed")

	if err := ResolveMerges(s, ledger, styles); err != nil {
		return fmt.Errorf("cell unmerging failed: %w", err)
	}

	if err := CheckVersionHeader(s, ledger, styles); err != nil {
		return fmt.Errorf("empty cell highlighting failed: %w", err)
	}

	switch opts.HeaderRowPolicy {
	case PolicyDelete:
		if err := RemoveDuplicateHeaderRows(s, ledger); err != nil {
			return fmt.Errorf("node header removal failed: %w", err)
		}
		// Remaining rows still need classification for the other categories.
		if err := ClassifyRows(s, ledger, styles); err != nil {
			return fmt.Errorf("row highlighting failed: %w", err)
		}
	default:
		if err := ClassifyRows(s, ledger, styles); err != nil {
			return fmt.Errorf("row highlighting failed: %w", err)
		}
	}

	if err := ApplyFormatting(s, styles); err != nil {
		return fmt.Errorf("cell formatting failed: %w", err)
	}

	logger.Info("Normalization completed, %d issues recorded", ledger.Total())
	return nil
}
