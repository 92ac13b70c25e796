package model

// Report bundles everything one processing run produced, for the exporters.
type Report struct {
	// Source workbook path and worksheet name.
	Source string
	Sheet  string
	// BaseName is the output file name without extension; each exporter
	// appends its own.
	BaseName string
	// ProcessedAt is the run date (yyyy-mm-dd).
	ProcessedAt string

	// Hierarchy is the extracted tech -> node_type -> node_version mapping.
	// Nil when extraction was not requested or failed.
	Hierarchy *Hierarchy
	// SkippedRows lists the data rows the extractor rejected.
	SkippedRows []int

	// Ledger is the issue ledger of the normalization stages. Always present,
	// even when later stages failed.
	Ledger *Ledger
}
