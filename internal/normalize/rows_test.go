package normalize

import (
	"testing"

	"nodeparser/internal/model"
)

func TestClassifyRowsPartition(t *testing.T) {
	s := newPlannerSheet(t, [][]interface{}{
		{"5G", "gNB", "R1", "X", "", "", ""},   // row 3: valid
		{"", "", "", "", "", "", ""},           // row 4: all blank (placeholder below)
		{"5G", "5G", "5G", "", "", "", ""},     // row 5: duplicate header
		{"", "gNB", "R1", "X", "", "", ""},     // row 6: missing tech
		{"LTE", "", "", "", "", "", ""},        // row 7: missing type and version
		{"LTE", "eNB", "R2", "", "Y", "", ""},  // row 8: valid
	})
	// Row 4 must count as a data row, so give it content outside the keys.
	s.SetCell(4, 5, "orphan")

	styles, err := NewStyleSet(s.File())
	if err != nil {
		t.Fatal(err)
	}

	ledger := model.NewLedger()
	if err := ClassifyRows(s, ledger, styles); err != nil {
		t.Fatalf("ClassifyRows failed: %v", err)
	}

	if len(ledger.UnusableRows) != 1 || ledger.UnusableRows[0] != 4 {
		t.Errorf("unusable_rows = %v, want [4]", ledger.UnusableRows)
	}
	if len(ledger.NodeHeaderRows) != 1 || ledger.NodeHeaderRows[0] != 5 {
		t.Errorf("node_header_rows = %v, want [5]", ledger.NodeHeaderRows)
	}
	if len(ledger.IncompleteRows) != 2 || ledger.IncompleteRows[0] != 6 || ledger.IncompleteRows[1] != 7 {
		t.Errorf("incomplete_rows = %v, want [6 7]", ledger.IncompleteRows)
	}

	// Valid rows are untouched.
	if got := s.StyleID(3, 1); styles.isHighlight(got) {
		t.Errorf("valid row 3 was highlighted (style %d)", got)
	}
	if got := s.StyleID(8, 1); styles.isHighlight(got) {
		t.Errorf("valid row 8 was highlighted (style %d)", got)
	}

	// Incomplete rows carry the row highlight plus the stronger mark on each
	// blank key cell.
	if got := s.StyleID(6, 1); got != styles.MissingField {
		t.Errorf("blank tech cell style = %d, want missing-field %d", got, styles.MissingField)
	}
	if got := s.StyleID(6, 2); got != styles.RowIssue {
		t.Errorf("populated key cell style = %d, want row-issue %d", got, styles.RowIssue)
	}
	if got := s.StyleID(7, 2); got != styles.MissingField {
		t.Errorf("blank node_type cell style = %d, want missing-field %d", got, styles.MissingField)
	}
	if got := s.StyleID(7, 3); got != styles.MissingField {
		t.Errorf("blank node_version cell style = %d, want missing-field %d", got, styles.MissingField)
	}
}

func TestClassifyRowsTreatsWhitespaceAsBlank(t *testing.T) {
	s := newPlannerSheet(t, [][]interface{}{
		{"  ", "gNB", "R1", "X", "", "", ""},
	})
	styles, err := NewStyleSet(s.File())
	if err != nil {
		t.Fatal(err)
	}

	ledger := model.NewLedger()
	if err := ClassifyRows(s, ledger, styles); err != nil {
		t.Fatal(err)
	}
	if len(ledger.IncompleteRows) != 1 || ledger.IncompleteRows[0] != 3 {
		t.Errorf("incomplete_rows = %v, want [3]", ledger.IncompleteRows)
	}
}

func TestRemoveDuplicateHeaderRows(t *testing.T) {
	s := newPlannerSheet(t, [][]interface{}{
		{"5G", "gNB", "R1", "X", "", "", ""},  // row 3: keep
		{"5G", "5G", "5G", "", "", "", ""},    // row 4: all equal -> remove
		{"LTE", "", "", "z", "", "", ""},      // row 5: type+version blank -> remove
		{"LTE", "eNB", "R2", "", "Y", "", ""}, // row 6: keep
	})

	ledger := model.NewLedger()
	if err := RemoveDuplicateHeaderRows(s, ledger); err != nil {
		t.Fatalf("RemoveDuplicateHeaderRows failed: %v", err)
	}

	// Recorded indices refer to the grid before deletion.
	if len(ledger.RemovedHeaderRows) != 2 || ledger.RemovedHeaderRows[0] != 4 || ledger.RemovedHeaderRows[1] != 5 {
		t.Errorf("removed_header_rows = %v, want [4 5]", ledger.RemovedHeaderRows)
	}

	// Rows shifted up: former row 6 is now row 4.
	if got := s.Cell(3, 1); got != "5G" {
		t.Errorf("Cell(3,1) = %q, want 5G", got)
	}
	if got := s.Cell(4, 1); got != "LTE" {
		t.Errorf("Cell(4,1) = %q, want LTE", got)
	}
	if got := s.Cell(4, 2); got != "eNB" {
		t.Errorf("Cell(4,2) = %q, want eNB", got)
	}
	if got := s.Cell(5, 1); got != "" {
		t.Errorf("Cell(5,1) = %q, want empty after shift", got)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    HeaderRowPolicy
		wantErr bool
	}{
		{"highlight", PolicyHighlight, false},
		{"DELETE", PolicyDelete, false},
		{" Highlight ", PolicyHighlight, false},
		{"remove", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePolicy(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePolicy(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePolicy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
