package sheet

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func newTestSheet(t *testing.T) *Sheet {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })
	return FromFile(f, "Sheet1")
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.xlsx")
	f := excelize.NewFile()
	if err := f.SetCellValue("Sheet1", "A1", "Tech"); err != nil {
		t.Fatal(err)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	s, err := Open(path, "Sheet1")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()
	if got := s.Cell(1, 1); got != "Tech" {
		t.Errorf("Cell(1,1) = %q, want Tech", got)
	}
}

func TestOpenMissingSheetListsAvailable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.xlsx")
	f := excelize.NewFile()
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	_, err := Open(path, "Node Version Planner")
	if err == nil {
		t.Fatal("Open accepted a sheet name the workbook does not have")
	}
	if !strings.Contains(err.Error(), "Node Version Planner") {
		t.Errorf("error does not name the requested sheet: %v", err)
	}
	if !strings.Contains(err.Error(), "Sheet1") {
		t.Errorf("error does not list the available sheets: %v", err)
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"x", false},
		{" x ", false},
		{"0", false},
	}

	for _, tt := range tests {
		if got := IsBlank(tt.value); got != tt.expected {
			t.Errorf("IsBlank(%q) = %v, expected %v", tt.value, got, tt.expected)
		}
	}
}

func TestCellRoundTrip(t *testing.T) {
	s := newTestSheet(t)

	if err := s.SetCell(3, 2, "hello"); err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}
	if got := s.Cell(3, 2); got != "hello" {
		t.Errorf("Cell(3,2) = %q, want %q", got, "hello")
	}
	if got := s.Cell(10, 10); got != "" {
		t.Errorf("Cell(10,10) = %q, want empty", got)
	}
}

func TestMergedRegions(t *testing.T) {
	s := newTestSheet(t)

	if err := s.SetCell(1, 1, "anchor"); err != nil {
		t.Fatal(err)
	}
	if err := s.File().MergeCell("Sheet1", "A1", "B2"); err != nil {
		t.Fatal(err)
	}

	regions, err := s.MergedRegions()
	if err != nil {
		t.Fatalf("MergedRegions failed: %v", err)
	}
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}

	r := regions[0]
	if r.StartRow != 1 || r.StartCol != 1 || r.EndRow != 2 || r.EndCol != 2 {
		t.Errorf("region coordinates = %+v", r)
	}
	if r.Ref != "A1:B2" {
		t.Errorf("region ref = %q, want A1:B2", r.Ref)
	}

	if err := s.Unmerge(r); err != nil {
		t.Fatalf("Unmerge failed: %v", err)
	}
	regions, err = s.MergedRegions()
	if err != nil {
		t.Fatal(err)
	}
	if len(regions) != 0 {
		t.Errorf("got %d regions after unmerge, want 0", len(regions))
	}
}

func TestRemoveRowShiftsUp(t *testing.T) {
	s := newTestSheet(t)

	s.SetCell(1, 1, "one")
	s.SetCell(2, 1, "two")
	s.SetCell(3, 1, "three")

	if err := s.RemoveRow(2); err != nil {
		t.Fatalf("RemoveRow failed: %v", err)
	}

	if got := s.Cell(2, 1); got != "three" {
		t.Errorf("Cell(2,1) = %q after removal, want %q", got, "three")
	}
}
