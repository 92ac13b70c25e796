package extract

import (
	"encoding/json"
	"errors"
	"testing"

	"nodeparser/internal/model"
	"nodeparser/internal/sheet"

	"github.com/xuri/excelize/v2"
)

// newPlannerSheet builds a grid with version labels v1..v3 in columns 4-6 and
// a comment column 7.
func newPlannerSheet(t *testing.T, dataRows [][]interface{}) *sheet.Sheet {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })
	s := sheet.FromFile(f, "Sheet1")

	s.SetCell(1, 1, "Tech")
	s.SetCell(1, 2, "Node Type")
	s.SetCell(1, 3, "Node Version")
	s.SetCell(2, 4, "v1")
	s.SetCell(2, 5, "v2")
	s.SetCell(2, 6, "v3")
	s.SetCell(2, 7, "Comments")

	for i, row := range dataRows {
		for col, v := range row {
			if v != "" {
				s.SetCell(3+i, col+1, v)
			}
		}
	}
	return s
}

func leaf(t *testing.T, h *model.Hierarchy, keys ...string) *model.Hierarchy {
	t.Helper()
	cur := h
	for _, k := range keys {
		v, ok := cur.Get(k)
		if !ok {
			t.Fatalf("key %q missing (path %v)", k, keys)
		}
		cur, ok = v.(*model.Hierarchy)
		if !ok {
			t.Fatalf("key %q does not hold a nested level", k)
		}
	}
	return cur
}

func TestExtractBasic(t *testing.T) {
	// Scenario: one data row with values in v1 and v3.
	s := newPlannerSheet(t, [][]interface{}{
		{"5G", "gNB", "R1", "X", "", "Y", ""},
	})

	h, skipped, err := Extract(s, "", "")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(skipped) != 0 {
		t.Errorf("skipped = %v, want none", skipped)
	}

	node := leaf(t, h, "5G", "gNB", "R1")
	if v, _ := node.Get("v1"); v != "X" {
		t.Errorf("v1 = %v, want X", v)
	}
	if _, ok := node.Get("v2"); ok {
		t.Error("blank v2 cell produced an entry")
	}
	if v, _ := node.Get("v3"); v != "Y" {
		t.Errorf("v3 = %v, want Y", v)
	}
	if _, ok := node.Get("Comments"); ok {
		t.Error("blank comment produced an entry")
	}
}

func TestExtractSkipsDuplicateHeaderRow(t *testing.T) {
	s := newPlannerSheet(t, [][]interface{}{
		{"5G", "5G", "5G", "X", "", "", ""},
		{"5G", "gNB", "R1", "X", "", "", ""},
	})

	h, skipped, err := Extract(s, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(skipped) != 1 || skipped[0] != 3 {
		t.Errorf("skipped = %v, want [3]", skipped)
	}
	if h.Len() != 1 {
		t.Errorf("hierarchy has %d top-level keys, want 1", h.Len())
	}
}

func TestExtractSkipsMissingKeyField(t *testing.T) {
	s := newPlannerSheet(t, [][]interface{}{
		{"", "gNB", "R1", "X", "", "", ""},
	})

	h, skipped, err := Extract(s, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(skipped) != 1 || skipped[0] != 3 {
		t.Errorf("skipped = %v, want [3]", skipped)
	}
	if h.Len() != 0 {
		t.Errorf("skipped row contributed output: %v", h.Keys())
	}
}

func TestExtractCommentEntry(t *testing.T) {
	s := newPlannerSheet(t, [][]interface{}{
		{"5G", "gNB", "R1", "X", "", "", "legacy HW only"},
	})

	h, _, err := Extract(s, "", "")
	if err != nil {
		t.Fatal(err)
	}
	node := leaf(t, h, "5G", "gNB", "R1")
	if v, _ := node.Get("Comments"); v != "legacy HW only" {
		t.Errorf("comment entry = %v, want %q", v, "legacy HW only")
	}
}

func TestExtractEmptyRowContributesNothing(t *testing.T) {
	// Valid key triple but no values in the version window: the row must not
	// appear in the output, not even as an empty entry, and the comment alone
	// must not resurrect it.
	s := newPlannerSheet(t, [][]interface{}{
		{"5G", "gNB", "R1", "", "", "", "note"},
	})

	h, skipped, err := Extract(s, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(skipped) != 0 {
		t.Errorf("skipped = %v, want none", skipped)
	}
	if h.Len() != 0 {
		t.Errorf("empty row contributed output: %v", h.Keys())
	}
}

func TestExtractVersionWindow(t *testing.T) {
	s := newPlannerSheet(t, [][]interface{}{
		{"5G", "gNB", "R1", "A", "B", "C", ""},
	})

	h, _, err := Extract(s, "v2", "v3")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	node := leaf(t, h, "5G", "gNB", "R1")
	if _, ok := node.Get("v1"); ok {
		t.Error("v1 outside the window produced an entry")
	}
	if v, _ := node.Get("v2"); v != "B" {
		t.Errorf("v2 = %v, want B", v)
	}
	if v, _ := node.Get("v3"); v != "C" {
		t.Errorf("v3 = %v, want C", v)
	}
}

func TestExtractVersionNotFound(t *testing.T) {
	s := newPlannerSheet(t, [][]interface{}{
		{"5G", "gNB", "R1", "A", "B", "C", ""},
	})

	_, _, err := Extract(s, "v9", "")
	var notFound *VersionNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *VersionNotFoundError, got %v", err)
	}
	if notFound.Version != "v9" || notFound.Bound != "start" {
		t.Errorf("unexpected error detail: %+v", notFound)
	}

	_, _, err = Extract(s, "", "v0")
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *VersionNotFoundError, got %v", err)
	}
	if notFound.Bound != "end" {
		t.Errorf("unexpected bound: %+v", notFound)
	}
}

func TestExtractInvalidRange(t *testing.T) {
	s := newPlannerSheet(t, [][]interface{}{
		{"5G", "gNB", "R1", "A", "B", "C", ""},
	})

	// start == end resolves to the same column.
	_, _, err := Extract(s, "v2", "v2")
	var invalid *InvalidRangeError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidRangeError, got %v", err)
	}

	// start after end.
	_, _, err = Extract(s, "v3", "v1")
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidRangeError, got %v", err)
	}
}

func TestExtractHeaderIncomplete(t *testing.T) {
	s := newPlannerSheet(t, [][]interface{}{
		{"5G", "gNB", "R1", "A", "B", "C", ""},
	})
	s.SetCell(2, 5, " ")

	_, _, err := Extract(s, "", "")
	var incomplete *HeaderIncompleteError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected *HeaderIncompleteError, got %v", err)
	}
	if len(incomplete.Cells) != 1 || incomplete.Cells[0] != "E2" {
		t.Errorf("blank cells = %v, want [E2]", incomplete.Cells)
	}
}

func TestExtractDeterministic(t *testing.T) {
	s := newPlannerSheet(t, [][]interface{}{
		{"5G", "gNB", "R1", "X", "", "Y", "note"},
		{"LTE", "eNB", "R2", "", "Z", "", ""},
	})

	first, _, err := Extract(s, "", "")
	if err != nil {
		t.Fatal(err)
	}
	firstJSON, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		again, _, err := Extract(s, "", "")
		if err != nil {
			t.Fatal(err)
		}
		againJSON, err := json.Marshal(again)
		if err != nil {
			t.Fatal(err)
		}
		if string(firstJSON) != string(againJSON) {
			t.Fatalf("extraction %d differs:\n%s\n%s", i+2, firstJSON, againJSON)
		}
	}
}

func TestExtractNumericValues(t *testing.T) {
	s := newPlannerSheet(t, [][]interface{}{
		{"5G", "gNB", "R1", "21", "1.5", "ok", ""},
	})

	h, _, err := Extract(s, "", "")
	if err != nil {
		t.Fatal(err)
	}
	node := leaf(t, h, "5G", "gNB", "R1")
	if v, _ := node.Get("v1"); v != int64(21) {
		t.Errorf("v1 = %v (%T), want int64 21", v, v)
	}
	if v, _ := node.Get("v2"); v != 1.5 {
		t.Errorf("v2 = %v (%T), want float64 1.5", v, v)
	}
	if v, _ := node.Get("v3"); v != "ok" {
		t.Errorf("v3 = %v (%T), want string ok", v, v)
	}
}
