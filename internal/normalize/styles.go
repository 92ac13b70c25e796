package normalize

import (
	"github.com/xuri/excelize/v2"
)

// StyleSet holds the named highlight styles as registered excelize style IDs.
// Components receive the set they need instead of reaching into globals, and
// every style carries the centered alignment so a later formatting pass does
// not have to touch highlighted cells.
type StyleSet struct {
	// RowIssue marks a whole structurally invalid row (light red).
	RowIssue int
	// MissingField marks a specifically blank key cell or version label (red).
	MissingField int
	// EmptyMerge marks cells left valueless by an empty merged region (red).
	EmptyMerge int
	// Centered is the plain alignment applied to all populated cells.
	Centered int
}

// NewStyleSet registers the highlight styles on the workbook.
func NewStyleSet(f *excelize.File) (*StyleSet, error) {
	s := &StyleSet{}
	var err error

	align := &excelize.Alignment{
		Horizontal: "center",
		Vertical:   "center",
		WrapText:   true,
	}

	s.RowIssue, err = f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#FF6666"}, Pattern: 1},
		Alignment: align,
	})
	if err != nil {
		return nil, err
	}

	s.MissingField, err = f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#FF0000"}, Pattern: 1},
		Alignment: align,
	})
	if err != nil {
		return nil, err
	}

	s.EmptyMerge, err = f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#FF0000"}, Pattern: 1},
		Alignment: align,
	})
	if err != nil {
		return nil, err
	}

	s.Centered, err = f.NewStyle(&excelize.Style{
		Alignment: align,
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// isHighlight reports whether a style ID belongs to the highlight set.
func (s *StyleSet) isHighlight(styleID int) bool {
	if styleID == 0 {
		return false
	}
	return styleID == s.RowIssue || styleID == s.MissingField || styleID == s.EmptyMerge
}
