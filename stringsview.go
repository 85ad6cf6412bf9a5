package datatable

import "strings"

// StringsView is a View of string cells.
//
// A row within Rows can have fewer elements than Cols,
// in which case empty strings are returned for the missing cells.
type StringsView struct {
	Tit  string
	Cols []string
	Rows [][]string
}

var _ View = new(StringsView)

// NewStringsView returns a StringsView with the passed columns.
// If no cols are passed, the first row is used as column titles.
// Column titles are trimmed.
func NewStringsView(title string, rows [][]string, cols ...string) *StringsView {
	if len(cols) == 0 && len(rows) > 0 {
		cols = rows[0]
		rows = rows[1:]
	}
	trimmed := make([]string, len(cols))
	for i, col := range cols {
		trimmed[i] = strings.TrimSpace(col)
	}
	return &StringsView{Tit: title, Cols: trimmed, Rows: rows}
}

func (view *StringsView) Title() string     { return view.Tit }
func (view *StringsView) Columns() []string { return view.Cols }
func (view *StringsView) NumRows() int      { return len(view.Rows) }

func (view *StringsView) Cell(row, col int) string {
	if row < 0 || col < 0 || row >= len(view.Rows) || col >= len(view.Cols) {
		return ""
	}
	if col >= len(view.Rows[row]) {
		return ""
	}
	return view.Rows[row][col]
}
