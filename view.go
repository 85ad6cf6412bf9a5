package datatable

// View is a read-only table of formatted cell strings.
type View interface {
	Title() string
	Columns() []string
	NumRows() int
	Cell(row, col int) string
}

var _ View = TableView{}

// TableView implements View for a presented Table
// using the header labels as columns.
type TableView struct {
	Table *Table
}

func (v TableView) Title() string { return v.Table.Title }

func (v TableView) Columns() []string {
	cols := make([]string, len(v.Table.Header))
	for i, h := range v.Table.Header {
		cols[i] = h.Label
	}
	return cols
}

func (v TableView) NumRows() int { return len(v.Table.Rows) }

// Cell returns the content of the cell at row and col
// or an empty string for indices out of range.
func (v TableView) Cell(row, col int) string {
	if row < 0 || row >= len(v.Table.Rows) {
		return ""
	}
	cells := v.Table.Rows[row].Cells
	if col < 0 || col >= len(cells) {
		return ""
	}
	return cells[col].Content
}
