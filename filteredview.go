package datatable

var _ View = new(FilteredView)

// FilteredView is a window of rows and a
// selection of columns of a Source view.
type FilteredView struct {
	Source View
	// Offset index of the first row from Source.
	RowOffset int
	// Limits the number of rows, only used if > 0.
	RowLimit int
	// If not nil then the view has as many
	// columns as ColumnMapping has elements and
	// every element is a column index into the Source view.
	// If nil then the view has as many columns as the Source view.
	ColumnMapping []int
}

// ValueColumns returns a view of table without the
// trailing action and button columns.
func ValueColumns(table *Table) *FilteredView {
	mapping := make([]int, 0, len(table.Header))
	for i, h := range table.Header {
		if h.Kind == CellValue {
			mapping = append(mapping, i)
		}
	}
	return &FilteredView{Source: TableView{Table: table}, ColumnMapping: mapping}
}

func (view *FilteredView) Title() string {
	return view.Source.Title()
}

func (view *FilteredView) Columns() []string {
	sourceCols := view.Source.Columns()
	if view.ColumnMapping == nil {
		return sourceCols
	}
	mappedCols := make([]string, len(view.ColumnMapping))
	for i, iSource := range view.ColumnMapping {
		mappedCols[i] = sourceCols[iSource]
	}
	return mappedCols
}

func (view *FilteredView) NumCols() int {
	if view.ColumnMapping != nil {
		return len(view.ColumnMapping)
	}
	return len(view.Source.Columns())
}

func (view *FilteredView) NumRows() int {
	n := view.Source.NumRows() - max(view.RowOffset, 0)
	if n < 0 {
		return 0
	}
	if view.RowLimit > 0 && n > view.RowLimit {
		return view.RowLimit
	}
	return n
}

// Cell returns an empty string for indices out of range.
func (view *FilteredView) Cell(row, col int) string {
	if row < 0 || col < 0 || row >= view.NumRows() || col >= view.NumCols() {
		return ""
	}
	row += max(view.RowOffset, 0)
	if view.ColumnMapping != nil {
		col = view.ColumnMapping[col]
	}
	return view.Source.Cell(row, col)
}
