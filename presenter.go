package datatable

// DefaultActionsLabel is the header label of the trailing action column.
const DefaultActionsLabel = "Actions"

// HeaderCell is one cell of the header row.
type HeaderCell struct {
	ColumnKey string
	// Kind is CellValue for headings and CellActions
	// or CellButton for the trailing columns.
	Kind      CellKind
	Label     string
	Sticky    bool
}

// Table is the renderable result of Presenter.Present.
type Table struct {
	Title      string
	Header     []HeaderCell
	Rows       []Row
	Pagination PaginationControl
	// Height of the scroll region, zero if not measured yet.
	Height int

	onRowClick func(Record)
}

// ClickRow forwards a click on the row with index that
// originated from target to the row click handler of the presenter.
// Returns if the handler was called.
func (t *Table) ClickRow(index int, target ClickTarget) bool {
	if index < 0 || index >= len(t.Rows) {
		return false
	}
	return t.Rows[index].Click(target, t.onRowClick)
}

// Clickable returns if the presenter configured a row click handler.
func (t *Table) Clickable() bool {
	return t.onRowClick != nil
}

// Presenter composes header, body rows and pagination
// of a table from records and a heading list.
//
// A Presenter covers both the plain table and the
// variant with hidden header labels and per column tooltips
// by means of HiddenHeadings and TooltipHeadings.
type Presenter struct {
	Title    string
	Headings Headings
	// HiddenHeadings keep their column but get an empty header label.
	HiddenHeadings HeadingSet
	// TooltipHeadings limits tooltips to the contained keys,
	// nil means all value columns get tooltips.
	TooltipHeadings HeadingSet

	// Actions rendered as trailing menu column if not empty.
	Actions []Action
	// Button rendered as trailing button column if not nil.
	Button *Button

	// Label derives header labels from heading keys,
	// nil means SnakeCaseToTitle.
	Label LabelFunc
	// ActionsLabel is the header label of the first trailing column,
	// empty means DefaultActionsLabel.
	ActionsLabel string
	// HideActionsLabel leaves the trailing header cells blank.
	HideActionsLabel bool

	ValueFormatter   *ValueFormatter
	ColumnFormatters map[string]Formatter

	OnRowClick   func(Record)
	OnPageChange func(page int)
}

// Present returns the table for data where page
// is normalized to a valid Pagination and height
// is the measured scroll region height (zero if unknown).
//
// Empty data results in a header only table,
// empty Headings in a header with only the trailing columns.
func (p *Presenter) Present(data []Record, page Pagination, height int) *Table {
	composer := RowComposer{
		Formatter:        p.ValueFormatter,
		ColumnFormatters: p.ColumnFormatters,
		TooltipHeadings:  p.TooltipHeadings,
	}
	table := &Table{
		Title:  p.Title,
		Header: p.HeaderCells(),
		Rows:   make([]Row, len(data)),
		Pagination: PaginationControl{
			Pagination:   NewPagination(page.CurrentPage, page.NumberOfPages),
			OnPageChange: p.OnPageChange,
		},
		Height:     max(height, 0),
		onRowClick: p.OnRowClick,
	}
	for i, record := range data {
		table.Rows[i] = composer.ComposeRow(i, record, p.Headings, p.Actions, p.Button)
	}
	return table
}

// HeaderCells returns the header row: one derived label per heading
// followed by the trailing action and button columns.
// The first trailing column is labeled with ActionsLabel,
// a second one stays blank so that both share one "Actions" caption.
func (p *Presenter) HeaderCells() []HeaderCell {
	header := make([]HeaderCell, 0, len(p.Headings)+2)
	for _, key := range p.Headings {
		cell := HeaderCell{ColumnKey: key}
		switch {
		case p.Label == nil:
			cell.Label = DeriveLabel(key, p.HiddenHeadings)
		case key != "" && !p.HiddenHeadings.Has(key):
			cell.Label = p.Label(key)
		}
		header = append(header, cell)
	}

	actionsLabel := p.ActionsLabel
	if actionsLabel == "" {
		actionsLabel = DefaultActionsLabel
	}
	if p.HideActionsLabel {
		actionsLabel = ""
	}
	if len(p.Actions) > 0 {
		header = append(header, HeaderCell{ColumnKey: ActionsColumnKey, Kind: CellActions, Label: actionsLabel, Sticky: true})
		actionsLabel = ""
	}
	if p.Button != nil {
		header = append(header, HeaderCell{ColumnKey: ButtonColumnKey, Kind: CellButton, Label: actionsLabel, Sticky: true})
	}
	return header
}
