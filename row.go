package datatable

import "strings"

const (
	// ActionsColumnKey is the column key of the trailing action menu cell.
	// Trailing cells are told apart from value cells by their CellKind,
	// a data heading may use the same key.
	ActionsColumnKey = "actions"
	// ButtonColumnKey is the column key of the trailing button cell.
	ButtonColumnKey = "button"
)

// Action is one entry of the per-row action menu.
type Action struct {
	Label   string
	Handler func(Record)
}

// Button configures a single trailing button per row.
type Button struct {
	Label  string
	Action func(Record)
}

// CellKind tells body value cells apart from the trailing interactive cells.
type CellKind int

const (
	CellValue CellKind = iota
	CellActions
	CellButton
)

// Cell is the display descriptor of one table cell.
type Cell struct {
	ColumnKey string
	Kind      CellKind
	Content   string
	// Tooltip mirrors Content when HasTooltip is true.
	Tooltip    string
	HasTooltip bool
	// Sticky cells are pinned to the trailing edge
	// during horizontal scrolling.
	Sticky bool

	Actions []Action
	Button  *Button
}

// Row is a composed body row.
type Row struct {
	// Index of the row within the presented data.
	Index  int
	Record Record
	Cells  []Cell
}

// ClickTarget is the element a click on a row originated from.
type ClickTarget int

const (
	TargetRow ClickTarget = iota
	TargetCell
	TargetActionMenu
	TargetButton
)

// Click forwards a click that originated from target
// to onRowClick with the full record of the row.
//
// Clicks on the action menu or the button are contained
// within those controls and never reach onRowClick.
// Returns if onRowClick was called.
func (r *Row) Click(target ClickTarget, onRowClick func(Record)) bool {
	if target == TargetActionMenu || target == TargetButton || onRowClick == nil {
		return false
	}
	onRowClick(r.Record)
	return true
}

// InvokeAction calls the handler of the action menu entry
// with the given index. The row click handler is not called.
// Returns if a handler was called.
func (r *Row) InvokeAction(index int) bool {
	cell := r.cellOfKind(CellActions)
	if cell == nil || index < 0 || index >= len(cell.Actions) {
		return false
	}
	handler := cell.Actions[index].Handler
	if handler == nil {
		return false
	}
	handler(r.Record)
	return true
}

// PressButton calls the action of the row's button cell.
// The row click handler is not called.
// Returns if the button action was called.
func (r *Row) PressButton() bool {
	cell := r.cellOfKind(CellButton)
	if cell == nil || cell.Button == nil || cell.Button.Action == nil {
		return false
	}
	cell.Button.Action(r.Record)
	return true
}

func (r *Row) cellOfKind(kind CellKind) *Cell {
	for i := range r.Cells {
		if r.Cells[i].Kind == kind {
			return &r.Cells[i]
		}
	}
	return nil
}

// RowComposer assembles the cells of body rows.
//
// The zero value uses DefaultValueFormatter and
// shows tooltips for all value cells.
type RowComposer struct {
	// Formatter used for all value cells, nil means DefaultValueFormatter.
	Formatter *ValueFormatter
	// ColumnFormatters override Formatter per column key.
	// A column formatter returning errors.ErrUnsupported
	// or any other error falls back to Formatter.
	ColumnFormatters map[string]Formatter
	// TooltipHeadings limits tooltips to the contained keys.
	// If nil, every value cell with a value gets a tooltip.
	TooltipHeadings HeadingSet
}

// ComposeRow returns the row for record with one value cell per heading
// in heading order, followed by an action menu cell if actions
// are passed and a button cell if button is not nil.
func (c *RowComposer) ComposeRow(index int, record Record, headings Headings, actions []Action, button *Button) Row {
	numCells := len(headings)
	if len(actions) > 0 {
		numCells++
	}
	if button != nil {
		numCells++
	}
	row := Row{
		Index:  index,
		Record: record,
		Cells:  make([]Cell, 0, numCells),
	}
	for _, key := range headings {
		row.Cells = append(row.Cells, c.valueCell(key, record[key]))
	}
	if len(actions) > 0 {
		row.Cells = append(row.Cells, Cell{
			ColumnKey: ActionsColumnKey,
			Kind:      CellActions,
			Content:   actionLabels(actions),
			Sticky:    true,
			Actions:   actions,
		})
	}
	if button != nil {
		row.Cells = append(row.Cells, Cell{
			ColumnKey: ButtonColumnKey,
			Kind:      CellButton,
			Content:   button.Label,
			Sticky:    true,
			Button:    button,
		})
	}
	return row
}

// FormatCell returns the display text of value in the column key.
func (c *RowComposer) FormatCell(key string, value any) string {
	return c.classifyCell(key, value).Text
}

func (c *RowComposer) classifyCell(key string, value any) Classification {
	if f, ok := c.ColumnFormatters[key]; ok && f != nil {
		str, err := f.Format(value)
		if err == nil {
			return Classification{Kind: KindPlain, Text: str}
		}
	}
	return c.Formatter.Classify(value)
}

func (c *RowComposer) valueCell(key string, value any) Cell {
	class := c.classifyCell(key, value)
	cell := Cell{
		ColumnKey: key,
		Kind:      CellValue,
		Content:   class.Text,
	}
	if c.TooltipHeadings == nil || c.TooltipHeadings.Has(key) {
		if c.Formatter.Classify(value).Kind != KindNoValue {
			cell.Tooltip = class.Text
			cell.HasTooltip = true
		}
	}
	return cell
}

func actionLabels(actions []Action) string {
	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = a.Label
	}
	return strings.Join(labels, ", ")
}
