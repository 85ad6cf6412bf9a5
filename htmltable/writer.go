// Package htmltable writes presented tables as HTML.
//
// The output is a scroll container with the measured height,
// the table with sticky trailing action columns and a pagination
// navigation. All texts are HTML escaped unless a column
// formatter returns raw HTML.
//
// Example usage:
//
//	table := presenter.Present(records, pagination, height)
//	err := htmltable.NewWriter().
//	    WithTableClass("table").
//	    WithRowLinks("/api/records/%d").
//	    WithPageLinks("?page=%d").
//	    Write(ctx, w, table)
package htmltable

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"maps"

	"github.com/domonda/go-datatable"
	"github.com/domonda/go-datatable/i18n"
)

// Writer writes a datatable.Table as HTML.
//
// Writer is immutable after creation - all With* methods return
// a new Writer instance with the modified configuration.
type Writer struct {
	tableClass       string
	messages         *i18n.Printer
	rowLinks         string
	buttonLinks      string
	actionLinks      string
	pageLinks        string
	columnFormatters map[string]CellFormatter
	headerTemplate   *template.Template
	rowTemplate      *template.Template
	footerTemplate   *template.Template
}

// NewWriter creates a new HTML table writer with
// default templates, English messages and no links.
func NewWriter() *Writer {
	return &Writer{
		messages:         i18n.NewPrinter(i18n.DefaultLocale),
		columnFormatters: make(map[string]CellFormatter),
		headerTemplate:   HeaderTemplate,
		rowTemplate:      RowTemplate,
		footerTemplate:   FooterTemplate,
	}
}

// Write writes table as HTML to dest.
//
// Value cells are formatted by the column formatter registered
// for their column key. If there is none or it returns
// errors.ErrUnsupported, the escaped cell content is used.
func (w *Writer) Write(ctx context.Context, dest io.Writer, table *datatable.Table) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	templData := &RowTemplateContext{
		TemplateContext: TemplateContext{
			TableClass: w.tableClass,
			Caption:    table.Title,
			Height:     table.Height,
			Header:     make([]HeaderCellContext, len(table.Header)),
			NumColumns: len(table.Header),
			Empty:      len(table.Rows) == 0,
			NoData:     w.messages.Message(i18n.NoData),
			Pagination: w.paginationContext(table.Pagination.Pagination),
		},
	}
	for i, cell := range table.Header {
		label := cell.Label
		if cell.Kind != datatable.CellValue && label == datatable.DefaultActionsLabel {
			label = w.messages.Message(i18n.Actions)
		}
		templData.Header[i] = HeaderCellContext{Label: label, Sticky: cell.Sticky}
	}

	err := w.headerTemplate.Execute(dest, templData.TemplateContext)
	if err != nil {
		return err
	}

	for _, row := range table.Rows {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		templData.RowIndex = row.Index
		templData.Link = ""
		if w.rowLinks != "" && table.Clickable() {
			templData.Link = fmt.Sprintf(w.rowLinks, row.Index)
		}
		templData.Cells, err = w.cellContexts(ctx, row)
		if err != nil {
			return err
		}
		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
	}

	return w.footerTemplate.Execute(dest, templData.TemplateContext)
}

func (w *Writer) cellContexts(ctx context.Context, row datatable.Row) ([]CellContext, error) {
	cells := make([]CellContext, len(row.Cells))
	for i, cell := range row.Cells {
		c := CellContext{
			ColumnKey:  cell.ColumnKey,
			Sticky:     cell.Sticky,
			Tooltip:    cell.Tooltip,
			HasTooltip: cell.HasTooltip,
		}
		switch cell.Kind {
		case datatable.CellActions:
			c.Actions = make([]ActionContext, len(cell.Actions))
			for a, action := range cell.Actions {
				c.Actions[a] = ActionContext{Label: action.Label}
				if w.actionLinks != "" {
					c.Actions[a].URL = fmt.Sprintf(w.actionLinks, row.Index, a)
				}
			}
		case datatable.CellButton:
			c.Button = &ActionContext{Label: cell.Button.Label}
			if w.buttonLinks != "" {
				c.Button.URL = fmt.Sprintf(w.buttonLinks, row.Index)
			}
		default:
			html, err := w.formatCell(ctx, row, cell)
			if err != nil {
				return nil, err
			}
			c.HTML = html
		}
		cells[i] = c
	}
	return cells, nil
}

func (w *Writer) formatCell(ctx context.Context, row datatable.Row, cell datatable.Cell) (template.HTML, error) {
	if formatter, ok := w.columnFormatters[cell.ColumnKey]; ok {
		str, isRaw, err := formatter.FormatCell(ctx, &Cell{
			Row:       row.Index,
			ColumnKey: cell.ColumnKey,
			Value:     row.Record[cell.ColumnKey],
			Content:   cell.Content,
		})
		if err != nil && !errors.Is(err, errors.ErrUnsupported) {
			return "", fmt.Errorf("formatting row %d column %q: %w", row.Index, cell.ColumnKey, err)
		}
		if err == nil {
			if !isRaw {
				str = template.HTMLEscapeString(str)
			}
			return template.HTML(str), nil //#nosec G203
		}
	}
	return template.HTML(template.HTMLEscapeString(cell.Content)), nil //#nosec G203
}

// paginationContext is never nil so that a table
// without data still shows page 1 of 1.
func (w *Writer) paginationContext(p datatable.Pagination) *PaginationContext {
	link := func(id string, page int, enabled bool) PageLinkContext {
		l := PageLinkContext{Label: w.messages.Message(id)}
		if enabled && w.pageLinks != "" {
			l.URL = fmt.Sprintf(w.pageLinks, page)
		}
		return l
	}
	return &PaginationContext{
		Label:    w.messages.Sprintf(i18n.PageOf, p.CurrentPage, p.LastPage()),
		First:    link(i18n.First, 1, p.HasPrevious()),
		Previous: link(i18n.Previous, p.CurrentPage-1, p.HasPrevious()),
		Next:     link(i18n.Next, p.CurrentPage+1, p.HasNext()),
		Last:     link(i18n.Last, p.LastPage(), p.HasNext()),
	}
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WithTableClass returns a new writer with the specified CSS class for the table element.
// The class will be rendered as: <table class='tableClass'>
func (w *Writer) WithTableClass(tableClass string) *Writer {
	mod := w.clone()
	mod.tableClass = tableClass
	return mod
}

// WithMessages returns a new writer using messages
// for the actions header, pagination and empty table texts.
func (w *Writer) WithMessages(messages *i18n.Printer) *Writer {
	mod := w.clone()
	mod.messages = messages
	return mod
}

// WithLocale is a shortcut for WithMessages(i18n.NewPrinter(locale)).
func (w *Writer) WithLocale(locale string) *Writer {
	return w.WithMessages(i18n.NewPrinter(locale))
}

// WithRowLinks returns a new writer that renders a data-href attribute
// with the row index formatted into format on the rows of clickable tables.
// Clicks on buttons and forms within the row must not follow the link.
//
// Example:
//
//	writer := htmltable.NewWriter().WithRowLinks("/api/records/%d")
//	// Produces: <tr data-row='0' data-href='/api/records/0'>
func (w *Writer) WithRowLinks(format string) *Writer {
	mod := w.clone()
	mod.rowLinks = format
	return mod
}

// WithButtonLinks returns a new writer that renders the button cell
// as form posting to format with the row index formatted into it.
func (w *Writer) WithButtonLinks(format string) *Writer {
	mod := w.clone()
	mod.buttonLinks = format
	return mod
}

// WithActionLinks returns a new writer that renders every action
// as form posting to format with the row and action index formatted into it.
func (w *Writer) WithActionLinks(format string) *Writer {
	mod := w.clone()
	mod.actionLinks = format
	return mod
}

// WithPageLinks returns a new writer that renders pagination
// links with the page number formatted into format.
func (w *Writer) WithPageLinks(format string) *Writer {
	mod := w.clone()
	mod.pageLinks = format
	return mod
}

// WithColumnFormatter returns a new writer with the formatter registered for the column key.
// If nil is passed as formatter, any previously registered formatter for this column is removed.
func (w *Writer) WithColumnFormatter(columnKey string, formatter CellFormatter) *Writer {
	mod := w.clone()
	mod.columnFormatters = maps.Clone(w.columnFormatters)
	if mod.columnFormatters == nil {
		mod.columnFormatters = make(map[string]CellFormatter)
	}
	if formatter != nil {
		mod.columnFormatters[columnKey] = formatter
	} else {
		delete(mod.columnFormatters, columnKey)
	}
	return mod
}

// WithRawColumn returns a new writer that interprets the content
// of the column as raw HTML.
//
// Warning: Only use this for trusted content to avoid XSS vulnerabilities.
func (w *Writer) WithRawColumn(columnKey string) *Writer {
	return w.WithColumnFormatter(columnKey, RawCellFormatter)
}

// WithTemplates returns a new writer with custom templates.
// The header and footer templates receive a TemplateContext,
// the row template a RowTemplateContext.
func (w *Writer) WithTemplates(headerTemplate, rowTemplate, footerTemplate *template.Template) *Writer {
	mod := w.clone()
	mod.headerTemplate = headerTemplate
	mod.rowTemplate = rowTemplate
	mod.footerTemplate = footerTemplate
	return mod
}

// TableClass returns the CSS class configured for the table element.
func (w *Writer) TableClass() string {
	return w.tableClass
}

// Locale returns the locale of the configured messages.
func (w *Writer) Locale() string {
	return w.messages.Locale()
}
