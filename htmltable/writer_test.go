package htmltable

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domonda/go-datatable"
)

func ExampleWriter() {
	presenter := datatable.Presenter{
		Title:           "Credits",
		Headings:        datatable.Headings{"project_name", "vintage_year"},
		TooltipHeadings: datatable.NewHeadingSet("project_name"),
		Button:          &datatable.Button{Label: "Details"},
		OnRowClick:      func(datatable.Record) {},
	}
	table := presenter.Present(
		[]datatable.Record{
			{"project_name": "P1 <x>", "vintage_year": 2020},
			{"project_name": nil},
		},
		datatable.Pagination{CurrentPage: 1, NumberOfPages: 3},
		480,
	)

	NewWriter().
		WithTableClass("table").
		WithRowLinks("/api/records/%d").
		WithButtonLinks("/api/records/%d/button").
		WithPageLinks("?page=%d").
		Write(context.Background(), os.Stdout, table)

	// Output:
	// <div class='datatable-scroll' style='height: 480px'>
	// <table class='table'>
	//   <caption>Credits</caption>
	//   <thead>
	//     <tr><th>Project Name</th><th>Vintage Year</th><th class='sticky'>Actions</th></tr>
	//   </thead>
	//   <tbody>
	//     <tr data-row='0' data-href='/api/records/0'><td title='P1 &lt;x&gt;'>P1 &lt;x&gt;</td><td>2020</td><td class='sticky'><form method='post' action='/api/records/0/button'><button type='submit'>Details</button></form></td></tr>
	//     <tr data-row='1' data-href='/api/records/1'><td>--</td><td>--</td><td class='sticky'><form method='post' action='/api/records/1/button'><button type='submit'>Details</button></form></td></tr>
	//   </tbody>
	// </table>
	// </div>
	// <nav class='pagination'><span class='disabled'>First</span><span class='disabled'>Previous</span><span class='page-of'>Page 1 of 3</span><a href='?page=2'>Next</a><a href='?page=3'>Last</a></nav>
}

func writeTable(t *testing.T, w *Writer, table *datatable.Table) string {
	t.Helper()
	var buf bytes.Buffer
	err := w.Write(context.Background(), &buf, table)
	require.NoError(t, err)
	return buf.String()
}

func TestWriter_EmptyTable(t *testing.T) {
	p := datatable.Presenter{Headings: datatable.Headings{"icon", "action"}, HiddenHeadings: datatable.NewHeadingSet("icon")}
	got := writeTable(t, NewWriter().WithLocale("de"), p.Present(nil, datatable.Pagination{}, 0))

	assert.Contains(t, got, "<div class='datatable-scroll'>\n", "no height style while unmeasured")
	assert.Contains(t, got, "<tr><th></th><th>Action</th></tr>")
	assert.Contains(t, got, "<td class='no-data' colspan='2'>Keine Daten</td>")
	assert.Contains(t, got, "<nav class='pagination'>"+
		"<span class='disabled'>Erste</span><span class='disabled'>Zurück</span>"+
		"<span class='page-of'>Seite 1 von 1</span>"+
		"<span class='disabled'>Weiter</span><span class='disabled'>Letzte</span></nav>")
	assert.NotContains(t, got, "<a href")
	assert.NotContains(t, got, "data-row")
}

func TestWriter_Actions(t *testing.T) {
	p := datatable.Presenter{
		Headings: datatable.Headings{"name"},
		Actions:  []datatable.Action{{Label: "Retire"}, {Label: "Transfer"}},
		Button:   &datatable.Button{Label: "Details"},
	}
	table := p.Present([]datatable.Record{{"name": "A"}}, datatable.Pagination{}, 0)

	got := writeTable(t, NewWriter().WithLocale("es").WithActionLinks("/rows/%d/actions/%d").WithRowLinks("/rows/%d"), table)
	assert.Contains(t, got, "<th class='sticky'>Acciones</th><th class='sticky'></th>")
	assert.Contains(t, got, "<form method='post' action='/rows/0/actions/1'><button type='submit'>Transfer</button></form>")
	assert.Contains(t, got, "<button type='button'>Details</button>", "button without link")
	assert.Contains(t, got, "<tr data-row='0'>", "no row link without row click handler")
}

func TestWriter_DataHeadingLabeledActions(t *testing.T) {
	p := datatable.Presenter{Headings: datatable.Headings{"actions"}, Button: &datatable.Button{Label: "Details"}}
	table := p.Present([]datatable.Record{{"actions": "retire"}}, datatable.Pagination{}, 0)

	got := writeTable(t, NewWriter().WithLocale("de"), table)
	assert.Contains(t, got, "<tr><th>Actions</th><th class='sticky'>Aktionen</th></tr>")
}

func TestWriter_ColumnFormatters(t *testing.T) {
	p := datatable.Presenter{Headings: datatable.Headings{"icon", "html", "code"}}
	table := p.Present([]datatable.Record{
		{"icon": "https://example.com/i.png", "html": "<b>bold</b>", "code": "x<y"},
		{"icon": "javascript:alert(1)", "html": nil},
	}, datatable.Pagination{}, 0)

	got := writeTable(t, NewWriter().
		WithColumnFormatter("icon", ImageCellFormatter).
		WithRawColumn("html").
		WithColumnFormatter("code", HTMLCodeCellFormatter),
		table,
	)
	assert.Contains(t, got, "<img src='https://example.com/i.png' alt=''>")
	assert.Contains(t, got, "<b>bold</b>")
	assert.Contains(t, got, "<code>x&lt;y</code>")
	assert.Contains(t, got, ">javascript:alert(1)</td>", "unsafe image source falls back to escaped content")
	assert.NotContains(t, got, "<img src='javascript")
}

func TestWriter_FormatterError(t *testing.T) {
	p := datatable.Presenter{Headings: datatable.Headings{"json"}}
	table := p.Present([]datatable.Record{{"json": "{not json"}}, datatable.Pagination{}, 0)

	var buf bytes.Buffer
	err := NewWriter().WithColumnFormatter("json", JSONCellFormatter("")).Write(context.Background(), &buf, table)
	require.Error(t, err)
	require.Contains(t, err.Error(), `column "json"`)
}

func TestWriter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := NewWriter().Write(ctx, &buf, (&datatable.Presenter{}).Present(nil, datatable.Pagination{}, 0))
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, buf.Len())
}

func TestWriter_Immutable(t *testing.T) {
	base := NewWriter()
	mod := base.WithTableClass("x").WithLocale("de").WithColumnFormatter("a", RawCellFormatter)

	assert.Equal(t, "", base.TableClass())
	assert.Equal(t, "en", base.Locale())
	assert.Empty(t, base.columnFormatters)
	assert.Equal(t, "x", mod.TableClass())
	assert.Equal(t, "de", mod.Locale())
	assert.Len(t, mod.columnFormatters, 1)

	removed := mod.WithColumnFormatter("a", nil)
	assert.Empty(t, removed.columnFormatters)
	assert.Len(t, mod.columnFormatters, 1)
}

func TestWriter_WithTemplates(t *testing.T) {
	header := template.Must(template.New("header").Parse("<ul>\n"))
	row := template.Must(template.New("row").Parse("{{range .Cells}}<li>{{.HTML}}</li>{{end}}\n"))
	footer := template.Must(template.New("footer").Parse("</ul>"))

	p := datatable.Presenter{Headings: datatable.Headings{"a"}}
	table := p.Present([]datatable.Record{{"a": 1}, {"a": 2}}, datatable.Pagination{}, 0)

	base := NewWriter()
	got := writeTable(t, base.WithTemplates(header, row, footer), table)
	assert.Equal(t, "<ul>\n<li>1</li>\n<li>2</li>\n</ul>", got)
	assert.Same(t, HeaderTemplate, base.headerTemplate)
}
