package htmltable

import "html/template"

var (
	HeaderTemplate = template.Must(template.New("header").Parse("" +
		"<div class='datatable-scroll'{{if .Height}} style='height: {{.Height}}px'{{end}}>\n" +
		"<table{{if .TableClass}} class='{{.TableClass}}'{{end}}>\n" +
		"{{if .Caption}}  <caption>{{.Caption}}</caption>\n{{end}}" +
		"  <thead>\n" +
		"    <tr>{{range .Header}}<th{{if .Sticky}} class='sticky'{{end}}>{{.Label}}</th>{{end}}</tr>\n" +
		"  </thead>\n" +
		"  <tbody>\n",
	))

	RowTemplate = template.Must(template.New("row").Parse("" +
		`{{define "action"}}` +
		`{{if .URL}}<form method='post' action='{{.URL}}'><button type='submit'>{{.Label}}</button></form>` +
		`{{else}}<button type='button'>{{.Label}}</button>{{end}}` +
		`{{end}}` +
		"    <tr data-row='{{.RowIndex}}'{{if .Link}} data-href='{{.Link}}'{{end}}>" +
		"{{range .Cells}}<td{{if .Sticky}} class='sticky'{{end}}{{if .HasTooltip}} title='{{.Tooltip}}'{{end}}>" +
		`{{if .Actions}}{{range .Actions}}{{template "action" .}}{{end}}` +
		`{{else if .Button}}{{template "action" .Button}}` +
		"{{else}}{{.HTML}}{{end}}" +
		"</td>{{end}}</tr>\n",
	))

	FooterTemplate = template.Must(template.New("footer").Parse("" +
		`{{define "page"}}` +
		`{{if .URL}}<a href='{{.URL}}'>{{.Label}}</a>{{else}}<span class='disabled'>{{.Label}}</span>{{end}}` +
		`{{end}}` +
		"{{if .Empty}}    <tr><td class='no-data' colspan='{{.NumColumns}}'>{{.NoData}}</td></tr>\n{{end}}" +
		"  </tbody>\n" +
		"</table>\n" +
		"</div>\n" +
		"{{with .Pagination}}<nav class='pagination'>" +
		`{{template "page" .First}}{{template "page" .Previous}}` +
		"<span class='page-of'>{{.Label}}</span>" +
		`{{template "page" .Next}}{{template "page" .Last}}` +
		"</nav>\n{{end}}",
	))
)

// TemplateContext is passed to the header and footer templates.
type TemplateContext struct {
	TableClass string
	Caption    string
	// Height of the scroll container in pixels, zero omits the style.
	Height     int
	Header     []HeaderCellContext
	NumColumns int
	Empty      bool
	NoData     string
	Pagination *PaginationContext
}

type HeaderCellContext struct {
	Label  string
	Sticky bool
}

// RowTemplateContext is passed to the row template for every body row.
type RowTemplateContext struct {
	TemplateContext

	RowIndex int
	// Link is requested when the row is clicked, empty if rows are not clickable.
	Link  string
	Cells []CellContext
}

type CellContext struct {
	ColumnKey  string
	Sticky     bool
	Tooltip    string
	HasTooltip bool
	HTML       template.HTML
	Actions    []ActionContext
	Button     *ActionContext
}

// ActionContext renders as form posting to URL,
// or as plain button if URL is empty.
type ActionContext struct {
	Label string
	URL   string
}

type PaginationContext struct {
	Label    string
	First    PageLinkContext
	Previous PageLinkContext
	Next     PageLinkContext
	Last     PageLinkContext
}

// PageLinkContext renders as disabled label if URL is empty.
type PageLinkContext struct {
	Label string
	URL   string
}
