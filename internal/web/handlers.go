package web

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/domonda/go-datatable"
	"github.com/domonda/go-datatable/appstate"
	"github.com/domonda/go-datatable/htmltable"
	"github.com/domonda/go-datatable/i18n"
	"github.com/domonda/go-datatable/internal/logging"
)

// TableAnchorID is the id of the element the table scroll region starts below.
const TableAnchorID = "datatable-anchor"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang='{{.Locale}}'>
<head>
<meta charset='utf-8'>
<title>{{.Title}}</title>
<link rel='stylesheet' href='/static/datatable.css'>
<script src='/static/datatable.js' defer></script>
</head>
<body class='theme-{{.Theme}}'>
{{if .ShowProgress}}<div class='progress-overlay'>{{.Loading}}</div>
{{end}}{{if .ErrorMessage}}<div class='error' role='alert'>{{.ErrorMessage}}</div>
{{end}}<div id='notification' role='status' class='notification{{with .Notification}} {{.Kind}}{{end}}'>{{with .Notification}}{{.Message}}{{end}}</div>
<form method='post' action='/theme/toggle'><button type='submit'>{{.Theme}}</button></form>
<div id='{{.AnchorID}}' data-page='{{.Page}}'>
{{.Table}}</div>
</body>
</html>
`))

type pageContext struct {
	Title        string
	Locale       string
	Theme        appstate.Theme
	ShowProgress bool
	Loading      string
	ErrorMessage string
	Notification *appstate.Notification
	AnchorID     string
	Page         int
	Table        template.HTML
}

// handleIndex renders the explorer table page.
// Requests from HTMX get only the table markup.
//
// The optional query parameters vh and top report the
// browser window height and the top of the table anchor
// in pixels and fall back to the server options.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := queryInt(r, "page", 1)
	table := s.service.Page(ctx, page, s.tableHeight(r))
	page = table.Pagination.CurrentPage

	messages := s.service.Messages()
	writer := htmltable.NewWriter().
		WithTableClass("datatable").
		WithMessages(messages).
		WithRowLinks(fmt.Sprintf("/api/records/%%d?page=%d", page)).
		WithButtonLinks(fmt.Sprintf("/api/records/%%d/button?page=%d", page)).
		WithPageLinks("/?page=%d").
		WithColumnFormatter(appstate.KeyIcon, htmltable.ImageCellFormatter)

	var buf bytes.Buffer
	if err := writer.Write(ctx, &buf, table); err != nil {
		writeError(w, r, http.StatusInternalServerError, "rendering table failed")
		logging.FromContext(ctx).Error("rendering table failed", "error", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if isHTMX(r) {
		_, _ = w.Write(buf.Bytes())
		return
	}

	state := s.service.Store().State()
	err := pageTemplate.Execute(w, &pageContext{
		Title:        "Explorer",
		Locale:       messages.Locale(),
		Theme:        state.Theme,
		ShowProgress: state.ShowProgressOverlay,
		Loading:      messages.Message(i18n.Loading),
		ErrorMessage: state.ErrorMessageOr(""),
		Notification: state.Notification,
		AnchorID:     TableAnchorID,
		Page:         page,
		Table:        template.HTML(buf.String()), //#nosec G203 -- written by htmltable with escaped content
	})
	if err != nil {
		logging.FromContext(ctx).Error("rendering page failed", "error", err)
	}
}

func (s *Server) tableHeight(r *http.Request) int {
	sizer := datatable.NewSizer(s.opts.Margin)
	windowHeight := queryInt(r, "vh", s.opts.WindowHeight)
	if windowHeight <= 0 {
		return 0
	}
	sizer.WindowResized(windowHeight)
	top := queryInt(r, "top", s.opts.AnchorTop)
	height, _ := sizer.Remeasure(datatable.MeasurerFunc(func(anchor datatable.Anchor) (datatable.Rect, bool) {
		return datatable.Rect{Top: top}, anchor == TableAnchorID && top >= 0
	}), TableAnchorID)
	return height
}

// ThemeResponse is the JSON body of the theme toggle response.
type ThemeResponse struct {
	Theme appstate.Theme `json:"theme"`
}

func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	theme := s.service.ToggleTheme(r.Context())
	switch {
	case isHTMX(r):
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusNoContent)
	case wantsJSON(r):
		writeJSON(w, r, ThemeResponse{Theme: theme})
	default:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// LocaleResponse is the JSON body of the locale response.
type LocaleResponse struct {
	Locale string `json:"locale"`
}

func (s *Server) handleSetLocale(w http.ResponseWriter, r *http.Request) {
	locale := r.FormValue("locale")
	if locale == "" {
		writeError(w, r, http.StatusBadRequest, "locale is required")
		return
	}
	if err := s.service.SetLocale(r.Context(), locale); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if wantsJSON(r) || isHTMX(r) {
		writeJSON(w, r, LocaleResponse{Locale: s.service.Store().State().LocaleOr("")})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, s.service.Store().State())
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Refresh(r.Context()); err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, r, s.service.Store().State())
}

// handleRecordClick clicks the row of a record and returns the record.
func (s *Server) handleRecordClick(w http.ResponseWriter, r *http.Request) {
	table, index, ok := s.recordTable(w, r)
	if !ok {
		return
	}
	table.ClickRow(index, datatable.TargetRow)
	record, _ := s.service.Record(table.Pagination.CurrentPage, index)
	writeJSON(w, r, record)
}

// handleRecordButton presses the button of a record row
// and returns the resulting notification.
func (s *Server) handleRecordButton(w http.ResponseWriter, r *http.Request) {
	table, index, ok := s.recordTable(w, r)
	if !ok {
		return
	}
	if !table.Rows[index].PressButton() {
		writeError(w, r, http.StatusNotFound, "row has no button")
		return
	}
	writeJSON(w, r, s.service.Store().State().Notification)
}

func (s *Server) recordTable(w http.ResponseWriter, r *http.Request) (table *datatable.Table, index int, ok bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid record index")
		return nil, 0, false
	}
	table = s.service.Page(r.Context(), queryInt(r, "page", 1), 0)
	if index < 0 || index >= len(table.Rows) {
		writeError(w, r, http.StatusNotFound, "record not found")
		return nil, 0, false
	}
	return table, index, true
}

func queryInt(r *http.Request, key string, defaultVal int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return i
}
