// Package termtable renders presented tables as interactive
// terminal UI using bubbletea.
package termtable

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/domonda/go-datatable"
	"github.com/domonda/go-datatable/appstate"
	"github.com/domonda/go-datatable/i18n"
)

// DefaultMargin is the number of lines kept free
// below the table for the help and status lines.
const DefaultMargin = 3

// MaxColumnWidth limits the width of a single column.
const MaxColumnWidth = 40

// Source presents the table for a page.
type Source interface {
	Table(page int) *datatable.Table
}

// SourceFunc implements Source for a function.
type SourceFunc func(page int) *datatable.Table

func (f SourceFunc) Table(page int) *datatable.Table { return f(page) }

// Options of a Model.
type Options struct {
	Source Source
	// Store is optional, without it the theme is only toggled locally.
	Store    *appstate.Store
	Messages *i18n.Printer
	// Margin below the table, zero means DefaultMargin.
	Margin int
}

// Model is a bubbletea model showing one page of a table.
type Model struct {
	ctx      context.Context
	source   Source
	store    *appstate.Store
	messages *i18n.Printer

	sizer   *datatable.Sizer
	table   table.Model
	current *datatable.Table
	page    int
	theme   appstate.Theme
	styles  Styles
	width   int
	status  string
}

// New returns a Model showing the first page of opts.Source.
func New(ctx context.Context, opts Options) Model {
	margin := opts.Margin
	if margin <= 0 {
		margin = DefaultMargin
	}
	messages := opts.Messages
	if messages == nil {
		messages = i18n.NewPrinter(i18n.DefaultLocale)
	}
	theme := appstate.DefaultTheme
	if opts.Store != nil {
		theme = opts.Store.State().Theme
	}
	m := Model{
		ctx:      ctx,
		source:   opts.Source,
		store:    opts.Store,
		messages: messages,
		sizer:    datatable.NewSizer(margin),
		table:    table.New(table.WithFocused(true)),
		page:     1,
		theme:    theme,
		styles:   ThemeStyles(theme),
	}
	m.table.SetStyles(m.styles.Table)
	m.load()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.sizer.WindowResized(msg.Height)
		m.remeasure()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "t":
			m.toggleTheme()
			return m, nil
		case "enter":
			m.current.ClickRow(m.table.Cursor(), datatable.TargetRow)
			return m, nil
		case "a":
			if row := m.selectedRow(); row != nil {
				row.InvokeAction(0)
			}
			return m, nil
		case "b":
			if row := m.selectedRow(); row != nil {
				row.PressButton()
			}
			return m, nil
		case "n", "right":
			m.changePage(m.page + 1)
			return m, nil
		case "p", "left":
			m.changePage(m.page - 1)
			return m, nil
		case "home":
			m.changePage(1)
			return m, nil
		case "end":
			m.changePage(m.current.Pagination.LastPage())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteByte('\n')
	if len(m.current.Rows) == 0 {
		b.WriteString(m.styles.Info.Render(m.messages.Message(i18n.NoData)))
	} else {
		b.WriteString(m.table.View())
	}
	b.WriteByte('\n')
	b.WriteString(m.footerView())
	return b.String()
}

// Height returns the measured height of the table region
// and whether it is based on a known window size.
func (m Model) Height() (int, bool) {
	return m.sizer.Height()
}

// Page returns the current page number.
func (m Model) Page() int {
	return m.page
}

// Theme returns the theme used for rendering.
func (m Model) Theme() appstate.Theme {
	return m.theme
}

// Table returns the presented table of the current page.
func (m Model) Table() *datatable.Table {
	return m.current
}

// Cursor returns the index of the selected row.
func (m Model) Cursor() int {
	return m.table.Cursor()
}

func (m *Model) load() {
	m.current = m.source.Table(m.page)
	m.page = m.current.Pagination.CurrentPage

	rows := make([][]string, 0, len(m.current.Rows)+1)
	if strs, err := datatable.ViewStrings(m.ctx, datatable.TableView{Table: m.current}, true); err == nil {
		rows = strs
	}
	widths := datatable.StringColumnWidths(rows, len(m.current.Header))
	columns := make([]table.Column, len(m.current.Header))
	for i, h := range m.current.Header {
		columns[i] = table.Column{Title: h.Label, Width: min(max(widths[i], 1), MaxColumnWidth)}
	}
	tableRows := make([]table.Row, len(m.current.Rows))
	for i := range m.current.Rows {
		tableRows[i] = table.Row(rows[i+1])
	}

	// Rows must never have more cells than there are columns
	m.table.SetRows(nil)
	m.table.SetColumns(columns)
	m.table.SetRows(tableRows)
	m.table.SetCursor(0)
	m.current.Height, _ = m.sizer.Height()
}

func (m *Model) remeasure() {
	measurer := datatable.MeasurerFunc(func(anchor datatable.Anchor) (datatable.Rect, bool) {
		header, ok := anchor.(string)
		if !ok {
			return datatable.Rect{}, false
		}
		return datatable.Rect{Top: lipgloss.Height(header), Width: m.width}, true
	})
	height, _ := m.sizer.Remeasure(measurer, m.headerView())
	m.current.Height = height
	m.table.SetHeight(height)
}

func (m *Model) changePage(page int) {
	control := m.current.Pagination
	target := datatable.NewPagination(page, control.NumberOfPages).CurrentPage
	if target == control.CurrentPage {
		return
	}
	// Notifies the presenter if it has a page change handler
	control.ChangePageTo(target)
	m.page = target
	m.load()
	m.remeasure()
}

func (m *Model) toggleTheme() {
	if m.store != nil {
		m.theme = m.store.Dispatch(m.ctx, appstate.ToggleTheme{}).Theme
	} else {
		m.theme = m.theme.Toggled()
	}
	m.styles = ThemeStyles(m.theme)
	m.table.SetStyles(m.styles.Table)
}

func (m *Model) selectedRow() *datatable.Row {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.current.Rows) {
		return nil
	}
	return &m.current.Rows[cursor]
}

func (m Model) headerView() string {
	title := m.current.Title
	if title == "" {
		title = "datatable"
	}
	info := fmt.Sprintf("%s · %s", m.pageLabel(), m.theme)
	if m.store != nil && m.store.State().ShowProgressOverlay {
		info += " · " + m.messages.Message(i18n.Loading)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(title),
		m.styles.Info.Render(info),
	)
}

func (m Model) pageLabel() string {
	p := m.current.Pagination.Pagination
	return m.messages.Sprintf(i18n.PageOf, p.CurrentPage, p.LastPage())
}

func (m Model) footerView() string {
	lines := []string{
		m.styles.Help.Render("↑/↓ select · enter open · a action · b button · n/p page · t theme · q quit"),
	}
	if m.store != nil {
		state := m.store.State()
		if state.ErrorMessage != nil {
			lines = append(lines, m.styles.Error.Render(*state.ErrorMessage))
		}
		if n := state.Notification; n != nil {
			style := m.styles.Notification
			if n.Kind == appstate.NotificationError {
				style = m.styles.Error
			}
			lines = append(lines, style.Render(n.Message))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
