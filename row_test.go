package datatable

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cellContents(row Row) []string {
	contents := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		contents[i] = cell.Content
	}
	return contents
}

func TestRowComposer_ComposeRow(t *testing.T) {
	record := Record{"a": "2023-05-01", "b": nil}
	var composer RowComposer
	row := composer.ComposeRow(0, record, Headings{"a", "b"}, nil, nil)
	require.Equal(t, []string{"2023-05-01", "--"}, cellContents(row))
	require.False(t, row.Cells[0].Sticky)
	require.Equal(t, "a", row.Cells[0].ColumnKey)
}

func TestRowComposer_CellCount(t *testing.T) {
	actions := []Action{{Label: "Edit"}, {Label: "Delete"}}
	button := &Button{Label: "Details"}
	headings := Headings{"x", "y", "z"}
	tests := []struct {
		name    string
		actions []Action
		button  *Button
		want    int
	}{
		{name: "values only", want: 3},
		{name: "actions", actions: actions, want: 4},
		{name: "button", button: button, want: 4},
		{name: "actions and button", actions: actions, button: button, want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var composer RowComposer
			row := composer.ComposeRow(0, Record{"x": 1}, headings, tt.actions, tt.button)
			require.Len(t, row.Cells, tt.want)
			for i, cell := range row.Cells {
				if i < len(headings) {
					assert.Equal(t, CellValue, cell.Kind)
					assert.Equal(t, headings[i], cell.ColumnKey)
					assert.False(t, cell.Sticky)
				} else {
					assert.True(t, cell.Sticky, "trailing cell %d", i)
				}
			}
			if tt.actions != nil && tt.button != nil {
				assert.Equal(t, CellActions, row.Cells[3].Kind)
				assert.Equal(t, CellButton, row.Cells[4].Kind)
			}
		})
	}
}

func TestRowComposer_Tooltips(t *testing.T) {
	record := Record{"name": "P1", "date": "2023-05-01T08:00:00Z", "empty": ""}
	headings := Headings{"name", "date", "empty"}

	t.Run("all columns", func(t *testing.T) {
		var composer RowComposer
		row := composer.ComposeRow(0, record, headings, nil, nil)
		require.True(t, row.Cells[0].HasTooltip)
		require.Equal(t, "P1", row.Cells[0].Tooltip)
		require.True(t, row.Cells[1].HasTooltip)
		require.Equal(t, row.Cells[1].Content, row.Cells[1].Tooltip, "tooltip agrees with content")
		require.False(t, row.Cells[2].HasTooltip, "no tooltip for no-value")
	})

	t.Run("restricted", func(t *testing.T) {
		composer := RowComposer{TooltipHeadings: NewHeadingSet("date")}
		row := composer.ComposeRow(0, record, headings, nil, nil)
		require.False(t, row.Cells[0].HasTooltip)
		require.True(t, row.Cells[1].HasTooltip)
		require.Equal(t, "2023-05-01", row.Cells[1].Tooltip)
	})
}

func TestRowComposer_ColumnFormatters(t *testing.T) {
	composer := RowComposer{
		ColumnFormatters: map[string]Formatter{
			"quantity": PrintfFormatter("%v t"),
			"broken": FormatterFunc(func(any) (string, error) {
				return "", errors.New("broken")
			}),
			"upper": FormatterFunc(func(v any) (string, error) {
				s, ok := v.(string)
				if !ok {
					return "", errors.ErrUnsupported
				}
				return strings.ToUpper(s), nil
			}),
		},
	}
	row := composer.ComposeRow(0,
		Record{"quantity": 5, "broken": "2023-05-01", "upper": "retire"},
		Headings{"quantity", "broken", "upper", "missing_quantity"},
		nil, nil,
	)
	require.Equal(t, []string{"5 t", "2023-05-01", "RETIRE", "--"}, cellContents(row))
}

func TestRow_ClickContainment(t *testing.T) {
	record := Record{"id": 7}
	var (
		rowClicks    []Record
		actionClicks []Record
		buttonClicks []Record
	)
	actions := []Action{{Label: "Open", Handler: func(r Record) { actionClicks = append(actionClicks, r) }}}
	button := &Button{Label: "Details", Action: func(r Record) { buttonClicks = append(buttonClicks, r) }}
	onRowClick := func(r Record) { rowClicks = append(rowClicks, r) }

	var composer RowComposer
	row := composer.ComposeRow(0, record, Headings{"id"}, actions, button)

	require.False(t, row.Click(TargetActionMenu, onRowClick))
	require.False(t, row.Click(TargetButton, onRowClick))
	require.Empty(t, rowClicks)

	require.True(t, row.InvokeAction(0))
	require.True(t, row.PressButton())
	require.Empty(t, rowClicks, "nested controls must not reach the row handler")
	require.Equal(t, []Record{record}, actionClicks)
	require.Equal(t, []Record{record}, buttonClicks)

	require.True(t, row.Click(TargetCell, onRowClick))
	require.True(t, row.Click(TargetRow, onRowClick))
	require.Equal(t, []Record{record, record}, rowClicks)

	require.False(t, row.InvokeAction(1), "out of range")
	require.False(t, row.Click(TargetRow, nil))
}

func TestRow_NoTrailingCells(t *testing.T) {
	var composer RowComposer
	row := composer.ComposeRow(0, Record{}, Headings{"a"}, nil, nil)
	require.False(t, row.InvokeAction(0))
	require.False(t, row.PressButton())
}
