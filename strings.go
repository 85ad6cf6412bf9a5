package datatable

import (
	"context"
	"io"
	"strings"
	"unicode/utf8"
)

// ViewStrings returns the cells of view as rows of strings,
// optionally starting with the column titles as header row.
func ViewStrings(ctx context.Context, view View, addHeaderRow bool) (rows [][]string, err error) {
	numCols := len(view.Columns())

	if addHeaderRow {
		rows = append(rows, append([]string(nil), view.Columns()...))
	}

	for row := 0; row < view.NumRows(); row++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		rowStrs := make([]string, numCols)
		for col := range rowStrs {
			rowStrs[col] = view.Cell(row, col)
		}
		rows = append(rows, rowStrs)
	}

	return rows, nil
}

// StringColumnWidths returns the column widths of the passed
// table as count of UTF-8 runes.
// A negative numCols uses the length of the longest row.
func StringColumnWidths(rows [][]string, numCols int) []int {
	if numCols < 0 {
		for _, row := range rows {
			if rowCols := len(row); rowCols > numCols {
				numCols = rowCols
			}
		}
		if numCols <= 0 {
			return nil
		}
	}
	colWidths := make([]int, numCols)
	for row := range rows {
		for col := 0; col < numCols && col < len(rows[row]); col++ {
			numRunes := utf8.RuneCountInString(rows[row][col])
			if numRunes > colWidths[col] {
				colWidths[col] = numRunes
			}
		}
	}
	return colWidths
}

// WriteText writes view as plain text with columns
// padded to equal width and separated by two spaces.
func WriteText(ctx context.Context, w io.Writer, view View, addHeaderRow bool) error {
	rows, err := ViewStrings(ctx, view, addHeaderRow)
	if err != nil {
		return err
	}
	widths := StringColumnWidths(rows, len(view.Columns()))
	var b strings.Builder
	for _, row := range rows {
		b.Reset()
		for col, str := range row {
			if col > 0 {
				b.WriteString("  ")
			}
			b.WriteString(str)
			if col < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[col]-utf8.RuneCountInString(str)))
			}
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
