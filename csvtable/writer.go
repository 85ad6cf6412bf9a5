package csvtable

import (
	"bytes"
	"context"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/domonda/go-datatable"
)

// Encoder is an interface to encode byte strings.
type Encoder interface {
	Bytes([]byte) ([]byte, error)
}

// EncoderFunc implements the Encoder interface for a function.
type EncoderFunc func([]byte) ([]byte, error)

func (f EncoderFunc) Bytes(data []byte) ([]byte, error) {
	return f(data)
}

type Padding int

const (
	NoPadding Padding = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// Writer writes a datatable.View as CSV.
//
// Writer is immutable, all With* methods
// return a modified copy.
type Writer struct {
	padding          Padding
	headerRow        bool
	quoteAllFields   bool
	quoteEmptyFields bool
	delimiter        rune
	newLine          string
	encoder          Encoder
}

func NewWriter() *Writer {
	return &Writer{
		delimiter: ';',
		newLine:   "\r\n",
	}
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// Write writes the cells of view to dest,
// preceded by the column titles if the writer has a header row.
func (w *Writer) Write(ctx context.Context, dest io.Writer, view datatable.View) error {
	rows, err := w.ViewStrings(ctx, view)
	if err != nil {
		return err
	}

	var widths []int
	if w.padding != NoPadding {
		widths = datatable.StringColumnWidths(rows, len(view.Columns()))
	}

	rowBuf := bytes.NewBuffer(make([]byte, 0, 1024))
	for _, row := range rows {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		for col, str := range row {
			if col > 0 {
				rowBuf.WriteRune(w.delimiter)
			}
			if widths == nil {
				rowBuf.WriteString(str)
				continue
			}
			padTotal := widths[col] - utf8.RuneCountInString(str)
			padLeft, padRight := 0, 0
			switch w.padding {
			case AlignLeft:
				padRight = padTotal
			case AlignRight:
				padLeft = padTotal
			case AlignCenter:
				padLeft = padTotal / 2
				padRight = (padTotal + 1) / 2
			}
			rowBuf.WriteString(strings.Repeat(" ", max(padLeft, 0)))
			rowBuf.WriteString(str)
			rowBuf.WriteString(strings.Repeat(" ", max(padRight, 0)))
		}
		rowBuf.WriteString(w.newLine)

		data := rowBuf.Bytes()
		if w.encoder != nil {
			data, err = w.encoder.Bytes(data)
			if err != nil {
				return err
			}
		}
		if _, err = dest.Write(data); err != nil {
			return err
		}
		rowBuf.Reset()
	}
	return nil
}

// ViewStrings returns the escaped cells of view,
// including the header row if enabled.
func (w *Writer) ViewStrings(ctx context.Context, view datatable.View) ([][]string, error) {
	rows, err := datatable.ViewStrings(ctx, view, w.headerRow)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		for col, str := range row {
			row[col] = w.escapeString(str)
		}
	}
	return rows, nil
}

func (w *Writer) escapeString(str string) string {
	// \n alone is valid within quotes
	str = strings.ReplaceAll(str, "\r", "")
	switch {
	case w.quoteAllFields || strings.ContainsAny(str, "\"\n") || strings.ContainsRune(str, w.delimiter):
		return `"` + EscapeQuotes(str) + `"`
	case w.quoteEmptyFields && str == "":
		return `""`
	}
	return str
}

// WithFormat returns a writer using the separator,
// newline and encoding of format.
func (w *Writer) WithFormat(format *Format) (*Writer, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	encoder, err := format.Encoder()
	if err != nil {
		return nil, err
	}
	mod := w.clone()
	mod.delimiter = rune(format.Separator[0])
	mod.newLine = format.Newline
	mod.encoder = encoder
	return mod, nil
}

func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

func (w *Writer) WithPadding(padding Padding) *Writer {
	mod := w.clone()
	mod.padding = padding
	return mod
}

func (w *Writer) WithQuoteAllFields(quoteAllFields bool) *Writer {
	mod := w.clone()
	mod.quoteAllFields = quoteAllFields
	return mod
}

func (w *Writer) WithQuoteEmptyFields(quoteEmptyFields bool) *Writer {
	mod := w.clone()
	mod.quoteEmptyFields = quoteEmptyFields
	return mod
}

func (w *Writer) WithDelimiter(delimiter rune) *Writer {
	mod := w.clone()
	mod.delimiter = delimiter
	return mod
}

func (w *Writer) WithNewLine(newLine string) *Writer {
	mod := w.clone()
	mod.newLine = newLine
	return mod
}

func (w *Writer) WithEncoder(encoder Encoder) *Writer {
	mod := w.clone()
	mod.encoder = encoder
	return mod
}

func (w *Writer) HeaderRow() bool { return w.headerRow }

func (w *Writer) Delimiter() rune { return w.delimiter }

func (w *Writer) NewLine() string { return w.newLine }
