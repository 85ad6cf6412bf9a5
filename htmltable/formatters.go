package htmltable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/domonda/go-datatable"
)

// Cell is the value cell passed to a CellFormatter.
type Cell struct {
	Row       int
	ColumnKey string
	// Value is the raw record value.
	Value any
	// Content is the already formatted text,
	// datatable.NoValue for missing values.
	Content string
}

// NoValue returns if the cell shows the no-value placeholder.
func (c *Cell) NoValue() bool {
	return c.Content == datatable.NoValue
}

// CellFormatter formats a value cell as HTML.
// If raw is false, str will be HTML escaped.
// errors.ErrUnsupported results in the escaped cell content.
type CellFormatter interface {
	FormatCell(ctx context.Context, cell *Cell) (str string, raw bool, err error)
}

type CellFormatterFunc func(ctx context.Context, cell *Cell) (str string, raw bool, err error)

func (f CellFormatterFunc) FormatCell(ctx context.Context, cell *Cell) (str string, raw bool, err error) {
	return f(ctx, cell)
}

var (
	// RawCellFormatter returns the cell content as raw HTML.
	RawCellFormatter CellFormatterFunc = func(ctx context.Context, cell *Cell) (str string, raw bool, err error) {
		return cell.Content, true, nil
	}

	HTMLCodeCellFormatter CellFormatterFunc = func(ctx context.Context, cell *Cell) (str string, raw bool, err error) {
		return "<code>" + template.HTMLEscapeString(cell.Content) + "</code>", true, nil
	}

	// ImageCellFormatter renders http(s) or absolute path string values
	// as img element. Other values use the default cell content.
	ImageCellFormatter CellFormatterFunc = func(ctx context.Context, cell *Cell) (str string, raw bool, err error) {
		src, ok := cell.Value.(string)
		if !ok || cell.NoValue() || !safeImageSource(src) {
			return "", false, errors.ErrUnsupported
		}
		return fmt.Sprintf("<img src='%s' alt=''>", template.HTMLEscapeString(src)), true, nil
	}

	_ CellFormatter = JSONCellFormatter("")
	_ CellFormatter = HTMLSpanClassCellFormatter("")
)

func safeImageSource(src string) bool {
	return strings.HasPrefix(src, "https://") ||
		strings.HasPrefix(src, "http://") ||
		(strings.HasPrefix(src, "/") && !strings.HasPrefix(src, "//"))
}

// JSONCellFormatter formats JSON values within a pre element
// indented by the string value, or compacted if it is empty.
type JSONCellFormatter string

func (indent JSONCellFormatter) FormatCell(ctx context.Context, cell *Cell) (str string, raw bool, err error) {
	if cell.NoValue() {
		return "", false, errors.ErrUnsupported
	}
	var src []byte
	switch v := cell.Value.(type) {
	case json.RawMessage:
		src = v
	case []byte:
		src = v
	case string:
		src = []byte(v)
	default:
		src, err = json.Marshal(v)
		if err != nil {
			return "", false, err
		}
	}
	var buf bytes.Buffer
	if indent == "" {
		err = json.Compact(&buf, src)
	} else {
		err = json.Indent(&buf, src, "", string(indent))
	}
	if err != nil {
		return "", false, err
	}
	return "<pre>" + template.HTMLEscapeString(buf.String()) + "</pre>", true, nil
}

// HTMLSpanClassCellFormatter formats the cell content within an HTML span element
// with the class of the underlying string value.
type HTMLSpanClassCellFormatter string

func (class HTMLSpanClassCellFormatter) FormatCell(ctx context.Context, cell *Cell) (str string, raw bool, err error) {
	text := template.HTMLEscapeString(cell.Content)
	return fmt.Sprintf("<span class='%s'>%s</span>", template.HTMLEscapeString(string(class)), text), true, nil
}
