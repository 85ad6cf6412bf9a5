// Package csvtable writes presented tables as CSV
// with configurable separators, line endings and encodings.
package csvtable

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domonda/go-types/charset"
)

// Format describes the encoding and structural format of CSV output.
type Format struct {
	// Encoding of the written bytes, for example
	// "UTF-8", "UTF-16LE", "ISO 8859-1" or "Windows 1252".
	Encoding string `json:"encoding"`

	// Separator is the single character field delimiter.
	Separator string `json:"separator"`

	// Newline is one of "\n", "\r\n" or "\n\r".
	Newline string `json:"newline"`
}

// NewFormat returns a UTF-8 Format with CRLF line endings
// using separator as field delimiter.
func NewFormat(separator string) *Format {
	return &Format{
		Encoding:  "UTF-8",
		Separator: separator,
		Newline:   "\r\n",
	}
}

// Validate checks if the Format configuration is valid.
// It can be safely called on a nil receiver.
func (f *Format) Validate() error {
	switch {
	case f == nil:
		return errors.New("<nil> csvtable.Format")
	case f.Encoding == "":
		return errors.New("missing csvtable.Format.Encoding")
	case f.Separator == "":
		return errors.New("missing csvtable.Format.Separator")
	case len(f.Separator) > 1:
		return fmt.Errorf("invalid csvtable.Format.Separator: %q", f.Separator)
	case f.Newline == "":
		return errors.New("missing csvtable.Format.Newline")
	case f.Newline != "\n" && f.Newline != "\n\r" && f.Newline != "\r\n":
		return fmt.Errorf("invalid csvtable.Format.Newline: %q", f.Newline)
	}
	return nil
}

// Encoder returns the Encoder for the format's encoding,
// nil for UTF-8 which needs no conversion.
func (f *Format) Encoder() (Encoder, error) {
	if strings.EqualFold(f.Encoding, "UTF-8") {
		return nil, nil
	}
	enc, err := charset.GetEncoding(f.Encoding)
	if err != nil {
		return nil, fmt.Errorf("csv encoding %q: %w", f.Encoding, err)
	}
	return EncoderFunc(enc.Encode), nil
}

// EscapeQuotes doubles every double quote of val.
func EscapeQuotes(val string) string {
	return strings.ReplaceAll(val, `"`, `""`)
}
