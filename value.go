package datatable

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/domonda/go-types/date"
)

// NoValue is the placeholder displayed for absent or empty values.
const NoValue = "--"

// DateLayout is the canonical layout of formatted dates.
const DateLayout = "2006-01-02"

// Kind is the classification of a raw cell value.
type Kind int

const (
	// KindPlain is any value that is neither a date nor a no-value.
	KindPlain Kind = iota
	// KindNoValue is a nil, empty or otherwise absent value.
	KindNoValue
	// KindDate is a value that denotes a concrete calendar day.
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "Plain"
	case KindNoValue:
		return "NoValue"
	case KindDate:
		return "Date"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Classification is the result of classifying a raw cell value.
type Classification struct {
	Kind Kind
	// Date is the normalized date for KindDate.
	Date date.Date
	// Text is the display text of the value.
	Text string
}

// DefaultNoValueTokens are the strings that are classified
// as no-value besides the empty string.
// Comparison is case-insensitive.
var DefaultNoValueTokens = []string{"null", "undefined", "nan"}

// DefaultValueFormatter is used wherever a nil *ValueFormatter is passed.
var DefaultValueFormatter = &ValueFormatter{
	NoValue:       NoValue,
	NoValueTokens: DefaultNoValueTokens,
}

// timestampLayouts are tried before the lenient date parsing
// of go-types so that canonical output is always recognized again.
var timestampLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// ValueFormatter classifies and formats raw cell values.
//
// nil is a valid *ValueFormatter and behaves like DefaultValueFormatter.
// The formatter is total: every value is formatted without error
// and the same value always results in the same text.
type ValueFormatter struct {
	// NoValue is the placeholder text for no-value cells.
	NoValue string
	// NoValueTokens are strings that are displayed as NoValue.
	NoValueTokens []string
}

// Classify returns the classification of value using DefaultValueFormatter.
func Classify(value any) Classification {
	return DefaultValueFormatter.Classify(value)
}

// FormatValue formats value using DefaultValueFormatter.
func FormatValue(value any) string {
	return DefaultValueFormatter.Classify(value).Text
}

// FormatValue returns the display text for value.
// Dates are formatted as YYYY-MM-DD, no-values as the placeholder
// and everything else by its textual representation.
func (f *ValueFormatter) FormatValue(value any) string {
	return f.Classify(value).Text
}

// Classify tags value as date, no-value or plain value
// and returns the matching display text.
func (f *ValueFormatter) Classify(value any) Classification {
	if f == nil {
		f = DefaultValueFormatter
	}
	switch v := value.(type) {
	case nil:
		return f.noValue()
	case time.Time:
		if v.IsZero() {
			return f.noValue()
		}
		d := date.Date(v.Format(DateLayout))
		return Classification{Kind: KindDate, Date: d, Text: string(d)}
	case date.Date:
		return f.classifyString(string(v))
	case string:
		return f.classifyString(v)
	case float64:
		return f.classifyFloat(v, 64)
	case float32:
		return f.classifyFloat(float64(v), 32)
	}

	val := reflect.ValueOf(value)
	if ValueIsNil(val) {
		return f.noValue()
	}
	if k := val.Kind(); k == reflect.Pointer || k == reflect.Interface {
		return f.Classify(val.Elem().Interface())
	}
	if s, ok := value.(fmt.Stringer); ok {
		return f.classifyString(s.String())
	}
	switch val.Kind() {
	case reflect.String:
		return f.classifyString(val.String())
	case reflect.Float32, reflect.Float64:
		return f.classifyFloat(val.Float(), val.Type().Bits())
	}
	return Classification{Kind: KindPlain, Text: fmt.Sprint(value)}
}

// IsNoValue returns if value is classified as no-value.
func (f *ValueFormatter) IsNoValue(value any) bool {
	return f.Classify(value).Kind == KindNoValue
}

func (f *ValueFormatter) noValue() Classification {
	placeholder := f.NoValue
	if placeholder == "" {
		placeholder = NoValue
	}
	return Classification{Kind: KindNoValue, Text: placeholder}
}

func (f *ValueFormatter) classifyString(s string) Classification {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || f.isNoValueToken(trimmed) {
		return f.noValue()
	}
	if d, ok := parseDate(trimmed); ok {
		return Classification{Kind: KindDate, Date: d, Text: string(d)}
	}
	return Classification{Kind: KindPlain, Text: s}
}

func (f *ValueFormatter) classifyFloat(v float64, bitSize int) Classification {
	if math.IsNaN(v) {
		return f.noValue()
	}
	return Classification{Kind: KindPlain, Text: strconv.FormatFloat(v, 'f', -1, bitSize)}
}

func (f *ValueFormatter) isNoValueToken(s string) bool {
	for _, token := range f.NoValueTokens {
		if strings.EqualFold(s, token) {
			return true
		}
	}
	return false
}

// slashDateLayouts read numeric slash dates month first.
var slashDateLayouts = []string{
	"1/2/2006",
	"1/2/06",
}

// parseDate returns the normalized date of s if s
// contains a concrete day, month and year.
//
// Strings with a time part must match one of the
// timestampLayouts, an invalid time like hour 25
// does not make the string a date.
func parseDate(s string) (date.Date, bool) {
	groups := digitGroups(s)
	if len(s) > 64 || groups < 3 {
		return "", false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return date.Date(t.Format(DateLayout)), true
		}
	}
	if isSlashDate(s) {
		for _, layout := range slashDateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return date.Date(t.Format(DateLayout)), true
			}
		}
		return "", false
	}
	if groups > 3 {
		return "", false
	}
	d, err := date.Normalize(s)
	if err != nil {
		return "", false
	}
	return d, true
}

// isSlashDate returns if s consists of three
// digit groups separated by slashes.
func isSlashDate(s string) bool {
	for _, r := range s {
		if r != '/' && !unicode.IsDigit(r) {
			return false
		}
	}
	return strings.Count(s, "/") == 2
}

// digitGroups counts the runs of consecutive digits in s.
func digitGroups(s string) int {
	count := 0
	inDigits := false
	for _, r := range s {
		isDigit := unicode.IsDigit(r)
		if isDigit && !inDigits {
			count++
		}
		inDigits = isDigit
	}
	return count
}

// Formatter formats a raw value of a specific column.
//
// Formatter implementations return errors.ErrUnsupported
// for values they don't handle, in which case the
// ValueFormatter rules are applied instead.
type Formatter interface {
	Format(value any) (string, error)
}

// FormatterFunc implements Formatter for a function.
type FormatterFunc func(value any) (string, error)

// Format implements the Formatter interface by calling the function itself.
func (f FormatterFunc) Format(value any) (string, error) {
	return f(value)
}

// PrintfFormatter implements Formatter by calling
// fmt.Sprintf with this type's string value as format.
// No-values are not supported so they keep the placeholder.
type PrintfFormatter string

func (format PrintfFormatter) Format(value any) (string, error) {
	if DefaultValueFormatter.IsNoValue(value) {
		return "", errors.ErrUnsupported
	}
	return fmt.Sprintf(string(format), value), nil
}

// ValueIsNil return true if passed reflect.Value
// is not valid, nil (of a type that can be nil),
// or is of type struct{}
func ValueIsNil(val reflect.Value) bool {
	if !val.IsValid() {
		return true
	}
	switch val.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return val.IsNil()
	case reflect.Struct:
		if t := val.Type(); t.NumField() == 0 && t.NumMethod() == 0 {
			// Treat a value of type struct{} like nil
			return true
		}
	}
	return false
}
