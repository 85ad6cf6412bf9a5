// Package i18n translates the fixed texts of the table renderers.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message IDs
const (
	Actions  = "actions"
	PageOf   = "page_of"
	NoData   = "no_data"
	Previous = "previous"
	Next     = "next"
	First    = "first"
	Last     = "last"
	Details  = "details"
	Loading  = "loading"
)

// DefaultLocale is used for empty, invalid or unsupported locales.
const DefaultLocale = "en"

var translations = map[language.Tag]map[string]string{
	language.English: {
		Actions:  "Actions",
		PageOf:   "Page %d of %d",
		NoData:   "No data",
		Previous: "Previous",
		Next:     "Next",
		First:    "First",
		Last:     "Last",
		Details:  "Details",
		Loading:  "Loading…",
	},
	language.German: {
		Actions:  "Aktionen",
		PageOf:   "Seite %d von %d",
		NoData:   "Keine Daten",
		Previous: "Zurück",
		Next:     "Weiter",
		First:    "Erste",
		Last:     "Letzte",
		Details:  "Details",
		Loading:  "Wird geladen…",
	},
	language.Spanish: {
		Actions:  "Acciones",
		PageOf:   "Página %d de %d",
		NoData:   "Sin datos",
		Previous: "Anterior",
		Next:     "Siguiente",
		First:    "Primera",
		Last:     "Última",
		Details:  "Detalles",
		Loading:  "Cargando…",
	},
}

// Supported languages, the first one is the fallback.
var Supported = []language.Tag{language.English, language.German, language.Spanish}

var (
	defaultCatalog = newCatalog()
	matcher        = language.NewMatcher(Supported)
)

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for id, msg := range msgs {
			if err := b.SetString(tag, id, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Printer prints translated messages for one locale.
type Printer struct {
	tag     language.Tag
	printer *message.Printer
}

// NewPrinter returns a Printer for locale.
// Empty, invalid or unsupported locales result in English.
func NewPrinter(locale string) *Printer {
	tag := Match(locale)
	return &Printer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(defaultCatalog)),
	}
}

// Match returns the supported language for locale.
func Match(locale string) language.Tag {
	requested, err := language.Parse(locale)
	if err != nil {
		return Supported[0]
	}
	_, index, confidence := matcher.Match(requested)
	if confidence == language.No {
		return Supported[0]
	}
	return Supported[index]
}

// Locale returns the matched locale like "de".
func (p *Printer) Locale() string {
	return p.tag.String()
}

// Message returns the translation of id
// or id itself if there is none.
func (p *Printer) Message(id string) string {
	return p.printer.Sprintf(id)
}

// Sprintf formats the translation of id with args.
func (p *Printer) Sprintf(id string, args ...any) string {
	return p.printer.Sprintf(id, args...)
}
