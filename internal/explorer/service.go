// Package explorer loads the explorer payload into the application
// state and presents it as paginated table.
package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-datatable"
	"github.com/domonda/go-datatable/appstate"
	"github.com/domonda/go-datatable/i18n"
	"github.com/domonda/go-datatable/internal/logging"
)

// PayloadSource loads the raw explorer payload.
type PayloadSource interface {
	LoadPayload(ctx context.Context) ([]map[string]any, error)
}

// PayloadSourceFunc implements PayloadSource for a function.
type PayloadSourceFunc func(ctx context.Context) ([]map[string]any, error)

func (f PayloadSourceFunc) LoadPayload(ctx context.Context) ([]map[string]any, error) {
	return f(ctx)
}

// FilePayload reads a JSON array of explorer items from a file.
type FilePayload struct {
	File fs.File
}

func (p FilePayload) LoadPayload(ctx context.Context) ([]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := p.File.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading explorer payload %s: %w", p.File, err)
	}
	var payload []map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parsing explorer payload %s: %w", p.File, err)
	}
	return payload, nil
}

// Service connects the application state with the explorer table.
type Service struct {
	store    *appstate.Store
	source   PayloadSource
	pageSize int
	locale   string
}

// NewService returns a Service loading explorer data from source
// into store and presenting pageSize records per page.
// A pageSize of zero or less shows all records on one page.
func NewService(store *appstate.Store, source PayloadSource, pageSize int, defaultLocale string) *Service {
	return &Service{
		store:    store,
		source:   source,
		pageSize: max(pageSize, 0),
		locale:   defaultLocale,
	}
}

// Store returns the application state store.
func (s *Service) Store() *appstate.Store {
	return s.store
}

// Load reads the payload and sets the explorer data and page count.
// The progress overlay is shown while loading.
// On failure the error is set as global error message
// and shown as error notification.
func (s *Service) Load(ctx context.Context) error {
	log := logging.FromContext(ctx)

	s.store.Dispatch(ctx, appstate.ActivateProgress{})
	defer s.store.Dispatch(ctx, appstate.DeactivateProgress{})

	payload, err := s.source.LoadPayload(ctx)
	if err != nil {
		log.Error("loading explorer data failed", "error", err)
		s.store.Dispatch(ctx, appstate.SetErrorMessage{Message: err.Error()})
		s.store.Dispatch(ctx, appstate.SetNotification{
			Notification: appstate.NewNotification(appstate.NotificationError, err.Error()),
		})
		return err
	}

	s.store.Dispatch(ctx, appstate.ClearErrorMessage{})
	s.store.Dispatch(ctx, appstate.SetExplorerData{Payload: payload})
	s.store.Dispatch(ctx, appstate.SetPaginationPageCount{Count: datatable.PageCount(len(payload), s.pageSize)})
	log.Info("loaded explorer data", "records", len(payload))
	return nil
}

// Refresh reloads the explorer data with the refresh flag set.
func (s *Service) Refresh(ctx context.Context) error {
	s.store.Dispatch(ctx, appstate.SetRefresh{Refresh: true})
	defer s.store.Dispatch(ctx, appstate.SetRefresh{Refresh: false})
	return s.Load(ctx)
}

// Messages returns the printer for the current locale.
func (s *Service) Messages() *i18n.Printer {
	return i18n.NewPrinter(s.store.State().LocaleOr(s.locale))
}

// Presenter returns the presenter of the explorer table.
// Row clicks and the details button dispatch notifications using ctx.
func (s *Service) Presenter(ctx context.Context) *datatable.Presenter {
	messages := s.Messages()
	return &datatable.Presenter{
		Headings:        appstate.ExplorerHeadings,
		HiddenHeadings:  datatable.NewHeadingSet(appstate.KeyIcon),
		TooltipHeadings: datatable.NewHeadingSet(appstate.KeyRegistryProjectID, appstate.KeyProjectName),
		ActionsLabel:    messages.Message(i18n.Actions),
		Button: &datatable.Button{
			Label: messages.Message(i18n.Details),
			Action: func(record datatable.Record) {
				s.notify(ctx, Details(record))
			},
		},
		OnRowClick: func(record datatable.Record) {
			s.notify(ctx, datatable.FormatValue(record[appstate.KeyAction])+" "+datatable.FormatValue(record[appstate.KeyRegistryProjectID]))
		},
	}
}

// Page presents page of the explorer data with the scroll
// region height of the table, zero if not measured.
func (s *Service) Page(ctx context.Context, page, height int) *datatable.Table {
	state := s.store.State()
	pagination := datatable.NewPagination(page, state.PageCount())
	records := datatable.Paginate(state.ExplorerData, pagination.CurrentPage, s.pageSize)
	return s.Presenter(ctx).Present(records, pagination, height)
}

// Record returns the record with index on page.
func (s *Service) Record(page, index int) (datatable.Record, bool) {
	state := s.store.State()
	page = datatable.NewPagination(page, state.PageCount()).CurrentPage
	records := datatable.Paginate(state.ExplorerData, page, s.pageSize)
	if index < 0 || index >= len(records) {
		return nil, false
	}
	return records[index], true
}

// ToggleTheme flips and persists the theme.
func (s *Service) ToggleTheme(ctx context.Context) appstate.Theme {
	return s.store.Dispatch(ctx, appstate.ToggleTheme{}).Theme
}

// SetLocale sets the locale if it is supported.
func (s *Service) SetLocale(ctx context.Context, locale string) error {
	matched := i18n.Match(locale).String()
	if !strings.EqualFold(matched, locale) {
		return fmt.Errorf("unsupported locale %q", locale)
	}
	s.store.Dispatch(ctx, appstate.SetLocale{Locale: matched})
	return nil
}

// Details returns the formatted values of the
// explorer columns of record as one line.
func Details(record datatable.Record) string {
	parts := make([]string, 0, len(appstate.ExplorerHeadings))
	for _, key := range appstate.ExplorerHeadings {
		if key == appstate.KeyIcon {
			continue
		}
		parts = append(parts, datatable.SnakeCaseToTitle(key)+": "+datatable.FormatValue(record[key]))
	}
	return strings.Join(parts, ", ")
}

func (s *Service) notify(ctx context.Context, message string) {
	s.store.Dispatch(ctx, appstate.SetNotification{
		Notification: appstate.NewNotification(appstate.NotificationInfo, message),
	})
}
