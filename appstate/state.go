// Package appstate holds the application state shared by
// the table renderers and the surrounding shell.
//
// State values are immutable snapshots. All changes are made
// by applying an Operation with Reduce, usually through a Store
// which also persists the theme preference.
package appstate

import (
	"fmt"
	"strings"

	"github.com/domonda/go-datatable"
)

// Theme is the visual theme of the application.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	// DefaultTheme is used when no valid theme was persisted.
	DefaultTheme = ThemeLight
)

// Valid returns if t is ThemeLight or ThemeDark.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggled returns ThemeLight for ThemeDark
// and ThemeDark for every other value.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme parses a persisted theme value.
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("invalid theme %q", s)
	}
	return t, nil
}

func (t Theme) String() string { return string(t) }

// State is an immutable snapshot of the application state.
//
// Nil pointer and slice fields mean "not set",
// ExplorerData is nil until explorer data was set.
// A State must not be modified after it was returned
// by NewState or Reduce, callers may still hold it.
type State struct {
	Theme               Theme              `json:"theme"`
	ShowProgressOverlay bool               `json:"showProgressOverlay"`
	ErrorMessage        *string            `json:"errorMessage"`
	Locale              *string            `json:"locale"`
	ConnectionCheck     bool               `json:"connectionCheck"`
	Notification        *Notification      `json:"notification"`
	Refresh             bool               `json:"refresh"`
	ExplorerData        []datatable.Record `json:"explorerData"`
	PaginationNrOfPages *int               `json:"paginationNrOfPages"`
}

// NewState returns the initial state with the passed theme,
// DefaultTheme if theme is not valid.
func NewState(theme Theme) *State {
	if !theme.Valid() {
		theme = DefaultTheme
	}
	return &State{
		Theme:           theme,
		ConnectionCheck: true,
	}
}

// ErrorMessageOr returns the error message or defaultMsg if none is set.
func (s *State) ErrorMessageOr(defaultMsg string) string {
	if s.ErrorMessage == nil {
		return defaultMsg
	}
	return *s.ErrorMessage
}

// LocaleOr returns the locale or defaultLocale if none is set.
func (s *State) LocaleOr(defaultLocale string) string {
	if s.Locale == nil || *s.Locale == "" {
		return defaultLocale
	}
	return *s.Locale
}

// PageCount returns PaginationNrOfPages or zero if not set.
func (s *State) PageCount() int {
	if s.PaginationNrOfPages == nil {
		return 0
	}
	return *s.PaginationNrOfPages
}

func (s *State) clone() *State {
	c := *s
	return &c
}
