package appstate

// Operation is a tagged state update applied by Reduce.
//
// Only the operation types of this package change the state,
// any other implementation is ignored by Reduce.
type Operation interface {
	OperationName() string
}

// SetExplorerData replaces the explorer data with the
// normalized records of the raw payload.
type SetExplorerData struct {
	Payload []map[string]any
}

// SetPaginationPageCount sets the number of pages.
type SetPaginationPageCount struct {
	Count int
}

// SetRefresh sets the refresh flag.
type SetRefresh struct {
	Refresh bool
}

// ActivateProgress shows the progress overlay.
type ActivateProgress struct{}

// DeactivateProgress hides the progress overlay.
type DeactivateProgress struct{}

// SetErrorMessage sets the global error message.
type SetErrorMessage struct {
	Message string
}

// ClearErrorMessage removes the global error message.
type ClearErrorMessage struct{}

// SetLocale sets the locale.
type SetLocale struct {
	Locale string
}

// SetTheme sets the theme if it is ThemeLight or ThemeDark.
// Any other value is silently ignored.
type SetTheme struct {
	Theme Theme
}

// ToggleTheme flips between ThemeLight and ThemeDark.
// A Store persists the new theme.
type ToggleTheme struct{}

// SetConnectionCheck sets the result of the last connectivity check.
type SetConnectionCheck struct {
	Ok bool
}

// SetNotification sets or with nil clears the notification.
type SetNotification struct {
	Notification *Notification
}

func (SetExplorerData) OperationName() string        { return "SET_EXPLORER_DATA" }
func (SetPaginationPageCount) OperationName() string { return "SET_PAGINATION_NR_OF_PAGES" }
func (SetRefresh) OperationName() string             { return "REFRESH_APP" }
func (ActivateProgress) OperationName() string       { return "ACTIVATE_PROGRESS_INDICATOR" }
func (DeactivateProgress) OperationName() string     { return "DEACTIVATE_PROGRESS_INDICATOR" }
func (SetErrorMessage) OperationName() string        { return "SET_GLOBAL_ERROR_MESSAGE" }
func (ClearErrorMessage) OperationName() string      { return "CLEAR_GLOBAL_ERROR_MESSAGE" }
func (SetLocale) OperationName() string              { return "SET_LOCALE" }
func (SetTheme) OperationName() string               { return "SET_THEME" }
func (ToggleTheme) OperationName() string            { return "TOGGLE_THEME" }
func (SetConnectionCheck) OperationName() string     { return "CONNECTION_CHECK" }
func (SetNotification) OperationName() string        { return "SET_NOTIFICATION" }
