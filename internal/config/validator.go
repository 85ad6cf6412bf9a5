package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/domonda/go-datatable/i18n"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "server.port")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidLogFormats returns the list of valid log formats
func ValidLogFormats() []string {
	return []string{"text", "json"}
}

// ValidLocales returns the list of supported UI locales
func ValidLocales() []string {
	locales := make([]string, len(i18n.Supported))
	for i, tag := range i18n.Supported {
		locales[i] = tag.String()
	}
	return locales
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.validateServer()...)
	errors = append(errors, c.validateData()...)
	errors = append(errors, c.validateUI()...)
	errors = append(errors, c.validateLogging()...)
	return errors
}

func (c *Config) validateServer() []ValidationError {
	var errors []ValidationError
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   "server.port",
			Value:   c.Server.Port,
			Message: "must be between 1 and 65535",
		})
	}
	if c.Server.ShutdownTimeout <= 0 {
		errors = append(errors, ValidationError{
			Field:   "server.shutdown_timeout",
			Value:   c.Server.ShutdownTimeout,
			Message: "must be positive",
		})
	}
	return errors
}

func (c *Config) validateData() []ValidationError {
	var errors []ValidationError
	if c.Data.PayloadFile == "" {
		errors = append(errors, ValidationError{
			Field:   "data.payload_file",
			Value:   c.Data.PayloadFile,
			Message: "is required",
		})
	}
	if c.Data.PageSize < 0 {
		errors = append(errors, ValidationError{
			Field:   "data.page_size",
			Value:   c.Data.PageSize,
			Message: "must be non-negative",
		})
	}
	return errors
}

func (c *Config) validateUI() []ValidationError {
	var errors []ValidationError
	if c.UI.Locale != "" && !slices.Contains(ValidLocales(), c.UI.Locale) {
		errors = append(errors, ValidationError{
			Field:   "ui.locale",
			Value:   c.UI.Locale,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLocales(), ", ")),
		})
	}
	if c.UI.Margin < 0 {
		errors = append(errors, ValidationError{
			Field:   "ui.margin",
			Value:   c.UI.Margin,
			Message: "must be non-negative",
		})
	}
	if c.UI.WindowHeight < 0 {
		errors = append(errors, ValidationError{
			Field:   "ui.window_height",
			Value:   c.UI.WindowHeight,
			Message: "must be non-negative",
		})
	}
	if c.UI.TerminalMargin < 0 {
		errors = append(errors, ValidationError{
			Field:   "ui.terminal_margin",
			Value:   c.UI.TerminalMargin,
			Message: "must be non-negative",
		})
	}
	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError
	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}
	if c.Logging.Format != "" && !slices.Contains(ValidLogFormats(), c.Logging.Format) {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Value:   c.Logging.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogFormats(), ", ")),
		})
	}
	return errors
}
