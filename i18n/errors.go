package i18n

import "fmt"

// ConfigError reports a component i18n misconfiguration: a duplicate
// namespace, translations carrying keys outside the base table, or a
// bad catalog payload. These are startup-time errors and should stop
// the application.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// NewConfigError constructs a ConfigError.
func NewConfigError(component, message string, err error) error {
	return &ConfigError{Component: component, Message: message, Err: err}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("i18n: %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("i18n: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// LoadError reports a catalog file that failed to load, with the path
// that caused it.
type LoadError struct {
	Path string
	Err  error
}

// NewLoadError constructs a LoadError.
func NewLoadError(path string, err error) error {
	return &LoadError{Path: path, Err: err}
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("i18n: load %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
