package timefmt

import "fmt"

// ConfigError represents an invalid formatter configuration. It is
// only ever produced by New; a Formatter that was constructed
// successfully never fails to render.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("formatter configuration error for %s: %s", e.Field, e.Message)
}

// NewConfigError creates a new formatter configuration error
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}
