package generator

import (
	"fmt"

	"github.com/vancomm/pyrat/internal/state"
)

// ConfigurationError reports generation parameters that cannot produce a
// game.
type ConfigurationError struct {
	message string
}

func configError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{fmt.Sprintf(format, args...)}
}

// [ConfigurationError] implements [error]
func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.message
}

// assertion builds the panic value for internal checks; [Generate] recovers
// it into its error result.
func assertion(format string, args ...any) state.InvariantViolation {
	return state.Violation(format, args...)
}
