package state

import "fmt"

// InvariantViolation reports a game state that no correct generator or
// engine can produce.
type InvariantViolation struct {
	message string
}

func Violation(format string, args ...any) InvariantViolation {
	return InvariantViolation{fmt.Sprintf(format, args...)}
}

// [InvariantViolation] implements [error]
func (e InvariantViolation) Error() string {
	return "invariant violation: " + e.message
}
