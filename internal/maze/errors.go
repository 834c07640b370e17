package maze

import (
	"errors"
	"fmt"
)

// Config error codes.
const (
	CodeBadDimensions  = "BAD_DIMENSIONS"
	CodeEmpty          = "EMPTY_GRID"
	CodeNotRectangular = "NOT_RECTANGULAR"
	CodeUnknownCell    = "UNKNOWN_CELL"
	CodeMissingExit    = "MISSING_EXIT"
	CodeMultipleExits  = "MULTIPLE_EXITS"
	CodeBadEntrance    = "BAD_ENTRANCE"
)

// ConfigError reports an invalid maze definition: bad generation
// dimensions or a malformed level grid. No maze is produced alongside it.
type ConfigError struct {
	Code    string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("maze: [%s] %s", e.Code, e.Message)
}

func configErrorf(code, format string, args ...any) *ConfigError {
	return &ConfigError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// StateError reports a session operation that is invalid in the
// session's current state.
type StateError struct {
	Op     string
	Reason string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("maze: %s: %s", e.Op, e.Reason)
}

// Is matches any StateError with the same reason, so callers can use
// errors.Is(err, ErrNoLevel) regardless of the operation.
func (e *StateError) Is(target error) bool {
	var t *StateError
	if !errors.As(target, &t) {
		return false
	}
	return t.Reason == e.Reason
}

// ErrNoLevel is returned by Move and Tick before any maze was loaded.
var ErrNoLevel = &StateError{Reason: "no level loaded"}

func errNoLevel(op string) error {
	return &StateError{Op: op, Reason: ErrNoLevel.Reason}
}
