package draft

import (
	"errors"
	"fmt"
)

var ErrWrongTurn = errors.New("not this player's turn")
var ErrOutOfSync = errors.New("selection log changed, refresh and retry")
var ErrNotFound = errors.New("not found")
var ErrComplete = errors.New("draft already complete")

// ValidationError reports a payload that fails domain rules. The submission
// is rejected with no state change; the caller may correct and retry.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "invalid selection: " + e.Reason }

func invalidf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
