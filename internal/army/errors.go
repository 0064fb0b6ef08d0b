package army

import (
	"errors"
	"fmt"
)

// ValidationError — нарушение бизнес-правила композиции. User-facing:
// message называет сущность и числовые лимиты и является частью контракта.
// The caller maps it to a 4xx response; it never causes partial writes
// because validation completes before any persistence call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func rejectf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError — ссылка на несуществующий id справочника. Stale or
// malicious clients can trigger it, so it is handled like a validation
// failure, not a server fault.
type NotFoundError struct {
	Entity string
	ID     int32
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// IsRejection reports whether err is a user-facing rejection
// (ValidationError or NotFoundError) rather than an internal fault.
func IsRejection(err error) bool {
	var ve *ValidationError
	var nf *NotFoundError
	return errors.As(err, &ve) || errors.As(err, &nf)
}
