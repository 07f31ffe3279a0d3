package validation

// NotificationError carries every violation found by one validation pass.
type NotificationError struct {
	message string
	errors  []Error
}

// NewNotificationError snapshots the handler's errors under a summary message.
func NewNotificationError(message string, handler Handler) *NotificationError {
	return &NotificationError{
		message: message,
		errors:  handler.Errors(),
	}
}

func (e *NotificationError) Error() string {
	return e.message
}

// Errors returns the ordered list of violations.
func (e *NotificationError) Errors() []Error {
	out := make([]Error, len(e.errors))
	copy(out, e.errors)
	return out
}
