package validation

// Error is a single rule violation.
type Error struct {
	Message string `json:"message"`
}

// NewError creates an Error with the given message.
func NewError(message string) Error {
	return Error{Message: message}
}

func (e Error) String() string {
	return e.Message
}
