package validation

import "errors"

// Handler accumulates validation errors for one validation subject.
type Handler interface {
	// Append adds one error to the end of the list
	Append(err Error) Handler

	// AppendAll adds every error of another handler, preserving their order
	AppendAll(other Handler) Handler

	// Validate runs fn and captures its failure instead of returning it
	Validate(fn func() error) Handler

	// Errors returns the accumulated errors in append order
	Errors() []Error

	// HasError reports whether at least one error was accumulated
	HasError() bool

	// FirstError returns the earliest accumulated error
	FirstError() (Error, bool)
}

// Notification is the default Handler. It is not safe for concurrent use.
type Notification struct {
	errors []Error
}

// NewNotification creates an empty notification.
func NewNotification() *Notification {
	return &Notification{}
}

// Append adds one error.
func (n *Notification) Append(err Error) Handler {
	n.errors = append(n.errors, err)
	return n
}

// AppendAll merges another handler's errors.
func (n *Notification) AppendAll(other Handler) Handler {
	if other == nil {
		return n
	}
	n.errors = append(n.errors, other.Errors()...)
	return n
}

// Validate runs fn. A failure carrying several errors contributes all of them,
// any other failure contributes its message.
func (n *Notification) Validate(fn func() error) Handler {
	n.capture(fn())
	return n
}

// Errors returns a copy of the accumulated errors.
func (n *Notification) Errors() []Error {
	out := make([]Error, len(n.errors))
	copy(out, n.errors)
	return out
}

// HasError reports whether any error was accumulated.
func (n *Notification) HasError() bool {
	return len(n.errors) > 0
}

// FirstError returns the first error, ok is false when there is none.
func (n *Notification) FirstError() (Error, bool) {
	if len(n.errors) == 0 {
		return Error{}, false
	}
	return n.errors[0], true
}

func (n *Notification) capture(err error) {
	if err == nil {
		return
	}

	var carrier interface {
		error
		Errors() []Error
	}
	if errors.As(err, &carrier) {
		n.errors = append(n.errors, carrier.Errors()...)
		return
	}
	n.errors = append(n.errors, NewError(err.Error()))
}

// Build runs a constructor inside the notification. On failure the errors
// land in n and the zero value of T is returned.
func Build[T any](n *Notification, fn func() (T, error)) T {
	value, err := fn()
	if err != nil {
		n.capture(err)
		var zero T
		return zero
	}
	return value
}
