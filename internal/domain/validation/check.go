package validation

// Check validates with a fresh notification and returns a NotificationError
// with the given message when any rule fails.
func Check(message string, validate func(Handler)) error {
	n := NewNotification()
	validate(n)
	if n.HasError() {
		return NewNotificationError(message, n)
	}
	return nil
}
