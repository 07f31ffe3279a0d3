package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RequiredText checks a nullable text field: null, then blank, then length bounds.
func RequiredText(h Handler, field string, value *string, min, max int) {
	if value == nil {
		h.Append(NewError(fmt.Sprintf("'%s' should not be null", field)))
		return
	}
	Text(h, field, *value, min, max)
}

// Text checks a non-nullable text field: blank, then length bounds.
// Both bounds are inclusive and counted in runes.
func Text(h Handler, field, value string, min, max int) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		h.Append(NewError(fmt.Sprintf("'%s' should not be empty", field)))
		return
	}

	length := utf8.RuneCountInString(trimmed)
	if length < min || length > max {
		h.Append(NewError(fmt.Sprintf("'%s' must be between %d and %d characters", field, min, max)))
	}
}

// NotNull appends the null error when present is false.
func NotNull(h Handler, field string, present bool) {
	if !present {
		h.Append(NewError(fmt.Sprintf("'%s' should not be null", field)))
	}
}
