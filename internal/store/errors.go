package store

import "errors"

// MsgMissingFields is shown when an item is added without a name or quantity.
const MsgMissingFields = "Please enter item name and quantity"

// ValidationError reports user input that was rejected before any mutation.
// It is meant to be shown to the user, never treated as fatal.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
