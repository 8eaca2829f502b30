package selection

import "errors"

const (
	CodeEmptyTheme       = "empty_theme"
	CodeNoProducts       = "no_products"
	CodeNoChannels       = "no_channels"
	CodeUnknownPersona   = "unknown_persona"
	CodeNoPriorResult    = "no_prior_result"
	CodeEmptyInstruction = "empty_instruction"
	CodeInvalidRequest   = "invalid_request"
)

// ValidationError is a pre-flight problem with a user-facing message.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
