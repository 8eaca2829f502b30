package generator

import (
	"errors"
	"fmt"
)

// GenericProviderMessage is shown when the provider gives no usable message.
const GenericProviderMessage = "the content provider could not complete the request"

// ProviderError wraps a failed model call. Message is the provider's own
// description when it has one.
type ProviderError struct {
	Provider string
	Message  string
	err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.err
}

// NewProviderError wraps err, falling back to GenericProviderMessage when
// the provider's message is blank.
func NewProviderError(provider string, err error) *ProviderError {
	msg := providerMessage(err)
	if msg == "" {
		msg = GenericProviderMessage
	}
	return &ProviderError{Provider: provider, Message: msg, err: err}
}

// EmptyResponseError means the provider answered with no text at all.
type EmptyResponseError struct {
	Provider string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("%s returned an empty response", e.Provider)
}

// SchemaParseError means the reply was not the requested JSON shape. Raw
// keeps the text as received for diagnostics.
type SchemaParseError struct {
	Raw string
	err error
}

func (e *SchemaParseError) Error() string {
	return fmt.Sprintf("response does not match the requested structure: %v", e.err)
}

func (e *SchemaParseError) Unwrap() error {
	return e.err
}

func IsProviderError(err error) bool {
	var target *ProviderError
	return errors.As(err, &target)
}

func IsEmptyResponse(err error) bool {
	var target *EmptyResponseError
	return errors.As(err, &target)
}

func IsSchemaParseError(err error) bool {
	var target *SchemaParseError
	return errors.As(err, &target)
}
