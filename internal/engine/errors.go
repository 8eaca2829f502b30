package engine

import (
	"errors"

	"github.com/BerylCAtieno/goflux-content-engine/internal/generator"
	"github.com/BerylCAtieno/goflux-content-engine/internal/metrics"
	"github.com/BerylCAtieno/goflux-content-engine/internal/selection"
)

// Error kinds reported to clients.
const (
	ErrorKindValidation = "validation"
	ErrorKindBusy       = "busy"
	ErrorKindProvider   = "provider"
	ErrorKindEmpty      = "empty_response"
	ErrorKindParse      = "parse"
	ErrorKindInternal   = "internal"
)

// ErrorKind classifies err for clients.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case selection.IsValidationError(err):
		return ErrorKindValidation
	case errors.Is(err, ErrGenerationInProgress):
		return ErrorKindBusy
	case generator.IsEmptyResponse(err):
		return ErrorKindEmpty
	case generator.IsSchemaParseError(err):
		return ErrorKindParse
	case generator.IsProviderError(err):
		return ErrorKindProvider
	default:
		return ErrorKindInternal
	}
}

// DisplayMessage converts any error into text fit to show a user.
func DisplayMessage(err error) string {
	var validation *selection.ValidationError
	var provider *generator.ProviderError

	switch {
	case err == nil:
		return ""
	case errors.As(err, &validation):
		return validation.Message
	case errors.Is(err, ErrGenerationInProgress):
		return "A generation is already running. Wait for it to finish."
	case generator.IsEmptyResponse(err):
		return "The model returned an empty response. Try again."
	case generator.IsSchemaParseError(err):
		return "The model response could not be read. Try again."
	case errors.As(err, &provider):
		return "Failed to generate content: " + provider.Message
	default:
		return "Unexpected error: " + err.Error()
	}
}

func outcomeFor(err error) string {
	switch ErrorKind(err) {
	case ErrorKindValidation:
		return metrics.OutcomeValidation
	case ErrorKindBusy:
		return metrics.OutcomeBusy
	case ErrorKindEmpty:
		return metrics.OutcomeNoText
	case ErrorKindParse:
		return metrics.OutcomeParse
	default:
		return metrics.OutcomeProvider
	}
}
