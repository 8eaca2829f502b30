package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BerylCAtieno/goflux-content-engine/internal/config"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
)

// NewModel builds the model named by the provider section.
func NewModel(ctx context.Context, cfg config.ProviderConfig) (Model, error) {
	switch cfg.Name {
	case config.ProviderGemini:
		return NewGeminiModel(ctx, GeminiOptions{
			APIKey:          cfg.APIKey,
			Model:           cfg.Model,
			Temperature:     cfg.Temperature,
			TopP:            cfg.TopP,
			MaxOutputTokens: cfg.MaxOutputTokens,
		})
	case config.ProviderOpenAI:
		return NewOpenAIModel(OpenAIOptions{
			APIKey:          cfg.APIKey,
			BaseURL:         cfg.BaseURL,
			Model:           cfg.Model,
			Temperature:     cfg.Temperature,
			TopP:            cfg.TopP,
			MaxOutputTokens: cfg.MaxOutputTokens,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported provider %q", cfg.Name)
	}
}

// providerMessage pulls the human-readable part out of a provider error.
func providerMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "the content provider did not answer in time"
	}
	if errors.Is(err, context.Canceled) {
		return "the generation request was canceled"
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return strings.TrimSpace(apiErr.Message)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.Err != nil {
		return strings.TrimSpace(reqErr.Err.Error())
	}
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return strings.TrimSpace(gErr.Message)
	}
	return strings.TrimSpace(err.Error())
}
