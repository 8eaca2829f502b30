// Package generator sends composed prompts to a structured-output model and
// turns the reply into a reconciled GenerationResult.
package generator

import (
	"context"
	"log/slog"
	"strings"

	"github.com/BerylCAtieno/goflux-content-engine/internal/composer"
	"github.com/BerylCAtieno/goflux-content-engine/internal/models"
)

// Model is a provider that can answer an instruction constrained to a JSON
// schema. Implementations return the raw reply text.
type Model interface {
	GenerateText(ctx context.Context, instruction string, schema *composer.Schema) (string, error)
	Name() string
	Close() error
}

type Client struct {
	model  Model
	logger *slog.Logger
}

func NewClient(model Model, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{model: model, logger: logger}
}

func (c *Client) Provider() string {
	return c.model.Name()
}

func (c *Client) Close() error {
	return c.model.Close()
}

// Generate makes exactly one model call. An empty prompt returns an empty
// result without calling the model.
func (c *Client) Generate(ctx context.Context, prompt composer.Prompt) (*models.GenerationResult, error) {
	if prompt.Empty() {
		return models.NewGenerationResult(nil, prompt.Channels), nil
	}

	text, err := c.model.GenerateText(ctx, prompt.Instruction, prompt.Schema)
	if err != nil {
		return nil, NewProviderError(c.model.Name(), err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyResponseError{Provider: c.model.Name()}
	}

	parsed, err := ParseResponse(text, prompt.Products, prompt.Channels)
	if err != nil {
		c.logger.Warn("Model reply did not match schema",
			slog.String("provider", c.model.Name()),
			slog.Int("raw_length", len(text)))
		return nil, err
	}
	if len(parsed.Dropped) > 0 || len(parsed.Missing) > 0 || parsed.Filled > 0 {
		c.logger.Warn("Reconciled model reply",
			slog.Any("dropped", parsed.Dropped),
			slog.Any("missing", parsed.Missing),
			slog.Int("filled_blocks", parsed.Filled))
	}

	result := models.NewGenerationResult(parsed.Products, prompt.Channels)
	result.Revision = prompt.Revision
	result.Provider = c.model.Name()
	return result, nil
}
