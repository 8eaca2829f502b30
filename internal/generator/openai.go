package generator

import (
	"context"
	"fmt"

	"github.com/BerylCAtieno/goflux-content-engine/internal/composer"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// OpenAIModel talks to any OpenAI-compatible chat completions endpoint that
// supports json_schema response formats.
type OpenAIModel struct {
	client          *openai.Client
	modelName       string
	temperature     float32
	topP            float32
	maxOutputTokens int
}

type OpenAIOptions struct {
	APIKey          string
	BaseURL         string
	Model           string
	Temperature     float32
	TopP            float32
	MaxOutputTokens int32
}

func NewOpenAIModel(opts OpenAIOptions) *OpenAIModel {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	return &OpenAIModel{
		client:          openai.NewClientWithConfig(cfg),
		modelName:       opts.Model,
		temperature:     opts.Temperature,
		topP:            opts.TopP,
		maxOutputTokens: int(opts.MaxOutputTokens),
	}
}

func (o *OpenAIModel) Name() string {
	return "openai/" + o.modelName
}

func (o *OpenAIModel) Close() error {
	return nil
}

func (o *OpenAIModel) GenerateText(ctx context.Context, instruction string, schema *composer.Schema) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: o.modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: instruction},
		},
		Temperature: o.temperature,
		TopP:        o.topP,
		MaxTokens:   o.maxOutputTokens,
	}
	if schema != nil {
		def := toDefinition(schema)
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "marketing_content",
				Schema: &def,
				Strict: true,
			},
		}
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// toDefinition converts a schema for strict mode, which requires every
// object to forbid additional properties.
func toDefinition(s *composer.Schema) jsonschema.Definition {
	var def jsonschema.Definition
	switch s.Type {
	case composer.TypeObject:
		def.Type = jsonschema.Object
		def.AdditionalProperties = false
		def.Required = s.Required
		def.Properties = make(map[string]jsonschema.Definition, len(s.Properties))
		for name, prop := range s.Properties {
			def.Properties[name] = toDefinition(prop)
		}
	case composer.TypeArray:
		def.Type = jsonschema.Array
		if s.Items != nil {
			items := toDefinition(s.Items)
			def.Items = &items
		}
	default:
		def.Type = jsonschema.String
	}
	return def
}
