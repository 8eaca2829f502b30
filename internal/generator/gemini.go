package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/BerylCAtieno/goflux-content-engine/internal/composer"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiModel struct {
	client          *genai.Client
	modelName       string
	temperature     float32
	topP            float32
	maxOutputTokens int32
}

type GeminiOptions struct {
	APIKey          string
	Model           string
	Temperature     float32
	TopP            float32
	MaxOutputTokens int32
}

func NewGeminiModel(ctx context.Context, opts GeminiOptions) (*GeminiModel, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(opts.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiModel{
		client:          client,
		modelName:       opts.Model,
		temperature:     opts.Temperature,
		topP:            opts.TopP,
		maxOutputTokens: opts.MaxOutputTokens,
	}, nil
}

func (g *GeminiModel) Name() string {
	return "gemini/" + g.modelName
}

func (g *GeminiModel) Close() error {
	return g.client.Close()
}

// GenerateText builds a model per call since the response schema depends on
// the selected channels.
func (g *GeminiModel) GenerateText(ctx context.Context, instruction string, schema *composer.Schema) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.SetTemperature(g.temperature)
	model.SetTopP(g.topP)
	if g.maxOutputTokens > 0 {
		model.SetMaxOutputTokens(g.maxOutputTokens)
	}
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = toGenaiSchema(schema)

	resp, err := model.GenerateContent(ctx, genai.Text(instruction))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return candidateText(resp), nil
}

func candidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}

func toGenaiSchema(s *composer.Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{Required: s.Required}
	switch s.Type {
	case composer.TypeObject:
		out.Type = genai.TypeObject
	case composer.TypeArray:
		out.Type = genai.TypeArray
	default:
		out.Type = genai.TypeString
	}
	if s.Items != nil {
		out.Items = toGenaiSchema(s.Items)
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}
	return out
}
