package generator

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BerylCAtieno/goflux-content-engine/internal/catalog"
	"github.com/BerylCAtieno/goflux-content-engine/internal/composer"
	"github.com/BerylCAtieno/goflux-content-engine/internal/config"
	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIModelSendsSchema(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "finish_reason": "stop",
				"message": {"role": "assistant", "content": "{\"products\":[]}"}}]
		}`)
	}))
	defer srv.Close()

	model := NewOpenAIModel(OpenAIOptions{APIKey: "sk-test", BaseURL: srv.URL + "/v1", Model: "gpt-4o-mini"})
	schema := composer.ResponseSchema([]catalog.ChannelID{catalog.ChannelSocial})

	text, err := model.GenerateText(context.Background(), "write copy", schema)
	require.NoError(t, err)
	assert.Equal(t, `{"products":[]}`, text)
	assert.Equal(t, "openai/gpt-4o-mini", model.Name())

	format := body["response_format"].(map[string]any)
	assert.Equal(t, "json_schema", format["type"])
	js := format["json_schema"].(map[string]any)
	assert.Equal(t, true, js["strict"])

	top := js["schema"].(map[string]any)
	assert.Equal(t, false, top["additionalProperties"])
	item := top["properties"].(map[string]any)["products"].(map[string]any)["items"].(map[string]any)
	content := item["properties"].(map[string]any)["content"].(map[string]any)
	assert.Equal(t, []any{"social"}, content["required"])
}

func TestOpenAIModelSurfacesProviderMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"message":"You exceeded your current quota","type":"insufficient_quota"}}`)
	}))
	defer srv.Close()

	model := NewOpenAIModel(OpenAIOptions{APIKey: "sk-test", BaseURL: srv.URL + "/v1", Model: "gpt-4o-mini"})
	client := NewClient(model, nil)

	prompt := composer.Prompt{
		Instruction: "write copy",
		Products:    []catalog.ProductID{catalog.ProductClub},
		Channels:    []catalog.ChannelID{catalog.ChannelEmail},
		Schema:      composer.ResponseSchema([]catalog.ChannelID{catalog.ChannelEmail}),
	}
	_, err := client.Generate(context.Background(), prompt)

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "You exceeded your current quota", pe.Message)
}

func TestToGenaiSchema(t *testing.T) {
	s := toGenaiSchema(composer.ResponseSchema([]catalog.ChannelID{catalog.ChannelEmail, catalog.ChannelBlog}))

	assert.Equal(t, genai.TypeObject, s.Type)
	assert.Equal(t, []string{"products"}, s.Required)

	products := s.Properties["products"]
	require.NotNil(t, products)
	assert.Equal(t, genai.TypeArray, products.Type)

	content := products.Items.Properties["content"]
	require.NotNil(t, content)
	assert.Equal(t, []string{"email", "blog"}, content.Required)
	assert.Equal(t, genai.TypeArray, content.Properties["email"].Properties["subjects"].Type)
	assert.Equal(t, genai.TypeString, content.Properties["email"].Properties["subjects"].Items.Type)
	assert.Nil(t, toGenaiSchema(nil))
}

func TestCandidateText(t *testing.T) {
	assert.Empty(t, candidateText(nil))
	assert.Empty(t, candidateText(&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}))

	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"products":`), genai.Text(`[]}`)}},
	}}}
	assert.Equal(t, `{"products":[]}`, candidateText(resp))
}

func TestNewModelRejectsUnknownProvider(t *testing.T) {
	_, err := NewModel(context.Background(), config.ProviderConfig{Name: "claude"})
	assert.Error(t, err)

	m, err := NewModel(context.Background(), config.ProviderConfig{Name: config.ProviderOpenAI, Model: "gpt-4o-mini", APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-4o-mini", m.Name())
}
