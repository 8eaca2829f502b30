package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/BerylCAtieno/goflux-content-engine/internal/catalog"
	"github.com/BerylCAtieno/goflux-content-engine/internal/composer"
	"github.com/BerylCAtieno/goflux-content-engine/internal/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	reply  string
	err    error
	calls  int
	prompt string
	schema *composer.Schema
}

func (f *fakeModel) GenerateText(_ context.Context, instruction string, schema *composer.Schema) (string, error) {
	f.calls++
	f.prompt = instruction
	f.schema = schema
	return f.reply, f.err
}

func (f *fakeModel) Name() string { return "fake" }
func (f *fakeModel) Close() error { return nil }

func composeFor(products selection.Filter[catalog.ProductID], channels selection.Filter[catalog.ChannelID], modification string) composer.Prompt {
	state := selection.NewState()
	state.SetTheme("Frete sustentável")
	state.SetProducts(products)
	state.SetChannels(channels)
	state.SetModification(modification)
	return composer.Compose(composer.NewRequest(state, nil, nil))
}

func TestGenerateReturnsReconciledResult(t *testing.T) {
	model := &fakeModel{reply: `{"products":[{"id":"Club","name":"Club goFlux","content":{"email":{"subjects":["A","B","C"],"body":"Olá"}}}]}`}
	client := NewClient(model, nil)

	prompt := composeFor(selection.Explicit(catalog.ProductClub), selection.Explicit(catalog.ChannelEmail), "")
	result, err := client.Generate(context.Background(), prompt)
	require.NoError(t, err)

	assert.Equal(t, 1, model.calls)
	assert.Equal(t, prompt.Instruction, model.prompt)
	assert.Same(t, prompt.Schema, model.schema)
	require.Len(t, result.Products, 1)
	assert.Equal(t, catalog.ProductClub, result.Products[0].ID)
	assert.Equal(t, []string{"A", "B", "C"}, result.Products[0].Content.Email.Subjects)
	assert.Nil(t, result.Products[0].Content.Social)
	assert.Equal(t, "fake", result.Provider)
	assert.False(t, result.Revision)
}

func TestGenerateMarksRevision(t *testing.T) {
	model := &fakeModel{reply: `{"products":[]}`}
	client := NewClient(model, nil)

	prompt := composeFor(selection.Explicit(catalog.ProductClub), selection.Explicit(catalog.ChannelBlog), "mais curto")
	result, err := client.Generate(context.Background(), prompt)
	require.NoError(t, err)
	assert.True(t, result.Revision)
	assert.Empty(t, result.Products)
}

func TestGenerateEmptyPromptSkipsModel(t *testing.T) {
	model := &fakeModel{}
	client := NewClient(model, nil)

	prompt := composeFor(selection.Explicit[catalog.ProductID](), selection.All[catalog.ChannelID](), "")
	require.True(t, prompt.Empty())

	result, err := client.Generate(context.Background(), prompt)
	require.NoError(t, err)
	assert.Zero(t, model.calls)
	assert.NotNil(t, result.Products)
	assert.Empty(t, result.Products)
}

func TestGenerateErrorKinds(t *testing.T) {
	prompt := composeFor(selection.All[catalog.ProductID](), selection.All[catalog.ChannelID](), "")

	tests := []struct {
		name  string
		model *fakeModel
		check func(t *testing.T, err error)
	}{
		{
			name:  "provider failure keeps message",
			model: &fakeModel{err: errors.New("quota exceeded")},
			check: func(t *testing.T, err error) {
				var pe *ProviderError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, "quota exceeded", pe.Message)
				assert.True(t, IsProviderError(err))
			},
		},
		{
			name:  "provider failure without message",
			model: &fakeModel{err: errors.New("   ")},
			check: func(t *testing.T, err error) {
				var pe *ProviderError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, GenericProviderMessage, pe.Message)
			},
		},
		{
			name:  "timeout",
			model: &fakeModel{err: context.DeadlineExceeded},
			check: func(t *testing.T, err error) {
				var pe *ProviderError
				require.ErrorAs(t, err, &pe)
				assert.ErrorIs(t, err, context.DeadlineExceeded)
			},
		},
		{
			name:  "blank reply",
			model: &fakeModel{reply: " \n\t"},
			check: func(t *testing.T, err error) {
				assert.True(t, IsEmptyResponse(err))
			},
		},
		{
			name:  "not json",
			model: &fakeModel{reply: "Aqui está o conteúdo!"},
			check: func(t *testing.T, err error) {
				var se *SchemaParseError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, "Aqui está o conteúdo!", se.Raw)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.model, nil)
			result, err := client.Generate(context.Background(), prompt)
			assert.Nil(t, result)
			require.Error(t, err)
			assert.Equal(t, 1, tt.model.calls)
			tt.check(t, err)
		})
	}
}
