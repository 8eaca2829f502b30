package generator

import (
	"testing"

	"github.com/BerylCAtieno/goflux-content-engine/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `{"a":1}`, want: `{"a":1}`},
		{in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{in: "  ```JSON{\"a\":1}```  ", want: `{"a":1}`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripCodeFence(tt.in))
	}
}

func TestParseResponseShapes(t *testing.T) {
	all := catalog.ProductIDs()
	channels := []catalog.ChannelID{catalog.ChannelEmail}

	tests := []struct {
		name    string
		raw     string
		wantErr bool
		wantLen int
	}{
		{name: "empty products is success", raw: `{"products":[]}`},
		{name: "fenced", raw: "```json\n{\"products\":[{\"id\":\"View\",\"name\":\"View\",\"content\":{}}]}\n```", wantLen: 1},
		{name: "missing products", raw: `{"items":[]}`, wantErr: true},
		{name: "null products", raw: `{"products":null}`, wantErr: true},
		{name: "top level array", raw: `[{"id":"Club"}]`, wantErr: true},
		{name: "wrong field type", raw: `{"products":[{"id":"Club","content":{"email":{"subjects":"one"}}}]}`, wantErr: true},
		{name: "truncated", raw: `{"products":[{"id":"Club"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseResponse(tt.raw, all, channels)
			if tt.wantErr {
				var se *SchemaParseError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, tt.raw, se.Raw)
				return
			}
			require.NoError(t, err)
			assert.Len(t, parsed.Products, tt.wantLen)
		})
	}
}

func TestParseResponseReconciles(t *testing.T) {
	requested := []catalog.ProductID{catalog.ProductClub, catalog.ProductSaaS, catalog.ProductView}
	channels := []catalog.ChannelID{catalog.ChannelEmail, catalog.ChannelBlog}

	raw := `{"products":[
		{"id":"View","name":"View goFlux","content":{"email":{"subjects":["v"],"body":"v"},"blog":{"title":"t","summary":["s"]}}},
		{"id":"club","name":"","content":{"email":{"subjects":["c"],"body":"c"},"social":{"artText":"x","caption":"y"}}},
		{"id":"Club","name":"Duplicate","content":{}},
		{"id":"carbonFree","name":"Not requested","content":{}},
		{"id":"Freight","name":"Invented","content":{}}
	]}`

	parsed, err := ParseResponse(raw, requested, channels)
	require.NoError(t, err)

	require.Len(t, parsed.Products, 2)
	assert.Equal(t, catalog.ProductClub, parsed.Products[0].ID, "catalog order")
	assert.Equal(t, catalog.ProductView, parsed.Products[1].ID)

	club := parsed.Products[0]
	assert.Equal(t, "Club", club.Name, "blank name falls back to catalog label")
	assert.Equal(t, []string{"c"}, club.Content.Email.Subjects)
	assert.Nil(t, club.Content.Social, "unrequested channel stripped")
	require.NotNil(t, club.Content.Blog, "requested channel filled")
	assert.Empty(t, club.Content.Blog.Title)
	assert.NotNil(t, club.Content.Blog.Summary)

	assert.ElementsMatch(t, []string{"carbonFree", "Freight"}, parsed.Dropped)
	assert.Equal(t, []catalog.ProductID{catalog.ProductSaaS}, parsed.Missing)
	assert.Equal(t, 1, parsed.Filled)
}

func TestParseResponseFillsEmptyLists(t *testing.T) {
	raw := `{"products":[{"id":"naConta","name":"naConta","content":{"email":{"body":"b"}}}]}`
	parsed, err := ParseResponse(raw, []catalog.ProductID{catalog.ProductNaConta}, []catalog.ChannelID{catalog.ChannelEmail})
	require.NoError(t, err)
	require.Len(t, parsed.Products, 1)
	assert.Equal(t, []string{}, parsed.Products[0].Content.Email.Subjects)
	assert.Zero(t, parsed.Filled)
}
