package composer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/BerylCAtieno/goflux-content-engine/internal/catalog"
	"github.com/BerylCAtieno/goflux-content-engine/internal/models"
	"github.com/BerylCAtieno/goflux-content-engine/internal/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRequest() Request {
	return Request{
		Theme:          "ESG in Logistics",
		Products:       selection.All[catalog.ProductID](),
		Channels:       selection.All[catalog.ChannelID](),
		Persona:        selection.PersonaNone,
		ProductConfigs: models.DefaultProductConfigs(),
		ChannelConfigs: models.DefaultChannelConfigs(),
	}
}

func channelSubsets() [][]catalog.ChannelID {
	all := catalog.ChannelIDs()
	var out [][]catalog.ChannelID
	for mask := 1; mask < 1<<len(all); mask++ {
		var subset []catalog.ChannelID
		for i, c := range all {
			if mask&(1<<i) != 0 {
				subset = append(subset, c)
			}
		}
		out = append(out, subset)
	}
	return out
}

func TestContentSchemaMirrorsChannels(t *testing.T) {
	for _, subset := range channelSubsets() {
		schema := ContentSchema(subset)

		want := make([]string, len(subset))
		for i, c := range subset {
			want[i] = string(c)
		}
		assert.Equal(t, want, schema.Required, "subset %v", subset)
		assert.Len(t, schema.Properties, len(subset))
		for _, c := range catalog.ChannelIDs() {
			_, present := schema.Properties[string(c)]
			assert.Equal(t, containsChannel(subset, c), present, "channel %s in subset %v", c, subset)
		}
	}
}

func TestContentSchemaFragments(t *testing.T) {
	schema := ContentSchema(catalog.ChannelIDs())

	email := schema.Properties["email"]
	require.NotNil(t, email)
	assert.Equal(t, TypeArray, email.Properties["subjects"].Type)
	assert.Equal(t, TypeString, email.Properties["subjects"].Items.Type)
	assert.Equal(t, TypeString, email.Properties["body"].Type)

	social := schema.Properties["social"]
	require.NotNil(t, social)
	assert.ElementsMatch(t, []string{"artText", "caption"}, social.Required)

	blog := schema.Properties["blog"]
	require.NotNil(t, blog)
	assert.Equal(t, TypeString, blog.Properties["title"].Type)
	assert.Equal(t, TypeArray, blog.Properties["summary"].Type)
}

func TestResponseSchemaEnvelope(t *testing.T) {
	schema := ResponseSchema([]catalog.ChannelID{catalog.ChannelBlog})
	assert.Equal(t, []string{"products"}, schema.Required)

	item := schema.Properties["products"].Items
	require.NotNil(t, item)
	assert.Equal(t, []string{"id", "name", "content"}, item.Required)
	assert.Equal(t, []string{"blog"}, item.Properties["content"].Required)
}

func TestComposeEmailOnlyNoPersona(t *testing.T) {
	req := baseRequest()
	req.Channels = selection.Explicit(catalog.ChannelEmail)

	p := Compose(req)
	require.False(t, p.Empty())
	assert.False(t, p.Revision)
	assert.Equal(t, catalog.ProductIDs(), p.Products)
	assert.Equal(t, []catalog.ChannelID{catalog.ChannelEmail}, p.Channels)

	content := p.Schema.Properties["products"].Items.Properties["content"]
	assert.Equal(t, []string{"email"}, content.Required)
	assert.NotContains(t, content.Properties, "social")
	assert.NotContains(t, content.Properties, "blog")

	for _, prod := range catalog.Products() {
		assert.Contains(t, p.Instruction, prod.DefaultGeneralDescription)
	}
	assert.NotContains(t, p.Instruction, "Audience profile (")
	assert.Contains(t, p.Instruction, "Audience: "+AudienceMixed)
	assert.Contains(t, p.Instruction, "CENTRAL THEME: ESG in Logistics")
	assert.Contains(t, p.Instruction, "SUB-THEMES: None.")
	assert.Contains(t, p.Instruction, "Email Marketing:")
	assert.NotContains(t, p.Instruction, "Redes Sociais:")
	assert.NotContains(t, p.Instruction, "### Revision Instruction")
}

func TestComposeEmbarcadorPersona(t *testing.T) {
	req := baseRequest()
	req.Persona = selection.PersonaFilter(catalog.PersonaEmbarcador)

	p := Compose(req)
	assert.Contains(t, strings.ToLower(p.Instruction), "audience: exclusively shippers")
	for _, prod := range catalog.Products() {
		assert.Contains(t, p.Instruction, "Audience profile (Embarcador): "+prod.DefaultPersonaDescriptions[catalog.PersonaEmbarcador])
	}
	assert.NotContains(t, p.Instruction, "Audience profile (Transportador)")
}

func TestComposeTransportadorAudience(t *testing.T) {
	req := baseRequest()
	req.Persona = selection.PersonaFilter(catalog.PersonaTransportador)
	assert.Contains(t, Compose(req).Instruction, "Audience: "+AudienceCarriers)
}

func TestComposeOmitsEmptyPersonaDescription(t *testing.T) {
	req := baseRequest()
	req.Persona = selection.PersonaFilter(catalog.PersonaEmbarcador)
	req.Products = selection.Explicit(catalog.ProductClub, catalog.ProductView)

	cfg := req.ProductConfigs[catalog.ProductClub]
	cfg.PersonaDescriptions[catalog.PersonaEmbarcador] = "  "
	req.ProductConfigs[catalog.ProductClub] = cfg

	p := Compose(req)
	assert.Equal(t, 1, strings.Count(p.Instruction, "Audience profile (Embarcador)"))
	assert.Contains(t, p.Instruction, "View (name: View)")
	assert.Contains(t, p.Instruction, "Club (name: Club)")
	assert.NotContains(t, p.Instruction, "Audience profile (Embarcador): \n")
}

func TestComposeUsesOverridesAndCatalogOrder(t *testing.T) {
	req := baseRequest()
	req.Products = selection.Explicit(catalog.ProductView, catalog.ProductSaaS)
	req.ChannelConfigs[catalog.ChannelBlog] = "Custom blog template"
	req.ProductConfigs[catalog.ProductSaaS] = models.ProductConfig{GeneralDescription: "Edited platform summary"}

	p := Compose(req)
	assert.Equal(t, []catalog.ProductID{catalog.ProductSaaS, catalog.ProductView}, p.Products)
	assert.Contains(t, p.Instruction, "Edited platform summary")
	assert.Contains(t, p.Instruction, "Artigo de Blog:\nCustom blog template")
	assert.Less(t, strings.Index(p.Instruction, "SAAS (name: Plataforma)"), strings.Index(p.Instruction, "View (name: View)"))
	assert.NotContains(t, p.Instruction, "Club (name: Club)")
}

func TestComposeRevisionAppendsDirective(t *testing.T) {
	req := baseRequest()
	req.Subthemes = "custo, eficiência"
	fresh := Compose(req)

	req.Modification = "Make the email subjects punchier"
	revised := Compose(req)

	assert.True(t, revised.Revision)
	assert.True(t, strings.HasPrefix(revised.Instruction, fresh.Instruction[:strings.Index(fresh.Instruction, "### Output Structure")]))
	assert.Contains(t, revised.Instruction, "### Revision Instruction")
	assert.Contains(t, revised.Instruction, `"Make the email subjects punchier"`)
	assert.Contains(t, revised.Instruction, "SUB-THEMES: custo, eficiência")
	assert.Equal(t, fresh.Schema, revised.Schema)
}

func TestComposeBlankModificationIsFresh(t *testing.T) {
	req := baseRequest()
	req.Modification = "   "
	p := Compose(req)
	assert.False(t, p.Revision)
	assert.NotContains(t, p.Instruction, "Revision Instruction")
}

func TestComposeShortCircuitsEmptySelections(t *testing.T) {
	req := baseRequest()
	req.Products = selection.Explicit[catalog.ProductID]()
	p := Compose(req)
	assert.True(t, p.Empty())
	assert.Empty(t, p.Instruction)
	assert.Nil(t, p.Schema)

	req = baseRequest()
	req.Channels = selection.Explicit[catalog.ChannelID]()
	p = Compose(req)
	assert.True(t, p.Empty())
	assert.Empty(t, p.Instruction)
}

func TestComposeIsDeterministic(t *testing.T) {
	req := baseRequest()
	req.Persona = selection.PersonaFilter(catalog.PersonaTransportador)
	a := Compose(req)
	b := Compose(req)
	assert.Equal(t, a.Instruction, b.Instruction)

	aj, err := json.Marshal(a.Schema)
	require.NoError(t, err)
	bj, err := json.Marshal(b.Schema)
	require.NoError(t, err)
	assert.JSONEq(t, string(aj), string(bj))
}

func TestComposeExampleMatchesChannels(t *testing.T) {
	req := baseRequest()
	req.Channels = selection.Explicit(catalog.ChannelSocial, catalog.ChannelBlog)
	p := Compose(req)

	assert.Contains(t, p.Instruction, "containing ONLY these keys: social, blog.")
	assert.Contains(t, p.Instruction, `"artText"`)
	assert.NotContains(t, p.Instruction, `"subjects"`)
}
