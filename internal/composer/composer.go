// Package composer renders a selection and the merged product/channel
// configuration into the instruction text and response schema sent to the
// model. It never reads storage; callers pass configs in.
package composer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BerylCAtieno/goflux-content-engine/internal/catalog"
	"github.com/BerylCAtieno/goflux-content-engine/internal/models"
	"github.com/BerylCAtieno/goflux-content-engine/internal/selection"
)

const DefaultLanguage = "Brazilian Portuguese"

const (
	AudienceShippers = "exclusively shippers (companies that hire carriers)."
	AudienceCarriers = "exclusively carriers (carrier owners and their managers)."
	AudienceMixed    = "logistics managers, carrier owners and supply professionals."
)

const roleText = `Act as the "goFlux Content Engine", a senior copywriter specialised in logtech, fintech and sustainability for the road freight sector.`

const brandVoice = "Professional, innovative, data-driven and human (a partner to the carrier)."

type Request struct {
	Theme          string
	Subthemes      string
	Products       selection.Filter[catalog.ProductID]
	Channels       selection.Filter[catalog.ChannelID]
	Persona        selection.PersonaFilter
	Modification   string
	ProductConfigs models.ProductConfigs
	ChannelConfigs models.ChannelConfigs
	Language       string
}

// NewRequest copies the selection into a composer request.
func NewRequest(state selection.State, products models.ProductConfigs, channels models.ChannelConfigs) Request {
	return Request{
		Theme:          state.Theme,
		Subthemes:      state.Subthemes,
		Products:       state.Products,
		Channels:       state.Channels,
		Persona:        state.Persona,
		Modification:   state.Modification,
		ProductConfigs: products,
		ChannelConfigs: channels,
	}
}

type Prompt struct {
	Instruction string              `json:"instruction"`
	Schema      *Schema             `json:"schema"`
	Products    []catalog.ProductID `json:"products"`
	Channels    []catalog.ChannelID `json:"channels"`
	Revision    bool                `json:"revision"`
}

// Empty reports a request that resolves to no products or no channels.
// Such a prompt carries no text and must not be sent to a model.
func (p Prompt) Empty() bool {
	return len(p.Products) == 0 || len(p.Channels) == 0
}

// Compose is deterministic: the same request always yields the same prompt.
func Compose(req Request) Prompt {
	products := req.Products.Effective(catalog.ProductIDs())
	channels := req.Channels.Effective(catalog.ChannelIDs())
	p := Prompt{Products: products, Channels: channels}
	if p.Empty() {
		return p
	}

	modification := strings.TrimSpace(req.Modification)
	p.Revision = modification != ""
	p.Schema = ResponseSchema(channels)

	language := req.Language
	if language == "" {
		language = DefaultLanguage
	}

	var sections []section
	sections = appendSection(sections, "Role", roleText)
	sections = appendSection(sections, "Theme", themeText(req.Theme, req.Subthemes))
	sections = appendSection(sections, "Brand Guidelines", brandText(req.Persona))
	sections = appendSection(sections, "Product Context", productContext(products, req.ProductConfigs, req.Persona))
	sections = appendSection(sections, "Channel Formats", channelInstructions(channels, req.ChannelConfigs))
	if p.Revision {
		sections = appendSection(sections, "Revision Instruction", revisionText(modification))
	}
	sections = appendSection(sections, "Output Structure", outputText(products, channels))
	sections = appendSection(sections, "Language", fmt.Sprintf("Write every piece of copy in %s.", language))

	p.Instruction = renderSections(sections)
	return p
}

// AudienceFor resolves the audience line for a persona filter.
func AudienceFor(persona selection.PersonaFilter) string {
	switch p, _ := persona.Persona(); p {
	case catalog.PersonaEmbarcador:
		return AudienceShippers
	case catalog.PersonaTransportador:
		return AudienceCarriers
	default:
		return AudienceMixed
	}
}

func themeText(theme, subthemes string) string {
	subthemes = strings.TrimSpace(subthemes)
	if subthemes == "" {
		subthemes = "None."
	}
	return fmt.Sprintf("CENTRAL THEME: %s\nSUB-THEMES: %s", strings.TrimSpace(theme), subthemes)
}

func brandText(persona selection.PersonaFilter) string {
	return fmt.Sprintf("Tone of voice: %s\nAudience: %s", brandVoice, AudienceFor(persona))
}

// ProductLine renders one product's context block. The persona line is
// present only for a targeted persona with a non-empty description.
func ProductLine(p catalog.Product, cfg models.ProductConfig, persona selection.PersonaFilter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (name: %s):\n  - General summary: %s", p.ID, p.Label, cfg.GeneralDescription)
	if target, ok := persona.Persona(); ok {
		if desc := strings.TrimSpace(cfg.PersonaDescriptions[target]); desc != "" {
			fmt.Fprintf(&b, "\n  - Audience profile (%s): %s", target, desc)
		}
	}
	return b.String()
}

func productContext(ids []catalog.ProductID, configs models.ProductConfigs, persona selection.PersonaFilter) string {
	blocks := make([]string, 0, len(ids))
	for _, id := range ids {
		p, ok := catalog.ProductByID(id)
		if !ok {
			continue
		}
		cfg, ok := configs[id]
		if !ok {
			cfg = models.DefaultProductConfig(p)
		}
		blocks = append(blocks, ProductLine(p, cfg, persona))
	}
	header := "Use these descriptions as the basis. Generate content ONLY for the product IDs below. " +
		"The 'name' field in the JSON reply is the name you infer for the product (for ID 'SAAS' it can be 'Plataforma')."
	return header + "\n\n" + strings.Join(blocks, "\n\n")
}

func channelInstructions(ids []catalog.ChannelID, configs models.ChannelConfigs) string {
	blocks := make([]string, 0, len(ids))
	for _, id := range ids {
		c, ok := catalog.ChannelByID(id)
		if !ok {
			continue
		}
		tmpl, ok := configs[id]
		if !ok {
			tmpl = c.DefaultPrompt
		}
		blocks = append(blocks, fmt.Sprintf("%s:\n%s", c.Label, strings.TrimSpace(tmpl)))
	}
	header := "For EACH product ID listed in the product context, generate content in ONLY the following channel formats."
	return header + "\n\n" + strings.Join(blocks, "\n\n")
}

func revisionText(instruction string) string {
	return "Based on the previously generated content (considering the CENTRAL THEME, SUB-THEMES and PRODUCT CONTEXT above), " +
		"REVISE all of the generated content according to the following instruction:\n" +
		fmt.Sprintf("%q\n", instruction) +
		"Keep the same JSON structure and the required channel formats."
}

func outputText(products []catalog.ProductID, channels []catalog.ChannelID) string {
	keys := make([]string, len(channels))
	for i, c := range channels {
		keys[i] = string(c)
	}

	var b strings.Builder
	b.WriteString("Return a JSON object with a 'products' array, one object per product. ")
	b.WriteString("Each product object MUST contain 'id' (the product ID), 'name' (the inferred product name) ")
	fmt.Fprintf(&b, "and a 'content' object containing ONLY these keys: %s.\n\nExample:\n", strings.Join(keys, ", "))
	b.WriteString(exampleJSON(products[0], channels))
	return b.String()
}

func exampleJSON(id catalog.ProductID, channels []catalog.ChannelID) string {
	var content models.Content
	for _, c := range channels {
		switch c {
		case catalog.ChannelEmail:
			content.Email = &models.EmailContent{Subjects: []string{"Subject 1", "Subject 2", "Subject 3"}, Body: "Email body..."}
		case catalog.ChannelSocial:
			content.Social = &models.SocialContent{ArtText: "Art text", Caption: "Caption with hashtags and CTA"}
		case catalog.ChannelBlog:
			content.Blog = &models.BlogContent{Title: "SEO title", Summary: []string{"Topic 1", "Topic 2", "Topic 3"}}
		}
	}
	example := models.GenerationResponse{Products: []models.ProductContent{{ID: id, Name: string(id) + " goFlux", Content: content}}}
	data, _ := json.MarshalIndent(example, "", "  ")
	return string(data)
}
