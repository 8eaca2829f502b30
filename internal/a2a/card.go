package a2a

import (
	"fmt"
	"strings"

	"github.com/BerylCAtieno/goflux-content-engine/internal/catalog"
)

type AgentCard struct {
	Name               string       `json:"name"`
	Description        string       `json:"description"`
	URL                string       `json:"url"`
	Version            string       `json:"version"`
	Provider           CardProvider `json:"provider"`
	Capabilities       Capabilities `json:"capabilities"`
	DefaultInputModes  []string     `json:"defaultInputModes"`
	DefaultOutputModes []string     `json:"defaultOutputModes"`
	Skills             []Skill      `json:"skills"`
}

type CardProvider struct {
	Organization string `json:"organization"`
}

type Capabilities struct {
	Streaming              bool `json:"streaming"`
	PushNotifications      bool `json:"pushNotifications"`
	StateTransitionHistory bool `json:"stateTransitionHistory"`
}

type Skill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Examples    []string `json:"examples,omitempty"`
}

// BuildAgentCard describes the agent from the catalog. baseURL is the
// public origin the A2A endpoint is served from.
func BuildAgentCard(baseURL, version string) AgentCard {
	products := make([]string, 0, len(catalog.Products()))
	for _, p := range catalog.Products() {
		products = append(products, string(p.ID))
	}

	skills := []Skill{{
		ID:   "marketing-content",
		Name: "goFlux marketing content",
		Description: fmt.Sprintf("Writes campaign copy about a theme for the goFlux products (%s). "+
			"Send the theme as text; an optional data part may set subthemes, products, channels, persona and revision.",
			strings.Join(products, ", ")),
		Tags:     []string{"marketing", "copywriting", "logistics"},
		Examples: []string{"Antecipação de recebíveis para transportadoras", "Redução de emissões no frete rodoviário"},
	}}
	for _, ch := range catalog.Channels() {
		skills = append(skills, Skill{
			ID:          "channel-" + string(ch.ID),
			Name:        ch.Label,
			Description: fmt.Sprintf("Only the %s format. Set \"channels\": [%q] in the data part.", ch.Label, ch.ID),
			Tags:        []string{"marketing", string(ch.ID)},
		})
	}

	return AgentCard{
		Name:               "goFlux Content Engine",
		Description:        "Generates email, social and blog copy for goFlux logistics products.",
		URL:                strings.TrimRight(baseURL, "/") + ContentPath,
		Version:            version,
		Provider:           CardProvider{Organization: "goFlux"},
		Capabilities:       Capabilities{},
		DefaultInputModes:  []string{"text/plain", "application/json"},
		DefaultOutputModes: []string{"text/markdown", "application/json"},
		Skills:             skills,
	}
}
