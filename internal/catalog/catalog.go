// Package catalog holds the built-in product, persona and channel registries.
// The data is fixed at compile time; user edits live in configstore.
package catalog

import "strings"

type ProductID string

const (
	ProductClub       ProductID = "Club"
	ProductCarbonFree ProductID = "carbonFree"
	ProductSaaS       ProductID = "SAAS"
	ProductNaConta    ProductID = "naConta"
	ProductView       ProductID = "View"
)

type Persona string

const (
	PersonaEmbarcador    Persona = "Embarcador"
	PersonaTransportador Persona = "Transportador"
)

type ChannelID string

const (
	ChannelEmail  ChannelID = "email"
	ChannelSocial ChannelID = "social"
	ChannelBlog   ChannelID = "blog"
)

// Style carries the presentation tags the UI uses for a product card.
type Style struct {
	Icon       string `json:"icon"`
	Color      string `json:"color"`
	Background string `json:"background"`
}

type Product struct {
	ID                         ProductID          `json:"id"`
	Label                      string             `json:"label"`
	DefaultGeneralDescription  string             `json:"defaultGeneralDescription"`
	DefaultPersonaDescriptions map[Persona]string `json:"defaultPersonaDescriptions"`
	Style                      Style              `json:"style"`
}

type Channel struct {
	ID            ChannelID `json:"id"`
	Label         string    `json:"label"`
	Icon          string    `json:"icon"`
	DefaultPrompt string    `json:"defaultPrompt"`
}

// Products returns the product registry in catalog order.
func Products() []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = p
		out[i].DefaultPersonaDescriptions = copyPersonaMap(p.DefaultPersonaDescriptions)
	}
	return out
}

// Channels returns the channel registry in catalog order.
func Channels() []Channel {
	out := make([]Channel, len(channels))
	copy(out, channels)
	return out
}

func Personas() []Persona {
	return []Persona{PersonaEmbarcador, PersonaTransportador}
}

func ProductIDs() []ProductID {
	ids := make([]ProductID, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func ChannelIDs() []ChannelID {
	ids := make([]ChannelID, len(channels))
	for i, c := range channels {
		ids[i] = c.ID
	}
	return ids
}

func ProductByID(id ProductID) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			p.DefaultPersonaDescriptions = copyPersonaMap(p.DefaultPersonaDescriptions)
			return p, true
		}
	}
	return Product{}, false
}

func ChannelByID(id ChannelID) (Channel, bool) {
	for _, c := range channels {
		if c.ID == id {
			return c, true
		}
	}
	return Channel{}, false
}

// ParseProductID resolves a product identifier ignoring case, so "saas"
// and "SAAS" both name the platform product.
func ParseProductID(s string) (ProductID, bool) {
	s = strings.TrimSpace(s)
	for _, p := range products {
		if strings.EqualFold(string(p.ID), s) {
			return p.ID, true
		}
	}
	return "", false
}

func ParseChannelID(s string) (ChannelID, bool) {
	s = strings.TrimSpace(s)
	for _, c := range channels {
		if strings.EqualFold(string(c.ID), s) {
			return c.ID, true
		}
	}
	return "", false
}

func ParsePersona(s string) (Persona, bool) {
	s = strings.TrimSpace(s)
	for _, p := range Personas() {
		if strings.EqualFold(string(p), s) {
			return p, true
		}
	}
	return "", false
}

func copyPersonaMap(m map[Persona]string) map[Persona]string {
	out := make(map[Persona]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
