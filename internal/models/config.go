package models

import "github.com/BerylCAtieno/goflux-content-engine/internal/catalog"

// ProductConfig is the user-editable description set for one product.
type ProductConfig struct {
	GeneralDescription  string                     `json:"generalDescription"`
	PersonaDescriptions map[catalog.Persona]string `json:"personaDescriptions"`
}

func (c ProductConfig) Clone() ProductConfig {
	out := ProductConfig{
		GeneralDescription:  c.GeneralDescription,
		PersonaDescriptions: make(map[catalog.Persona]string, len(c.PersonaDescriptions)),
	}
	for k, v := range c.PersonaDescriptions {
		out.PersonaDescriptions[k] = v
	}
	return out
}

type ProductConfigs map[catalog.ProductID]ProductConfig

func (m ProductConfigs) Clone() ProductConfigs {
	out := make(ProductConfigs, len(m))
	for k, v := range m {
		out[k] = v.Clone()
	}
	return out
}

// ChannelConfigs maps a channel to its prompt template.
type ChannelConfigs map[catalog.ChannelID]string

func (m ChannelConfigs) Clone() ChannelConfigs {
	out := make(ChannelConfigs, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// DefaultProductConfig builds a product's config from its catalog defaults.
func DefaultProductConfig(p catalog.Product) ProductConfig {
	return ProductConfig{
		GeneralDescription:  p.DefaultGeneralDescription,
		PersonaDescriptions: p.DefaultPersonaDescriptions,
	}.Clone()
}

func DefaultProductConfigs() ProductConfigs {
	out := make(ProductConfigs)
	for _, p := range catalog.Products() {
		out[p.ID] = DefaultProductConfig(p)
	}
	return out
}

func DefaultChannelConfigs() ChannelConfigs {
	out := make(ChannelConfigs)
	for _, c := range catalog.Channels() {
		out[c.ID] = c.DefaultPrompt
	}
	return out
}
