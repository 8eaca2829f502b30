// Package selection models what the user asked to generate: theme,
// sub-themes, product/channel filters, persona and an optional revision
// instruction.
package selection

import (
	"fmt"
	"strings"

	"github.com/BerylCAtieno/goflux-content-engine/internal/catalog"
)

// PersonaFilter is a catalog persona or PersonaNone.
type PersonaFilter string

const PersonaNone PersonaFilter = "none"

// Persona returns the targeted persona, false for PersonaNone.
func (p PersonaFilter) Persona() (catalog.Persona, bool) {
	if p == PersonaNone || p == "" {
		return "", false
	}
	return catalog.Persona(p), true
}

func ParsePersonaFilter(s string) (PersonaFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(PersonaNone)) {
		return PersonaNone, nil
	}
	persona, ok := catalog.ParsePersona(s)
	if !ok {
		return "", &ValidationError{Code: CodeUnknownPersona, Message: fmt.Sprintf("Unknown persona %q.", s)}
	}
	return PersonaFilter(persona), nil
}

type State struct {
	Theme        string                    `json:"theme"`
	Subthemes    string                    `json:"subthemes"`
	Products     Filter[catalog.ProductID] `json:"products"`
	Channels     Filter[catalog.ChannelID] `json:"channels"`
	Persona      PersonaFilter             `json:"persona"`
	Modification string                    `json:"modificationInstruction,omitempty"`
}

// NewState selects every product and channel with no persona.
func NewState() State {
	return State{
		Products: All[catalog.ProductID](),
		Channels: All[catalog.ChannelID](),
		Persona:  PersonaNone,
	}
}

func (s *State) SetTheme(theme string)         { s.Theme = theme }
func (s *State) SetSubthemes(subthemes string) { s.Subthemes = subthemes }
func (s *State) SetModification(text string)   { s.Modification = text }

func (s *State) ToggleProduct(id catalog.ProductID) {
	s.Products = s.Products.Toggle(id, catalog.ProductIDs())
}

func (s *State) ToggleChannel(id catalog.ChannelID) {
	s.Channels = s.Channels.Toggle(id, catalog.ChannelIDs())
}

func (s *State) SelectAllProducts()   { s.Products = All[catalog.ProductID]() }
func (s *State) DeselectAllProducts() { s.Products = Explicit[catalog.ProductID]() }
func (s *State) SelectAllChannels()   { s.Channels = All[catalog.ChannelID]() }
func (s *State) DeselectAllChannels() { s.Channels = Explicit[catalog.ChannelID]() }

// SetProducts matches members case-insensitively against the catalog and
// drops the rest.
func (s *State) SetProducts(f Filter[catalog.ProductID]) {
	s.Products = canonical(f, catalog.ParseProductID).Normalize(catalog.ProductIDs())
}

func (s *State) SetChannels(f Filter[catalog.ChannelID]) {
	s.Channels = canonical(f, catalog.ParseChannelID).Normalize(catalog.ChannelIDs())
}

func canonical[T ~string](f Filter[T], parse func(string) (T, bool)) Filter[T] {
	if f.IsAll() {
		return f
	}
	out := make([]T, 0, len(f.members))
	for _, m := range f.members {
		if id, ok := parse(string(m)); ok {
			out = append(out, id)
		}
	}
	return Explicit(out...)
}

// SetPersona stores the catalog spelling of p; blank means PersonaNone.
func (s *State) SetPersona(p PersonaFilter) error {
	parsed, err := ParsePersonaFilter(string(p))
	if err != nil {
		return err
	}
	s.Persona = parsed
	return nil
}

// EffectiveProducts resolves the product filter in catalog order.
func (s State) EffectiveProducts() []catalog.ProductID {
	return s.Products.Effective(catalog.ProductIDs())
}

func (s State) EffectiveChannels() []catalog.ChannelID {
	return s.Channels.Effective(catalog.ChannelIDs())
}

// Validate reports problems that must stop a request before it reaches the
// model: a blank theme or an unknown persona.
func (s State) Validate() error {
	if strings.TrimSpace(s.Theme) == "" {
		return &ValidationError{Code: CodeEmptyTheme, Message: "Please enter a central theme."}
	}
	if _, err := ParsePersonaFilter(string(s.Persona)); err != nil {
		return err
	}
	return nil
}

// EmptySelection returns the notice for an explicit-but-empty product or
// channel filter, or nil when both filters resolve to at least one member.
func (s State) EmptySelection() *ValidationError {
	if len(s.EffectiveProducts()) == 0 {
		return &ValidationError{Code: CodeNoProducts, Message: "Select at least one product to generate content."}
	}
	if len(s.EffectiveChannels()) == 0 {
		return &ValidationError{Code: CodeNoChannels, Message: "Select at least one channel to generate content."}
	}
	return nil
}
