package selection

import (
	"encoding/json"
	"testing"

	"github.com/BerylCAtieno/goflux-content-engine/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleRoundTrip(t *testing.T) {
	universe := catalog.ProductIDs()

	f := All[catalog.ProductID]()
	for i, id := range universe {
		f = f.Toggle(id, universe)
		assert.False(t, f.IsAll(), "after removing %s", id)
		assert.Len(t, f.Effective(universe), len(universe)-i-1)
	}
	assert.True(t, f.IsEmpty())

	for i, id := range universe {
		f = f.Toggle(id, universe)
		if i < len(universe)-1 {
			assert.False(t, f.IsAll(), "after adding %s", id)
		}
	}
	assert.True(t, f.IsAll())
}

func TestToggleRoundTripReverseOrder(t *testing.T) {
	universe := catalog.ChannelIDs()

	f := All[catalog.ChannelID]()
	for _, id := range universe {
		f = f.Toggle(id, universe)
	}
	require.True(t, f.IsEmpty())

	for i := len(universe) - 1; i >= 0; i-- {
		f = f.Toggle(universe[i], universe)
	}
	assert.True(t, f.IsAll())
}

func TestToggleFromAllYieldsComplement(t *testing.T) {
	universe := catalog.ChannelIDs()
	f := All[catalog.ChannelID]().Toggle(catalog.ChannelSocial, universe)

	assert.Equal(t, []catalog.ChannelID{catalog.ChannelEmail, catalog.ChannelBlog}, f.Members())
	assert.False(t, f.Contains(catalog.ChannelSocial))
}

func TestToggleIgnoresUnknownMember(t *testing.T) {
	universe := catalog.ChannelIDs()
	assert.True(t, All[catalog.ChannelID]().Toggle("fax", universe).IsAll())

	f := Explicit(catalog.ChannelBlog).Toggle("fax", universe)
	assert.Equal(t, []catalog.ChannelID{catalog.ChannelBlog}, f.Members())
}

func TestExplicitFullSetNormalizesToAll(t *testing.T) {
	universe := catalog.ChannelIDs()
	f := Explicit(catalog.ChannelBlog, catalog.ChannelEmail, catalog.ChannelSocial, catalog.ChannelBlog)
	assert.False(t, f.IsAll())
	assert.True(t, f.Normalize(universe).IsAll())
}

func TestEffectiveUsesCatalogOrder(t *testing.T) {
	f := Explicit(catalog.ProductView, catalog.ProductClub)
	assert.Equal(t, []catalog.ProductID{catalog.ProductClub, catalog.ProductView}, f.Effective(catalog.ProductIDs()))
}

func TestZeroValueSelectsAll(t *testing.T) {
	var f Filter[catalog.ChannelID]
	assert.True(t, f.IsAll())
	assert.False(t, f.IsEmpty())
}

func TestFilterJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		all     bool
		members []catalog.ChannelID
		wantErr bool
	}{
		{name: "all token", in: `"all"`, all: true},
		{name: "null", in: `null`, all: true},
		{name: "empty list", in: `[]`, members: []catalog.ChannelID{}},
		{name: "list", in: `["email","blog"]`, members: []catalog.ChannelID{catalog.ChannelEmail, catalog.ChannelBlog}},
		{name: "bad token", in: `"some"`, wantErr: true},
		{name: "bad type", in: `42`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Filter[catalog.ChannelID]
			err := json.Unmarshal([]byte(tt.in), &f)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.all, f.IsAll())
			if !tt.all {
				assert.Equal(t, tt.members, f.Members())
			}
		})
	}

	out, err := json.Marshal(Explicit[catalog.ChannelID]())
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(out))

	out, err = json.Marshal(All[catalog.ChannelID]())
	require.NoError(t, err)
	assert.JSONEq(t, `"all"`, string(out))
}

func TestStateValidate(t *testing.T) {
	s := NewState()
	err := s.Validate()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeEmptyTheme, verr.Code)

	s.SetTheme("   ")
	assert.True(t, IsValidationError(s.Validate()))

	s.SetTheme("ESG in Logistics")
	assert.NoError(t, s.Validate())

	s.Persona = "Motorista"
	require.ErrorAs(t, s.Validate(), &verr)
	assert.Equal(t, CodeUnknownPersona, verr.Code)
}

func TestStateEmptySelection(t *testing.T) {
	s := NewState()
	assert.Nil(t, s.EmptySelection())

	s.DeselectAllProducts()
	notice := s.EmptySelection()
	require.NotNil(t, notice)
	assert.Equal(t, CodeNoProducts, notice.Code)

	s.SelectAllProducts()
	s.DeselectAllChannels()
	notice = s.EmptySelection()
	require.NotNil(t, notice)
	assert.Equal(t, CodeNoChannels, notice.Code)
	assert.NotEqual(t, CodeNoProducts, notice.Code)
}

func TestSetPersona(t *testing.T) {
	s := NewState()
	require.NoError(t, s.SetPersona(PersonaFilter(catalog.PersonaEmbarcador)))
	p, ok := s.Persona.Persona()
	assert.True(t, ok)
	assert.Equal(t, catalog.PersonaEmbarcador, p)

	require.NoError(t, s.SetPersona(""))
	_, ok = s.Persona.Persona()
	assert.False(t, ok)

	assert.Error(t, s.SetPersona("Motorista"))
	assert.Equal(t, PersonaNone, s.Persona)
}

func TestSetPersonaStoresCatalogSpelling(t *testing.T) {
	s := NewState()
	require.NoError(t, s.SetPersona(" embarcador "))
	assert.Equal(t, PersonaFilter(catalog.PersonaEmbarcador), s.Persona)
	p, ok := s.Persona.Persona()
	require.True(t, ok)
	assert.Equal(t, catalog.PersonaEmbarcador, p)

	require.NoError(t, s.SetPersona("NONE"))
	assert.Equal(t, PersonaNone, s.Persona)
}

func TestStateJSONRoundTripKeepsFilterVariant(t *testing.T) {
	s := NewState()
	s.SetTheme("Frete verde")
	s.ToggleProduct(catalog.ProductClub)
	s.DeselectAllChannels()

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var back State
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s.EffectiveProducts(), back.EffectiveProducts())
	assert.True(t, back.Channels.IsEmpty())
}

func TestSetProductsMatchesCatalogCaseInsensitively(t *testing.T) {
	s := NewState()
	s.SetProducts(Explicit[catalog.ProductID]("club", "VIEW", "Freight"))
	assert.Equal(t, []catalog.ProductID{catalog.ProductClub, catalog.ProductView}, s.EffectiveProducts())

	s.SetChannels(Explicit[catalog.ChannelID]("Email"))
	assert.Equal(t, []catalog.ChannelID{catalog.ChannelEmail}, s.EffectiveChannels())
}
