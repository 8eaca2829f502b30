package api

import (
	"net/http"

	"github.com/BerylCAtieno/goflux-content-engine/internal/catalog"
	"github.com/BerylCAtieno/goflux-content-engine/internal/selection"
	"github.com/gin-gonic/gin"
)

func (h *Handler) GetSelection(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Selection())
}

// PutSelection replaces the whole selection. Filter members are matched
// against the catalog; unknown ones are dropped.
func (h *Handler) PutSelection(c *gin.Context) {
	var body selection.State
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.engine.UpdateSelection(func(s *selection.State) error {
		next, err := normalizeSelection(body)
		if err != nil {
			return err
		}
		*s = next
		return nil
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// normalizeSelection rebuilds a decoded selection through the state
// mutators so ids and persona come out in catalog form.
func normalizeSelection(body selection.State) (selection.State, error) {
	next := selection.NewState()
	next.SetTheme(body.Theme)
	next.SetSubthemes(body.Subthemes)
	next.SetModification(body.Modification)
	next.SetProducts(body.Products)
	next.SetChannels(body.Channels)
	persona, err := selection.ParsePersonaFilter(string(body.Persona))
	if err != nil {
		return next, err
	}
	if err := next.SetPersona(persona); err != nil {
		return next, err
	}
	return next, nil
}

type personaRequest struct {
	Persona string `json:"persona"`
}

func (h *Handler) SetPersona(c *gin.Context) {
	var body personaRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	state, err := h.engine.UpdateSelection(func(s *selection.State) error {
		persona, err := selection.ParsePersonaFilter(body.Persona)
		if err != nil {
			return err
		}
		return s.SetPersona(persona)
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *Handler) ToggleProduct(c *gin.Context) {
	id, ok := catalog.ParseProductID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown product: " + c.Param("id")})
		return
	}
	h.mutate(c, func(s *selection.State) { s.ToggleProduct(id) })
}

func (h *Handler) ToggleChannel(c *gin.Context) {
	id, ok := catalog.ParseChannelID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown channel: " + c.Param("id")})
		return
	}
	h.mutate(c, func(s *selection.State) { s.ToggleChannel(id) })
}

func (h *Handler) SelectAllProducts(c *gin.Context) {
	h.mutate(c, (*selection.State).SelectAllProducts)
}

func (h *Handler) DeselectAllProducts(c *gin.Context) {
	h.mutate(c, (*selection.State).DeselectAllProducts)
}

func (h *Handler) SelectAllChannels(c *gin.Context) {
	h.mutate(c, (*selection.State).SelectAllChannels)
}

func (h *Handler) DeselectAllChannels(c *gin.Context) {
	h.mutate(c, (*selection.State).DeselectAllChannels)
}

func (h *Handler) mutate(c *gin.Context, fn func(*selection.State)) {
	state, _ := h.engine.UpdateSelection(func(s *selection.State) error {
		fn(s)
		return nil
	})
	c.JSON(http.StatusOK, state)
}
