package api

import (
	"fmt"
	"net/http"

	"github.com/BerylCAtieno/goflux-content-engine/internal/catalog"
	"github.com/BerylCAtieno/goflux-content-engine/internal/configstore"
	"github.com/BerylCAtieno/goflux-content-engine/internal/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) GetProductConfigs(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.ProductConfigs())
}

func (h *Handler) GetChannelConfigs(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.ChannelConfigs())
}

// productConfigRequest is a partial update: a nil general description and
// absent personas keep their current values.
type productConfigRequest struct {
	GeneralDescription  *string           `json:"generalDescription"`
	PersonaDescriptions map[string]string `json:"personaDescriptions"`
}

func (h *Handler) PutProductConfig(c *gin.Context) {
	id, ok := catalog.ParseProductID(c.Param("id"))
	if !ok {
		h.fail(c, fmt.Errorf("%w: %s", configstore.ErrUnknownProduct, c.Param("id")))
		return
	}
	var body productConfigRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := models.ProductConfig{
		GeneralDescription:  h.engine.ProductConfigs()[id].GeneralDescription,
		PersonaDescriptions: make(map[catalog.Persona]string, len(body.PersonaDescriptions)),
	}
	if body.GeneralDescription != nil {
		cfg.GeneralDescription = *body.GeneralDescription
	}
	for key, text := range body.PersonaDescriptions {
		persona, ok := catalog.ParsePersona(key)
		if !ok {
			h.fail(c, fmt.Errorf("%w: %s", configstore.ErrUnknownPersona, key))
			return
		}
		cfg.PersonaDescriptions[persona] = text
	}

	if err := h.engine.SetProductConfig(c.Request.Context(), id, cfg); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.engine.ProductConfigs()[id])
}

func (h *Handler) ResetProductConfig(c *gin.Context) {
	id, ok := catalog.ParseProductID(c.Param("id"))
	if !ok {
		h.fail(c, fmt.Errorf("%w: %s", configstore.ErrUnknownProduct, c.Param("id")))
		return
	}
	if err := h.engine.ResetProduct(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.engine.ProductConfigs()[id])
}

type channelConfigRequest struct {
	Prompt string `json:"prompt"`
}

func (h *Handler) PutChannelConfig(c *gin.Context) {
	id, ok := catalog.ParseChannelID(c.Param("id"))
	if !ok {
		h.fail(c, fmt.Errorf("%w: %s", configstore.ErrUnknownChannel, c.Param("id")))
		return
	}
	var body channelConfigRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.engine.SetChannelPrompt(c.Request.Context(), id, body.Prompt); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "prompt": h.engine.ChannelConfigs()[id]})
}

func (h *Handler) ResetChannelConfig(c *gin.Context) {
	id, ok := catalog.ParseChannelID(c.Param("id"))
	if !ok {
		h.fail(c, fmt.Errorf("%w: %s", configstore.ErrUnknownChannel, c.Param("id")))
		return
	}
	if err := h.engine.ResetChannel(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "prompt": h.engine.ChannelConfigs()[id]})
}
