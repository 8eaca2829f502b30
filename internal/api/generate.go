package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/BerylCAtieno/goflux-content-engine/internal/engine"
	"github.com/BerylCAtieno/goflux-content-engine/internal/generator"
	"github.com/BerylCAtieno/goflux-content-engine/internal/models"
	"github.com/BerylCAtieno/goflux-content-engine/internal/selection"
	"github.com/gin-gonic/gin"
)

// generationResponse is the reply of every generation endpoint. Raw is set
// only when the model reply could not be parsed.
type generationResponse struct {
	Success bool                     `json:"success"`
	Result  *models.GenerationResult `json:"result,omitempty"`
	Error   string                   `json:"error,omitempty"`
	Kind    string                   `json:"kind,omitempty"`
	Raw     string                   `json:"raw,omitempty"`
}

type reviseRequest struct {
	Instruction string `json:"instruction"`
}

// Generate runs a fresh generation from the session selection.
func (h *Handler) Generate(c *gin.Context) {
	result, err := h.engine.RequestGeneration(c.Request.Context(), "")
	h.respondGeneration(c, result, err)
}

// Revise revises the current result. An empty body uses the instruction
// stored in the selection.
func (h *Handler) Revise(c *gin.Context) {
	var body reviseRequest
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.engine.Revise(c.Request.Context(), body.Instruction)
	h.respondGeneration(c, result, err)
}

func (h *Handler) Results(c *gin.Context) {
	result := h.engine.Result()
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No content generated yet."})
		return
	}
	c.JSON(http.StatusOK, generationResponse{Success: true, Result: result})
}

// Preview composes the prompt without calling the model. A body replaces
// the session selection for this preview only.
func (h *Handler) Preview(c *gin.Context) {
	state := h.engine.Selection()
	var body selection.State
	err := c.ShouldBindJSON(&body)
	switch {
	case errors.Is(err, io.EOF):
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	default:
		if state, err = normalizeSelection(body); err != nil {
			h.fail(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, h.engine.Preview(state))
}

func (h *Handler) respondGeneration(c *gin.Context, result *models.GenerationResult, err error) {
	if err == nil {
		c.JSON(http.StatusOK, generationResponse{Success: true, Result: result})
		return
	}

	resp := generationResponse{
		Error: engine.DisplayMessage(err),
		Kind:  engine.ErrorKind(err),
	}
	var parseErr *generator.SchemaParseError
	if errors.As(err, &parseErr) {
		resp.Raw = parseErr.Raw
	}
	c.JSON(statusFor(err), resp)
}
