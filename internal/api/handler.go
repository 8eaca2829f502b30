// Package api exposes the engine over HTTP with gin.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/BerylCAtieno/goflux-content-engine/internal/catalog"
	"github.com/BerylCAtieno/goflux-content-engine/internal/configstore"
	"github.com/BerylCAtieno/goflux-content-engine/internal/engine"
	"github.com/BerylCAtieno/goflux-content-engine/internal/metrics"
	"github.com/BerylCAtieno/goflux-content-engine/internal/selection"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	engine  *engine.Engine
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewHandler(e *engine.Engine, m *metrics.Metrics, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{engine: e, metrics: m, logger: logger}
}

// Register mounts every route on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/health", h.Health)
	if h.metrics != nil {
		r.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}

	api := r.Group("/api")
	api.GET("/catalog", h.Catalog)

	sel := api.Group("/selection")
	{
		sel.GET("", h.GetSelection)
		sel.PUT("", h.PutSelection)
		sel.PUT("/persona", h.SetPersona)
		sel.POST("/products/:id/toggle", h.ToggleProduct)
		sel.POST("/products/all", h.SelectAllProducts)
		sel.POST("/products/none", h.DeselectAllProducts)
		sel.POST("/channels/:id/toggle", h.ToggleChannel)
		sel.POST("/channels/all", h.SelectAllChannels)
		sel.POST("/channels/none", h.DeselectAllChannels)
	}

	cfg := api.Group("/config")
	{
		cfg.GET("/products", h.GetProductConfigs)
		cfg.PUT("/products/:id", h.PutProductConfig)
		cfg.POST("/products/:id/reset", h.ResetProductConfig)
		cfg.GET("/channels", h.GetChannelConfigs)
		cfg.PUT("/channels/:id", h.PutChannelConfig)
		cfg.POST("/channels/:id/reset", h.ResetChannelConfig)
	}

	api.POST("/generate", h.Generate)
	api.POST("/revise", h.Revise)
	api.GET("/results", h.Results)
	api.POST("/preview", h.Preview)
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

type catalogResponse struct {
	Products []catalog.Product `json:"products"`
	Channels []catalog.Channel `json:"channels"`
	Personas []catalog.Persona `json:"personas"`
	Provider string            `json:"provider"`
}

func (h *Handler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, catalogResponse{
		Products: catalog.Products(),
		Channels: catalog.Channels(),
		Personas: catalog.Personas(),
		Provider: h.engine.Provider(),
	})
}

// statusFor maps an error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, configstore.ErrUnknownProduct), errors.Is(err, configstore.ErrUnknownChannel):
		return http.StatusNotFound
	case errors.Is(err, configstore.ErrUnknownPersona):
		return http.StatusBadRequest
	}
	switch engine.ErrorKind(err) {
	case engine.ErrorKindValidation:
		return http.StatusBadRequest
	case engine.ErrorKindBusy:
		return http.StatusConflict
	case engine.ErrorKindProvider, engine.ErrorKindEmpty, engine.ErrorKindParse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	}
	var v *selection.ValidationError
	if errors.As(err, &v) {
		c.JSON(status, gin.H{"error": v.Message, "code": v.Code})
		return
	}
	c.JSON(status, gin.H{"error": engine.DisplayMessage(err)})
}
