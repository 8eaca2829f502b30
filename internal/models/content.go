package models

import (
	"time"

	"github.com/BerylCAtieno/goflux-content-engine/internal/catalog"
	"github.com/google/uuid"
)

type EmailContent struct {
	Subjects []string `json:"subjects"`
	Body     string   `json:"body"`
}

type SocialContent struct {
	ArtText string `json:"artText"`
	Caption string `json:"caption"`
}

type BlogContent struct {
	Title   string   `json:"title"`
	Summary []string `json:"summary"`
}

// Content holds one block per requested channel. Blocks for channels that
// were not requested stay nil and are omitted from JSON.
type Content struct {
	Email  *EmailContent  `json:"email,omitempty"`
	Social *SocialContent `json:"social,omitempty"`
	Blog   *BlogContent   `json:"blog,omitempty"`
}

// Has reports whether a block for the channel is present.
func (c Content) Has(id catalog.ChannelID) bool {
	switch id {
	case catalog.ChannelEmail:
		return c.Email != nil
	case catalog.ChannelSocial:
		return c.Social != nil
	case catalog.ChannelBlog:
		return c.Blog != nil
	}
	return false
}

type ProductContent struct {
	ID      catalog.ProductID `json:"id"`
	Name    string            `json:"name"`
	Content Content           `json:"content"`
}

// GenerationResponse is the wire shape the model is asked to return.
type GenerationResponse struct {
	Products []ProductContent `json:"products"`
}

type GenerationResult struct {
	ID          uuid.UUID           `json:"id"`
	Products    []ProductContent    `json:"products"`
	Channels    []catalog.ChannelID `json:"channels"`
	Revision    bool                `json:"revision"`
	Instruction string              `json:"instruction,omitempty"`
	Provider    string              `json:"provider,omitempty"`
	// Notice explains an empty result that was produced without a model call.
	Notice    string    `json:"notice,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewGenerationResult stamps a result with a fresh ID and creation time.
func NewGenerationResult(products []ProductContent, channels []catalog.ChannelID) *GenerationResult {
	if products == nil {
		products = []ProductContent{}
	}
	return &GenerationResult{
		ID:        uuid.New(),
		Products:  products,
		Channels:  channels,
		CreatedAt: time.Now().UTC(),
	}
}
