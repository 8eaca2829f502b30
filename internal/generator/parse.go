package generator

import (
	"encoding/json"
	"errors"
	"regexp"
	"slices"
	"strings"

	"github.com/BerylCAtieno/goflux-content-engine/internal/catalog"
	"github.com/BerylCAtieno/goflux-content-engine/internal/models"
)

// fencePattern matches a reply wrapped in a markdown code block.
var fencePattern = regexp.MustCompile("(?s)^```(?:json|JSON)?\\s*\\n?(.*?)\\s*```$")

type wireResponse struct {
	Products *[]wireProduct `json:"products"`
}

type wireProduct struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Content models.Content `json:"content"`
}

// Parsed is a reconciled reply plus what reconciliation had to fix.
type Parsed struct {
	Products []models.ProductContent
	// Dropped lists product ids in the reply that were not requested.
	Dropped []string
	// Missing lists requested products absent from the reply.
	Missing []catalog.ProductID
	// Filled counts channel blocks synthesized for requested channels.
	Filled int
}

// StripCodeFence removes a surrounding ```json fence, if any.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if m := fencePattern.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return text
}

// ParseResponse decodes a model reply and reconciles it against the
// requested products and channels. Products keep catalog order; unknown
// or unrequested ids are dropped, duplicates keep their first entry,
// missing requested channel blocks are filled empty and unrequested ones
// are removed.
func ParseResponse(raw string, products []catalog.ProductID, channels []catalog.ChannelID) (*Parsed, error) {
	body := StripCodeFence(raw)
	if body == "" {
		return nil, &SchemaParseError{Raw: raw, err: errors.New("reply is blank")}
	}

	var wire wireResponse
	if err := json.Unmarshal([]byte(body), &wire); err != nil {
		return nil, &SchemaParseError{Raw: raw, err: err}
	}
	if wire.Products == nil {
		return nil, &SchemaParseError{Raw: raw, err: errors.New(`missing "products" array`)}
	}

	out := &Parsed{}
	byID := make(map[catalog.ProductID]models.ProductContent, len(products))
	for _, item := range *wire.Products {
		id, ok := catalog.ParseProductID(item.ID)
		if !ok || !slices.Contains(products, id) {
			out.Dropped = append(out.Dropped, item.ID)
			continue
		}
		if _, dup := byID[id]; dup {
			continue
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			if p, ok := catalog.ProductByID(id); ok {
				name = p.Label
			}
		}
		content, filled := reconcileContent(item.Content, channels)
		out.Filled += filled
		byID[id] = models.ProductContent{ID: id, Name: name, Content: content}
	}

	out.Products = make([]models.ProductContent, 0, len(byID))
	for _, id := range catalog.ProductIDs() {
		if !slices.Contains(products, id) {
			continue
		}
		pc, ok := byID[id]
		if !ok {
			out.Missing = append(out.Missing, id)
			continue
		}
		out.Products = append(out.Products, pc)
	}
	return out, nil
}

func reconcileContent(in models.Content, channels []catalog.ChannelID) (models.Content, int) {
	var out models.Content
	filled := 0

	if slices.Contains(channels, catalog.ChannelEmail) {
		if in.Email == nil {
			in.Email = &models.EmailContent{}
			filled++
		}
		if in.Email.Subjects == nil {
			in.Email.Subjects = []string{}
		}
		out.Email = in.Email
	}
	if slices.Contains(channels, catalog.ChannelSocial) {
		if in.Social == nil {
			in.Social = &models.SocialContent{}
			filled++
		}
		out.Social = in.Social
	}
	if slices.Contains(channels, catalog.ChannelBlog) {
		if in.Blog == nil {
			in.Blog = &models.BlogContent{}
			filled++
		}
		if in.Blog.Summary == nil {
			in.Blog.Summary = []string{}
		}
		out.Blog = in.Blog
	}
	return out, filled
}
