package a2a

import (
	"fmt"
	"strings"

	"github.com/BerylCAtieno/goflux-content-engine/internal/catalog"
	"github.com/BerylCAtieno/goflux-content-engine/internal/models"
)

// FormatResult renders a result as markdown, one section per product.
func FormatResult(theme string, result *models.GenerationResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Content for: %s\n\n", theme)

	if len(result.Products) == 0 {
		if result.Notice != "" {
			b.WriteString(result.Notice + "\n")
		} else {
			b.WriteString("No content generated.\n")
		}
		return b.String()
	}

	for i, p := range result.Products {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		fmt.Fprintf(&b, "## %s (%s)\n", p.Name, p.ID)

		if email := p.Content.Email; email != nil {
			fmt.Fprintf(&b, "\n### %s\n", channelLabel(catalog.ChannelEmail))
			b.WriteString("**Subject lines:**\n")
			for _, s := range email.Subjects {
				fmt.Fprintf(&b, "- %s\n", strings.TrimSpace(s))
			}
			fmt.Fprintf(&b, "\n%s\n", strings.TrimSpace(email.Body))
		}
		if social := p.Content.Social; social != nil {
			fmt.Fprintf(&b, "\n### %s\n", channelLabel(catalog.ChannelSocial))
			fmt.Fprintf(&b, "**Art text:** %s\n\n", strings.TrimSpace(social.ArtText))
			fmt.Fprintf(&b, "**Caption:** %s\n", strings.TrimSpace(social.Caption))
		}
		if blog := p.Content.Blog; blog != nil {
			fmt.Fprintf(&b, "\n### %s\n", channelLabel(catalog.ChannelBlog))
			fmt.Fprintf(&b, "**Title:** %s\n", strings.TrimSpace(blog.Title))
			if len(blog.Summary) > 0 {
				b.WriteString("\n**Outline:**\n")
				for _, topic := range blog.Summary {
					fmt.Fprintf(&b, "- %s\n", strings.TrimSpace(topic))
				}
			}
		}
	}
	return b.String()
}

func channelLabel(id catalog.ChannelID) string {
	if c, ok := catalog.ChannelByID(id); ok {
		return c.Label
	}
	return string(id)
}
