package composer

import "github.com/BerylCAtieno/goflux-content-engine/internal/catalog"

type SchemaType string

const (
	TypeObject SchemaType = "object"
	TypeArray  SchemaType = "array"
	TypeString SchemaType = "string"
)

// Schema is a provider-neutral subset of JSON Schema. Providers convert it
// to their own representation.
type Schema struct {
	Type       SchemaType         `json:"type"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

func stringSchema() *Schema {
	return &Schema{Type: TypeString}
}

func stringArraySchema() *Schema {
	return &Schema{Type: TypeArray, Items: stringSchema()}
}

func EmailSchema() *Schema {
	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"subjects": stringArraySchema(),
			"body":     stringSchema(),
		},
		Required: []string{"subjects", "body"},
	}
}

func SocialSchema() *Schema {
	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"artText": stringSchema(),
			"caption": stringSchema(),
		},
		Required: []string{"artText", "caption"},
	}
}

func BlogSchema() *Schema {
	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"title":   stringSchema(),
			"summary": stringArraySchema(),
		},
		Required: []string{"title", "summary"},
	}
}

var channelSchemas = map[catalog.ChannelID]func() *Schema{
	catalog.ChannelEmail:  EmailSchema,
	catalog.ChannelSocial: SocialSchema,
	catalog.ChannelBlog:   BlogSchema,
}

// ContentSchema maps a channel set to the content object. Properties and
// required fields are exactly the given channels, in catalog order.
func ContentSchema(channels []catalog.ChannelID) *Schema {
	s := &Schema{Type: TypeObject, Properties: map[string]*Schema{}}
	for _, id := range catalog.ChannelIDs() {
		if !containsChannel(channels, id) {
			continue
		}
		s.Properties[string(id)] = channelSchemas[id]()
		s.Required = append(s.Required, string(id))
	}
	return s
}

// ResponseSchema wraps ContentSchema in the products envelope.
func ResponseSchema(channels []catalog.ChannelID) *Schema {
	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"products": {
				Type: TypeArray,
				Items: &Schema{
					Type: TypeObject,
					Properties: map[string]*Schema{
						"id":      stringSchema(),
						"name":    stringSchema(),
						"content": ContentSchema(channels),
					},
					Required: []string{"id", "name", "content"},
				},
			},
		},
		Required: []string{"products"},
	}
}

func containsChannel(list []catalog.ChannelID, id catalog.ChannelID) bool {
	for _, c := range list {
		if c == id {
			return true
		}
	}
	return false
}
