// Package configstore holds the user-editable product descriptions and
// channel prompt templates, merged over catalog defaults and persisted on
// every mutation.
package configstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/BerylCAtieno/goflux-content-engine/internal/catalog"
	"github.com/BerylCAtieno/goflux-content-engine/internal/models"
)

// Record keys. Both records are JSON blobs.
const (
	ProductConfigsKey = "goflux_product_configs"
	ChannelConfigsKey = "goflux_channel_configs"
)

var (
	ErrUnknownProduct = errors.New("unknown product")
	ErrUnknownChannel = errors.New("unknown channel")
	ErrUnknownPersona = errors.New("unknown persona")
)

// savedProductConfig is the tolerant persisted shape: nil means the field
// was never saved, "" is a deliberate empty override.
type savedProductConfig struct {
	GeneralDescription  *string            `json:"generalDescription"`
	PersonaDescriptions map[string]*string `json:"personaDescriptions"`
}

type Option func(*Store)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithMutationHook registers a callback run after each persisted mutation.
func WithMutationHook(fn func(kind string)) Option {
	return func(s *Store) { s.onMutation = fn }
}

type Store struct {
	mu sync.RWMutex
	// writeMu serializes mutate, persist and rollback so storage sees
	// writes in the order memory applied them.
	writeMu sync.Mutex

	backend    Backend
	products   models.ProductConfigs
	channels   models.ChannelConfigs
	logger     *slog.Logger
	onMutation func(kind string)
}

// New creates a store holding catalog defaults. Call Load to apply saved
// overrides.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend:  backend,
		products: models.DefaultProductConfigs(),
		channels: models.DefaultChannelConfigs(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load rebuilds full configs from the saved records, filling every field
// the records lack from the catalog. A record that cannot be decoded is
// logged and treated as absent.
func (s *Store) Load(ctx context.Context) (models.ProductConfigs, models.ChannelConfigs, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	rawProducts, okProducts, err := s.backend.Get(ctx, ProductConfigsKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load product configs: %w", err)
	}
	rawChannels, okChannels, err := s.backend.Get(ctx, ChannelConfigsKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load channel configs: %w", err)
	}

	saved := map[string]savedProductConfig{}
	if okProducts {
		if err := json.Unmarshal([]byte(rawProducts), &saved); err != nil {
			s.logger.Warn("Discarding unreadable product configs", slog.String("error", err.Error()))
			saved = map[string]savedProductConfig{}
		}
	}
	savedChannels := map[string]*string{}
	if okChannels {
		if err := json.Unmarshal([]byte(rawChannels), &savedChannels); err != nil {
			s.logger.Warn("Discarding unreadable channel configs", slog.String("error", err.Error()))
			savedChannels = map[string]*string{}
		}
	}

	products := mergeProductConfigs(saved)
	channels := mergeChannelConfigs(savedChannels)

	s.mu.Lock()
	s.products = products
	s.channels = channels
	s.mu.Unlock()

	s.logger.Debug("Loaded content configs",
		slog.Bool("saved_products", okProducts),
		slog.Bool("saved_channels", okChannels))
	return products.Clone(), channels.Clone(), nil
}

// mergeProductConfigs fills absent fields of saved overrides from catalog
// defaults. Keys that are not catalog products are ignored.
func mergeProductConfigs(saved map[string]savedProductConfig) models.ProductConfigs {
	out := make(models.ProductConfigs)
	for _, p := range catalog.Products() {
		cfg := models.DefaultProductConfig(p)
		if sv, ok := saved[string(p.ID)]; ok {
			if sv.GeneralDescription != nil {
				cfg.GeneralDescription = *sv.GeneralDescription
			}
			for _, persona := range catalog.Personas() {
				if v := sv.PersonaDescriptions[string(persona)]; v != nil {
					cfg.PersonaDescriptions[persona] = *v
				}
			}
		}
		out[p.ID] = cfg
	}
	return out
}

func mergeChannelConfigs(saved map[string]*string) models.ChannelConfigs {
	out := make(models.ChannelConfigs)
	for _, c := range catalog.Channels() {
		out[c.ID] = c.DefaultPrompt
		if v := saved[string(c.ID)]; v != nil {
			out[c.ID] = *v
		}
	}
	return out
}

// Save persists both records as they are in memory.
func (s *Store) Save(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	products := s.products.Clone()
	channels := s.channels.Clone()
	s.mu.RUnlock()

	if err := s.persistProducts(ctx, products); err != nil {
		return err
	}
	return s.persistChannels(ctx, channels)
}

func (s *Store) Products() models.ProductConfigs {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.Clone()
}

func (s *Store) Channels() models.ChannelConfigs {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.channels.Clone()
}

func (s *Store) Product(id catalog.ProductID) (models.ProductConfig, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg, ok := s.products[id]
	if !ok {
		return models.ProductConfig{}, false
	}
	return cfg.Clone(), true
}

func (s *Store) Channel(id catalog.ChannelID) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.channels[id]
	return v, ok
}

func (s *Store) SetGeneralDescription(ctx context.Context, id catalog.ProductID, text string) error {
	return s.updateProduct(ctx, id, "product_general", func(cfg *models.ProductConfig) {
		cfg.GeneralDescription = text
	})
}

func (s *Store) SetPersonaDescription(ctx context.Context, id catalog.ProductID, persona catalog.Persona, text string) error {
	canonical, ok := catalog.ParsePersona(string(persona))
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPersona, persona)
	}
	return s.updateProduct(ctx, id, "product_persona", func(cfg *models.ProductConfig) {
		cfg.PersonaDescriptions[canonical] = text
	})
}

// SetProductConfig replaces a product's general description and any persona
// descriptions present in cfg. Personas absent from cfg keep their value.
// Persona keys are matched case-insensitively.
func (s *Store) SetProductConfig(ctx context.Context, id catalog.ProductID, cfg models.ProductConfig) error {
	personas := make(map[catalog.Persona]string, len(cfg.PersonaDescriptions))
	for persona, text := range cfg.PersonaDescriptions {
		canonical, ok := catalog.ParsePersona(string(persona))
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownPersona, persona)
		}
		personas[canonical] = text
	}
	return s.updateProduct(ctx, id, "product", func(cur *models.ProductConfig) {
		cur.GeneralDescription = cfg.GeneralDescription
		for persona, text := range personas {
			cur.PersonaDescriptions[persona] = text
		}
	})
}

// ResetProduct restores one product to catalog defaults and persists.
func (s *Store) ResetProduct(ctx context.Context, id catalog.ProductID) error {
	p, ok := catalog.ProductByID(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProduct, id)
	}
	return s.updateProduct(ctx, id, "product_reset", func(cfg *models.ProductConfig) {
		*cfg = models.DefaultProductConfig(p)
	})
}

func (s *Store) SetChannelPrompt(ctx context.Context, id catalog.ChannelID, text string) error {
	return s.updateChannel(ctx, id, "channel", func(string) string { return text })
}

// ResetChannel restores one channel template to its catalog default.
func (s *Store) ResetChannel(ctx context.Context, id catalog.ChannelID) error {
	c, ok := catalog.ChannelByID(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChannel, id)
	}
	return s.updateChannel(ctx, id, "channel_reset", func(string) string { return c.DefaultPrompt })
}

func (s *Store) Close() error {
	return s.backend.Close()
}

// updateProduct applies fn and persists; on a persistence failure the
// in-memory value is rolled back so memory never runs ahead of storage.
func (s *Store) updateProduct(ctx context.Context, id catalog.ProductID, kind string, fn func(*models.ProductConfig)) error {
	if _, ok := catalog.ProductByID(id); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProduct, id)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	prev := s.products[id].Clone()
	next := prev.Clone()
	fn(&next)
	s.products[id] = next
	snapshot := s.products.Clone()
	s.mu.Unlock()

	if err := s.persistProducts(ctx, snapshot); err != nil {
		s.mu.Lock()
		s.products[id] = prev
		s.mu.Unlock()
		return err
	}
	s.mutated(kind)
	return nil
}

func (s *Store) updateChannel(ctx context.Context, id catalog.ChannelID, kind string, fn func(string) string) error {
	if _, ok := catalog.ChannelByID(id); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChannel, id)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	prev := s.channels[id]
	s.channels[id] = fn(prev)
	snapshot := s.channels.Clone()
	s.mu.Unlock()

	if err := s.persistChannels(ctx, snapshot); err != nil {
		s.mu.Lock()
		s.channels[id] = prev
		s.mu.Unlock()
		return err
	}
	s.mutated(kind)
	return nil
}

func (s *Store) persistProducts(ctx context.Context, products models.ProductConfigs) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to marshal product configs: %w", err)
	}
	if err := s.backend.Set(ctx, ProductConfigsKey, string(data)); err != nil {
		return fmt.Errorf("failed to save product configs: %w", err)
	}
	return nil
}

func (s *Store) persistChannels(ctx context.Context, channels models.ChannelConfigs) error {
	data, err := json.Marshal(channels)
	if err != nil {
		return fmt.Errorf("failed to marshal channel configs: %w", err)
	}
	if err := s.backend.Set(ctx, ChannelConfigsKey, string(data)); err != nil {
		return fmt.Errorf("failed to save channel configs: %w", err)
	}
	return nil
}

func (s *Store) mutated(kind string) {
	if s.onMutation != nil {
		s.onMutation(kind)
	}
}
