// Package engine owns the single editing session: the current selection,
// the content configs and the last generated result. Every surface (HTTP,
// A2A, CLI) goes through it.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/BerylCAtieno/goflux-content-engine/internal/catalog"
	"github.com/BerylCAtieno/goflux-content-engine/internal/composer"
	"github.com/BerylCAtieno/goflux-content-engine/internal/configstore"
	"github.com/BerylCAtieno/goflux-content-engine/internal/metrics"
	"github.com/BerylCAtieno/goflux-content-engine/internal/models"
	"github.com/BerylCAtieno/goflux-content-engine/internal/selection"
)

var ErrGenerationInProgress = errors.New("a generation is already in progress")

// Generation kinds, used as metric labels.
const (
	KindFresh    = "fresh"
	KindRevision = "revision"
)

// Generator turns a composed prompt into a result. *generator.Client
// satisfies it.
type Generator interface {
	Generate(ctx context.Context, prompt composer.Prompt) (*models.GenerationResult, error)
	Provider() string
}

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithLanguage sets the output language written into every prompt.
func WithLanguage(language string) Option {
	return func(e *Engine) { e.language = language }
}

// WithTimeout bounds each model call. Zero means no bound beyond the
// caller's context.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) { e.timeout = d }
}

type Engine struct {
	mu         sync.Mutex
	state      selection.State
	result     *models.GenerationResult
	generating bool

	gen      Generator
	store    *configstore.Store
	metrics  *metrics.Metrics
	logger   *slog.Logger
	language string
	timeout  time.Duration
}

func New(gen Generator, store *configstore.Store, opts ...Option) *Engine {
	e := &Engine{
		state:  selection.NewState(),
		gen:    gen,
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Selection() selection.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// UpdateSelection applies fn to a copy of the selection and keeps the copy
// only when fn succeeds.
func (e *Engine) UpdateSelection(fn func(*selection.State) error) (selection.State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	next := e.state
	if err := fn(&next); err != nil {
		return e.state, err
	}
	e.state = next
	return next, nil
}

// Result is the last successful result, nil before the first one.
func (e *Engine) Result() *models.GenerationResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.result
}

func (e *Engine) Generating() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generating
}

func (e *Engine) Provider() string {
	return e.gen.Provider()
}

// RequestGeneration runs a fresh generation for a blank instruction and a
// revision of the current result otherwise. Only one may be pending at a
// time. On success the result replaces the previous one and the stored
// revision instruction is cleared; on failure nothing changes.
func (e *Engine) RequestGeneration(ctx context.Context, instruction string) (*models.GenerationResult, error) {
	instruction = strings.TrimSpace(instruction)
	kind := KindFresh
	if instruction != "" {
		kind = KindRevision
	}

	e.mu.Lock()
	if e.generating {
		e.mu.Unlock()
		e.observe(kind, metrics.OutcomeBusy)
		return nil, ErrGenerationInProgress
	}
	if kind == KindRevision && e.result == nil {
		e.mu.Unlock()
		e.observe(kind, metrics.OutcomeValidation)
		return nil, &selection.ValidationError{
			Code:    selection.CodeNoPriorResult,
			Message: "Generate content before requesting a revision.",
		}
	}
	state := e.state
	state.Modification = instruction
	e.generating = true
	e.mu.Unlock()
	defer e.release()

	result, err := e.run(ctx, kind, state)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.result = result
	e.state.Modification = ""
	e.mu.Unlock()
	return result, nil
}

// Revise revises the current result. A blank instruction falls back to the
// one stored in the selection.
func (e *Engine) Revise(ctx context.Context, instruction string) (*models.GenerationResult, error) {
	if strings.TrimSpace(instruction) == "" {
		instruction = e.Selection().Modification
	}
	if strings.TrimSpace(instruction) == "" {
		e.observe(KindRevision, metrics.OutcomeValidation)
		return nil, &selection.ValidationError{
			Code:    selection.CodeEmptyInstruction,
			Message: "Describe the change you want before revising.",
		}
	}
	return e.RequestGeneration(ctx, instruction)
}

// Generate runs the pipeline for a caller-supplied selection without
// reading or touching the session. It shares the in-flight guard with
// RequestGeneration.
func (e *Engine) Generate(ctx context.Context, state selection.State, instruction string) (*models.GenerationResult, error) {
	state.Modification = strings.TrimSpace(instruction)
	kind := KindFresh
	if state.Modification != "" {
		kind = KindRevision
	}

	e.mu.Lock()
	if e.generating {
		e.mu.Unlock()
		e.observe(kind, metrics.OutcomeBusy)
		return nil, ErrGenerationInProgress
	}
	e.generating = true
	e.mu.Unlock()
	defer e.release()

	return e.run(ctx, kind, state)
}

func (e *Engine) release() {
	e.mu.Lock()
	e.generating = false
	e.mu.Unlock()
}

// Preview composes the prompt for state without calling the model.
func (e *Engine) Preview(state selection.State) composer.Prompt {
	return composer.Compose(e.request(state))
}

func (e *Engine) run(ctx context.Context, kind string, state selection.State) (*models.GenerationResult, error) {
	if err := state.Validate(); err != nil {
		e.observe(kind, metrics.OutcomeValidation)
		return nil, err
	}
	if notice := state.EmptySelection(); notice != nil {
		e.observe(kind, metrics.OutcomeEmpty)
		result := models.NewGenerationResult(nil, state.EffectiveChannels())
		result.Revision = kind == KindRevision
		result.Instruction = state.Modification
		result.Notice = notice.Message
		return result, nil
	}

	prompt := composer.Compose(e.request(state))

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	e.logger.Info("Generating content",
		slog.String("kind", kind),
		slog.Any("products", prompt.Products),
		slog.Any("channels", prompt.Channels),
		slog.String("persona", string(state.Persona)))

	var done func()
	if e.metrics != nil {
		done = e.metrics.StartCall(e.gen.Provider())
	}
	result, err := e.gen.Generate(ctx, prompt)
	if done != nil {
		done()
	}
	if err != nil {
		e.observe(kind, outcomeFor(err))
		e.logger.Error("Generation failed", slog.String("kind", kind), slog.String("error", err.Error()))
		return nil, err
	}

	result.Instruction = state.Modification
	e.observe(kind, metrics.OutcomeSuccess)
	if e.metrics != nil {
		e.metrics.ObserveProducts(len(result.Products))
	}
	e.logger.Info("Generation succeeded", slog.String("kind", kind), slog.Int("products", len(result.Products)))
	return result, nil
}

func (e *Engine) request(state selection.State) composer.Request {
	req := composer.NewRequest(state, e.store.Products(), e.store.Channels())
	req.Language = e.language
	return req
}

func (e *Engine) observe(kind, outcome string) {
	if e.metrics != nil {
		e.metrics.ObserveGeneration(kind, outcome)
	}
}

func (e *Engine) ProductConfigs() models.ProductConfigs {
	return e.store.Products()
}

func (e *Engine) ChannelConfigs() models.ChannelConfigs {
	return e.store.Channels()
}

func (e *Engine) SetProductConfig(ctx context.Context, id catalog.ProductID, cfg models.ProductConfig) error {
	return e.store.SetProductConfig(ctx, id, cfg)
}

func (e *Engine) ResetProduct(ctx context.Context, id catalog.ProductID) error {
	return e.store.ResetProduct(ctx, id)
}

func (e *Engine) SetChannelPrompt(ctx context.Context, id catalog.ChannelID, text string) error {
	return e.store.SetChannelPrompt(ctx, id, text)
}

func (e *Engine) ResetChannel(ctx context.Context, id catalog.ChannelID) error {
	return e.store.ResetChannel(ctx, id)
}
