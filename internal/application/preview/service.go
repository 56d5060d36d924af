package preview

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/alexisbeaulieu97/stylepreview/internal/domain/style"
	"github.com/alexisbeaulieu97/stylepreview/internal/logger"
	"github.com/alexisbeaulieu97/stylepreview/internal/ports"
	"github.com/alexisbeaulieu97/stylepreview/internal/render"
	apperrors "github.com/alexisbeaulieu97/stylepreview/pkg/errors"
)

// DefaultParallel bounds concurrent renders when Options.Parallel is unset.
const DefaultParallel = 4

// Options configures a Service.
type Options struct {
	Loader   ports.StyleLoader
	Decoder  ports.ImageDecoder
	Logger   ports.Logger
	Events   ports.EventPublisher
	// NewCache, when set, supplies each opened session with its own
	// decoded-image cache.
	NewCache func() ports.ImageCache
	Parallel int
}

// Service opens style documents and renders previews of their parts.
type Service struct {
	loader   ports.StyleLoader
	decoder  ports.ImageDecoder
	logger   ports.Logger
	events   ports.EventPublisher
	newCache func() ports.ImageCache
	parallel int
}

// NewService constructs a Service with dependencies injected.
func NewService(opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.NewNoOp()
	}
	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = DefaultParallel
	}
	return &Service{
		loader:   opts.Loader,
		decoder:  opts.Decoder,
		logger:   log.With("component", "preview"),
		events:   opts.Events,
		newCache: opts.NewCache,
		parallel: parallel,
	}
}

// Session is an opened style ready to render. A Session may be used from
// multiple goroutines.
type Session struct {
	Style    *style.Style
	Path     string
	renderer *render.Renderer
	logger   ports.Logger
	events   ports.EventPublisher
	parallel int
}

// Open loads the style document at path and prepares a renderer over its
// resource table and staged overrides.
func (s *Service) Open(ctx context.Context, path string) (*Session, error) {
	s.logger.Info(ctx, "opening style", "path", path)

	loaded, err := s.loader.Load(ctx, path)
	if err != nil {
		s.logger.Error(ctx, "failed to open style", "path", path, "error", err)
		return nil, err
	}

	opts := []render.Option{render.WithLogger(s.logger)}
	if s.newCache != nil {
		opts = append(opts, render.WithCache(s.newCache()))
	}
	if loaded.Overrides != nil {
		opts = append(opts, render.WithOverrides(loaded.Overrides))
	}

	publish(ctx, s.events, s.logger, ports.EventStyleLoaded, map[string]interface{}{
		"style": loaded.Style.Name,
		"path":  loaded.Path,
		"parts": len(loaded.Style.Parts),
	})

	return &Session{
		Style:    loaded.Style,
		Path:     loaded.Path,
		renderer: render.NewRenderer(loaded.Resources, s.decoder, opts...),
		logger:   s.logger.With("style", loaded.Style.Name),
		events:   s.events,
		parallel: s.parallel,
	}, nil
}

// RenderPart renders the preview of the named part. Unknown names yield a
// NOT_FOUND domain error.
func (s *Session) RenderPart(ctx context.Context, name string) (*image.RGBA, error) {
	part, err := s.Style.Part(name)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	img, err := s.renderer.RenderPreview(ctx, part)
	if err != nil {
		return nil, classifyRenderError(part.Name, err)
	}
	s.logger.Debug(ctx, "rendered part", "part", part.Name, "duration_ms", time.Since(start).Milliseconds())
	return img, nil
}

// classifyRenderError tags image decode failures with ErrCodeDecode. The
// renderer's error chain stays reachable through Unwrap.
func classifyRenderError(part string, err error) error {
	var decodeErr *apperrors.DecodeError
	if errors.As(err, &decodeErr) {
		return style.NewError(style.ErrCodeDecode, "part image could not be decoded", err, map[string]interface{}{
			"part":   part,
			"source": decodeErr.Source,
		})
	}
	return err
}

func publish(ctx context.Context, publisher ports.EventPublisher, log ports.Logger, eventType string, payload map[string]interface{}) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, domainEvent{eventType: eventType, payload: payload}); err != nil && log != nil {
		log.Warn(ctx, "failed to publish domain event", "event_type", eventType, "error", err)
	}
}

type domainEvent struct {
	eventType string
	payload   interface{}
}

func (e domainEvent) EventType() string {
	return e.eventType
}

func (e domainEvent) Payload() interface{} {
	return e.payload
}
