package render

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/alexisbeaulieu97/stylepreview/internal/domain/style"
	"github.com/alexisbeaulieu97/stylepreview/internal/logger"
	"github.com/alexisbeaulieu97/stylepreview/internal/ports"
	apperrors "github.com/alexisbeaulieu97/stylepreview/pkg/errors"
)

// Preview surface dimensions in pixels.
const (
	SurfaceWidth  = 200
	SurfaceHeight = 150
)

// Renderer composites part backgrounds into preview surfaces. It only reads
// from its collaborators, so one Renderer may serve concurrent calls as long
// as the stores it reads stay unchanged.
type Renderer struct {
	sources sourceChain
	logger  ports.Logger
}

// Option customises a Renderer.
type Option func(*rendererConfig)

type rendererConfig struct {
	overrides ports.OverrideQueue
	cache     ports.ImageCache
	logger    ports.Logger
}

// WithOverrides makes staged editing-session replacements take priority over
// the persisted resource table.
func WithOverrides(q ports.OverrideQueue) Option {
	return func(c *rendererConfig) { c.overrides = q }
}

// WithCache reuses decoded images across render calls.
func WithCache(cache ports.ImageCache) Option {
	return func(c *rendererConfig) { c.cache = cache }
}

// WithLogger sets the logger used to report why a background was skipped.
func WithLogger(l ports.Logger) Option {
	return func(c *rendererConfig) { c.logger = l }
}

// NewRenderer builds a Renderer reading persisted resources from table and
// decoding them with decoder.
func NewRenderer(table ports.ResourceTable, decoder ports.ImageDecoder, opts ...Option) *Renderer {
	cfg := rendererConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logger.NewNoOp()
	}

	return &Renderer{
		sources: sourceChain{
			tiers: []imageSource{
				stagedSource{queue: cfg.overrides, decoder: decoder},
				tableSource{table: table, decoder: decoder},
			},
			cache: cfg.cache,
		},
		logger: cfg.logger.With("component", "renderer"),
	}
}

// NewSurface allocates a fully transparent preview surface.
func NewSurface() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, SurfaceWidth, SurfaceHeight))
}

// RenderPreview draws the background of the first state of part into a new
// surface and returns it. Missing properties or resources leave the surface
// partly or fully transparent; only undecodable image data is an error. ctx
// is used for log correlation only.
func (r *Renderer) RenderPreview(ctx context.Context, part *style.Part) (*image.RGBA, error) {
	surface := NewSurface()
	if err := r.drawBackground(ctx, surface, part); err != nil {
		return nil, apperrors.NewRenderError(partName(part), err)
	}
	return surface, nil
}

func (r *Renderer) drawBackground(ctx context.Context, dst draw.Image, part *style.Part) error {
	state, ok := part.FirstState()
	if !ok {
		r.logger.Debug(ctx, "part has no states", "part", partName(part))
		return nil
	}
	log := r.logger.With("part", part.Name, "state", state.Name)

	bg, ok := ResolveBackground(state.Properties)
	if !ok {
		log.Debug(ctx, "no background to draw")
		return nil
	}
	bounds := dst.Bounds()

	switch bg.Fill {
	case style.BackgroundBorderFill:
		draw.Draw(dst, bounds, image.NewUniform(bg.FillColor), image.Point{}, draw.Src)
		log.Debug(ctx, "filled background", "color", colorString(bg.FillColor))
		return nil
	case style.BackgroundImageFill:
		img, tier, err := r.sources.Resolve(bg.Image)
		if err != nil {
			log.Error(ctx, "image decode failed", "resource", int(bg.Image.Token), "tier", tier, "error", err)
			return err
		}
		if img == nil {
			log.Debug(ctx, "image resource not available", "resource", int(bg.Image.Token), "property", bg.ImageProperty.String())
			return nil
		}

		frame := ExtractFrame(img.Bounds(), bg.Layout, bg.Count, 0)
		if frame.Empty() {
			log.Debug(ctx, "image frame is empty", "resource", int(bg.Image.Token))
			return nil
		}
		if !drawSized(dst, img, frame, bounds, bg) {
			log.Debug(ctx, "unsupported sizing type", "sizing", bg.Sizing.String())
			return nil
		}
		log.Debug(ctx, "drew image background",
			"resource", int(bg.Image.Token),
			"tier", tier,
			"frame", frame.String(),
			"sizing", bg.Sizing.String(),
			"nine_slice", bg.Margins != nil,
		)
	}
	return nil
}

func partName(p *style.Part) string {
	if p == nil {
		return ""
	}
	return p.Name
}

func colorString(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
