package preview

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/stylepreview/internal/domain/style"
	"github.com/alexisbeaulieu97/stylepreview/internal/ports"
)

// Status is the progress of one part within a batch.
type Status string

const (
	StatusRunning Status = "running"
	StatusDone    Status = "done"
	StatusFailed  Status = "failed"
)

// Event reports a status change of one part during RenderAll. Events for
// different parts may arrive concurrently.
type Event struct {
	Index    int
	Part     string
	Status   Status
	Output   string
	Err      error
	Duration time.Duration
}

// Result is the outcome of rendering one part in a batch.
type Result struct {
	Part     string
	Output   string
	Err      error
	Duration time.Duration
}

// RenderAll renders every part of the style into outDir as PNG files, running
// up to the service's parallel limit at once. Failures do not stop the batch;
// results are returned in part order along with the first error encountered.
func (s *Session) RenderAll(ctx context.Context, outDir string, onEvent func(Event)) ([]Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	parts := s.Style.Parts
	outputs := OutputNames(parts)
	results := make([]Result, len(parts))

	publish(ctx, s.events, s.logger, ports.EventBatchStarted, map[string]interface{}{
		"style":    s.Style.Name,
		"parts":    len(parts),
		"out_dir":  outDir,
		"parallel": s.parallel,
	})

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
		emitMu   sync.Mutex
	)
	emit := func(ev Event) {
		if onEvent == nil {
			return
		}
		emitMu.Lock()
		defer emitMu.Unlock()
		onEvent(ev)
	}
	fail := func(err error) {
		errOnce.Do(func() { firstErr = err })
	}

	start := time.Now()
	sem := make(chan struct{}, s.parallel)

	for idx, part := range parts {
		wg.Add(1)
		go func(index int, p *style.Part) {
			defer wg.Done()
			output := filepath.Join(outDir, outputs[index])
			results[index] = Result{Part: p.Name, Output: output}

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				err := style.NewError(style.ErrCodeCancelled, "render cancelled", ctx.Err(), map[string]interface{}{"part": p.Name})
				results[index].Err = err
				fail(err)
				emit(Event{Index: index, Part: p.Name, Status: StatusFailed, Output: output, Err: err})
				return
			}

			emit(Event{Index: index, Part: p.Name, Status: StatusRunning, Output: output})
			began := time.Now()
			err := s.renderTo(ctx, p, output)
			elapsed := time.Since(began)
			results[index].Duration = elapsed
			results[index].Err = err

			if err != nil {
				fail(err)
				s.logger.Error(ctx, "part render failed", "part", p.Name, "error", err)
				publish(ctx, s.events, s.logger, ports.EventPartFailed, map[string]interface{}{"part": p.Name, "error": err})
				emit(Event{Index: index, Part: p.Name, Status: StatusFailed, Output: output, Err: err, Duration: elapsed})
				return
			}
			publish(ctx, s.events, s.logger, ports.EventPartRendered, map[string]interface{}{"part": p.Name, "output": output, "duration_ms": elapsed.Milliseconds()})
			emit(Event{Index: index, Part: p.Name, Status: StatusDone, Output: output, Duration: elapsed})
		}(idx, part)
	}

	wg.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	publish(ctx, s.events, s.logger, ports.EventBatchCompleted, map[string]interface{}{
		"style":       s.Style.Name,
		"rendered":    len(parts) - failed,
		"failed":      failed,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return results, firstErr
}

func (s *Session) renderTo(ctx context.Context, part *style.Part, output string) error {
	if err := ctx.Err(); err != nil {
		return style.NewError(style.ErrCodeCancelled, "render cancelled", err, map[string]interface{}{"part": part.Name})
	}
	img, err := s.renderer.RenderPreview(ctx, part)
	if err != nil {
		return classifyRenderError(part.Name, err)
	}
	return SavePNG(img, output)
}

// SavePNG encodes img as PNG at path, creating parent directories.
func SavePNG(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// OutputName maps a part name to a file name: lower-case, with every rune
// outside [a-z0-9._-] replaced by '_', plus a .png extension.
func OutputName(part string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(part) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	name := strings.Trim(b.String(), ".")
	if name == "" {
		name = "part"
	}
	return name + ".png"
}

// OutputNames returns one file name per part. Names that collide after
// sanitising get a numeric suffix in declaration order.
func OutputNames(parts []*style.Part) []string {
	names := make([]string, len(parts))
	used := make(map[string]int, len(parts))
	for i, p := range parts {
		name := OutputName(p.Name)
		if n := used[name]; n > 0 {
			base := strings.TrimSuffix(name, ".png")
			candidate := fmt.Sprintf("%s-%d.png", base, n+1)
			for used[candidate] > 0 {
				n++
				candidate = fmt.Sprintf("%s-%d.png", base, n+1)
			}
			used[name] = n + 1
			name = candidate
		}
		used[name]++
		names[i] = name
	}
	return names
}
