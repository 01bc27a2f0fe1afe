package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

// Renderer converts an assembled HTML document into PDF bytes.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// ErrEngineUnavailable marks a rasterizer launch failure, the one failure
// mode attributable to the hosting environment rather than to input.
var ErrEngineUnavailable = errors.New("render engine unavailable")

// ErrEmptyDocument marks a rasterization that succeeded but produced no
// output, so operators can tell a broken engine from garbage output.
var ErrEmptyDocument = errors.New("generated document is empty")

// RenderedDocument is the per-request export result. Nothing here is
// persisted; it lives only until the response is streamed.
type RenderedDocument struct {
	Data     []byte
	FileName string
}

type Exporter struct {
	renderer Renderer
}

func NewExporter(r Renderer) *Exporter {
	return &Exporter{renderer: r}
}

// Export runs the full pipeline: normalize the form, clean the summary,
// assemble the HTML document and rasterize it.
func (e *Exporter) Export(ctx context.Context, form model.ResumeForm, summary string) (*RenderedDocument, error) {
	canonical := form.Normalized()
	html := render.Assemble(canonical, CleanSummary(summary))

	pdf, err := e.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		if errors.Is(err, ErrEngineUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("rasterization failed: %w", err)
	}
	if len(pdf) == 0 {
		return nil, ErrEmptyDocument
	}

	return &RenderedDocument{Data: pdf, FileName: DeriveFileName(form.Name)}, nil
}

// CleanSummary strips the literal * characters LLMs emit as markdown
// emphasis markers. Applied once, before assembly.
func CleanSummary(s string) string {
	return strings.ReplaceAll(s, "*", "")
}

// DeriveFileName derives a filesystem-safe attachment name from the
// candidate's name: spaces become underscores, anything outside
// [A-Za-z0-9_-] is dropped, the result is capped at 40 characters and
// falls back to "resume" when nothing survives.
func DeriveFileName(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r == ' ':
			b.WriteByte('_')
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	base := b.String()
	if base == "" {
		base = "resume"
	}
	if len(base) > 40 {
		base = base[:40]
	}
	return base + ".pdf"
}
