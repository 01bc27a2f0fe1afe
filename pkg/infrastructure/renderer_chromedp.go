package infrastructure

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"resume-builder/internal/config"
	"resume-builder/internal/usecase"
)

// ChromedpRenderer drives a headless Chrome instance to rasterize assembled
// HTML into an A4 PDF. One browser instance is launched per call and torn
// down on every exit path; nothing is shared between concurrent requests.
type ChromedpRenderer struct {
	chromePath string
	hosted     bool
	timeout    time.Duration
}

// NewChromedpRenderer builds a renderer from app config. Hosted environments
// run Chrome with the sandbox disabled; locally the stock flags are enough.
func NewChromedpRenderer(cfg *config.AppConfig) *ChromedpRenderer {
	return &ChromedpRenderer{
		chromePath: cfg.ChromePath,
		hosted:     cfg.Env == "production",
		timeout:    60 * time.Second,
	}
}

func (r *ChromedpRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
	)
	if r.hosted {
		opts = append(opts,
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)
	}
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	ctx2, cancel2 := context.WithTimeout(cctx, r.timeout)
	defer cancel2()

	// start the browser first so a launch failure is distinguishable from a
	// rendering failure
	if err := chromedp.Run(ctx2); err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrEngineUnavailable, err)
	}

	// the document is self-contained, so serving it from a temp file means
	// no network activity during rendering
	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var pdfBuf []byte
	err = chromedp.Run(ctx2,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> inches: 8.27 x 11.69
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
