// Package fetch - browser.go provides headless browser rendering for pages
// that only load their content via JavaScript.
package fetch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the minimum extracted text length to consider a plain
// HTTP fetch successful. Shorter content suggests a JavaScript-rendered page.
const MinContentLength = 500

// BrowserTimeout bounds a headless render.
const BrowserTimeout = 30 * time.Second

// ShouldUseBrowser reports whether the extracted text is too short and a
// browser render should be attempted instead.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// WithBrowser renders a page in a headless browser and returns the rendered
// HTML. Requires Chrome or Chromium on the system.
func WithBrowser(ctx context.Context, url string, verbose bool) (string, error) {
	if verbose {
		log.Printf("[BROWSER] Rendering %s", url)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, BrowserTimeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Give client-side rendering a moment to fill in the content.
		chromedp.Sleep(3*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	if verbose {
		log.Printf("[BROWSER] Rendered HTML: %d bytes", len(html))
	}

	return html, nil
}

// ImportTextWithFallback fetches text via HTTP first and falls back to a
// headless browser render when the result looks like an unrendered SPA
// shell. Browser failures are not fatal; the HTTP content is kept.
func ImportTextWithFallback(ctx context.Context, urlStr string, opts *Options, verbose bool) (string, error) {
	text, err := ImportText(ctx, urlStr, opts)
	if err != nil {
		return "", err
	}

	if !ShouldUseBrowser(text) {
		return text, nil
	}

	if verbose {
		log.Printf("[VERBOSE] Content too short (%d chars < %d), falling back to browser rendering", len(text), MinContentLength)
	}

	html, browserErr := WithBrowser(ctx, urlStr, verbose)
	if browserErr != nil {
		if verbose {
			log.Printf("[VERBOSE] Browser rendering failed: %v, keeping HTTP content", browserErr)
		}
		return text, nil
	}

	rendered, err := ExtractReadableText(html)
	if err != nil {
		return text, nil
	}
	if len(rendered) > MaxImportBytes {
		rendered = rendered[:MaxImportBytes]
	}
	return rendered, nil
}
