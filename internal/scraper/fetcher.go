package scraper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/TonAldo48/matematch-sub001/internal/config"
)

// Fetcher returns the rendered HTML of a page.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}

// ChromeFetcher renders pages in one shared headless Chrome process.
// Each Fetch opens its own tab, so it is safe for concurrent use.
type ChromeFetcher struct {
	allocCtx    context.Context
	cancelAlloc context.CancelFunc
	timeout     time.Duration
	settle      time.Duration

	mu            sync.Mutex
	browserCtx    context.Context
	cancelBrowser context.CancelFunc
}

// NewChromeFetcher starts an exec allocator. Chrome itself is launched lazily
// on the first Fetch. Call Close to release it.
func NewChromeFetcher(cfg config.ScraperConfig) *ChromeFetcher {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent(cfg.UserAgent),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &ChromeFetcher{
		allocCtx:    allocCtx,
		cancelAlloc: cancel,
		timeout:     timeout,
		settle:      2 * time.Second,
	}
}

// browser returns the shared browser context, launching Chrome if it is not
// running or has exited.
func (f *ChromeFetcher) browser() (context.Context, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.browserCtx != nil && f.browserCtx.Err() == nil {
		return f.browserCtx, nil
	}
	if err := f.allocCtx.Err(); err != nil {
		return nil, fmt.Errorf("browser closed: %w", err)
	}
	bctx, cancel := chromedp.NewContext(f.allocCtx)
	// an empty Run starts the process
	if err := chromedp.Run(bctx); err != nil {
		cancel()
		return nil, fmt.Errorf("start browser: %w", err)
	}
	f.browserCtx, f.cancelBrowser = bctx, cancel
	return bctx, nil
}

// Fetch navigates to pageURL, waits for the body and a short settle period
// for client-rendered sections, then returns the document's outer HTML.
func (f *ChromeFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	bctx, err := f.browser()
	if err != nil {
		return "", err
	}

	// cancelling a tab context closes only that tab
	tabCtx, tabCancel := chromedp.NewContext(bctx)
	defer tabCancel()
	tCtx, tCancel := context.WithTimeout(tabCtx, f.timeout)
	defer tCancel()

	// the tab hangs off the browser, so propagate the caller's cancellation
	stop := context.AfterFunc(ctx, tabCancel)
	defer stop()

	var html string
	err = chromedp.Run(tCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(f.settle),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("render %s: %w", pageURL, err)
	}
	return html, nil
}

// Close shuts down the browser process.
func (f *ChromeFetcher) Close() {
	f.mu.Lock()
	if f.cancelBrowser != nil {
		f.cancelBrowser()
	}
	f.mu.Unlock()
	f.cancelAlloc()
}
