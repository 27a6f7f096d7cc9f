// Package browser wraps playwright-go with exactly the operations the
// translation engine's pipeline needs: load an HTML file, read/set the
// viewport, evaluate a script against the page, and screenshot an
// isolated element. It is the host the rest of the engine's "in-page
// evaluation bridge" design (§9) runs against.
package browser

import (
	"context"
	"fmt"

	"github.com/flanksource/commons/logger"
	"github.com/playwright-community/playwright-go"
)

// Browser owns one Chromium instance, launched lazily on first use and
// released on Close — the scoped resource pattern §5 calls for.
type Browser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

// New returns an unlaunched Browser. Launch happens lazily inside
// NewPage so callers that never open a page never pay for a browser
// process.
func New() *Browser {
	return &Browser{}
}

func (b *Browser) ensureLaunched() error {
	if b.browser != nil {
		return nil
	}

	if err := playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}}); err != nil {
		return fmt.Errorf("install chromium: %w", err)
	}

	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("start playwright: %w", err)
	}
	b.pw = pw

	browser, err := pw.Chromium.Launch()
	if err != nil {
		_ = pw.Stop()
		return fmt.Errorf("launch chromium: %w", err)
	}
	b.browser = browser

	return nil
}

// NewPage opens a fresh page. Callers must Close the returned Page; the
// underlying browser process is released by the owning Browser's Close.
func (b *Browser) NewPage(ctx context.Context) (*Page, error) {
	if err := b.ensureLaunched(); err != nil {
		return nil, err
	}

	pg, err := b.browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}

	return &Page{pg: pg}, nil
}

// Close releases the browser and playwright driver, if they were ever
// launched. Safe to call more than once and on a Browser that never
// launched.
func (b *Browser) Close() error {
	if b.browser != nil {
		if err := b.browser.Close(); err != nil {
			logger.Warnf("closing browser: %v", err)
		}
		b.browser = nil
	}
	if b.pw != nil {
		if err := b.pw.Stop(); err != nil {
			logger.Warnf("stopping playwright: %v", err)
		}
		b.pw = nil
	}
	return nil
}
