package browser

import (
	"encoding/json"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Page wraps a single playwright-go page with the narrow surface the
// extraction and rasterization pipeline needs (§4.1, §9): load a file,
// read/force its viewport, run a script against the DOM, and screenshot
// an isolated element.
type Page struct {
	pg playwright.Page
}

// Load navigates to a local HTML file and waits for it to settle.
func (p *Page) Load(path string) error {
	if _, err := p.pg.Goto("file://"+path, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	}); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// SetViewport forces the page's viewport to an exact pixel size, used
// once natural content dimensions are known (§4.1's dimension probe
// feeds this).
func (p *Page) SetViewport(width, height int) error {
	if err := p.pg.SetViewportSize(width, height); err != nil {
		return fmt.Errorf("set viewport %dx%d: %w", width, height, err)
	}
	return nil
}

// Evaluate runs a self-contained JavaScript expression in the page and
// decodes its JSON-serializable return value into out. The expression
// must not reference anything outside the page (§9's in-page evaluation
// bridge).
func (p *Page) Evaluate(expression string, out any) error {
	result, err := p.pg.Evaluate(expression)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}
	if out == nil {
		return nil
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("re-marshal evaluate result: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode evaluate result: %w", err)
	}
	return nil
}

// EvaluateArg runs a JavaScript expression of one argument — typically
// `(arg) => { ... }` — passing arg through as a JSON value, and decodes
// the JSON-serializable return value into out.
func (p *Page) EvaluateArg(expression string, arg any, out any) error {
	result, err := p.pg.Evaluate(expression, arg)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}
	if out == nil {
		return nil
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("re-marshal evaluate result: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode evaluate result: %w", err)
	}
	return nil
}

// ScreenshotSelector rasterizes exactly the element matched by selector,
// with no background painted behind it, so gradients and transparent
// PNGs aren't anti-aliased against the wrong surface (§4.3).
func (p *Page) ScreenshotSelector(selector string) ([]byte, error) {
	locator := p.pg.Locator(selector)
	png, err := locator.Screenshot(playwright.LocatorScreenshotOptions{
		OmitBackground: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot %s: %w", selector, err)
	}
	return png, nil
}

// Close releases the underlying playwright page.
func (p *Page) Close() error {
	if err := p.pg.Close(); err != nil {
		return fmt.Errorf("close page: %w", err)
	}
	return nil
}
