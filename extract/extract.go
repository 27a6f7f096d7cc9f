package extract

import (
	"fmt"

	"github.com/domslide/html2slide/browser"
	"github.com/domslide/html2slide/model"
)

// Extract runs the extraction script against an already-loaded,
// already-viewport-sized page and converts its raw result into a
// model.Description. Unit conversion, colour parsing, and rotation
// decomposition all happen afterwards, in convert().
func Extract(page *browser.Page) (*model.Description, error) {
	var raw rawDocument
	if err := page.Evaluate(extractionScript, &raw); err != nil {
		return nil, fmt.Errorf("run extraction script: %w", err)
	}
	return convert(raw, nil), nil
}
