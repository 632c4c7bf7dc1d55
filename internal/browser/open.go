// Package browser opens posting apply links in the user's default browser.
package browser

import (
	"fmt"

	"github.com/pkg/browser"
)

// Open opens the given URL in the default browser. The URL must be non-empty;
// callers are expected to have rejected postings without an apply link.
func Open(url string) error {
	if url == "" {
		return fmt.Errorf("cannot open empty URL")
	}
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("failed to open %s in browser: %w", url, err)
	}
	return nil
}
