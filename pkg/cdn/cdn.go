package cdn

import (
	"fmt"
	"strings"
)

// Composer builds public image URLs from stored content ids.
type Composer struct {
	baseURL string
}

// NewComposer creates a composer rooted at baseURL.
func NewComposer(baseURL string) *Composer {
	return &Composer{baseURL: strings.TrimRight(baseURL, "/")}
}

// ImageURL returns the canonical CDN URL for a content id and extension.
func (c *Composer) ImageURL(contentID, ext string) string {
	return fmt.Sprintf("%s/%s.%s", c.baseURL, contentID, ext)
}
