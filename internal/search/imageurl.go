package search

import (
	"fmt"
	"net/url"
	"strings"
)

// ImageDescriptor carries the raw image fields attached to one product row.
// The three sources (legacy URL, CDN content id, bot file handle) are
// populated inconsistently in legacy data; any or all may be empty.
type ImageDescriptor struct {
	ProductID uint
	URL       string
	ContentID string
	MIMEType  string
	BotFileID string
}

// CDNComposer maps a stored content id and file extension to a public URL.
type CDNComposer interface {
	ImageURL(contentID, ext string) string
}

// PhotoResolver resolves the canonical public photo URL for a product across
// the three image storage strategies.
type PhotoResolver struct {
	cdn CDNComposer
}

// NewPhotoResolver creates a resolver that composes CDN URLs via cdn.
func NewPhotoResolver(cdn CDNComposer) *PhotoResolver {
	return &PhotoResolver{cdn: cdn}
}

func extensionForMIME(mime string) string {
	switch strings.ToLower(strings.TrimSpace(mime)) {
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	default:
		// jpg covers image/jpeg plus absent or unrecognized MIME types
		return "jpg"
	}
}

func isAbsoluteHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Resolve returns the public photo URL for the descriptor, or "" when the
// product has no usable photo source. Precedence is a hard contract, first
// match wins:
//
//  1. a well-formed absolute http(s) URL stored on the association (legacy,
//     manually entered),
//  2. a CDN URL composed from the content id and the extension derived from
//     the MIME type,
//  3. the same-origin proxy path for bot-delivered files, which need a
//     signed, expiring fetch and cannot be cached as a static URL.
//
// The result depends only on the descriptor, so repeated calls yield
// byte-identical output and the proxy layer can set HTTP caching headers.
func (r *PhotoResolver) Resolve(d ImageDescriptor) string {
	if d.URL != "" && isAbsoluteHTTPURL(d.URL) {
		return d.URL
	}
	if d.ContentID != "" {
		return r.cdn.ImageURL(d.ContentID, extensionForMIME(d.MIMEType))
	}
	if d.BotFileID != "" {
		return fmt.Sprintf("/products/%d/image", d.ProductID)
	}
	return ""
}
