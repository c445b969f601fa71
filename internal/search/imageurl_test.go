package search_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"catalog-service/internal/search"
)

// fakeCDN composes predictable URLs for assertions.
type fakeCDN struct{}

func (fakeCDN) ImageURL(contentID, ext string) string {
	return "https://cdn.test/" + contentID + "." + ext
}

func TestPhotoResolver_Precedence(t *testing.T) {
	tests := []struct {
		name       string
		descriptor search.ImageDescriptor
		expected   string
	}{
		{
			name: "legacy URL wins over content id",
			descriptor: search.ImageDescriptor{
				ProductID: 1,
				URL:       "https://legacy.example.com/photo.png",
				ContentID: "abc123",
				MIMEType:  "image/png",
			},
			expected: "https://legacy.example.com/photo.png",
		},
		{
			name: "content id with webp MIME",
			descriptor: search.ImageDescriptor{
				ProductID: 2,
				ContentID: "abc123",
				MIMEType:  "image/webp",
			},
			expected: "https://cdn.test/abc123.webp",
		},
		{
			name: "content id with png MIME",
			descriptor: search.ImageDescriptor{
				ProductID: 2,
				ContentID: "abc123",
				MIMEType:  "image/png",
			},
			expected: "https://cdn.test/abc123.png",
		},
		{
			name: "content id with missing MIME defaults to jpg",
			descriptor: search.ImageDescriptor{
				ProductID: 2,
				ContentID: "abc123",
			},
			expected: "https://cdn.test/abc123.jpg",
		},
		{
			name: "content id with unrecognized MIME defaults to jpg",
			descriptor: search.ImageDescriptor{
				ProductID: 2,
				ContentID: "abc123",
				MIMEType:  "application/octet-stream",
			},
			expected: "https://cdn.test/abc123.jpg",
		},
		{
			name: "malformed legacy URL falls through to content id",
			descriptor: search.ImageDescriptor{
				ProductID: 3,
				URL:       "/relative/path.jpg",
				ContentID: "abc123",
				MIMEType:  "image/jpeg",
			},
			expected: "https://cdn.test/abc123.jpg",
		},
		{
			name: "non-http scheme is not honored",
			descriptor: search.ImageDescriptor{
				ProductID: 3,
				URL:       "ftp://files.example.com/photo.jpg",
				ContentID: "abc123",
			},
			expected: "https://cdn.test/abc123.jpg",
		},
		{
			name: "bot file resolves to the proxy path",
			descriptor: search.ImageDescriptor{
				ProductID: 42,
				BotFileID: "AgAD-file-handle",
			},
			expected: "/products/42/image",
		},
		{
			name:       "no source resolves to nothing",
			descriptor: search.ImageDescriptor{ProductID: 5},
			expected:   "",
		},
	}

	resolver := search.NewPhotoResolver(fakeCDN{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(resolver.Resolve(tt.descriptor), qt.Equals, tt.expected)
		})
	}
}

func TestPhotoResolver_Idempotent(t *testing.T) {
	c := qt.New(t)

	resolver := search.NewPhotoResolver(fakeCDN{})
	d := search.ImageDescriptor{
		ProductID: 9,
		ContentID: "stable",
		MIMEType:  "image/webp",
		BotFileID: "ignored-behind-content-id",
	}

	first := resolver.Resolve(d)
	second := resolver.Resolve(d)
	c.Assert(second, qt.Equals, first)
}
