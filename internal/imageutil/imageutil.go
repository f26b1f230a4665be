// Package imageutil resolves product image references coming from the
// market API. The backend sends either absolute URLs or paths relative to
// the image CDN root; the UI only ever sees a full URL (or a placeholder
// glyph, since a terminal can't render the bitmap anyway).
package imageutil

import "strings"

// PlaceholderGlyph stands in for a product image in list rows.
const PlaceholderGlyph = "▦"

// ResolveURL joins an image path with the CDN base URL. Absolute URLs
// pass through untouched; empty paths stay empty.
func ResolveURL(baseURL, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}
