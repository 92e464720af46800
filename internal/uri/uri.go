// Package uri builds site URLs for generated pages.
package uri

import (
	"net/url"
	"strings"
)

// PageURL returns the absolute site URL of an output file given its path
// relative to the output directory. Each path segment is escaped; slashes are
// kept.
func PageURL(outputPath string) string {
	cleanPath := strings.ReplaceAll(outputPath, "\\", "/")
	cleanPath = strings.TrimPrefix(cleanPath, "/")
	if cleanPath == "" {
		return "/"
	}

	parts := strings.Split(cleanPath, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return "/" + strings.Join(parts, "/")
}
