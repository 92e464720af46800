// Package frontmatter splits optional YAML frontmatter from markdown sources.
package frontmatter

import (
	"fmt"
	"strings"

	"github.com/taigrr/mdsite/internal/types"
	"gopkg.in/yaml.v3"
)

// Handler handles frontmatter parsing.
type Handler struct{}

// New creates a new frontmatter Handler.
func New() *Handler {
	return &Handler{}
}

// Parse splits content into frontmatter and body. Content without a valid
// frontmatter block is returned unchanged with an empty frontmatter map. A
// leading block that holds no keys, such as a thematic break pair around a
// heading, stays part of the body.
func (h *Handler) Parse(content string) types.ParsedDocument {
	result := types.ParsedDocument{
		Frontmatter: make(map[string]any),
		Content:     content,
	}

	rest, ok := strings.CutPrefix(content, "---\n")
	if !ok {
		return result
	}

	var yamlContent, body string
	if i := strings.Index(rest, "\n---\n"); i != -1 {
		yamlContent, body = rest[:i], rest[i+len("\n---\n"):]
	} else if strings.HasSuffix(rest, "\n---") {
		yamlContent = strings.TrimSuffix(rest, "\n---")
	} else {
		return result
	}

	var frontmatter map[string]any
	if err := yaml.Unmarshal([]byte(yamlContent), &frontmatter); err != nil {
		// If parsing fails, treat as content without frontmatter
		return result
	}

	if len(frontmatter) == 0 {
		return result
	}

	result.Frontmatter = frontmatter
	// The blank line after the closing delimiter is not part of the body.
	result.Content = strings.TrimLeft(body, "\r\n")

	return result
}

// Title returns the frontmatter "title" value, or "" when absent.
func (h *Handler) Title(frontmatter map[string]any) string {
	v, ok := frontmatter["title"]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}
