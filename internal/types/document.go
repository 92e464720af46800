// Package types defines the data structures shared across the site generator.
package types

type (
	// SourceDocument is a markdown file found by the scanner.
	SourceDocument struct {
		Path    string `json:"path"`    // absolute path on disk
		RelPath string `json:"relPath"` // slash separated, relative to the source root
		Content string `json:"content"`
	}

	// ParsedDocument is a source document split into frontmatter and body.
	ParsedDocument struct {
		Frontmatter map[string]any `json:"frontmatter"`
		Content     string         `json:"content"`
	}

	// ConvertedDocument is the result of converting one SourceDocument.
	ConvertedDocument struct {
		Title      string `json:"title"`
		SourcePath string `json:"sourcePath"` // relative, slash separated
		OutputPath string `json:"outputPath"` // relative, slash separated, .html
		Body       string `json:"-"`
	}
)
