package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taigrr/mdsite/internal/types"
)

type (
	// BuildInput contains parameters for building the site.
	BuildInput struct {
		Clean bool `json:"clean,omitempty" jsonschema:"Remove the output directory before building (default: false)"`
	}

	// BuildOutput summarises a finished build.
	BuildOutput struct {
		OutputDir  string `json:"outputDir"`
		Pages      int    `json:"pages"`
		Sections   int    `json:"sections"`
		DurationMs int64  `json:"durationMs"`
	}

	// ListInput takes no parameters.
	ListInput struct{}

	// ListOutput contains the site index.
	ListOutput struct {
		Sections []ListSection `json:"sections"`
	}

	// ListSection is one directory group of the index.
	ListSection struct {
		Directory string     `json:"directory"`
		Pages     []ListPage `json:"pages"`
	}

	// ListPage is one entry of the index.
	ListPage struct {
		Title  string `json:"title"`
		Source string `json:"source"`
		URL    string `json:"url"`
	}

	// RenderInput contains parameters for rendering one document.
	RenderInput struct {
		Path string `json:"path" jsonschema:"Path to the markdown file relative to the source root"`
	}

	// RenderOutput contains the converted document.
	RenderOutput struct {
		Title      string `json:"title"`
		OutputPath string `json:"outputPath"`
		HTML       string `json:"html"`
	}

	// SearchInput contains parameters for searching documents.
	SearchInput struct {
		Query         string `json:"query" jsonschema:"Search query (plain text or regex if useRegex=true)"`
		UseRegex      bool   `json:"useRegex,omitempty" jsonschema:"Treat query as regex pattern (default: false)"`
		CaseSensitive bool   `json:"caseSensitive,omitempty" jsonschema:"Case sensitive search (default: false)"`
		ContextLines  int    `json:"contextLines,omitempty" jsonschema:"Lines of context around each match (default: 2)"`
		Limit         int    `json:"limit,omitempty" jsonschema:"Maximum number of documents to return (default: 15)"`
		Offset        int    `json:"offset,omitempty" jsonschema:"Number of matching documents to skip (default: 0)"`
	}

	// SearchOutput contains search results.
	SearchOutput struct {
		Results    []types.SearchResult `json:"results"`
		TotalFiles int                  `json:"totalFiles"`
		HasMore    bool                 `json:"hasMore,omitempty"`
	}
)

func registerTools(server *mcp.Server, h *handlers) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "build",
		Description: "Convert every markdown document of the source directory into HTML and write the site with its index and static assets.",
	}, h.handleBuild)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list",
		Description: "List the pages of the site grouped by directory, in index order. Nothing is written.",
	}, h.handleList)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render",
		Description: "Convert a single markdown document and return its title, output path and HTML body.",
	}, h.handleRender)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search",
		Description: "Full-text search across the source documents. Supports regex and case-insensitive search. Returns matching lines with context and the page URL of each document.",
	}, h.handleSearch)
}
