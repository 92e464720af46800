package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taigrr/mdsite/internal/config"
	"github.com/taigrr/mdsite/internal/search"
	"github.com/taigrr/mdsite/internal/site"
	"github.com/taigrr/mdsite/internal/types"
	"github.com/taigrr/mdsite/internal/uri"
)

type handlers struct {
	cfg     config.Config
	builder *site.Builder
}

func newHandlers(cfg config.Config) (*handlers, error) {
	// stdio carries the protocol, so nothing may be logged.
	builder, err := site.New(cfg, nil)
	if err != nil {
		return nil, err
	}
	return &handlers{cfg: cfg, builder: builder}, nil
}

func (h *handlers) handleBuild(ctx context.Context, req *mcp.CallToolRequest, input BuildInput) (*mcp.CallToolResult, BuildOutput, error) {
	builder := h.builder
	if input.Clean {
		cfg := h.cfg
		cfg.Clean = true
		var err error
		if builder, err = site.New(cfg, nil); err != nil {
			return &mcp.CallToolResult{IsError: true}, BuildOutput{}, err
		}
	}

	result, err := builder.Build(ctx)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, BuildOutput{}, fmt.Errorf("failed to build site: %w", err)
	}

	return nil, BuildOutput{
		OutputDir:  result.OutputDir,
		Pages:      len(result.Documents),
		Sections:   len(result.Sections),
		DurationMs: result.Duration.Milliseconds(),
	}, nil
}

func (h *handlers) handleList(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	sections, err := h.builder.Preview(ctx)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ListOutput{}, err
	}

	out := ListOutput{Sections: make([]ListSection, 0, len(sections))}
	for _, s := range sections {
		ls := ListSection{Directory: s.Directory}
		for _, d := range s.Documents {
			ls.Pages = append(ls.Pages, ListPage{
				Title:  d.Title,
				Source: d.SourcePath,
				URL:    uri.PageURL(d.OutputPath),
			})
		}
		out.Sections = append(out.Sections, ls)
	}
	return nil, out, nil
}

func (h *handlers) handleRender(ctx context.Context, req *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, RenderOutput, error) {
	path := strings.TrimSpace(input.Path)
	if path == "" {
		return &mcp.CallToolResult{IsError: true}, RenderOutput{}, fmt.Errorf("path cannot be empty")
	}

	src, err := h.builder.Scanner().ReadDocument(path)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, RenderOutput{}, err
	}

	doc, err := h.builder.ConvertDocument(src)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, RenderOutput{}, err
	}

	return nil, RenderOutput{
		Title:      doc.Title,
		OutputPath: doc.OutputPath,
		HTML:       doc.Body,
	}, nil
}

func (h *handlers) handleSearch(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return &mcp.CallToolResult{IsError: true}, SearchOutput{}, fmt.Errorf("query cannot be empty")
	}

	docs, err := h.builder.Scanner().Scan(ctx)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, SearchOutput{}, err
	}

	offset := max(input.Offset, 0)
	results, totalFiles, err := search.Search(docs, types.SearchParams{
		Query:         query,
		UseRegex:      input.UseRegex,
		CaseSensitive: input.CaseSensitive,
		ContextLines:  input.ContextLines,
		Limit:         input.Limit,
		Offset:        offset,
	})
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, SearchOutput{}, err
	}

	return nil, SearchOutput{
		Results:    results,
		TotalFiles: totalFiles,
		HasMore:    offset+len(results) < totalFiles,
	}, nil
}
