// Package search provides full-text search over source documents.
package search

import (
	"regexp"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/taigrr/mdsite/internal/scanner"
	"github.com/taigrr/mdsite/internal/types"
	"github.com/taigrr/mdsite/internal/uri"
)

const (
	defaultContextLines = 2
	defaultLimit        = 15
)

// Search finds lines matching params.Query in docs. Results follow the order
// of docs; the second return value is the number of matching documents
// before offset and limit are applied.
func Search(docs []types.SourceDocument, params types.SearchParams) ([]types.SearchResult, int, error) {
	query := params.Query
	if strings.TrimSpace(query) == "" {
		return nil, 0, &SearchError{Message: "Search query cannot be empty"}
	}

	contextLines := params.ContextLines
	if contextLines <= 0 {
		contextLines = defaultContextLines
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	offset := max(params.Offset, 0)

	searchPattern, err := compile(query, params.UseRegex, params.CaseSensitive)
	if err != nil {
		return nil, 0, err
	}

	numWorkers := max(min(runtime.NumCPU(), len(docs)), 1)

	type indexedResult struct {
		idx    int
		result types.SearchResult
	}

	resultsCh := make(chan indexedResult, len(docs))
	docCh := make(chan int, len(docs))

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Go(func() {
			for i := range docCh {
				doc := docs[i]
				matches := matchLines(doc.Content, searchPattern, contextLines)
				if len(matches) == 0 {
					continue
				}
				resultsCh <- indexedResult{
					idx: i,
					result: types.SearchResult{
						Path:    doc.RelPath,
						URL:     uri.PageURL(scanner.OutputPath(doc.RelPath)),
						Matches: matches,
					},
				}
			}
		})
	}

	for i := range docs {
		docCh <- i
	}
	close(docCh)

	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	var indexedResults []indexedResult
	for r := range resultsCh {
		indexedResults = append(indexedResults, r)
	}
	sort.Slice(indexedResults, func(i, j int) bool {
		return indexedResults[i].idx < indexedResults[j].idx
	})

	allResults := make([]types.SearchResult, 0, len(indexedResults))
	for _, ir := range indexedResults {
		allResults = append(allResults, ir.result)
	}

	total := len(allResults)
	if offset >= total {
		return []types.SearchResult{}, total, nil
	}
	end := min(offset+limit, total)
	return allResults[offset:end], total, nil
}

func compile(query string, useRegex, caseSensitive bool) (*regexp.Regexp, error) {
	expr := query
	if !useRegex {
		expr = regexp.QuoteMeta(query)
	}
	if !caseSensitive {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		if useRegex {
			return nil, &SearchError{Message: "Invalid regex pattern: " + err.Error()}
		}
		return nil, &SearchError{Message: "Search error: " + err.Error()}
	}
	return re, nil
}

func matchLines(content string, pattern *regexp.Regexp, contextLines int) []types.SearchMatch {
	lines := strings.Split(content, "\n")

	var matches []types.SearchMatch
	for lineNum, line := range lines {
		if !pattern.MatchString(line) {
			continue
		}
		startLine := max(lineNum-contextLines, 0)
		endLine := min(lineNum+contextLines+1, len(lines))

		matches = append(matches, types.SearchMatch{
			Line:    lineNum + 1,
			Context: strings.Join(lines[startLine:endLine], "\n"),
		})
	}
	return matches
}

// SearchError represents a search error.
type SearchError struct {
	Message string
}

func (e *SearchError) Error() string {
	return e.Message
}
