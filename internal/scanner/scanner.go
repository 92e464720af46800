// Package scanner enumerates the markdown documents of a source tree.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/taigrr/mdsite/internal/pathfilter"
	"github.com/taigrr/mdsite/internal/types"
)

// Service scans a source root for markdown documents.
type Service struct {
	root       string
	pathFilter *pathfilter.PathFilter
}

// New creates a scanner rooted at root.
func New(root string, pf *pathfilter.PathFilter) *Service {
	absPath, _ := filepath.Abs(root)
	if pf == nil {
		pf = pathfilter.New(nil)
	}
	return &Service{
		root:       absPath,
		pathFilter: pf,
	}
}

// ResolvePath resolves a relative path within the root and validates it.
func (s *Service) ResolvePath(relativePath string) (string, error) {
	normalizedPath := strings.TrimSpace(relativePath)
	normalizedPath = strings.TrimPrefix(normalizedPath, "/")

	absPath, err := filepath.Abs(filepath.Join(s.root, normalizedPath))
	if err != nil {
		return "", err
	}

	relPath, err := filepath.Rel(s.root, absPath)
	if err != nil {
		return "", err
	}
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal not allowed: %s", relativePath)
	}

	return absPath, nil
}

// Scan walks the root in lexical order and reads every allowed document.
// Any read failure aborts the scan.
func (s *Service) Scan(ctx context.Context) ([]types.SourceDocument, error) {
	info, err := os.Stat(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("source directory not found: %s", s.root)
		}
		return nil, fmt.Errorf("failed to stat source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source is not a directory: %s", s.root)
	}

	var docs []types.SourceDocument
	err = filepath.WalkDir(s.root, func(fullPath string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("failed to walk %s: %w", fullPath, walkErr)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(s.root, fullPath)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if !s.pathFilter.IsDirAllowed(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !s.pathFilter.IsFileAllowed(rel) {
			return nil
		}

		doc, err := s.read(fullPath, rel)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}

// ReadDocument reads a single document by its path relative to the root.
func (s *Service) ReadDocument(relativePath string) (types.SourceDocument, error) {
	fullPath, err := s.ResolvePath(relativePath)
	if err != nil {
		return types.SourceDocument{}, err
	}

	rel, err := filepath.Rel(s.root, fullPath)
	if err != nil {
		return types.SourceDocument{}, err
	}
	rel = filepath.ToSlash(rel)

	if !s.pathFilter.IsFileAllowed(rel) {
		return types.SourceDocument{}, fmt.Errorf("access denied: %s", relativePath)
	}

	return s.read(fullPath, rel)
}

func (s *Service) read(fullPath, rel string) (types.SourceDocument, error) {
	content, err := os.ReadFile(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.SourceDocument{}, fmt.Errorf("file not found: %s", rel)
		}
		if errors.Is(err, fs.ErrPermission) {
			return types.SourceDocument{}, fmt.Errorf("permission denied: %s", rel)
		}
		return types.SourceDocument{}, fmt.Errorf("failed to read file: %s - %w", rel, err)
	}

	return types.SourceDocument{
		Path:    fullPath,
		RelPath: rel,
		Content: string(content),
	}, nil
}

// OutputPath maps a source path to its page path: the markdown extension is
// replaced by ".html" at the same position in the tree.
func OutputPath(relPath string) string {
	relPath = filepath.ToSlash(relPath)
	return strings.TrimSuffix(relPath, path.Ext(relPath)) + ".html"
}
