// Package site builds the static HTML site for a markdown source tree.
package site

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/sync/errgroup"

	"github.com/taigrr/mdsite/internal/config"
	"github.com/taigrr/mdsite/internal/frontmatter"
	"github.com/taigrr/mdsite/internal/index"
	"github.com/taigrr/mdsite/internal/logging"
	"github.com/taigrr/mdsite/internal/markdown"
	"github.com/taigrr/mdsite/internal/pathfilter"
	"github.com/taigrr/mdsite/internal/render"
	"github.com/taigrr/mdsite/internal/scanner"
	"github.com/taigrr/mdsite/internal/types"
)

// StaticDir is the asset directory inside the output tree.
const StaticDir = "static"

// Builder converts a source tree into an output tree.
type Builder struct {
	cfg         config.Config
	logger      logging.Logger
	scanner     *scanner.Service
	frontmatter *frontmatter.Handler
	converter   *markdown.Converter
	renderer    *render.Renderer
}

// Result summarises a finished build.
type Result struct {
	OutputDir string
	Documents []types.ConvertedDocument
	Sections  []types.Section
	Duration  time.Duration
}

// New creates a Builder for cfg.Root.
func New(cfg config.Config, logger logging.Logger) (*Builder, error) {
	if logger == nil {
		logger = logging.NoOp()
	}
	r, err := render.New(render.Options{SiteTitle: cfg.Title, Footer: cfg.Footer})
	if err != nil {
		return nil, err
	}
	return &Builder{
		cfg:         cfg,
		logger:      logger.Named("site"),
		scanner:     scanner.New(cfg.Root, pathfilter.New(cfg.Filter())),
		frontmatter: frontmatter.New(),
		converter:   markdown.New(),
		renderer:    r,
	}, nil
}

// Scanner exposes the source scanner used by the builder.
func (b *Builder) Scanner() *scanner.Service {
	return b.scanner
}

// Build scans the source tree, converts every document and writes the pages,
// the index and the static assets. The first failure aborts the build.
func (b *Builder) Build(ctx context.Context) (Result, error) {
	start := time.Now()
	outDir := b.cfg.OutputPath()

	sources, err := b.scanner.Scan(ctx)
	if err != nil {
		return Result{}, err
	}
	b.logger.Info("scanned source tree", "root", b.cfg.Root, "documents", len(sources))

	if b.cfg.Clean {
		b.logger.Debug("removing previous output", "dir", outDir)
		if err := os.RemoveAll(outDir); err != nil {
			return Result{}, fmt.Errorf("failed to clean output directory: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Join(outDir, StaticDir), 0o755); err != nil {
		return Result{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	docs, err := b.convertAll(ctx, sources, outDir)
	if err != nil {
		return Result{}, err
	}

	sections := index.Build(docs, filepath.Base(b.cfg.Root))
	page, err := b.renderer.Index(sections)
	if err != nil {
		return Result{}, err
	}
	if err := os.WriteFile(filepath.Join(outDir, "index.html"), page, 0o644); err != nil {
		return Result{}, fmt.Errorf("failed to write index: %w", err)
	}

	if err := render.WriteAssets(filepath.Join(outDir, StaticDir)); err != nil {
		return Result{}, err
	}

	result := Result{
		OutputDir: outDir,
		Documents: docs,
		Sections:  sections,
		Duration:  time.Since(start),
	}
	b.logger.Info("site built", "output", outDir, "pages", len(docs), "sections", len(sections), "duration", result.Duration)
	return result, nil
}

// Preview scans and converts the source tree in memory and returns the index
// sections. Nothing is written.
func (b *Builder) Preview(ctx context.Context) ([]types.Section, error) {
	sources, err := b.scanner.Scan(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := b.convertAll(ctx, sources, "")
	if err != nil {
		return nil, err
	}
	return index.Build(docs, filepath.Base(b.cfg.Root)), nil
}

// convertAll converts every source in parallel and, when outDir is set,
// writes its page. Results keep the scan order.
func (b *Builder) convertAll(ctx context.Context, sources []types.SourceDocument, outDir string) ([]types.ConvertedDocument, error) {
	docs := make([]types.ConvertedDocument, len(sources))

	var bar *pb.ProgressBar
	if b.cfg.Progress && outDir != "" && len(sources) > 0 {
		bar = pb.StartNew(len(sources))
		defer bar.Finish()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers(len(sources)))

	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			doc, err := b.ConvertDocument(src)
			if err != nil {
				return err
			}
			if outDir != "" {
				if err := b.writePage(outDir, doc); err != nil {
					return err
				}
				b.logger.Debug("wrote page", "source", doc.SourcePath, "output", doc.OutputPath)
			}

			docs[i] = doc
			if bar != nil {
				bar.Increment()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func (b *Builder) workers(n int) int {
	if b.cfg.Workers > 0 {
		return b.cfg.Workers
	}
	return max(min(runtime.NumCPU(), n), 1)
}

// ConvertDocument turns one source document into its converted form without
// touching the filesystem.
func (b *Builder) ConvertDocument(src types.SourceDocument) (types.ConvertedDocument, error) {
	parsed := b.frontmatter.Parse(src.Content)

	body, err := b.converter.Convert([]byte(parsed.Content))
	if err != nil {
		return types.ConvertedDocument{}, fmt.Errorf("failed to convert %s: %w", src.RelPath, err)
	}

	title := b.frontmatter.Title(parsed.Frontmatter)
	if title == "" {
		base := path.Base(src.RelPath)
		title = markdown.Title(parsed.Content, strings.TrimSuffix(base, path.Ext(base)))
	}

	return types.ConvertedDocument{
		Title:      title,
		SourcePath: src.RelPath,
		OutputPath: scanner.OutputPath(src.RelPath),
		Body:       body,
	}, nil
}

func (b *Builder) writePage(outDir string, doc types.ConvertedDocument) error {
	page, err := b.renderer.Page(doc.Title, doc.Body)
	if err != nil {
		return err
	}

	target := filepath.Join(outDir, filepath.FromSlash(doc.OutputPath))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", doc.OutputPath, err)
	}
	if err := os.WriteFile(target, page, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", doc.OutputPath, err)
	}
	return nil
}
