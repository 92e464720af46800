// Package render wraps converted documents in the site's HTML templates and
// writes the static assets they reference.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/taigrr/mdsite/internal/types"
	"github.com/taigrr/mdsite/internal/uri"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Assets lists the files WriteAssets puts in the static directory.
var Assets = []string{"style.css", "highlight.css", "highlight.js"}

// Options configures the text shared by every generated page.
type Options struct {
	SiteTitle string
	Footer    string
}

// Renderer produces complete HTML documents.
type Renderer struct {
	opts Options
	tmpl *template.Template
}

type (
	pageData struct {
		Title  string
		Body   template.HTML
		Footer string
	}

	indexData struct {
		Title    string
		Footer   string
		Sections []sectionData
	}

	sectionData struct {
		Directory string
		Links     []linkData
	}

	linkData struct {
		URL   string
		Title string
	}
)

// New parses the embedded templates.
func New(opts Options) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{opts: opts, tmpl: tmpl}, nil
}

// Page wraps a converted body in the page template. The body is trusted
// markup produced by the markdown converter.
func (r *Renderer) Page(title, body string) ([]byte, error) {
	return r.execute("page", pageData{
		Title:  title,
		Body:   template.HTML(body),
		Footer: r.opts.Footer,
	})
}

// Index renders the site index listing every section.
func (r *Renderer) Index(sections []types.Section) ([]byte, error) {
	data := indexData{
		Title:    r.opts.SiteTitle,
		Footer:   r.opts.Footer,
		Sections: make([]sectionData, 0, len(sections)),
	}
	for _, section := range sections {
		sd := sectionData{Directory: section.Directory}
		for _, doc := range section.Documents {
			sd.Links = append(sd.Links, linkData{
				URL:   uri.PageURL(doc.OutputPath),
				Title: doc.Title,
			})
		}
		data.Sections = append(data.Sections, sd)
	}
	return r.execute("index", data)
}

func (r *Renderer) execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// WriteAssets writes the stylesheet and highlighter files into dir.
func WriteAssets(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create static directory: %w", err)
	}
	for _, name := range Assets {
		data, err := fs.ReadFile(staticFS, "static/"+name)
		if err != nil {
			return fmt.Errorf("failed to load asset %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return fmt.Errorf("failed to write asset %s: %w", name, err)
		}
	}
	return nil
}
