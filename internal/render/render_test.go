package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/mdsite/internal/types"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(Options{SiteTitle: "Handbook", Footer: "Generated with love"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func TestRenderer_Page(t *testing.T) {
	r := newRenderer(t)

	out, err := r.Page("Setup & Install", `<p>Hello <a href="x.html" class="nav-button">x</a></p>`)
	if err != nil {
		t.Fatalf("Page() error = %v", err)
	}
	got := string(out)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Setup &amp; Install</title>",
		"<h1>Setup &amp; Install</h1>",
		`<a href="/" class="home-link">← Back to Index</a>`,
		`<article class="markdown-content">`,
		`<p>Hello <a href="x.html" class="nav-button">x</a></p>`,
		"<p>Generated with love</p>",
		`<link rel="stylesheet" href="/static/style.css">`,
		`<script src="/static/highlight.js"></script>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Page() missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderer_Index(t *testing.T) {
	r := newRenderer(t)

	sections := []types.Section{
		{
			Directory: "guide",
			Documents: []types.ConvertedDocument{
				{Title: "Intro", OutputPath: "guide/1-intro.html"},
				{Title: "My <Notes>", OutputPath: "guide/my notes.html"},
			},
		},
		{
			Directory: "Handbook",
			Documents: []types.ConvertedDocument{{Title: "Readme", OutputPath: "README.html"}},
		},
	}

	out, err := r.Index(sections)
	if err != nil {
		t.Fatalf("Index() error = %v", err)
	}
	got := string(out)

	for _, want := range []string{
		"<title>Handbook</title>",
		"<h2>guide</h2>",
		`<li><a href="/guide/1-intro.html">Intro</a></li>`,
		`<li><a href="/guide/my%20notes.html">My &lt;Notes&gt;</a></li>`,
		`<li><a href="/README.html">Readme</a></li>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Index() missing %q in:\n%s", want, got)
		}
	}

	if strings.Index(got, "<h2>guide</h2>") > strings.Index(got, "<h2>Handbook</h2>") {
		t.Error("sections not rendered in order")
	}
}

func TestRenderer_Deterministic(t *testing.T) {
	r := newRenderer(t)
	a, _ := r.Page("T", "<p>x</p>")
	b, _ := r.Page("T", "<p>x</p>")
	if string(a) != string(b) {
		t.Error("Page() output differs between calls")
	}
}

func TestWriteAssets(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "static")

	if err := WriteAssets(dir); err != nil {
		t.Fatalf("WriteAssets() error = %v", err)
	}

	for _, name := range Assets {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("asset %s not written: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("asset %s is empty", name)
		}
	}
}
