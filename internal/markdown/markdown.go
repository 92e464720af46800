// Package markdown parses markdown with goldmark and turns the resulting AST
// into a transform.Event stream.
package markdown

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/taigrr/mdsite/internal/transform"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Converter converts markdown source into an HTML body. It is safe for
// concurrent use.
type Converter struct {
	md    goldmark.Markdown
	funcs funcTable
}

// New creates a Converter with GitHub flavoured extensions (tables,
// strikethrough, task lists, autolinks) and footnotes enabled.
func New() *Converter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	funcs := funcTable{}
	for _, nr := range []renderer.NodeRenderer{
		html.NewRenderer(html.WithUnsafe()),
		extension.NewTableHTMLRenderer(),
		extension.NewStrikethroughHTMLRenderer(),
		extension.NewTaskCheckBoxHTMLRenderer(),
		extension.NewFootnoteHTMLRenderer(),
	} {
		nr.RegisterFuncs(funcs)
	}

	return &Converter{md: md, funcs: funcs}
}

// Convert renders markdown source to an HTML body.
func (c *Converter) Convert(source []byte) (string, error) {
	events, err := c.Events(source)
	if err != nil {
		return "", err
	}
	return transform.Transform(events), nil
}

// Events parses source and returns its event stream.
func (c *Converter) Events(source []byte) ([]transform.Event, error) {
	doc := c.md.Parser().Parse(text.NewReader(source))
	w := &eventWriter{source: source, funcs: c.funcs}
	if err := ast.Walk(doc, w.walk); err != nil {
		return nil, fmt.Errorf("failed to walk document: %w", err)
	}
	return w.events, nil
}

// Title returns the text of a leading "# " heading on the first line of body,
// or fallback when there is none.
func Title(body, fallback string) string {
	line, _, _ := strings.Cut(body, "\n")
	line = strings.TrimRight(line, "\r")
	if title, ok := strings.CutPrefix(line, "# "); ok {
		if title = strings.TrimSpace(title); title != "" {
			return title
		}
	}
	return fallback
}

type funcTable map[ast.NodeKind]renderer.NodeRendererFunc

func (t funcTable) Register(kind ast.NodeKind, f renderer.NodeRendererFunc) {
	t[kind] = f
}

type eventWriter struct {
	source []byte
	funcs  funcTable
	events []transform.Event
}

func (w *eventWriter) emit(ev ...transform.Event) {
	w.events = append(w.events, ev...)
}

func (w *eventWriter) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Document:
		return ast.WalkContinue, nil

	case *ast.Blockquote:
		if entering {
			w.emit(transform.Start(transform.TagBlockquote, ""))
		} else {
			w.emit(transform.End(transform.TagBlockquote, ""))
		}
		return ast.WalkContinue, nil

	case *ast.Link:
		if entering {
			w.emit(transform.LinkStart(string(node.Destination), string(node.Title)))
		} else {
			w.emit(transform.End(transform.TagLink, ""))
		}
		return ast.WalkContinue, nil

	case *ast.AutoLink:
		if !entering {
			return ast.WalkContinue, nil
		}
		url := node.URL(w.source)
		if node.AutoLinkType == ast.AutoLinkEmail && !bytes.HasPrefix(bytes.ToLower(url), []byte("mailto:")) {
			url = append([]byte("mailto:"), url...)
		}
		w.emit(
			transform.LinkStart(string(url), ""),
			transform.Event{Kind: transform.EventText, Text: string(node.Label(w.source)), Raw: true},
			transform.End(transform.TagLink, ""),
		)
		return ast.WalkSkipChildren, nil

	case *ast.FencedCodeBlock:
		if entering {
			var info string
			if node.Info != nil {
				info = string(node.Info.Segment.Value(w.source))
			}
			w.emitCode(info, node.Lines())
		}
		return ast.WalkSkipChildren, nil

	case *ast.CodeBlock:
		if entering {
			w.emitCode("", node.Lines())
		}
		return ast.WalkSkipChildren, nil

	case *ast.Text:
		if entering {
			ev := transform.Event{
				Kind: transform.EventText,
				Text: string(node.Segment.Value(w.source)),
				Raw:  node.IsRaw(),
			}
			switch {
			case node.HardLineBreak():
				ev.Break = "<br>\n"
			case node.SoftLineBreak():
				ev.Break = "\n"
			}
			w.emit(ev)
		}
		return ast.WalkContinue, nil
	}

	return w.passThrough(n, entering)
}

func (w *eventWriter) emitCode(info string, lines *text.Segments) {
	var code strings.Builder
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		code.Write(line.Value(w.source))
	}
	w.emit(
		transform.CodeBlockStart(info),
		transform.Event{Kind: transform.EventText, Text: code.String(), Raw: true},
		transform.End(transform.TagCodeBlock, ""),
	)
}

// passThrough renders n with goldmark's own node renderer and wraps the
// markup in a start or end event, or a markup event for leaf nodes.
func (w *eventWriter) passThrough(n ast.Node, entering bool) (ast.WalkStatus, error) {
	f, ok := w.funcs[n.Kind()]
	if !ok {
		return ast.WalkContinue, nil
	}

	var sb strings.Builder
	bw := bufio.NewWriter(&sb)
	status, err := f(bw, w.source, n, entering)
	if err != nil {
		return ast.WalkStop, fmt.Errorf("failed to render %s: %w", n.Kind(), err)
	}
	if err := bw.Flush(); err != nil {
		return ast.WalkStop, err
	}

	if sb.Len() == 0 {
		return status, nil
	}

	tag := transform.TagOther
	switch {
	case n.Kind() == ast.KindParagraph:
		tag = transform.TagParagraph
	case !n.HasChildren():
		// Leaves such as thematic breaks and raw HTML open nothing.
		w.emit(transform.HTML(sb.String()))
		return status, nil
	}
	if entering {
		w.emit(transform.Start(tag, sb.String()))
	} else {
		w.emit(transform.End(tag, sb.String()))
	}
	return status, nil
}
