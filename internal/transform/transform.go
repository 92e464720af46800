package transform

import "strings"

// Transformer applies the alert, link and code block rewrites to an event
// stream. Each open blockquote owns its own AlertState; nested blockquotes
// are tracked on a stack. A Transformer must not be shared between documents.
type Transformer struct {
	quotes []AlertState
}

// New returns a Transformer ready for the first event of a document.
func New() *Transformer {
	return &Transformer{}
}

// Next consumes one event and returns the markup to write for it, which may
// be empty while a blockquote is still undecided.
func (t *Transformer) Next(ev Event) string {
	var out string

	switch {
	case ev.Is(EventStart, TagBlockquote):
		if top := t.top(); top != nil {
			*top, out = top.Other(ev, "")
		}
		st, open := AlertState{}.Open()
		t.quotes = append(t.quotes, st)
		return out + open

	case ev.Is(EventEnd, TagBlockquote):
		top := t.top()
		if top == nil {
			return ev.HTML
		}
		_, out = top.Close()
		t.quotes = t.quotes[:len(t.quotes)-1]
		return out

	case ev.Kind == EventText:
		if top := t.top(); top != nil {
			*top, out = top.Text(ev)
			return out
		}
		return renderText(ev)

	default:
		markup := Markup(ev)
		if top := t.top(); top != nil {
			*top, out = top.Other(ev, markup)
			return out
		}
		return markup
	}
}

// Finish closes any blockquote left open by a truncated stream.
func (t *Transformer) Finish() string {
	var b strings.Builder
	for len(t.quotes) > 0 {
		_, out := t.quotes[len(t.quotes)-1].Close()
		t.quotes = t.quotes[:len(t.quotes)-1]
		b.WriteString(out)
	}
	return b.String()
}

func (t *Transformer) top() *AlertState {
	if len(t.quotes) == 0 {
		return nil
	}
	return &t.quotes[len(t.quotes)-1]
}

// Markup renders a non-text event outside of any blockquote decision: links
// and code blocks get their rewritten tags, everything else its own markup.
func Markup(ev Event) string {
	switch {
	case ev.Is(EventStart, TagLink):
		return linkOpen(ev)
	case ev.Is(EventEnd, TagLink):
		return "</a>"
	case ev.Is(EventStart, TagCodeBlock):
		return codeBlockOpen(ev)
	case ev.Is(EventEnd, TagCodeBlock):
		return "</code></pre>\n"
	case ev.Kind == EventText:
		return renderText(ev)
	default:
		return ev.HTML
	}
}

// Transform runs a complete event stream through a new Transformer.
func Transform(events []Event) string {
	t := New()
	var b strings.Builder
	for _, ev := range events {
		b.WriteString(t.Next(ev))
	}
	b.WriteString(t.Finish())
	return b.String()
}
