// Package transform rewrites a markdown event stream into HTML.
//
// Three rewrites are applied in a single forward pass: blockquotes that open
// with a "[!TYPE]" marker become styled alert blocks, link targets ending in
// ".md" are pointed at the converted ".html" page, and code blocks are tagged
// with a language class for client-side highlighting. Every other event is
// passed through as pre-rendered markup.
package transform

// EventKind is the kind of an Event.
type EventKind uint8

const (
	EventStart EventKind = iota
	EventEnd
	EventText
	EventHTML
)

// Tag identifies the element a start or end event belongs to.
type Tag uint8

const (
	TagOther Tag = iota
	TagParagraph
	TagBlockquote
	TagLink
	TagCodeBlock
)

// Event is a single item of the markdown event stream.
type Event struct {
	Kind EventKind
	Tag  Tag

	// Text is the literal text of a text event. Raw text is HTML escaped but
	// backslash escapes and entity references are left untouched.
	Text  string
	Raw   bool
	Break string // line break markup following the text, if any

	// HTML is the pre-rendered markup of a pass-through event.
	HTML string

	Dest  string // link destination
	Title string // link title
	Lang  string // code fence info string
}

// Is reports whether e is a start or end event of the given tag.
func (e Event) Is(kind EventKind, tag Tag) bool {
	return e.Kind == kind && e.Tag == tag
}

// Start returns a pass-through start event.
func Start(tag Tag, html string) Event {
	return Event{Kind: EventStart, Tag: tag, HTML: html}
}

// End returns a pass-through end event.
func End(tag Tag, html string) Event {
	return Event{Kind: EventEnd, Tag: tag, HTML: html}
}

// Text returns a text event with no trailing line break.
func Text(s string) Event {
	return Event{Kind: EventText, Text: s}
}

// HTML returns a raw markup event.
func HTML(s string) Event {
	return Event{Kind: EventHTML, HTML: s}
}

// LinkStart returns the start event of a link.
func LinkStart(dest, title string) Event {
	return Event{Kind: EventStart, Tag: TagLink, Dest: dest, Title: title}
}

// CodeBlockStart returns the start event of a code block with the given
// fence info string.
func CodeBlockStart(lang string) Event {
	return Event{Kind: EventStart, Tag: TagCodeBlock, Lang: lang}
}
