package transform

import "strings"

// Phase is the position of an AlertState in the blockquote state machine.
type Phase uint8

const (
	Outside Phase = iota
	Accumulating
	InAlert
	InPlainBlockquote
)

func (p Phase) String() string {
	switch p {
	case Outside:
		return "Outside"
	case Accumulating:
		return "Accumulating"
	case InAlert:
		return "InAlert"
	case InPlainBlockquote:
		return "InPlainBlockquote"
	default:
		return "Unknown"
	}
}

// markerWindow is the number of bytes of blockquote text buffered while
// waiting for an alert marker. A partial "[!TYPE" marker may exceed it.
const markerWindow = 10

// AlertState tracks a single blockquote while deciding whether it is an alert
// block. The opening tag cannot be written until the leading text has been
// seen, so output is held back while the state is Accumulating.
//
// AlertState is a value: every transition returns the next state together
// with the markup to write.
type AlertState struct {
	Phase     Phase
	AlertType string
	Buffer    string

	held     string // markup deferred until the opening tag is chosen
	pending  string // rendered form of Buffer
	trimLead bool   // marker ended its text event; trim the next one
}

// Step dispatches ev to the matching transition. markup is the rendered form
// of ev and is only used for events other than blockquote boundaries and text.
func (s AlertState) Step(ev Event, markup string) (AlertState, string) {
	switch {
	case ev.Is(EventStart, TagBlockquote):
		return s.Open()
	case ev.Is(EventEnd, TagBlockquote):
		return s.Close()
	case ev.Kind == EventText:
		return s.Text(ev)
	default:
		return s.Other(ev, markup)
	}
}

// Open starts buffering a new blockquote. Nothing is written yet.
func (s AlertState) Open() (AlertState, string) {
	return AlertState{Phase: Accumulating}, ""
}

// Text handles a text event inside the blockquote.
func (s AlertState) Text(ev Event) (AlertState, string) {
	if s.Phase != Accumulating {
		if s.trimLead {
			s.trimLead = false
			ev.Text = strings.TrimLeft(ev.Text, " \t")
		}
		return s, renderText(ev)
	}

	s.Buffer += ev.Text
	s.pending += renderText(ev)

	if typ, rest, ok := parseMarker(s.Buffer); ok {
		next := AlertState{Phase: InAlert, AlertType: typ}
		open := `<blockquote class="alert alert-` + typ + `">` + s.held
		// Earlier events held no closing bracket, so rest lies within ev
		// and is rendered with its Raw flag.
		rest = ev.Text[len(ev.Text)-len(rest):]
		if rest = strings.TrimLeft(rest, " \t"); rest != "" {
			open += escapeText(rest, ev.Raw) + ev.Break
		} else {
			next.trimLead = true
		}
		return next, open
	}

	if len(s.Buffer) > markerWindow && !markerPrefix(s.Buffer) {
		return s.flush("")
	}
	return s, ""
}

// Other handles any event that is neither text nor a boundary of this
// blockquote. A paragraph opening before any text is held back; anything else
// means no marker can follow, so the blockquote is committed as plain.
func (s AlertState) Other(ev Event, markup string) (AlertState, string) {
	if s.Phase != Accumulating {
		s.trimLead = false
		return s, markup
	}
	if ev.Is(EventStart, TagParagraph) && s.Buffer == "" {
		s.held += markup
		return s, ""
	}
	return s.flush(markup)
}

// Close ends the blockquote. Text still buffered is written as a plain
// blockquote rather than dropped.
func (s AlertState) Close() (AlertState, string) {
	var out string
	switch s.Phase {
	case InAlert, InPlainBlockquote:
		out = "</blockquote>\n"
	case Accumulating:
		out = "<blockquote>" + s.held + s.pending + "</blockquote>\n"
	}
	return AlertState{Phase: Outside}, out
}

func (s AlertState) flush(markup string) (AlertState, string) {
	out := "<blockquote>" + s.held + s.pending + markup
	return AlertState{Phase: InPlainBlockquote}, out
}

// parseMarker extracts the lowercased alert type from a buffer starting with
// "[!TYPE]" and returns the text following the closing bracket.
func parseMarker(buf string) (typ, rest string, ok bool) {
	body, found := strings.CutPrefix(buf, "[!")
	if !found {
		return "", "", false
	}
	end := strings.IndexByte(body, ']')
	if end < 0 || !isAlertType(body[:end]) {
		return "", "", false
	}
	return strings.ToLower(body[:end]), body[end+1:], true
}

// markerPrefix reports whether buf may still grow into a marker: "[!"
// followed by type characters and no closing bracket yet.
func markerPrefix(buf string) bool {
	body, found := strings.CutPrefix(buf, "[!")
	return found && (body == "" || isAlertType(body))
}

func isAlertType(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
