package transform

import (
	"bufio"
	"strings"

	"github.com/yuin/goldmark/renderer/html"
)

// escapeText renders text the way goldmark's HTML writer does.
func escapeText(s string, raw bool) string {
	var sb strings.Builder
	w := bufio.NewWriter(&sb)
	if raw {
		html.DefaultWriter.RawWrite(w, []byte(s))
	} else {
		html.DefaultWriter.Write(w, []byte(s))
	}
	_ = w.Flush()
	return sb.String()
}

func renderText(ev Event) string {
	return escapeText(ev.Text, ev.Raw) + ev.Break
}
