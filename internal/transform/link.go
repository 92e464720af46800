package transform

import (
	"net/url"
	"strings"

	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// RewriteLink points a link at a converted markdown page by replacing a
// trailing ".md" in the path with ".html". Query and fragment are kept.
// Targets with a scheme or host are left alone, as is a path that merely
// contains ".md" somewhere else (e.g. "notes.md.bak").
func RewriteLink(dest string) string {
	if u, err := url.Parse(dest); err == nil && (u.Scheme != "" || u.Host != "") {
		return dest
	}

	path, suffix := dest, ""
	if i := strings.IndexAny(dest, "?#"); i >= 0 {
		path, suffix = dest[:i], dest[i:]
	}

	base, ok := strings.CutSuffix(path, ".md")
	if !ok {
		return dest
	}
	return base + ".html" + suffix
}

func linkOpen(ev Event) string {
	var b strings.Builder
	b.WriteString(`<a href="`)
	dest := []byte(RewriteLink(ev.Dest))
	if !html.IsDangerousURL(dest) {
		b.Write(util.EscapeHTML(util.URLEscape(dest, true)))
	}
	b.WriteString(`" class="nav-button"`)
	if ev.Title != "" {
		b.WriteString(` title="`)
		b.WriteString(escapeText(ev.Title, false))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	return b.String()
}
