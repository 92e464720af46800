package transform

import "testing"

func TestTransform(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   string
	}{
		{
			name: "alert block",
			events: []Event{
				Start(TagBlockquote, ""),
				Text("[!NOTE] Hello"),
				End(TagBlockquote, ""),
			},
			want: `<blockquote class="alert alert-note">Hello</blockquote>` + "\n",
		},
		{
			name: "alert block with paragraph",
			events: []Event{
				Start(TagBlockquote, ""),
				Start(TagParagraph, "<p>"),
				Text("["),
				Text("!NOTE] Hello"),
				End(TagParagraph, "</p>\n"),
				End(TagBlockquote, ""),
			},
			want: `<blockquote class="alert alert-note"><p>Hello</p>` + "\n</blockquote>\n",
		},
		{
			name: "marker split from its text",
			events: []Event{
				Start(TagBlockquote, ""),
				Text("["),
				Text("!NOTE]"),
				Text(" Hello"),
				End(TagBlockquote, ""),
			},
			want: `<blockquote class="alert alert-note">Hello</blockquote>` + "\n",
		},
		{
			name: "long alert type split across events",
			events: []Event{
				Start(TagBlockquote, ""),
				Text("["),
				Text("!IMPORTANT"),
				Text("] Read this"),
				End(TagBlockquote, ""),
			},
			want: `<blockquote class="alert alert-important">Read this</blockquote>` + "\n",
		},
		{
			name: "plain blockquote over threshold",
			events: []Event{
				Start(TagBlockquote, ""),
				Start(TagParagraph, "<p>"),
				Text("Just "),
				Text("some quoted text"),
				End(TagParagraph, "</p>\n"),
				End(TagBlockquote, ""),
			},
			want: "<blockquote><p>Just some quoted text</p>\n</blockquote>\n",
		},
		{
			name: "short blockquote is kept",
			events: []Event{
				Start(TagBlockquote, ""),
				Text("Hi"),
				End(TagBlockquote, ""),
			},
			want: "<blockquote>Hi</blockquote>\n",
		},
		{
			name: "empty blockquote",
			events: []Event{
				Start(TagBlockquote, ""),
				End(TagBlockquote, ""),
			},
			want: "<blockquote></blockquote>\n",
		},
		{
			name: "emphasis decides plain",
			events: []Event{
				Start(TagBlockquote, ""),
				Start(TagParagraph, "<p>"),
				Text("Hi "),
				Start(TagOther, "<em>"),
				Text("there"),
				End(TagOther, "</em>"),
				End(TagParagraph, "</p>\n"),
				End(TagBlockquote, ""),
			},
			want: "<blockquote><p>Hi <em>there</em></p>\n</blockquote>\n",
		},
		{
			name: "nested alert",
			events: []Event{
				Start(TagBlockquote, ""),
				Start(TagBlockquote, ""),
				Text("[!TIP] x"),
				End(TagBlockquote, ""),
				End(TagBlockquote, ""),
			},
			want: `<blockquote><blockquote class="alert alert-tip">x</blockquote>` + "\n</blockquote>\n",
		},
		{
			name: "state is not shared between blockquotes",
			events: []Event{
				Start(TagBlockquote, ""),
				Text("[!NOTE] a"),
				End(TagBlockquote, ""),
				Start(TagBlockquote, ""),
				Text("plain quote text"),
				End(TagBlockquote, ""),
			},
			want: `<blockquote class="alert alert-note">a</blockquote>` + "\n" +
				"<blockquote>plain quote text</blockquote>\n",
		},
		{
			name: "link rewrite",
			events: []Event{
				LinkStart("guide.md", ""),
				Text("Guide"),
				End(TagLink, ""),
			},
			want: `<a href="guide.html" class="nav-button">Guide</a>`,
		},
		{
			name: "external link keeps target",
			events: []Event{
				LinkStart("https://example.com/README.md", ""),
				Text("readme"),
				End(TagLink, ""),
			},
			want: `<a href="https://example.com/README.md" class="nav-button">readme</a>`,
		},
		{
			name: "link in undecided blockquote",
			events: []Event{
				Start(TagBlockquote, ""),
				Start(TagParagraph, "<p>"),
				LinkStart("a.md", ""),
				Text("A"),
				End(TagLink, ""),
				End(TagParagraph, "</p>\n"),
				End(TagBlockquote, ""),
			},
			want: `<blockquote><p><a href="a.html" class="nav-button">A</a></p>` + "\n</blockquote>\n",
		},
		{
			name: "code block language",
			events: []Event{
				CodeBlockStart("rust"),
				{Kind: EventText, Text: "fn main() {}\n", Raw: true},
				End(TagCodeBlock, ""),
			},
			want: `<pre><code class="language-rust">fn main() {}` + "\n</code></pre>\n",
		},
		{
			name: "code block without language",
			events: []Event{
				CodeBlockStart(""),
				{Kind: EventText, Text: "x < y\n", Raw: true},
				End(TagCodeBlock, ""),
			},
			want: `<pre><code class="language-none">x &lt; y` + "\n</code></pre>\n",
		},
		{
			name: "pass-through markup",
			events: []Event{
				Start(TagOther, "<h1>"),
				Text("Title"),
				End(TagOther, "</h1>\n"),
				HTML("<hr>\n"),
			},
			want: "<h1>Title</h1>\n<hr>\n",
		},
		{
			name: "unbalanced blockquote is closed",
			events: []Event{
				Start(TagBlockquote, ""),
				Text("[!NOTE] open"),
			},
			want: `<blockquote class="alert alert-note">open</blockquote>` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Transform(tt.events); got != tt.want {
				t.Errorf("Transform() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTransformer_SuppressesWhileAccumulating(t *testing.T) {
	tr := New()
	for _, ev := range []Event{Start(TagBlockquote, ""), Start(TagParagraph, "<p>"), Text("[")} {
		if out := tr.Next(ev); out != "" {
			t.Errorf("Next(%+v) = %q, want empty while accumulating", ev, out)
		}
	}
}
