package pathfilter

import (
	"strings"
	"testing"

	"github.com/taigrr/mdsite/internal/types"
)

func TestPathFilter_AllowsMarkdownFiles(t *testing.T) {
	filter := New(nil)

	tests := []struct {
		path string
		want bool
	}{
		{"notes/test.md", true},
		{"README.MD", true},
		{"guide/1-setup.md", true},
		{"test.markdown", false},
		{"folder/subfolder/note.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := filter.IsAllowed(tt.path); got != tt.want {
				t.Errorf("IsAllowed(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathFilter_IsFileAllowed(t *testing.T) {
	filter := New(nil)

	tests := []struct {
		path string
		want bool
	}{
		{"a.md", true},
		{"README.MD", true},
		{"1. Project/note.md", true},
		{"LICENSE", false},
		{"Makefile", false},
		{".gitignore", false},
		{".md", false},
		{"docs/.md", false},
		{"notes.md~", false},
		{"notes.md.bak", false},
		{"notes.mdx", false},
		{"3.5 Research", false},
		{".git/HEAD.md", false},
		{"html_output/index.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := filter.IsFileAllowed(tt.path); got != tt.want {
				t.Errorf("IsFileAllowed(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}

	custom := New(&types.PathFilterConfig{AllowedExtensions: []string{"markdown"}})
	if !custom.IsFileAllowed("a.markdown") {
		t.Error("IsFileAllowed(a.markdown) = false, want true with extension configured without a dot")
	}
}

func TestPathFilter_BlocksIgnoredDirectories(t *testing.T) {
	filter := New(nil)

	tests := []string{
		".git/config",
		".git/objects/abc123",
		"node_modules/package/readme.md",
		"html_output/index.md",
		"html_output/static/style.css",
		".DS_Store",
		"Thumbs.db",
	}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			if filter.IsAllowed(path) {
				t.Errorf("IsAllowed(%q) = true, want false", path)
			}
		})
	}
}

func TestPathFilter_IsDirAllowed(t *testing.T) {
	filter := New(nil)

	tests := []struct {
		path string
		want bool
	}{
		{"", true},
		{".", true},
		{"docs", true},
		{"docs/", true},
		{"1. Project", true},
		{".git", false},
		{"node_modules", false},
		{"html_output", false},
		{"docs/html_output", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := filter.IsDirAllowed(tt.path); got != tt.want {
				t.Errorf("IsDirAllowed(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathFilter_RegexSpecialCharacters(t *testing.T) {
	filter := New(nil)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"dots in filenames", "file.name.md", true},
		{"version notes", "v1.0.0-notes.md", true},
		{"parentheses in paths", "notes/(archived)/old.md", true},
		{"square brackets", "notes/[2024]/january.md", true},
		{"curly braces", "templates/{daily}.md", true},
		{"plus signs", "C++/notes.md", true},
		{"question mark", "FAQ?.md", true},
		{"dollar sign", "price$100.md", true},
		{"backslash Windows", "folder\\subfolder\\note.md", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.IsAllowed(tt.path); got != tt.want {
				t.Errorf("IsAllowed(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathFilter_CustomConfig(t *testing.T) {
	t.Run("asterisk glob matches", func(t *testing.T) {
		filter := New(&types.PathFilterConfig{
			IgnoredPatterns: []string{"temp*/**"},
		})

		tests := []struct {
			path string
			want bool
		}{
			{"temp/file.md", false},
			{"temporary/file.md", false},
			{"atemp/file.md", true},
		}

		for _, tt := range tests {
			if got := filter.IsAllowed(tt.path); got != tt.want {
				t.Errorf("IsAllowed(%q) = %v, want %v", tt.path, got, tt.want)
			}
		}
	})

	t.Run("double asterisk matches nested", func(t *testing.T) {
		filter := New(&types.PathFilterConfig{
			IgnoredPatterns: []string{"drafts/**"},
		})

		tests := []struct {
			path string
			want bool
		}{
			{"drafts/old.md", false},
			{"drafts/2024/jan/note.md", false},
			{"other/drafts/note.md", true},
		}

		for _, tt := range tests {
			if got := filter.IsAllowed(tt.path); got != tt.want {
				t.Errorf("IsAllowed(%q) = %v, want %v", tt.path, got, tt.want)
			}
		}
	})

	t.Run("brackets are literal", func(t *testing.T) {
		filter := New(&types.PathFilterConfig{
			IgnoredPatterns: []string{"[trash]/**"},
		})
		if filter.IsAllowed("[trash]/deleted.md") {
			t.Error("IsAllowed([trash]/deleted.md) = true, want false")
		}
		if !filter.IsAllowed("trash/deleted.md") {
			t.Error("IsAllowed(trash/deleted.md) = false, want true")
		}
	})

	t.Run("extra extensions", func(t *testing.T) {
		filter := New(&types.PathFilterConfig{
			AllowedExtensions: []string{".markdown"},
		})
		if !filter.IsAllowed("notes/a.markdown") {
			t.Error("IsAllowed(notes/a.markdown) = false, want true")
		}
		if !filter.IsAllowed("notes/a.md") {
			t.Error("IsAllowed(notes/a.md) = false, want true")
		}
	})
}

func TestPathFilter_EdgeCases(t *testing.T) {
	filter := New(nil)

	t.Run("empty path", func(t *testing.T) {
		if !filter.IsAllowed("") {
			t.Error("IsAllowed(\"\") = false, want true")
		}
	})

	t.Run("very long paths", func(t *testing.T) {
		var longPath strings.Builder
		for range 100 {
			longPath.WriteString("a/")
		}
		longPath.WriteString("note.md")

		if !filter.IsAllowed(longPath.String()) {
			t.Error("IsAllowed(longPath) = false, want true")
		}
	})

	t.Run("unicode characters", func(t *testing.T) {
		for _, path := range []string{"notes/日本語.md", "émojis/🎉.md"} {
			if !filter.IsAllowed(path) {
				t.Errorf("IsAllowed(%q) = false, want true", path)
			}
		}
	})

	t.Run("directories with dots in names", func(t *testing.T) {
		tests := []struct {
			path string
			want bool
		}{
			{"1. Project", true},
			{"3.5 Research", true},
			{"1. Project/note.md", true},
			{"1. Project/file.js", false},
		}

		for _, tt := range tests {
			if got := filter.IsAllowed(tt.path); got != tt.want {
				t.Errorf("IsAllowed(%q) = %v, want %v", tt.path, got, tt.want)
			}
		}
	})
}
