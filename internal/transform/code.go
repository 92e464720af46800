package transform

import "strings"

var languageAliases = map[string]string{
	"js":      "javascript",
	"ts":      "typescript",
	"py":      "python",
	"rs":      "rust",
	"golang":  "go",
	"sh":      "bash",
	"shell":   "bash",
	"zsh":     "bash",
	"console": "bash",
	"yml":     "yaml",
	"c++":     "cpp",
	"md":      "markdown",
}

// LanguageClass returns the highlighter class for a code fence info string.
// Missing or unusable languages map to "language-none".
func LanguageClass(info string) string {
	lang := normalizeLanguage(info)
	if lang == "" {
		lang = "none"
	}
	return "language-" + lang
}

func normalizeLanguage(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}

	lang := strings.ToLower(fields[0])
	// rust,ignore and {.python} style info strings
	lang = strings.TrimPrefix(lang, "{.")
	if i := strings.IndexAny(lang, ",{}"); i >= 0 {
		lang = lang[:i]
	}
	if alias, ok := languageAliases[lang]; ok {
		lang = alias
	}

	for _, r := range lang {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '+', r == '#':
		default:
			return ""
		}
	}
	return lang
}

func codeBlockOpen(ev Event) string {
	return `<pre><code class="` + LanguageClass(ev.Lang) + `">`
}
