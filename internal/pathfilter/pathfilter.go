// Package pathfilter decides which files of a source tree are converted.
package pathfilter

import (
	"path"
	"regexp"
	"strings"

	"github.com/taigrr/mdsite/internal/types"
)

// DefaultOutputDir is the name of the generated site directory inside the
// source root. It is always ignored.
const DefaultOutputDir = "html_output"

var extensionPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// PathFilter filters allowed paths and file types.
type PathFilter struct {
	ignored           []*regexp.Regexp
	allowedExtensions []string
}

// New creates a new PathFilter with the given configuration. Configured
// patterns and extensions are added to the defaults.
func New(config *types.PathFilterConfig) *PathFilter {
	patterns := []string{
		".git/**",
		"node_modules/**",
		DefaultOutputDir + "/**",
		".DS_Store",
		"Thumbs.db",
	}
	extensions := []string{".md"}

	if config != nil {
		patterns = append(patterns, config.IgnoredPatterns...)
		extensions = append(extensions, config.AllowedExtensions...)
	}

	pf := &PathFilter{allowedExtensions: extensions}
	for _, p := range patterns {
		if re, err := compileGlob(p); err == nil {
			pf.ignored = append(pf.ignored, re)
		}
	}
	return pf
}

// compileGlob converts a glob pattern to an anchored regular expression.
// "**" matches anything, "*" anything but a slash and "?" one non-slash rune.
func compileGlob(pattern string) (*regexp.Regexp, error) {
	normalized := strings.ReplaceAll(pattern, "\\", "/")

	expr := regexp.QuoteMeta(normalized)
	expr = strings.ReplaceAll(expr, `\*\*`, ".*")
	expr = strings.ReplaceAll(expr, `\*`, "[^/]*")
	expr = strings.ReplaceAll(expr, `\?`, "[^/]")

	return regexp.Compile("^" + expr + "$")
}

// IsAllowed checks if a path relative to the source root is allowed.
func (pf *PathFilter) IsAllowed(path string) bool {
	normalized := strings.ReplaceAll(path, "\\", "/")

	for _, re := range pf.ignored {
		if re.MatchString(normalized) {
			return false
		}
	}

	if len(pf.allowedExtensions) > 0 && isFile(normalized) {
		lower := strings.ToLower(normalized)
		for _, ext := range pf.allowedExtensions {
			if strings.HasSuffix(lower, strings.ToLower(ext)) {
				return true
			}
		}
		return false
	}

	return true
}

// IsFileAllowed reports whether a regular file should be converted. Unlike
// IsAllowed it never guesses from the name: the final extension must equal an
// allowed one, compared case-insensitively, so LICENSE, .gitignore and
// notes.md~ are all rejected.
func (pf *PathFilter) IsFileAllowed(p string) bool {
	normalized := strings.ReplaceAll(p, "\\", "/")
	if !pf.IsAllowed(normalized) {
		return false
	}

	name := path.Base(normalized)
	ext := path.Ext(name)
	if ext == "" || ext == name {
		return false
	}
	for _, allowed := range pf.allowedExtensions {
		if !strings.HasPrefix(allowed, ".") {
			allowed = "." + allowed
		}
		if strings.EqualFold(ext, allowed) {
			return true
		}
	}
	return false
}

// IsDirAllowed reports whether a directory should be descended into.
func (pf *PathFilter) IsDirAllowed(path string) bool {
	if path == "" || path == "." {
		return true
	}
	return pf.IsAllowed(strings.TrimSuffix(path, "/") + "/")
}

// isFile reports whether path looks like a file: its last component has a
// short alphanumeric extension.
func isFile(path string) bool {
	if strings.HasSuffix(path, "/") {
		return false
	}

	name := path[strings.LastIndex(path, "/")+1:]
	dot := strings.LastIndex(name, ".")
	if dot <= 0 {
		// No dot, or a dotfile like .gitignore
		return false
	}

	ext := name[dot+1:]
	if len(ext) < 1 || len(ext) > 10 {
		return false
	}
	return extensionPattern.MatchString(ext)
}
