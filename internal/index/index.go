// Package index groups converted documents into the sections of the site
// index page.
package index

import (
	"cmp"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/taigrr/mdsite/internal/types"
)

// Build groups docs by the name of their immediate parent directory and
// sorts each group. Sections appear in the order their directory is first
// seen in docs; documents at the top of the tree are grouped under rootName.
func Build(docs []types.ConvertedDocument, rootName string) []types.Section {
	var sections []types.Section
	positions := make(map[string]int)

	for _, doc := range docs {
		dir := directoryName(doc.SourcePath, rootName)
		i, ok := positions[dir]
		if !ok {
			i = len(sections)
			positions[dir] = i
			sections = append(sections, types.Section{Directory: dir})
		}
		sections[i].Documents = append(sections[i].Documents, doc)
	}

	for i := range sections {
		slices.SortStableFunc(sections[i].Documents, Compare)
	}
	return sections
}

// Compare orders two documents of the same section. Documents with a numeric
// prefix come first, ascending by value; the rest are ordered by title,
// ignoring case.
func Compare(a, b types.ConvertedDocument) int {
	an, aok := NumericPrefix(stem(a.SourcePath))
	bn, bok := NumericPrefix(stem(b.SourcePath))

	switch {
	case aok && bok:
		return cmp.Compare(an, bn)
	case aok:
		return -1
	case bok:
		return 1
	default:
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	}
}

// NumericPrefix parses the digits before the first '-' of a file stem, as in
// "2-setup". It reports false when there is no hyphen or the prefix is not a
// number.
func NumericPrefix(stem string) (uint64, bool) {
	prefix, _, found := strings.Cut(stem, "-")
	if !found || prefix == "" {
		return 0, false
	}
	for _, r := range prefix {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(prefix, 10, 32)
	if err != nil {
		return 0, false
	}
	return n, true
}

func stem(sourcePath string) string {
	base := path.Base(sourcePath)
	return strings.TrimSuffix(base, path.Ext(base))
}

func directoryName(sourcePath, rootName string) string {
	dir := path.Dir(sourcePath)
	if dir == "." || dir == "/" {
		return rootName
	}
	return path.Base(dir)
}
