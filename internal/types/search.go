package types

type (
	// SearchParams contains parameters for searching source documents.
	SearchParams struct {
		Query         string `json:"query"`
		UseRegex      bool   `json:"useRegex,omitempty"`
		CaseSensitive bool   `json:"caseSensitive,omitempty"`
		ContextLines  int    `json:"contextLines,omitempty"`
		Limit         int    `json:"limit,omitempty"`
		Offset        int    `json:"offset,omitempty"`
	}

	// SearchMatch represents a single matching line within a document.
	SearchMatch struct {
		Line    int    `json:"line"`
		Context string `json:"context"`
	}

	// SearchResult contains the matches for a single document.
	SearchResult struct {
		Path    string        `json:"path"`
		URL     string        `json:"url"`
		Matches []SearchMatch `json:"matches"`
	}
)
