package types

// PathFilterConfig contains configuration for the path filter.
type PathFilterConfig struct {
	IgnoredPatterns   []string `json:"ignoredPatterns" yaml:"ignore"`
	AllowedExtensions []string `json:"allowedExtensions" yaml:"extensions"`
}
