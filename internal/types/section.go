package types

// Section groups the documents of one directory on the index page.
type Section struct {
	Directory string              `json:"directory"`
	Documents []ConvertedDocument `json:"documents"`
}
