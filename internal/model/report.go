package model

// Report records what happened to a single source file.
type Report struct {
	Path        Path          `yaml:"path"`
	Language    LanguageID    `yaml:"language"`
	Hash        string        `yaml:"hash,omitempty"`
	Status      RewriteStatus `yaml:"status"`
	Identifiers []string      `yaml:"identifiers,omitempty"` // candidates found by the extractor
	Renames     []Rename      `yaml:"renames,omitempty"`
	Written     bool          `yaml:"written"`
	Diff        string        `yaml:"-"`
	Error       string        `yaml:"error,omitempty"`
}

// Failed reports whether processing the file returned an error.
func (r Report) Failed() bool {
	return r.Status == StatusFailed
}
