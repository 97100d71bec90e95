// Package model defines the data structures shared by the renaming engine,
// the file workflow and the user interface.
package model

// Path represents a file system path.
type Path string

// LanguageID names a registered source grammar.
type LanguageID string

const (
	// LanguagePython is the Python-like grammar (# comments, triple-quoted strings).
	LanguagePython LanguageID = "python"
	// LanguageC is the C-like grammar (// and /* */ comments, char literals).
	LanguageC LanguageID = "c"
)

// File represents a source code file on disk.
type File struct {
	Path      Path
	ShortPath Path // path relative to the working directory, for display
	Hash      string
}

// Source is a file selected for renaming together with the grammar used to
// scan it.
type Source struct {
	Origin   *File
	Language LanguageID
}
