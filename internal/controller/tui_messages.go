package controller

import "time"

type tickMsg time.Time

// Message types.
type identifiersMsg struct {
	files []fileItem
	total int
}

type concurrencyMsg struct {
	threads int
	files   int
}

type startFileMsg struct {
	path   string
	worker int
}

type completedFileMsg struct {
	path    string
	status  string
	err     string
	renames []string
	diff    string
}

type diffMsg struct {
	path string
	diff string
}

type summaryMsg struct {
	files int
}

// List item types.
type fileItem struct {
	path  string
	count int
	names string
}

func (f fileItem) FilterValue() string {
	return f.path + " " + f.names
}
