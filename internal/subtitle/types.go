package subtitle

import "golang.org/x/text/language"

// Parser turns raw subtitle text into a File
type Parser interface {
	Parse(content string) (*File, error)
}

// Writer serializes a File back into subtitle text
type Writer interface {
	Write(file *File) error
}

// Line represents a single subtitle entry.
//
// ID is kept as a string: it is whatever digit sequence survives
// normalization of the index line, and downstream matching against the
// translation backend's replies is purely string-based. An ID that
// normalizes to "" is still a valid record.
type Line struct {
	ID             string // normalized index, digits only
	Timecode       string // opaque, no syntax validation
	Text           string // source text, may span multiple lines
	TranslatedText string // empty until the pipeline fills it
}

// File represents a parsed subtitle file
type File struct {
	Lines    []Line
	Language language.Tag
	Format   string // e.g. SRT
}
