package subtitle

import (
	"regexp"
	"strings"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
)

var (
	blockSeparator = regexp.MustCompile(`\n\n+`)
	nonDigits      = regexp.MustCompile(`\D`)
)

// DefaultParser parses SRT-style block content
type DefaultParser struct{}

// NewParser creates a new subtitle parser
func NewParser() Parser {
	return &DefaultParser{}
}

// Parse splits raw content into blank-line separated blocks and builds one
// Line per well-formed block. A block needs at least three lines: index,
// timecode, and one or more text lines. Malformed blocks are dropped
// silently so a damaged entry never aborts the whole file.
func (p *DefaultParser) Parse(content string) (*File, error) {
	blocks := blockSeparator.Split(strings.TrimSpace(content), -1)

	var lines []Line
	for _, block := range blocks {
		rows := strings.Split(block, "\n")
		if len(rows) < 3 {
			continue
		}

		// Strip whitespace and any non-digit noise (BOM, stray symbols)
		// from the index line. An index that reduces to "" is kept.
		id := nonDigits.ReplaceAllString(strings.TrimSpace(rows[0]), "")

		lines = append(lines, Line{
			ID:       id,
			Timecode: strings.TrimSpace(rows[1]),
			Text:     strings.Join(rows[2:], "\n"),
		})
	}

	return &File{
		Lines:    lines,
		Language: detectLanguage(lines),
		Format:   "SRT",
	}, nil
}

// detectLanguage guesses the dominant source language by majority vote
func detectLanguage(lines []Line) language.Tag {
	if len(lines) == 0 {
		return language.Und
	}

	langMap := make(map[string]int)
	for _, line := range lines {
		lang := whatlanggo.DetectLang(line.Text).Iso6391()
		langMap[lang]++
	}

	var topLang string
	var topCount int
	for lang, count := range langMap {
		if count > topCount {
			topLang = lang
			topCount = count
		}
	}

	return language.All.Make(topLang)
}
