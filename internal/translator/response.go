package translator

import (
	"regexp"
	"strings"
)

// newEntryPattern matches the start of a reply entry: digits, optional
// whitespace, the ">>>" delimiter, optional whitespace, remainder.
var newEntryPattern = regexp.MustCompile(`^(\d+)\s*>>>\s*(.*)`)

// ParseResponse turns the backend's free-form reply into a TranslationMap.
//
// The parser is tolerant of multi-line entries: lines that do not start a
// new entry are appended to the current one, which is how translated
// captions spanning several lines are reconstructed. Lines arriving
// before any ID are discarded. Malformed input never produces an error,
// only an incomplete or empty map; the caller treats missing IDs as a
// retryable failure.
func ParseResponse(reply string) TranslationMap {
	translationMap := make(TranslationMap)

	var currentID string
	var currentTextLines []string
	active := false

	flush := func() {
		if active {
			translationMap[currentID] = strings.TrimSpace(strings.Join(currentTextLines, "\n"))
		}
	}

	for _, line := range strings.Split(strings.TrimSpace(reply), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if match := newEntryPattern.FindStringSubmatch(line); match != nil {
			flush()
			currentID = match[1]
			currentTextLines = nil
			if match[2] != "" {
				currentTextLines = append(currentTextLines, match[2])
			}
			active = true
			continue
		}

		if active {
			currentTextLines = append(currentTextLines, line)
		}
	}

	flush()
	return translationMap
}
