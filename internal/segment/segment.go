// Package segment splits raw document text into paragraph-level chunks.
package segment

import (
	"regexp"
	"strings"
)

// blankLine matches any whitespace run containing at least one blank
// line: two or more line breaks, optionally with interleaved spaces.
var blankLine = regexp.MustCompile(`\n\s*\n`)

// Paragraphs splits text on blank-line boundaries, trims each segment,
// and drops segments that are empty after trimming. Order is
// preserved. The function is pure and deterministic.
func Paragraphs(text string) []string {
	var paragraphs []string
	for _, part := range blankLine.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		paragraphs = append(paragraphs, part)
	}
	return paragraphs
}
