package layout

import (
	"strings"
	"unicode/utf8"
)

// Wrap splits text on explicit newlines, then wraps each paragraph at
// maxChars characters. Runs longer than maxChars break mid-run rather than
// overflowing, and no character is ever dropped: rejoining the wrapped lines
// of a paragraph reproduces it exactly. A blank paragraph yields one empty
// line, never zero, so vertical position accounting stays consistent.
func Wrap(text string, maxChars int) []string {
	if maxChars < 1 {
		maxChars = 1
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrapParagraph(paragraph, maxChars)...)
	}
	return lines
}

// wrapParagraph chunks one paragraph into runs of at most maxChars runes.
// Japanese prose has no word separators, so a plain rune chunking is both
// correct and lossless.
func wrapParagraph(paragraph string, maxChars int) []string {
	runes := []rune(paragraph)
	lines := make([]string, 0, (len(runes)+maxChars-1)/maxChars)
	for start := 0; start < len(runes); start += maxChars {
		end := start + maxChars
		if end > len(runes) {
			end = len(runes)
		}
		lines = append(lines, string(runes[start:end]))
	}
	return lines
}

// runeLen is the character count of a line, as layout sees it.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func isBlankText(s string) bool {
	return strings.TrimSpace(s) == ""
}
