package ui

import (
	_ "embed"
	"strings"
)

//go:embed description.txt
var description string

// Description returns the text shown in the controls panel.
func Description() string { return strings.TrimSpace(description) }

// Wrap breaks text into lines of at most width characters. Paragraph breaks
// are kept as empty lines; words longer than width are split.
func Wrap(text string, width int) []string {
	if width <= 0 {
		width = 1
	}
	var lines []string
	for i, para := range strings.Split(text, "\n\n") {
		if i > 0 {
			lines = append(lines, "")
		}
		var line strings.Builder
		for _, word := range strings.Fields(para) {
			for len(word) > width {
				if line.Len() > 0 {
					lines = append(lines, line.String())
					line.Reset()
				}
				lines = append(lines, word[:width])
				word = word[width:]
			}
			if line.Len() > 0 && line.Len()+1+len(word) > width {
				lines = append(lines, line.String())
				line.Reset()
			}
			if line.Len() > 0 {
				line.WriteByte(' ')
			}
			line.WriteString(word)
		}
		if line.Len() > 0 {
			lines = append(lines, line.String())
		}
	}
	return lines
}
