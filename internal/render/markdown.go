package render

import "strings"

const (
	// maximumHeadingLevel caps the Markdown heading depth regardless of tree depth.
	maximumHeadingLevel = 6
	headingMarker       = "#"
	filesBlockLabel     = "**files:**\n"
	linkLineFormat      = "- [%s](%s)\n"
	// fileLineFormat wraps the target in angle brackets so paths containing
	// spaces or special characters remain valid link destinations.
	fileLineFormat = "- [%s](<%s>)\n"
)

// headingPrefix returns level hash markers, clamped to the Markdown range 1 through 6.
func headingPrefix(level int) string {
	if level < 1 {
		level = 1
	}
	if level > maximumHeadingLevel {
		level = maximumHeadingLevel
	}
	return strings.Repeat(headingMarker, level)
}

// escapeMarkdownText backslash-escapes the characters Markdown treats as
// markup inside headings and link text.
func escapeMarkdownText(text string) string {
	var escapedBuilder strings.Builder
	escapedBuilder.Grow(len(text))
	for byteIndex := 0; byteIndex < len(text); byteIndex++ {
		currentByte := text[byteIndex]
		switch currentByte {
		case '\\', '[', ']', '*', '_', '`':
			escapedBuilder.WriteByte('\\')
		}
		escapedBuilder.WriteByte(currentByte)
	}
	return escapedBuilder.String()
}
