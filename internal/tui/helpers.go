package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const barWidth = 10

// resourceBar renders "career  ███████░░░ 7/10" with the bar colored for the
// axis and dimmed when the value sits at zero.
func resourceBar(axis string, value int) string {
	if value < 0 {
		value = 0
	}
	if value > barWidth {
		value = barWidth
	}
	filled := strings.Repeat("█", value)
	empty := strings.Repeat("░", barWidth-value)

	label := fmt.Sprintf("%-7s", axis)
	bar := ResourceStyle(axis).Render(filled) + metaStyle.Render(empty)
	count := dimStyle.Render(fmt.Sprintf("%2d/10", value))
	return label + " " + bar + " " + count
}

// signed formats a delta with an explicit sign, e.g. "+2" or "-1".
func signed(v int) string {
	if v >= 0 {
		return fmt.Sprintf("+%d", v)
	}
	return fmt.Sprintf("%d", v)
}

// deltaLine summarizes the non-zero axes of a resource change for choice rows.
func deltaLine(career, family, energy, skills int) string {
	parts := []string{}
	add := func(axis string, v int) {
		if v != 0 {
			parts = append(parts, ResourceStyle(axis).Render(axis[:1]+signed(v)))
		}
	}
	add("career", career)
	add("family", family)
	add("energy", energy)
	add("skills", skills)
	return strings.Join(parts, " ")
}

// truncStr truncates a string to maxLen runes, appending an ellipsis if needed.
func truncStr(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-1]) + "…"
}

// truncateToHeight cuts s after maxLines newline-terminated lines.
func truncateToHeight(s string, maxLines int) string {
	if maxLines <= 0 {
		return s
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
			if n >= maxLines {
				return s[:i+1]
			}
		}
	}
	return s
}

// centerLine pads s to be centered within width.
func centerLine(s string, width, visible int) string {
	pad := (width - visible) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}
