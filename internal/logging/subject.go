package logging

import (
	"strconv"
	"strings"
)

// FormatSubject builds the command/entry subject string used in console output.
func FormatSubject(command string, entryIndex int, hasEntry bool) string {
	command = strings.TrimSpace(command)
	parts := make([]string, 0, 2)
	if command != "" {
		parts = append(parts, command)
	}
	if hasEntry {
		parts = append(parts, "Entry #"+strconv.Itoa(entryIndex+1))
	}
	return strings.Join(parts, " · ")
}
