package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Search returns, in original order, every line of contents that contains
// query as an exact substring. The returned strings are slices of contents;
// no line text is copied. Empty contents yields no results.
func Search(query, contents string) []string {
	var matches []string
	for _, line := range splitLines(contents) {
		if strings.Contains(line, query) {
			matches = append(matches, line)
		}
	}
	return matches
}

// SearchCaseInsensitive returns, in original order, every line of contents
// that contains query ignoring case. Matching uses Unicode case folding
// (golang.org/x/text/cases.Fold), which is locale-independent and stable
// across platforms. The query is folded once; each line is folded into a
// transient copy for the containment test only, and matched lines are
// returned in their original casing.
func SearchCaseInsensitive(query, contents string) []string {
	folder := cases.Fold()
	folded := folder.String(query)

	var matches []string
	for _, line := range splitLines(contents) {
		if strings.Contains(folder.String(line), folded) {
			matches = append(matches, line)
		}
	}
	return matches
}

// splitLines splits contents on newline boundaries. A final unterminated
// line is included; a trailing newline does not produce an empty trailing
// line. A carriage return before the newline is stripped so CRLF input
// behaves like LF input. All returned strings share contents' backing data.
func splitLines(contents string) []string {
	if contents == "" {
		return nil
	}
	lines := strings.Split(contents, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
