package entities

import (
	"strings"
)

const (
	h1Prefix     = "# "
	h2Prefix     = "## "
	bulletPrefix = "- "
)

// InsertChangelogRelease inserts a "## <version>" section holding the given
// bullet entries into a package CHANGELOG.md.
//
// Behaviour:
//   - Empty content becomes "# <title>" followed by the new section.
//   - The new section goes right above the first existing "## " heading, so
//     the newest release is always on top.
//   - Without any "## " heading the section is appended after the content.
//   - A section for the same version that already exists is left alone.
func InsertChangelogRelease(content, title, version string, entries []string) string {
	if len(entries) == 0 {
		return content
	}

	block := []string{h2Prefix + version, ""}
	for _, entry := range entries {
		block = append(block, bulletPrefix+entry)
	}

	if strings.TrimSpace(content) == "" {
		lines := append([]string{h1Prefix + title, ""}, block...)
		return strings.Join(lines, "\n") + "\n"
	}

	lines := strings.Split(content, "\n")
	if findVersionIndex(lines, version) >= 0 {
		return content
	}

	firstH2Idx := findNextH2Index(lines, -1)
	if firstH2Idx < len(lines) {
		block = append(block, "")
		return strings.Join(insertLines(lines, firstH2Idx, block), "\n")
	}

	// No release section yet: append after the trailing content.
	trimmed := strings.TrimRight(content, "\n")
	return trimmed + "\n\n" + strings.Join(block, "\n") + "\n"
}

// ChangelogEntry formats one bullet for a changeset summary. Multi-line
// summaries are indented so they stay inside the bullet.
func ChangelogEntry(commit, summary string) string {
	summary = strings.TrimSpace(summary)
	summary = strings.ReplaceAll(summary, "\n", "\n  ")
	if commit == "" {
		return summary
	}
	return commit + ": " + summary
}

// findVersionIndex returns the line index of the "## <version>" heading, or -1.
func findVersionIndex(lines []string, version string) int {
	for i, line := range lines {
		if strings.TrimSpace(line) == h2Prefix+version {
			return i
		}
	}
	return -1
}

// findNextH2Index returns the line index of the next "## " heading after
// startIdx, or len(lines) if there is none.
func findNextH2Index(lines []string, startIdx int) int {
	for i := startIdx + 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), h2Prefix) {
			return i
		}
	}
	return len(lines)
}

// insertLines inserts extra lines into slice at the given index.
func insertLines(lines []string, at int, extra []string) []string {
	result := make([]string, 0, len(lines)+len(extra))
	result = append(result, lines[:at]...)
	result = append(result, extra...)
	result = append(result, lines[at:]...)
	return result
}
