package structure

import "strings"

// branchMarkers are the branch connectors recognized in tree output, both
// the Unicode pseudographics and the ASCII fallbacks.
var branchMarkers = []string{"├──", "└──", "|--", "`--", "+--"}

// treeEntries converts tree-command output into depth-tagged entries. The
// depth is the number of branch/rail glyphs in front of the name: the root
// line has none, its children one, and so on. Summary and header lines that
// tree emits around the listing are skipped. A node without a trailing "/"
// that is followed by a deeper line is promoted to a directory before the
// build, since plain tree output does not mark directories.
func treeEntries(lines []Line) []entry {
	var entries []entry
	for _, ln := range lines {
		// Rails can start with plain spaces, so the leading whitespace is
		// part of the prefix here.
		text := ln.Indent + ln.Text
		if isTreeSummary(text) || isTreeHeader(text) {
			continue
		}

		depth := 0
		if idx, marker := findBranch(text); idx >= 0 {
			depth = countRails(text[:idx]) + 1
			text = strings.TrimSpace(text[idx+len(marker):])
		} else {
			text = strings.TrimSpace(text)
		}
		if text == "" {
			continue
		}
		entries = append(entries, entry{lineNo: ln.No, depth: depth, text: text})
	}

	for i := range entries {
		if i+1 < len(entries) && entries[i+1].depth > entries[i].depth &&
			!strings.HasSuffix(entries[i].text, "/") {
			entries[i].text += "/"
		}
	}
	return entries
}

// findBranch locates the first branch connector in the line.
func findBranch(s string) (int, string) {
	idx, used := -1, ""
	for _, m := range branchMarkers {
		if i := strings.Index(s, m); i != -1 && (idx == -1 || i < idx) {
			idx, used = i, m
		}
	}
	return idx, used
}

// countRails counts the ancestor levels in a branch prefix. A level is a
// four-column group, either a rail ("│   ", "|   ") or plain spaces under
// a "└──" ancestor, so every prefix rune counts as one column.
func countRails(prefix string) int {
	cols := 0
	for _, r := range prefix {
		if r == '\t' {
			cols += 4
			continue
		}
		cols++
	}
	return cols / 4
}

// isTreeSummary recognizes the trailing "N directories, M files" line.
func isTreeSummary(line string) bool {
	s := strings.ToLower(strings.TrimSpace(line))
	return (strings.Contains(s, "directories") || strings.Contains(s, "directory")) &&
		(strings.Contains(s, "files") || strings.Contains(s, "file"))
}

// isTreeHeader recognizes the header lines of Windows tree output.
func isTreeHeader(line string) bool {
	return strings.Contains(line, "PATH listing") ||
		strings.Contains(line, "Volume serial") ||
		strings.Contains(line, "Folder PATH")
}
