package structure

import (
	"bufio"
	"io"
	"strings"
)

// DefaultMarker is the comment marker used when none is configured.
const DefaultMarker = "#"

// Line is one surviving input line: its original line number, its leading
// whitespace kept verbatim for indent analysis, and the trimmed text.
type Line struct {
	No     int
	Indent string
	Text   string
}

// Preprocess strips comments and blank lines from the raw input. Inline
// comments run from the first unescaped marker to end of line; a backslash
// in front of the marker keeps it literal. Trailing whitespace is trimmed,
// leading whitespace is preserved. Lines that end up empty are dropped.
func Preprocess(r io.Reader, marker string) ([]Line, error) {
	if marker == "" {
		marker = DefaultMarker
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), 1024*1024)

	var lines []Line
	no := 0
	for sc.Scan() {
		no++
		raw := stripComment(sc.Text(), marker)
		raw = strings.TrimRight(raw, " \t\r")
		indent, text := splitIndent(raw)
		if text == "" {
			continue
		}
		lines = append(lines, Line{No: no, Indent: indent, Text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// stripComment cuts the line at the first unescaped marker and unescapes
// any remaining backslash-marker sequences.
func stripComment(s, marker string) string {
	from := 0
	for {
		i := strings.Index(s[from:], marker)
		if i == -1 {
			break
		}
		i += from
		if i > 0 && s[i-1] == '\\' {
			from = i + len(marker)
			continue
		}
		s = s[:i]
		break
	}
	return strings.ReplaceAll(s, `\`+marker, marker)
}

func splitIndent(s string) (indent, text string) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[:i], s[i:]
}
