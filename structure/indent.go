package structure

import "strings"

// DefaultUnit is assumed when the input has no nested lines at all.
const DefaultUnit = 4

// Indent describes the indentation convention detected across the input:
// how many whitespace columns make one nesting level, which whitespace
// character carries the indentation, and whether tabs and spaces were
// mixed (normalized with a warning, never fatal).
type Indent struct {
	Unit  int
	Char  byte
	Mixed bool
}

// DetectIndent scans the preprocessed lines and picks the indent unit: the
// smallest nonzero leading-whitespace count, on the assumption that the
// shallowest non-root indentation is exactly one level deep. A flat input
// falls back to DefaultUnit.
func DetectIndent(lines []Line) Indent {
	in := Indent{Unit: 0, Char: ' '}

	for _, ln := range lines {
		if ln.Indent == "" {
			continue
		}
		if in.Char == ' ' && in.Unit == 0 && ln.Indent[0] == '\t' {
			in.Char = '\t'
		}
		if strings.ContainsRune(ln.Indent, rune(other(in.Char))) || mixedRun(ln.Indent) {
			in.Mixed = true
		}
		// Only pure runs of the primary character vote on the unit.
		if pureRun(ln.Indent, in.Char) {
			if n := len(ln.Indent); in.Unit == 0 || n < in.Unit {
				in.Unit = n
			}
		}
	}
	if in.Unit == 0 {
		in.Unit = DefaultUnit
	}
	return in
}

// Columns normalizes a leading-whitespace run to columns of the primary
// character. When spaces are primary, a tab counts as one full unit.
func (in Indent) Columns(indent string) int {
	cols := 0
	for i := 0; i < len(indent); i++ {
		if indent[i] == in.Char {
			cols++
		} else if in.Char == ' ' && indent[i] == '\t' {
			cols += in.Unit
		} else {
			cols++
		}
	}
	return cols
}

func other(c byte) byte {
	if c == ' ' {
		return '\t'
	}
	return ' '
}

func pureRun(s string, c byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != c {
			return false
		}
	}
	return true
}

func mixedRun(s string) bool {
	return strings.ContainsRune(s, ' ') && strings.ContainsRune(s, '\t')
}
