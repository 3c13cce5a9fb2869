package structure

import "strings"

// Format identifies the convention a structure description is written in.
type Format int

const (
	// FormatIndent is the default: nesting by leading whitespace, "/" (or a
	// yaml-like ":") marking directories. Flat path lists are a special case
	// with no indentation.
	FormatIndent Format = iota
	// FormatTree is the output of the tree command, Unix pseudographics or
	// ASCII branches.
	FormatTree
	// FormatJSON is a nested JSON object.
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatTree:
		return "tree"
	case FormatJSON:
		return "json"
	default:
		return "indent"
	}
}

// DetectFormat guesses the input format from the raw text.
func DetectFormat(text string) Format {
	t := strings.TrimSpace(text)
	if strings.HasPrefix(t, "{") && strings.HasSuffix(t, "}") {
		return FormatJSON
	}
	if strings.ContainsAny(t, "│├└") ||
		strings.Contains(t, "|--") || strings.Contains(t, "`--") || strings.Contains(t, "+--") {
		return FormatTree
	}
	return FormatIndent
}
