package structure

import "fmt"

// ParseError is a fatal error in the structure description. No filesystem
// work happens once one is reported.
type ParseError struct {
	Line int // 1-based line number in the original input, 0 if not line-bound
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

func parseErrorf(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}
