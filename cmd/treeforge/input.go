package main

import (
	"bufio"
	"io"
	"strings"
)

// CollectStructure reads pasted lines until two consecutive empty lines or
// EOF, and returns the text without the terminating blanks.
func CollectStructure(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), 1024*1024)

	var lines []string
	prevBlank := false
	for sc.Scan() {
		line := sc.Text()
		blank := strings.TrimSpace(line) == ""
		if blank && prevBlank {
			break
		}
		prevBlank = blank
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return "", err
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n"), nil
}
