package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectIndentSmallestNonzero(t *testing.T) {
	assert := assert.New(t)

	lines := []Line{
		{No: 1, Indent: "", Text: "root/"},
		{No: 2, Indent: "  ", Text: "a/"},
		{No: 3, Indent: "    ", Text: "b.txt"},
	}
	in := DetectIndent(lines)
	assert.Equal(2, in.Unit)
	assert.Equal(byte(' '), in.Char)
	assert.False(in.Mixed)
}

func TestDetectIndentTabs(t *testing.T) {
	assert := assert.New(t)

	lines := []Line{
		{No: 1, Indent: "", Text: "root/"},
		{No: 2, Indent: "\t", Text: "a/"},
		{No: 3, Indent: "\t\t", Text: "b.txt"},
	}
	in := DetectIndent(lines)
	assert.Equal(1, in.Unit)
	assert.Equal(byte('\t'), in.Char)
	assert.False(in.Mixed)
}

func TestDetectIndentFlatDefaults(t *testing.T) {
	assert := assert.New(t)

	lines := []Line{
		{No: 1, Indent: "", Text: "a.txt"},
		{No: 2, Indent: "", Text: "b.txt"},
	}
	in := DetectIndent(lines)
	assert.Equal(DefaultUnit, in.Unit)
	assert.False(in.Mixed)
}

func TestDetectIndentMixed(t *testing.T) {
	assert := assert.New(t)

	lines := []Line{
		{No: 1, Indent: "", Text: "root/"},
		{No: 2, Indent: "    ", Text: "a/"},
		{No: 3, Indent: "\t", Text: "b/"},
	}
	in := DetectIndent(lines)
	assert.True(in.Mixed)
	assert.Equal(4, in.Unit)
	assert.Equal(4, in.Columns("\t"), "a tab normalizes to one full unit")
	assert.Equal(4, in.Columns("    "))
}

func TestIndentColumnsMixedRun(t *testing.T) {
	assert := assert.New(t)

	in := Indent{Unit: 4, Char: ' '}
	assert.Equal(6, in.Columns("  \t"), "two spaces plus a tab worth one unit")
}
