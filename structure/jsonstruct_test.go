package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONPlainNesting(t *testing.T) {
	assert := assert.New(t)

	input := `{
	"app": {
		"src": {
			"main.py": null
		},
		"README.md": ""
	}
}`
	res, err := ParseString(input, Options{})
	require.NoError(t, err)
	assert.Equal(FormatJSON, res.Format)

	app := res.Tree.Root.Children[0]
	assert.Equal("app", app.Name)
	assert.True(app.IsDir())
	require.Len(t, app.Children, 2)

	src := app.Children[0]
	assert.Equal("src", src.Name)
	assert.True(src.IsDir())
	assert.Equal("main.py", src.Children[0].Name)
	assert.False(src.Children[0].IsDir())

	assert.Equal("README.md", app.Children[1].Name)
	assert.False(app.Children[1].IsDir())
}

func TestParseJSONTypedNodes(t *testing.T) {
	assert := assert.New(t)

	input := `{
	"site": {
		"type": "folder",
		"contents": {
			"index.html": {"type": "file"},
			"css": {"type": "folder", "contents": {}}
		}
	}
}`
	res, err := ParseString(input, Options{})
	require.NoError(t, err)

	site := res.Tree.Root.Children[0]
	assert.Equal("site", site.Name)
	assert.True(site.IsDir())
	require.Len(t, site.Children, 2)
	assert.Equal("index.html", site.Children[0].Name)
	assert.False(site.Children[0].IsDir())
	assert.Equal("css", site.Children[1].Name)
	assert.True(site.Children[1].IsDir())
}

func TestParseJSONInvalid(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseString(`{"broken": {{}`, Options{})
	assert.Error(err)
	var perr *ParseError
	assert.ErrorAs(err, &perr)
}
