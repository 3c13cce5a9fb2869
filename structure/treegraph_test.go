package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnicodeTree(t *testing.T) {
	assert := assert.New(t)

	input := `myapp/
├── assets/
│   ├── css/
│   │   └── style.css
│   └── js/
│       └── script.js
├── index.php
└── README.md

3 directories, 4 files
`
	res, err := ParseString(input, Options{})
	require.NoError(t, err)
	assert.Equal(FormatTree, res.Format)

	root := res.Tree.Root
	require.Len(t, root.Children, 1)
	app := root.Children[0]
	assert.Equal("myapp", app.Name)
	require.Len(t, app.Children, 3)

	assets := app.Children[0]
	assert.True(assets.IsDir())
	assert.Equal("css", assets.Children[0].Name)
	assert.Equal("style.css", assets.Children[0].Children[0].Name)
	assert.Equal("js", assets.Children[1].Name)
	assert.Equal("script.js", assets.Children[1].Children[0].Name)
	assert.Equal("README.md", app.Children[2].Name)
}

func TestParseASCIITree(t *testing.T) {
	assert := assert.New(t)

	input := "app/\n|-- src/\n|   `-- main.go\n`-- go.mod\n"
	res, err := ParseString(input, Options{})
	require.NoError(t, err)
	assert.Equal(FormatTree, res.Format)

	app := res.Tree.Root.Children[0]
	assert.Equal("app", app.Name)
	require.Len(t, app.Children, 2)
	assert.Equal("src", app.Children[0].Name)
	assert.True(app.Children[0].IsDir())
	assert.Equal("main.go", app.Children[0].Children[0].Name)
	assert.Equal("go.mod", app.Children[1].Name)
	assert.False(app.Children[1].IsDir())
}

// Plain tree output marks no directories; a node followed by a deeper line
// must still come out as one.
func TestTreePromotesParentsWithoutSlash(t *testing.T) {
	assert := assert.New(t)

	input := `proj
├── src
│   └── main.c
└── Makefile
`
	res, err := ParseString(input, Options{})
	require.NoError(t, err)

	proj := res.Tree.Root.Children[0]
	assert.True(proj.IsDir())
	src := proj.Children[0]
	assert.Equal("src", src.Name)
	assert.True(src.IsDir())
	assert.False(src.Children[0].IsDir())
	assert.False(proj.Children[1].IsDir())
}

func TestTreeSkipsWindowsHeaders(t *testing.T) {
	assert := assert.New(t)

	input := `Folder PATH listing for volume Windows
Volume serial number is 0000-0000
app/
├── web.config
`
	res, err := ParseString(input, Options{})
	require.NoError(t, err)
	app := res.Tree.Root.Children[0]
	assert.Equal("app", app.Name)
	assert.Equal("web.config", app.Children[0].Name)
}
