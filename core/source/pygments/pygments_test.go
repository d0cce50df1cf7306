package pygments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mappingPy = `# Automatically generated by scripts/gen_mapfiles.py.
# DO NOT EDIT BY HAND; run scripts/gen_mapfiles.py instead.

LEXERS = {
    'GoLexer': ('pygments.lexers.go', 'Go', ('go', 'golang'), ('*.go',), ('text/x-gosrc',)),
    'LuaLexer': ('pygments.lexers.scripting', 'Lua', ('lua',), ('*.lua', '*.wlua'), ('text/x-lua', 'application/x-lua')),
    'VimLexer': ('pygments.lexers.textedit', 'VimL', ('vim',), ('*.vim', '.vimrc', '_vimrc'), ('text/x-vim',)),
}
`

func TestParseMapping(t *testing.T) {
	lexers, err := ParseMapping(mappingPy)
	require.NoError(t, err)
	require.Len(t, lexers, 3)

	lua, ok := lexers["Lua"]
	require.True(t, ok)
	assert.Equal(t, "pygments.lexers.scripting", lua.Module)
	assert.Equal(t, "LuaLexer", lua.Class)
	assert.Equal(t, []string{"lua"}, lua.Aliases)
	assert.Equal(t, []string{"*.lua", "*.wlua"}, lua.Filenames)
	assert.Equal(t, []string{"text/x-lua", "application/x-lua"}, lua.Mimetypes)
}

func TestParseMapping_Empty(t *testing.T) {
	_, err := ParseMapping("LEXERS = {\n}\n")
	assert.Error(t, err)
}

func TestMatch(t *testing.T) {
	lexers, err := ParseMapping(mappingPy)
	require.NoError(t, err)
	ix := BuildIndexes(lexers)
	aliases := AliasTable()

	t.Run("ByName", func(t *testing.T) {
		assert.Equal(t, "Go", ix.Match("Go", "", aliases))
	})
	t.Run("ByAlias", func(t *testing.T) {
		assert.Equal(t, "Go", ix.Match("golang", "", aliases))
	})
	t.Run("ByAliasTable", func(t *testing.T) {
		assert.Equal(t, "VimL", ix.Match("Vim script", "", aliases))
	})
	t.Run("ByExtensionInRowBlob", func(t *testing.T) {
		blob := "moonscript-ancestor lua-like .wlua scripting"
		assert.Equal(t, "Lua", ix.Match("Unknown Thing", blob, aliases))
	})
	t.Run("ByBareFilename", func(t *testing.T) {
		blob := "configuration for vim stored as .vimrc files"
		assert.Equal(t, "VimL", ix.Match("Vim Config", blob, aliases))
	})
	t.Run("NoMatch", func(t *testing.T) {
		assert.Equal(t, "", ix.Match("Nothingish", "no tokens here", aliases))
	})
}
