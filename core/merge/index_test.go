package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexMatch(t *testing.T) {
	ix := NewIndex()
	ix.AddVariants(NormalizeKey("Lua"), 0)
	ix.AddVariants(NormalizeKey("Emacs Lisp"), 1)

	aliases := map[string]string{"elisp": "Emacs Lisp"}

	t.Run("Exact", func(t *testing.T) {
		row, ok := ix.Match("Lua", nil, 0)
		require.True(t, ok)
		assert.Equal(t, 0, row)
	})

	t.Run("ThroughAliasTable", func(t *testing.T) {
		row, ok := ix.Match("elisp", aliases, 0)
		require.True(t, ok)
		assert.Equal(t, 1, row)
	})

	t.Run("SpacingVariant", func(t *testing.T) {
		row, ok := ix.Match("emacs-lisp", nil, 0)
		require.True(t, ok)
		assert.Equal(t, 1, row)
	})

	t.Run("FuzzyLastResort", func(t *testing.T) {
		row, ok := ix.Match("Luaa", nil, 0.7)
		require.True(t, ok)
		assert.Equal(t, 0, row)
	})

	t.Run("NoMatch", func(t *testing.T) {
		_, ok := ix.Match("Fortran", nil, 0.92)
		assert.False(t, ok)
	})
}

func TestIndexMatch_FuzzyTieIsDeterministic(t *testing.T) {
	// Two candidates equally similar to the query; the winner must not
	// depend on map iteration order.
	ix := NewIndex()
	ix.Add("verylonglanguagenamex", 0)
	ix.Add("verylonglanguagenamey", 1)

	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		row, ok := ix.Match("verylonglanguagenamez", nil, 0.9)
		require.True(t, ok)
		seen[row] = true
	}
	assert.Equal(t, map[int]bool{0: true}, seen)
}
