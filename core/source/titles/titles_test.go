package titles_test

import (
	"path/filepath"
	"testing"

	"lang-atlas/core/source/titles"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw", "wiki_titles.json")
	in := []string{"Lua", "C++", "Caché ObjectScript"}

	require.NoError(t, titles.Save(path, in))
	out, err := titles.Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoad_Missing(t *testing.T) {
	_, err := titles.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_NullSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, titles.Save(path, nil))
	// A null snapshot decodes to an empty list.
	out, err := titles.Load(path)
	require.NoError(t, err)
	assert.Empty(t, out)
}
