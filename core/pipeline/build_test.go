package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"lang-atlas/core/fetch"
	"lang-atlas/core/merge"
	"lang-atlas/core/pipeline"
	"lang-atlas/core/source/titles"
	"lang-atlas/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const linguistFixture = `---
Lua:
  type: programming
  extensions:
  - ".lua"
  aliases:
  - luajit
Fortran:
  type: programming
  extensions:
  - ".f90"
`

const luaConcept = `name: Lua
appeared: 1993
homepage: https://www.lua.org/
paradigm: multi-paradigm
typing: dynamic
aka: MoonScript
helloWorld:
 print("Hello, world!")
`

func newTestPipeline(t *testing.T) (*pipeline.Pipeline, string) {
	t.Helper()
	dir := t.TempDir()
	data := pipeline.Config{
		RawDir:     filepath.Join(dir, "raw"),
		DerivedDir: filepath.Join(dir, "derived"),
		PLDBDir:    filepath.Join(dir, "pldb"),
	}
	p := pipeline.New(data,
		merge.Config{FuzzyThreshold: 0.94, MatchCutoff: 0.92},
		fetch.Config{}, zap.NewNop())
	return p, dir
}

func TestBuild_Offline(t *testing.T) {
	p, dir := newTestPipeline(t)

	concepts := filepath.Join(dir, "pldb", "concepts")
	require.NoError(t, os.MkdirAll(concepts, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(concepts, "lua.pldb"), []byte(luaConcept), 0o644))

	require.NoError(t, os.MkdirAll(p.Data.RawDir, 0o755))
	require.NoError(t, os.WriteFile(p.Data.LinguistSnapshot(), []byte(linguistFixture), 0o644))
	require.NoError(t, titles.Save(p.Data.WikipediaSnapshot(), []string{"Lua", "COBOL"}))

	require.NoError(t, p.Build(context.Background(), pipeline.BuildOptions{Offline: true}))

	tab, err := table.Read(p.Data.MasterCSV())
	require.NoError(t, err)

	byID := make(map[string]*table.LanguageRecord)
	for _, r := range tab.Rows {
		byID[r.LangID] = r
	}
	require.Len(t, byID, 3)

	lua := byID["lua"]
	require.NotNil(t, lua)
	assert.Equal(t, "Lua", lua.CanonicalName)
	assert.Equal(t, "linguist;pldb;wikipedia", lua.SourceFlags)
	assert.Equal(t, ".lua", lua.Extensions)
	assert.Equal(t, "1993", lua.FirstAppeared)
	assert.Equal(t, "https://www.lua.org/", lua.Homepage)
	assert.True(t, lua.HelloWorld)
	assert.True(t, lua.InPLDB)
	assert.True(t, lua.InLinguist)
	assert.True(t, lua.InWikipedia)
	assert.Equal(t, 3, lua.SourceCount)

	fortran := byID["fortran"]
	require.NotNil(t, fortran)
	assert.Equal(t, "linguist", fortran.SourceFlags)
	assert.Equal(t, ".f90", fortran.Extensions)

	cobol := byID["cobol"]
	require.NotNil(t, cobol)
	assert.Equal(t, "wikipedia", cobol.SourceFlags)
	assert.False(t, cobol.HasExtensions)

	aliases, err := table.ReadAliases(p.Data.AliasesCSV())
	require.NoError(t, err)
	got := make(map[string]string)
	for _, a := range aliases {
		got[a.Alias] = a.LangID
	}
	assert.Equal(t, "lua", got["luajit"])
	assert.Equal(t, "lua", got["MoonScript"])
	assert.Equal(t, "lua", got["Lua"])
	assert.Equal(t, "cobol", got["COBOL"])
}

func TestBuild_MissingPLDBDir(t *testing.T) {
	p, _ := newTestPipeline(t)
	err := p.Build(context.Background(), pipeline.BuildOptions{Offline: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PLDB directory not found")
}

func TestBuild_OfflineNeedsWikipediaSnapshot(t *testing.T) {
	p, dir := newTestPipeline(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pldb", "concepts"), 0o755))
	require.NoError(t, os.MkdirAll(p.Data.RawDir, 0o755))
	require.NoError(t, os.WriteFile(p.Data.LinguistSnapshot(), []byte(linguistFixture), 0o644))

	err := p.Build(context.Background(), pipeline.BuildOptions{Offline: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run fetch first")
}
