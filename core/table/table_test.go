package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_WriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "languages_master.csv")

	tab := New(BaseColumns)
	tab.EnsureColumns(RosettaColumns...)
	tab.Rows = append(tab.Rows,
		&LanguageRecord{
			LangID:        "go",
			CanonicalName: "Go",
			SourceFlags:   "linguist;pldb",
			Extensions:    ".go",
			HelloWorld:    true,
			SourceCount:   2,
			InRosettaCode: true, RosettaName: "Go", RosettaTasksCount: 1500,
		},
		&LanguageRecord{
			LangID:        "befunge",
			CanonicalName: "Befunge",
			SourceFlags:   "esolang",
		},
	)
	require.NoError(t, tab.Write(path))

	got, err := Read(path)
	require.NoError(t, err)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, tab.Columns, got.Columns)

	g := got.Rows[0]
	assert.Equal(t, "go", g.LangID)
	assert.Equal(t, "linguist;pldb", g.SourceFlags)
	assert.True(t, g.HelloWorld)
	assert.Equal(t, 2, g.SourceCount)
	assert.Equal(t, 1500, g.RosettaTasksCount)
}

func TestTable_TasksCountEmptyWhenUnmatched(t *testing.T) {
	tab := New([]string{"lang_id", "in_rosettacode", "rosettacode_tasks_count"})
	vals := tab.RowValues(&LanguageRecord{LangID: "befunge"})
	assert.Equal(t, []string{"befunge", "false", ""}, vals)

	vals = tab.RowValues(&LanguageRecord{LangID: "go", InRosettaCode: true})
	assert.Equal(t, []string{"go", "true", "0"}, vals)
}

func TestRead_RejectsUnknownColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("lang_id,mystery\ngo,1\n"), 0o644))

	_, err := Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mystery")
}

func TestRead_AcceptsPandasBooleans(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.csv")
	require.NoError(t, os.WriteFile(path,
		[]byte("lang_id,hello_world,in_pldb\ngo,True,1\nbefunge,False,0\n"), 0o644))

	got, err := Read(path)
	require.NoError(t, err)
	require.Len(t, got.Rows, 2)
	assert.True(t, got.Rows[0].HelloWorld)
	assert.True(t, got.Rows[0].InPLDB)
	assert.False(t, got.Rows[1].HelloWorld)
}

func TestEnsureColumns_Idempotent(t *testing.T) {
	tab := New(BaseColumns)
	n := len(tab.Columns)
	tab.EnsureColumns(HyperpolyglotColumns...)
	tab.EnsureColumns(HyperpolyglotColumns...)
	assert.Len(t, tab.Columns, n+len(HyperpolyglotColumns))
}

func TestSplitJoinExtensions(t *testing.T) {
	assert.Equal(t, []string{".go", ".rb", ".go", ".rb"}, SplitExtensions(".go rb .GO .rb"))
	assert.Equal(t, ".c .h", JoinExtensions([]string{".h", ".c", ".h"}))
	assert.Equal(t, ".go .rb", UnionExtensions(".go", ".rb .go"))
	assert.Empty(t, SplitExtensions(".bad/ext ..."))
}

func TestFlags(t *testing.T) {
	assert.Equal(t, "linguist;pldb", JoinFlags([]string{"pldb", "linguist", "pldb", ""}))
	assert.True(t, HasFlag("linguist;pldb", "pldb"))
	assert.False(t, HasFlag("linguist;pldb", "wiki"))
}

func TestRefreshDerived(t *testing.T) {
	r := &LanguageRecord{
		LangID:      "go",
		SourceFlags: "linguist;pldb;wikipedia",
		Extensions:  ".go",
		Typing:      "static",
		HelloWorld:  true,
	}
	r.RefreshDerived()
	assert.True(t, r.InPLDB)
	assert.True(t, r.InLinguist)
	assert.True(t, r.InWikipedia)
	assert.False(t, r.InEsolang)
	assert.Equal(t, 3, r.SourceCount)
	assert.True(t, r.HasExtensions)
	assert.True(t, r.HasTyping)
	assert.False(t, r.HasParadigm)
	assert.True(t, r.HasHelloWorld)
}

func TestAliasesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.csv")
	in := []AliasRow{
		{Alias: "golang", LangID: "go", Source: "pldb"},
		{Alias: "Go", LangID: "go", Source: "self"},
	}
	require.NoError(t, WriteAliases(path, in))

	got, err := ReadAliases(path)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}
