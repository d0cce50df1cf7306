package pipeline_test

import (
	"testing"

	"lang-atlas/core/pipeline"
	"lang-atlas/core/table"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	tab := table.New(table.BaseColumns)
	tab.EnsureColumns(table.HyperpolyglotColumns...)
	tab.Rows = []*table.LanguageRecord{
		{
			LangID: "lua", CanonicalName: "Lua",
			SourceFlags: "pldb;wikipedia", Extensions: ".lua",
			InPLDB: true, InWikipedia: true,
			HasExtensions: true, HasParadigm: true, HasTyping: true,
			HasHelloWorld: true, InHyperpolyglot: true,
		},
		{
			LangID: "befunge", CanonicalName: "Befunge",
			SourceFlags: "esolang",
			Notes:       "fuzzy-merged:befunge-93",
		},
		{
			LangID: "lua-scripting", CanonicalName: "LUA",
			SourceFlags: "linguist", InPygments: true,
		},
	}

	s := pipeline.ComputeStats(tab)
	assert.Equal(t, 3, s.Rows)
	assert.Equal(t, 1, s.MultiSource)
	assert.Equal(t, 1, s.FuzzyMerged)
	assert.Equal(t, map[string]int{
		"pldb": 1, "wikipedia": 1, "esolang": 1, "linguist": 1,
	}, s.SourceCounts)
	assert.Equal(t, 1, s.HasExtensions)
	assert.Equal(t, 1, s.HasParadigm)
	assert.Equal(t, 1, s.HasTyping)
	assert.Equal(t, 1, s.HasHelloWorld)
	assert.Equal(t, 1, s.InHyperpolyglot)
	assert.Equal(t, 1, s.InPygments)
	assert.Equal(t, 0, s.InRosettaCode)

	// "Lua" and "LUA" normalize to the same key: a soft merge candidate.
	assert.Equal(t, map[string][]string{"lua": {"lua", "lua-scripting"}}, s.DuplicateNames)

	// Lua is the only curated row with extensions, and the only row with
	// field signal backed by a linguist/wikipedia sighting.
	assert.Equal(t, 1, s.PLDBWithExtensions)
	assert.Equal(t, 1, s.RefinedCandidates)

	assert.Empty(t, s.DuplicateIDs)
	assert.Empty(t, s.EmptyCanonical)
	assert.Empty(t, s.BadExtensions)
}

func TestComputeStats_Violations(t *testing.T) {
	tab := table.New(table.BaseColumns)
	tab.Rows = []*table.LanguageRecord{
		{LangID: "dup", CanonicalName: "One", SourceFlags: "pldb"},
		{LangID: "dup", CanonicalName: "Two", SourceFlags: "pldb"},
		{LangID: "nameless", CanonicalName: "   ", SourceFlags: "pldb"},
		{LangID: "weird", CanonicalName: "Weird", SourceFlags: "pldb", Extensions: ".ok BAD.EXT no-dot"},
	}

	s := pipeline.ComputeStats(tab)
	assert.Equal(t, []string{"dup"}, s.DuplicateIDs)
	assert.Equal(t, []string{"nameless"}, s.EmptyCanonical)
	assert.Equal(t, []string{"BAD.EXT", "no-dot"}, s.BadExtensions["weird"])
}
