package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lang-atlas/core/table"
)

func TestLookupName(t *testing.T) {
	plain := &table.LanguageRecord{CanonicalName: "Caml Light"}
	assert.Equal(t, "Caml Light", lookupName(plain))

	// A resolved hyperpolyglot name is registry-canonical and wins.
	resolved := &table.LanguageRecord{CanonicalName: "Objective Caml", HyperpolyglotName: "OCaml"}
	assert.Equal(t, "OCaml", lookupName(resolved))
}

func TestFlattenText(t *testing.T) {
	assert.Equal(t, "one line summary",
		flattenText("  one\n  line\t summary \n"))
	assert.Equal(t, "", flattenText("   \n\t "))
}
