// Package linguist loads the GitHub Linguist language registry, either from
// a raw languages.yml snapshot or from the registry embedded in go-enry
// (Linguist's Go port) when no snapshot is available.
package linguist

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-enry/go-enry/v2"
	"github.com/go-enry/go-enry/v2/data"
	"gopkg.in/yaml.v3"
)

// URLs for the raw languages.yml file and the evidence link recorded on
// contributed rows.
const (
	RawURL      = "https://raw.githubusercontent.com/github-linguist/linguist/master/lib/linguist/languages.yml"
	EvidenceURL = "https://github.com/github-linguist/linguist/blob/main/lib/linguist/languages.yml"
)

// Entry is one language from the Linguist registry.
type Entry struct {
	Name       string
	Type       string
	Extensions []string
	Aliases    []string
}

type yamlMeta struct {
	Type       string   `yaml:"type"`
	Extensions []string `yaml:"extensions"`
	Aliases    []string `yaml:"aliases"`
}

// Load parses a languages.yml snapshot. Entries come back sorted by name so
// downstream row order is stable.
func Load(path string) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read linguist snapshot: %w", err)
	}
	var parsed map[string]yamlMeta
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(parsed))
	for name, meta := range parsed {
		entries = append(entries, Entry{
			Name:       name,
			Type:       meta.Type,
			Extensions: meta.Extensions,
			Aliases:    meta.Aliases,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// FromRegistry builds the entry list from go-enry's embedded Linguist data.
// Aliases are not enumerable through enry, so entries carry none; name
// matching still works because the master index normalizes names itself.
func FromRegistry() []Entry {
	names := make([]string, 0, len(data.IDByLanguage))
	for name := range data.IDByLanguage {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{
			Name:       name,
			Type:       typeName(enry.GetLanguageType(name)),
			Extensions: enry.GetLanguageExtensions(name),
		})
	}
	return entries
}

func typeName(t enry.Type) string {
	switch t {
	case enry.Programming:
		return "programming"
	case enry.Markup:
		return "markup"
	case enry.Data:
		return "data"
	case enry.Prose:
		return "prose"
	default:
		return ""
	}
}
