package pipeline

import "path/filepath"

// Config holds the data directory layout.
type Config struct {
	// RawDir holds fetched source snapshots.
	RawDir string `mapstructure:"raw_dir" default:"data/raw"`
	// DerivedDir holds the generated CSV outputs.
	DerivedDir string `mapstructure:"derived_dir" default:"data/derived"`
	// PLDBDir points at a local clone of the PLDB repository.
	PLDBDir string `mapstructure:"pldb_dir" default:"./pldb"`
}

// Raw snapshot paths.

func (c Config) LinguistSnapshot() string {
	return filepath.Join(c.RawDir, "linguist_languages.yml")
}

func (c Config) WikipediaSnapshot() string {
	return filepath.Join(c.RawDir, "wikipedia_lang_titles.json")
}

func (c Config) EsolangSnapshot() string {
	return filepath.Join(c.RawDir, "esolang_language_titles.json")
}

// Derived output paths.

func (c Config) MasterCSV() string {
	return filepath.Join(c.DerivedDir, "languages_master.csv")
}

func (c Config) AliasesCSV() string {
	return filepath.Join(c.DerivedDir, "aliases.csv")
}

func (c Config) AugmentedCSV() string {
	return filepath.Join(c.DerivedDir, "languages_master_augmented.csv")
}

func (c Config) HyperpolyglotMissingCSV() string {
	return filepath.Join(c.DerivedDir, "hyperpolyglot_missing_from_master.csv")
}

func (c Config) PygmentsCSV() string {
	return filepath.Join(c.DerivedDir, "languages_master_augmented_pygments.csv")
}

func (c Config) PygmentsMissingCSV() string {
	return filepath.Join(c.DerivedDir, "pygments_missing_from_master.csv")
}

func (c Config) RosettaCSV() string {
	return filepath.Join(c.DerivedDir, "languages_master_augmented_rosettacode.csv")
}

func (c Config) RosettaMissingCSV() string {
	return filepath.Join(c.DerivedDir, "rosettacode_missing_from_master.csv")
}

func (c Config) RosettaDumpCSV() string {
	return filepath.Join(c.DerivedDir, "rosettacode_languages.csv")
}

func (c Config) ExtensionsCSV() string {
	return filepath.Join(c.DerivedDir, "extensions_inventory.csv")
}
