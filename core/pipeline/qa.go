package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"lang-atlas/core/merge"
	"lang-atlas/core/table"
)

// Stats summarise one master table for QA reporting.
type Stats struct {
	Rows            int
	SourceCounts    map[string]int
	MultiSource     int
	HasExtensions   int
	HasParadigm     int
	HasTyping       int
	HasHelloWorld   int
	InHyperpolyglot int
	InPygments      int
	InRosettaCode   int
	FuzzyMerged     int

	// PLDBWithExtensions counts curated rows that carry extension data.
	PLDBWithExtensions int
	// RefinedCandidates counts signal-rich rows: extension or paradigm data
	// backed by a linguist or wikipedia sighting.
	RefinedCandidates int

	// Violations.
	DuplicateIDs   []string
	EmptyCanonical []string
	BadExtensions  map[string][]string
	DuplicateNames map[string][]string
}

// ComputeStats walks the table once and collects coverage counters plus
// integrity violations.
func ComputeStats(t *table.Table) Stats {
	s := Stats{
		Rows:           len(t.Rows),
		SourceCounts:   make(map[string]int),
		BadExtensions:  make(map[string][]string),
		DuplicateNames: make(map[string][]string),
	}

	seenID := make(map[string]bool)
	byName := make(map[string][]string)
	for _, r := range t.Rows {
		if seenID[r.LangID] {
			s.DuplicateIDs = append(s.DuplicateIDs, r.LangID)
		}
		seenID[r.LangID] = true

		if strings.TrimSpace(r.CanonicalName) == "" {
			s.EmptyCanonical = append(s.EmptyCanonical, r.LangID)
		} else {
			key := merge.NormalizeKey(r.CanonicalName)
			byName[key] = append(byName[key], r.LangID)
		}

		flags := table.SplitFlags(r.SourceFlags)
		for _, f := range flags {
			s.SourceCounts[f]++
		}
		if len(flags) > 1 {
			s.MultiSource++
		}

		for _, raw := range strings.Fields(r.Extensions) {
			if !table.ValidExtension(raw) {
				s.BadExtensions[r.LangID] = append(s.BadExtensions[r.LangID], raw)
			}
		}

		if r.HasExtensions {
			s.HasExtensions++
		}
		if r.HasParadigm {
			s.HasParadigm++
		}
		if r.HasTyping {
			s.HasTyping++
		}
		if r.HasHelloWorld {
			s.HasHelloWorld++
		}
		if r.InPLDB && r.HasExtensions {
			s.PLDBWithExtensions++
		}
		if (r.HasExtensions || r.HasParadigm) && (r.InLinguist || r.InWikipedia) {
			s.RefinedCandidates++
		}
		if r.InHyperpolyglot {
			s.InHyperpolyglot++
		}
		if r.InPygments {
			s.InPygments++
		}
		if r.InRosettaCode {
			s.InRosettaCode++
		}
		if strings.Contains(r.Notes, "fuzzy-merged:") {
			s.FuzzyMerged++
		}
	}

	for key, ids := range byName {
		if len(ids) > 1 {
			sort.Strings(ids)
			s.DuplicateNames[key] = ids
		}
	}
	return s
}

// LoadRichest opens the most augmented table available on disk.
func (p *Pipeline) LoadRichest() (*table.Table, string, error) {
	return p.loadAugmentInput(
		p.Data.RosettaCSV(), p.Data.PygmentsCSV(), p.Data.AugmentedCSV(), p.Data.MasterCSV())
}

// RunQA loads the richest table on disk, reports coverage and integrity, and
// fails when a hard invariant is broken (duplicate ids, empty names, or
// malformed extension tokens). statsOnly skips the per-item peeks and keeps
// just the counters and violations.
func (p *Pipeline) RunQA(statsOnly bool) error {
	t, inPath, err := p.LoadRichest()
	if err != nil {
		return err
	}
	s := ComputeStats(t)

	p.Logger.Info("QA: table overview",
		zap.String("input", inPath),
		zap.Int("rows", s.Rows),
		zap.Int("multi_source", s.MultiSource),
		zap.Int("fuzzy_merged", s.FuzzyMerged),
	)
	for _, src := range []string{table.SourcePLDB, table.SourceLinguist, table.SourceWikipedia, table.SourceEsolang} {
		p.Logger.Info("QA: source coverage",
			zap.String("source", src), zap.Int("rows", s.SourceCounts[src]))
	}
	p.Logger.Info("QA: field coverage",
		zap.Int("has_extensions", s.HasExtensions),
		zap.Int("has_paradigm", s.HasParadigm),
		zap.Int("has_typing", s.HasTyping),
		zap.Int("has_hello_world", s.HasHelloWorld),
		zap.Int("pldb_with_extensions", s.PLDBWithExtensions),
	)
	p.Logger.Info("QA: refined-candidate rows (signal-rich)",
		zap.Int("rows", s.RefinedCandidates))
	p.Logger.Info("QA: augmentation coverage",
		zap.Int("in_hyperpolyglot", s.InHyperpolyglot),
		zap.Int("in_pygments", s.InPygments),
		zap.Int("in_rosettacode", s.InRosettaCode),
	)

	if !statsOnly {
		if aliases, err := table.ReadAliases(p.Data.AliasesCSV()); err == nil {
			p.Logger.Info("QA: alias file", zap.Int("rows", len(aliases)))
		}
		for _, snap := range p.RawSnapshots() {
			p.Logger.Info("QA: raw snapshot",
				zap.String("path", snap), zap.Int64("bytes", SnapshotSize(snap)))
		}

		if inv := Inventory(t); len(inv) > 0 {
			top := inv
			if len(top) > 5 {
				top = top[:5]
			}
			for _, er := range top {
				p.Logger.Info("QA: most-claimed extension",
					zap.String("extension", er.Extension),
					zap.Int("count", er.CountTotal),
					zap.String("sample", er.SampleLang))
			}
		}

		for _, src := range []string{table.SourcePLDB, table.SourceLinguist, table.SourceWikipedia, table.SourceEsolang} {
			for _, r := range t.Rows {
				if table.HasFlag(r.SourceFlags, src) {
					p.Logger.Info("QA: source sample",
						zap.String("source", src),
						zap.String("lang_id", r.LangID),
						zap.String("canonical_name", r.CanonicalName))
					break
				}
			}
		}

		// Curated or wikipedia rows without extensions are worth a manual look.
		peeked := 0
		for _, r := range t.Rows {
			if r.HasExtensions || !(r.InPLDB || r.InWikipedia) {
				continue
			}
			p.Logger.Info("QA: no-extension example",
				zap.String("canonical_name", r.CanonicalName),
				zap.String("source_flags", r.SourceFlags))
			if peeked++; peeked >= 10 {
				break
			}
		}

		for key, ids := range s.DuplicateNames {
			p.Logger.Warn("QA: canonical name shared by multiple ids; merge candidates",
				zap.String("name_key", key), zap.Strings("lang_ids", ids))
		}
	}

	hard := 0
	for _, id := range s.DuplicateIDs {
		p.Logger.Error("QA: duplicate lang_id", zap.String("lang_id", id))
		hard++
	}
	for _, id := range s.EmptyCanonical {
		p.Logger.Error("QA: empty canonical_name", zap.String("lang_id", id))
		hard++
	}
	for id, toks := range s.BadExtensions {
		p.Logger.Error("QA: malformed extension tokens",
			zap.String("lang_id", id), zap.Strings("tokens", toks))
		hard++
	}
	if hard > 0 {
		return fmt.Errorf("QA failed: %d hard integrity violations", hard)
	}
	p.Logger.Info("QA passed", zap.Int("rows", s.Rows))
	return nil
}
