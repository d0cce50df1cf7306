package pipeline

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"lang-atlas/core/merge"
	"lang-atlas/core/source/esolang"
	"lang-atlas/core/source/linguist"
	"lang-atlas/core/source/pldb"
	"lang-atlas/core/source/titles"
	"lang-atlas/core/source/wikipedia"
	"lang-atlas/core/table"
)

// BuildOptions controls the master-list build.
type BuildOptions struct {
	// Offline forbids network access; existing raw snapshots are used as-is.
	Offline bool
	// IncludeEsolang adds the Esolang wiki as a source (default off).
	IncludeEsolang bool
	// PLDBDir overrides the configured PLDB clone location when non-empty.
	PLDBDir string
}

// FetchRaw downloads all raw source snapshots into the raw data directory.
func (p *Pipeline) FetchRaw(ctx context.Context, includeEsolang bool) error {
	if err := os.MkdirAll(p.Data.RawDir, 0o755); err != nil {
		return fmt.Errorf("failed to create raw directory: %w", err)
	}

	src, err := p.Client.GetText(ctx, linguist.RawURL)
	if err != nil {
		return fmt.Errorf("linguist fetch failed: %w", err)
	}
	if err := os.WriteFile(p.Data.LinguistSnapshot(), []byte(src), 0o644); err != nil {
		return err
	}
	p.Logger.Info("Fetched linguist snapshot", zap.String("path", p.Data.LinguistSnapshot()))

	wikiTitles, err := wikipedia.FetchTitles(ctx, p.Client)
	if err != nil {
		return err
	}
	if err := titles.Save(p.Data.WikipediaSnapshot(), wikiTitles); err != nil {
		return err
	}
	p.Logger.Info("Fetched wikipedia titles", zap.Int("count", len(wikiTitles)))

	if includeEsolang {
		esoTitles, err := esolang.FetchTitles(ctx, p.Client)
		if err != nil {
			return err
		}
		if err := titles.Save(p.Data.EsolangSnapshot(), esoTitles); err != nil {
			return err
		}
		p.Logger.Info("Fetched esolang titles", zap.Int("count", len(esoTitles)))
	}
	return nil
}

// Build assembles the master table from PLDB, Linguist, Wikipedia and
// (optionally) Esolang, resolves identities, and writes languages_master.csv
// plus aliases.csv.
func (p *Pipeline) Build(ctx context.Context, opts BuildOptions) error {
	pldbDir := opts.PLDBDir
	if pldbDir == "" {
		pldbDir = p.Data.PLDBDir
	}
	if _, err := os.Stat(pldbDir); err != nil {
		return fmt.Errorf("PLDB directory not found: %s", pldbDir)
	}

	var rows []*table.LanguageRecord
	var aliasRows []table.AliasRow

	// Linguist.
	entries, err := p.linguistEntries(ctx, opts.Offline)
	if err != nil {
		return err
	}
	p.Logger.Info("Linguist entries", zap.Int("count", len(entries)))
	for _, e := range entries {
		id := merge.MakeID(e.Name)
		rec := &table.LanguageRecord{
			LangID:        id,
			CanonicalName: e.Name,
			SourceFlags:   table.SourceLinguist,
			Extensions:    table.JoinExtensions(normalizeExts(e.Extensions)),
			LinguistKey:   e.Name,
			EvidenceURLs:  linguist.EvidenceURL,
		}
		rows = append(rows, rec)
		for _, a := range e.Aliases {
			aliasRows = append(aliasRows, table.AliasRow{Alias: a, LangID: id, Source: table.SourceLinguist})
		}
	}

	// Wikipedia.
	wikiTitles, err := p.wikipediaTitles(ctx, opts.Offline)
	if err != nil {
		return err
	}
	p.Logger.Info("Wikipedia titles", zap.Int("count", len(wikiTitles)))
	for _, t := range wikiTitles {
		rows = append(rows, &table.LanguageRecord{
			LangID:        merge.MakeID(t),
			CanonicalName: t,
			SourceFlags:   table.SourceWikipedia,
			EvidenceURLs:  wikipedia.EvidenceURL,
		})
	}

	// Esolang (optional).
	if opts.IncludeEsolang {
		esoTitles, err := p.esolangTitles(ctx, opts.Offline)
		if err != nil {
			return err
		}
		p.Logger.Info("Esolang titles", zap.Int("count", len(esoTitles)))
		for _, t := range esoTitles {
			rows = append(rows, &table.LanguageRecord{
				LangID:        merge.MakeID(t),
				CanonicalName: t,
				SourceFlags:   table.SourceEsolang,
				Types:         "esolang",
				EvidenceURLs:  esolang.EvidenceURL,
			})
		}
	} else {
		p.Logger.Info("Esolang disabled (use --include-esolang to enable)")
	}

	// PLDB.
	pldbRecs, err := pldb.Scan(pldbDir, p.Logger)
	if err != nil {
		return fmt.Errorf("PLDB scan failed: %w", err)
	}
	for _, r := range pldbRecs {
		id := merge.MakeID(r.Name)
		rows = append(rows, &table.LanguageRecord{
			LangID:        id,
			CanonicalName: r.Name,
			SourceFlags:   table.SourcePLDB,
			Extensions:    r.Extensions,
			FirstAppeared: r.FirstAppeared,
			Homepage:      r.Homepage,
			Paradigms:     r.Paradigms,
			Typing:        r.Typing,
			DesignedBy:    r.DesignedBy,
			InfluencedBy:  r.InfluencedBy,
			HelloWorld:    r.HelloWorld,
			EvidenceURLs:  pldb.EvidenceURL,
		})
		for _, a := range r.Aliases {
			aliasRows = append(aliasRows, table.AliasRow{Alias: a, LangID: id, Source: table.SourcePLDB})
		}
	}

	enrichExtensionsFromLinguist(rows)
	for _, r := range rows {
		r.RefreshDerived()
	}

	result := merge.Resolve(rows, aliasRows, p.Merge.FuzzyThreshold)
	if err := result.Table.Write(p.Data.MasterCSV()); err != nil {
		return err
	}
	if err := table.WriteAliases(p.Data.AliasesCSV(), result.Aliases); err != nil {
		return err
	}
	p.Logger.Info("Wrote master list",
		zap.String("master", p.Data.MasterCSV()),
		zap.String("aliases", p.Data.AliasesCSV()),
		zap.Int("languages", len(result.Table.Rows)),
		zap.Int("aliases_rows", len(result.Aliases)),
	)
	return nil
}

func (p *Pipeline) linguistEntries(ctx context.Context, offline bool) ([]linguist.Entry, error) {
	snap := p.Data.LinguistSnapshot()
	if _, err := os.Stat(snap); err == nil {
		return linguist.Load(snap)
	}
	if !offline {
		src, err := p.Client.GetText(ctx, linguist.RawURL)
		if err != nil {
			return nil, fmt.Errorf("linguist fetch failed: %w", err)
		}
		if err := os.MkdirAll(p.Data.RawDir, 0o755); err != nil {
			return nil, err
		}
		if err := os.WriteFile(snap, []byte(src), 0o644); err != nil {
			return nil, err
		}
		return linguist.Load(snap)
	}
	// Offline with no snapshot: the registry embedded in go-enry carries the
	// same data, minus aliases.
	p.Logger.Warn("No linguist snapshot; using embedded go-enry registry",
		zap.String("missing", snap))
	return linguist.FromRegistry(), nil
}

func (p *Pipeline) wikipediaTitles(ctx context.Context, offline bool) ([]string, error) {
	snap := p.Data.WikipediaSnapshot()
	if _, err := os.Stat(snap); err == nil {
		return titles.Load(snap)
	}
	if offline {
		return nil, fmt.Errorf("missing required snapshot %s (run fetch first)", snap)
	}
	t, err := wikipedia.FetchTitles(ctx, p.Client)
	if err != nil {
		return nil, err
	}
	if err := titles.Save(snap, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (p *Pipeline) esolangTitles(ctx context.Context, offline bool) ([]string, error) {
	snap := p.Data.EsolangSnapshot()
	if _, err := os.Stat(snap); err == nil {
		return titles.Load(snap)
	}
	if offline {
		return nil, fmt.Errorf("missing required snapshot %s (run fetch first)", snap)
	}
	t, err := esolang.FetchTitles(ctx, p.Client)
	if err != nil {
		return nil, err
	}
	if err := titles.Save(snap, t); err != nil {
		return nil, err
	}
	return t, nil
}

func normalizeExts(exts []string) []string {
	return table.SplitExtensions(table.JoinExtensions(exts))
}

// enrichExtensionsFromLinguist copies linguist extension sets onto rows from
// other sources that share a canonical name or normalized id with a linguist
// entry, and marks them with the linguist flag. This runs before identity
// resolution so extension data survives even when a later fuzzy collapse
// changes row identity.
func enrichExtensionsFromLinguist(rows []*table.LanguageRecord) {
	keyToExt := make(map[string]string)
	nameToKey := make(map[string]string)
	idToKey := make(map[string]string)
	for _, r := range rows {
		if !table.HasFlag(r.SourceFlags, table.SourceLinguist) || r.LinguistKey == "" {
			continue
		}
		keyToExt[r.LinguistKey] = r.Extensions
		nameToKey[r.CanonicalName] = r.LinguistKey
		idToKey[r.LangID] = r.LinguistKey
	}

	for _, r := range rows {
		key := r.LinguistKey
		if key == "" {
			if k, ok := nameToKey[r.CanonicalName]; ok {
				key = k
			} else if k, ok := idToKey[r.LangID]; ok {
				key = k
			}
		}
		if key == "" {
			continue
		}
		r.LinguistKey = key
		r.Extensions = table.UnionExtensions(r.Extensions, keyToExt[key])
		r.AddFlag(table.SourceLinguist)
	}
}

// SnapshotSize reports the size of a raw snapshot file, or 0 when absent.
func SnapshotSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// RawSnapshots lists the raw snapshot paths for QA size reporting.
func (p *Pipeline) RawSnapshots() []string {
	return []string{
		p.Data.LinguistSnapshot(),
		p.Data.WikipediaSnapshot(),
		p.Data.EsolangSnapshot(),
	}
}
