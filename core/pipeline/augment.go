package pipeline

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"lang-atlas/core/merge"
	"lang-atlas/core/source/hyperpolyglot"
	"lang-atlas/core/source/pygments"
	"lang-atlas/core/source/rosetta"
	"lang-atlas/core/table"
)

// loadAugmentInput opens the richest table already on disk so augment stages
// can run in any order and still stack their columns.
func (p *Pipeline) loadAugmentInput(candidates ...string) (*table.Table, string, error) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			t, err := table.Read(path)
			if err != nil {
				return nil, "", err
			}
			return t, path, nil
		}
	}
	return nil, "", fmt.Errorf("no master table found; run build first (looked for %s)", strings.Join(candidates, ", "))
}

// masterIndex builds the promiscuous row index over the table plus the
// persisted alias file, expanded through a source-specific alias table.
func (p *Pipeline) masterIndex(t *table.Table, srcAliases map[string]string) *merge.Index {
	ix := merge.BuildRowIndex(t, srcAliases)

	rowByID := make(map[string]int, len(t.Rows))
	for i, r := range t.Rows {
		rowByID[r.LangID] = i
	}
	aliases, err := table.ReadAliases(p.Data.AliasesCSV())
	if err != nil {
		p.Logger.Warn("Alias file unavailable; matching on table cells only",
			zap.String("path", p.Data.AliasesCSV()), zap.Error(err))
		return ix
	}
	for _, a := range aliases {
		row, ok := rowByID[a.LangID]
		if !ok {
			continue
		}
		ix.AddVariants(merge.NormalizeKey(a.Alias), row)
	}
	return ix
}

// AugmentHyperpolyglot annotates master rows with Hyperpolyglot registry
// metadata and reports registry entries no master row could claim.
func (p *Pipeline) AugmentHyperpolyglot(ctx context.Context) error {
	reg, err := hyperpolyglot.Fetch(ctx, p.Client)
	if err != nil {
		return err
	}
	p.Logger.Info("Hyperpolyglot registry loaded",
		zap.Int("languages", len(reg.Languages)),
		zap.Int("info_entries", len(reg.Info)))

	t, inPath, err := p.loadAugmentInput(p.Data.MasterCSV())
	if err != nil {
		return err
	}
	t.EnsureColumns(table.HyperpolyglotColumns...)

	aliasTab := hyperpolyglot.AliasTable()
	ix := p.masterIndex(t, aliasTab)

	claimed := make(map[string]bool, len(reg.Languages))
	matched := 0
	annotate := func(rec *table.LanguageRecord, name string) {
		info := reg.Info[name]
		rec.HyperpolyglotName = name
		rec.InHyperpolyglot = true
		rec.HPType = info.Type
		rec.HPGroup = info.Group
		rec.HPColor = info.Color
		claimed[name] = true
		matched++
	}

	for _, name := range reg.Languages {
		row, ok := ix.Match(name, aliasTab, p.Merge.MatchCutoff)
		if !ok {
			continue
		}
		rec := t.Rows[row]
		if rec.HyperpolyglotName != "" {
			claimed[name] = true
			continue
		}
		annotate(rec, name)
	}

	// Reverse pass: rows the registry walk missed can still resolve through
	// the registry's own spelling-variant index.
	regIdx := hyperpolyglot.BuildIndex(reg.Languages)
	for _, rec := range t.Rows {
		if rec.HyperpolyglotName != "" {
			continue
		}
		if name := hyperpolyglot.ToCanonical(rec.CanonicalName, regIdx, aliasTab); name != "" {
			annotate(rec, name)
		}
	}

	var missing [][]string
	for _, name := range reg.Languages {
		if claimed[name] {
			continue
		}
		info := reg.Info[name]
		missing = append(missing, []string{name, info.Type, info.Group, info.Color})
	}

	if err := t.Write(p.Data.AugmentedCSV()); err != nil {
		return err
	}
	if err := table.WriteCSV(p.Data.HyperpolyglotMissingCSV(),
		[]string{"name", "type", "group", "color"}, missing); err != nil {
		return err
	}
	p.Logger.Info("Hyperpolyglot augmentation complete",
		zap.String("input", inPath),
		zap.String("output", p.Data.AugmentedCSV()),
		zap.Int("matched", matched),
		zap.Int("missing", len(missing)))
	return nil
}

// AugmentPygments annotates master rows with Pygments lexer metadata. Rows
// match by name and alias first, then by the filename patterns the lexers
// claim; lexers left unclaimed land in the missing report.
func (p *Pipeline) AugmentPygments(ctx context.Context) error {
	lexers, err := pygments.Fetch(ctx, p.Client)
	if err != nil {
		return err
	}
	p.Logger.Info("Pygments mapping loaded", zap.Int("lexers", len(lexers)))

	t, inPath, err := p.loadAugmentInput(p.Data.AugmentedCSV(), p.Data.MasterCSV())
	if err != nil {
		return err
	}
	t.EnsureColumns(table.PygmentsColumns...)

	ix := pygments.BuildIndexes(lexers)
	aliasTab := pygments.AliasTable()

	claimed := make(map[string]bool, len(lexers))
	matched := 0
	for _, rec := range t.Rows {
		blob := strings.ToLower(strings.Join(t.RowValues(rec), " "))
		disp := ix.Match(lookupName(rec), blob, aliasTab)
		if disp == "" {
			continue
		}
		lex := lexers[disp]
		rec.PygmentsName = disp
		rec.InPygments = true
		rec.PygmentsModule = lex.Module
		rec.PygmentsClass = lex.Class
		rec.PygmentsAliases = strings.Join(lex.Aliases, ";")
		rec.PygmentsFilenames = strings.Join(lex.Filenames, " ")
		rec.PygmentsMimetypes = strings.Join(lex.Mimetypes, ";")
		claimed[disp] = true
		matched++
	}

	var missing [][]string
	for _, disp := range sortedLexerNames(lexers) {
		if claimed[disp] {
			continue
		}
		lex := lexers[disp]
		missing = append(missing, []string{
			disp,
			lex.Module,
			lex.Class,
			strings.Join(lex.Aliases, ";"),
			strings.Join(lex.Filenames, " "),
			strings.Join(lex.Mimetypes, ";"),
		})
	}

	if err := t.Write(p.Data.PygmentsCSV()); err != nil {
		return err
	}
	if err := table.WriteCSV(p.Data.PygmentsMissingCSV(),
		[]string{"name", "module", "class", "aliases", "filenames", "mimetypes"}, missing); err != nil {
		return err
	}
	p.Logger.Info("Pygments augmentation complete",
		zap.String("input", inPath),
		zap.String("output", p.Data.PygmentsCSV()),
		zap.Int("matched", matched),
		zap.Int("missing", len(missing)))
	return nil
}

// AugmentRosetta annotates master rows with Rosetta Code category metadata,
// dumps the full scraped language list, and reports unclaimed entries.
func (p *Pipeline) AugmentRosetta(ctx context.Context) error {
	langs, err := rosetta.Fetch(ctx, p.Client)
	if err != nil {
		return err
	}
	p.Logger.Info("Rosetta Code languages fetched", zap.Int("count", len(langs)))

	dump := make([][]string, 0, len(langs))
	for _, l := range langs {
		dump = append(dump, []string{l.Name, l.URL, flattenText(l.Summary), strconv.Itoa(l.TasksCount)})
	}
	if err := table.WriteCSV(p.Data.RosettaDumpCSV(),
		[]string{"name", "url", "summary", "tasks_count"}, dump); err != nil {
		return err
	}

	t, inPath, err := p.loadAugmentInput(p.Data.PygmentsCSV(), p.Data.AugmentedCSV(), p.Data.MasterCSV())
	if err != nil {
		return err
	}
	t.EnsureColumns(table.RosettaColumns...)

	aliasTab := rosetta.AliasTable()
	ix := p.masterIndex(t, aliasTab)

	var missing [][]string
	matched := 0
	for _, l := range langs {
		row, ok := ix.Match(l.Name, aliasTab, p.Merge.MatchCutoff)
		if !ok {
			missing = append(missing, []string{l.Name, l.URL, strconv.Itoa(l.TasksCount)})
			continue
		}
		rec := t.Rows[row]
		if rec.InRosettaCode {
			continue
		}
		rec.InRosettaCode = true
		rec.RosettaName = l.Name
		rec.RosettaURL = l.URL
		rec.RosettaSummary = flattenText(l.Summary)
		rec.RosettaTasksCount = l.TasksCount
		matched++
	}

	if err := t.Write(p.Data.RosettaCSV()); err != nil {
		return err
	}
	if err := table.WriteCSV(p.Data.RosettaMissingCSV(),
		[]string{"name", "url", "tasks_count"}, missing); err != nil {
		return err
	}
	p.Logger.Info("Rosetta Code augmentation complete",
		zap.String("input", inPath),
		zap.String("output", p.Data.RosettaCSV()),
		zap.Int("matched", matched),
		zap.Int("missing", len(missing)))
	return nil
}

// lookupName picks the name later passes match on: the hyperpolyglot name
// when an earlier pass resolved one, since it is already registry-canonical,
// otherwise the row's own canonical name.
func lookupName(rec *table.LanguageRecord) string {
	if rec.HyperpolyglotName != "" {
		return rec.HyperpolyglotName
	}
	return rec.CanonicalName
}

func sortedLexerNames(lexers map[string]pygments.Lexer) []string {
	names := make([]string, 0, len(lexers))
	for name := range lexers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// flattenText collapses runs of whitespace (including newlines) to single
// spaces so multi-line extracts stay on one CSV line.
func flattenText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
