package merge

import (
	"fmt"
	"sort"

	"lang-atlas/core/table"
)

// Config holds tuning knobs for identity resolution.
type Config struct {
	// FuzzyThreshold is the minimum similarity ratio for collapsing two
	// near-identical lang_ids into one row.
	FuzzyThreshold float64 `mapstructure:"fuzzy_threshold" default:"0.94"`
	// MatchCutoff is the minimum similarity ratio for the augmenters'
	// fuzzy last-resort lookup against the master index.
	MatchCutoff float64 `mapstructure:"match_cutoff" default:"0.92"`
}

// Result is a resolved master table plus its alias rows.
type Result struct {
	Table   *table.Table
	Aliases []table.AliasRow
}

// Resolve groups source rows by lang_id, merges each group, then runs a
// conservative fuzzy collapse over the remaining ids. Collapses are recorded
// in the surviving row's notes so low-confidence matches stay reviewable.
// The operation is idempotent: resolving an already-resolved table changes
// nothing.
func Resolve(rows []*table.LanguageRecord, aliases []table.AliasRow, fuzzyThreshold float64) *Result {
	kept := make([]*table.LanguageRecord, 0, len(rows))
	for _, r := range rows {
		if r.LangID != "" {
			kept = append(kept, r)
		}
	}

	merged := groupAndMerge(kept)

	idMap := fuzzyCollapse(merged, fuzzyThreshold)
	if len(idMap) > 0 {
		collapsedInto := make(map[string][]string)
		for _, r := range merged {
			if target := resolveChain(idMap, r.LangID); target != r.LangID {
				collapsedInto[target] = append(collapsedInto[target], r.LangID)
				r.LangID = target
			}
		}
		merged = groupAndMerge(merged)

		// Flag low-confidence collapses on the surviving row instead of
		// merging silently.
		for _, r := range merged {
			for _, dropped := range collapsedInto[r.LangID] {
				r.AppendNote(fmt.Sprintf("fuzzy-merged:%s", dropped))
			}
		}

		for i := range aliases {
			aliases[i].LangID = resolveChain(idMap, aliases[i].LangID)
		}
	}

	sort.Slice(merged, func(i, j int) bool { return merged[i].LangID < merged[j].LangID })

	aliases = withSelfAliases(merged, aliases)
	counts := make(map[string]int, len(merged))
	for _, a := range aliases {
		counts[a.LangID]++
	}
	for _, r := range merged {
		r.AliasCount = counts[r.LangID]
	}

	t := table.New(table.BaseColumns)
	t.Rows = merged
	return &Result{Table: t, Aliases: aliases}
}

func groupAndMerge(rows []*table.LanguageRecord) []*table.LanguageRecord {
	order := make([]string, 0, len(rows))
	groups := make(map[string][]*table.LanguageRecord, len(rows))
	for _, r := range rows {
		if _, seen := groups[r.LangID]; !seen {
			order = append(order, r.LangID)
		}
		groups[r.LangID] = append(groups[r.LangID], r)
	}
	out := make([]*table.LanguageRecord, 0, len(order))
	for _, id := range order {
		out = append(out, MergeGroup(groups[id]))
	}
	return out
}

// fuzzyCollapse finds pairs of near-identical ids and maps the id with fewer
// contributing sources onto the richer one. Ids are only compared when they
// share a first letter, same as the original curation pass.
func fuzzyCollapse(rows []*table.LanguageRecord, threshold float64) map[string]string {
	if threshold <= 0 || threshold > 1 {
		threshold = 0.94
	}
	byID := make(map[string]*table.LanguageRecord, len(rows))
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.LangID)
		byID[r.LangID] = r
	}

	idMap := make(map[string]string)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := ids[i], ids[j]
			if a == "" || b == "" || a[0] != b[0] {
				continue
			}
			if Similarity(a, b) < threshold {
				continue
			}
			keep, drop := a, b
			if sourceCountOf(byID[b]) > sourceCountOf(byID[a]) {
				keep, drop = b, a
			}
			if _, mapped := idMap[drop]; !mapped {
				idMap[drop] = keep
			}
		}
	}
	return idMap
}

func sourceCountOf(r *table.LanguageRecord) int {
	return len(table.SplitFlags(r.SourceFlags))
}

// resolveChain follows the id map transitively so chained collapses all land
// on the final surviving id.
func resolveChain(idMap map[string]string, id string) string {
	seen := map[string]struct{}{}
	for {
		next, ok := idMap[id]
		if !ok || next == id {
			return id
		}
		if _, cycle := seen[id]; cycle {
			return id
		}
		seen[id] = struct{}{}
		id = next
	}
}

// withSelfAliases adds each merged row's canonical name as a "self" alias
// and deduplicates the alias table.
func withSelfAliases(rows []*table.LanguageRecord, aliases []table.AliasRow) []table.AliasRow {
	for _, r := range rows {
		if r.LangID != "" && r.CanonicalName != "" {
			aliases = append(aliases, table.AliasRow{Alias: r.CanonicalName, LangID: r.LangID, Source: "self"})
		}
	}
	seen := make(map[table.AliasRow]struct{}, len(aliases))
	out := make([]table.AliasRow, 0, len(aliases))
	for _, a := range aliases {
		if a.Alias == "" || a.LangID == "" {
			continue
		}
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LangID != out[j].LangID {
			return out[i].LangID < out[j].LangID
		}
		if out[i].Alias != out[j].Alias {
			return out[i].Alias < out[j].Alias
		}
		return out[i].Source < out[j].Source
	})
	return out
}
