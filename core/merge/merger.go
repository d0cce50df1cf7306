package merge

import (
	"sort"

	"lang-atlas/core/table"
)

// Source precedence for scalar fields when sources disagree. Lower wins.
// Augmenting tools never contribute scalar fields at merge time, so they
// implicitly rank last.
var sourcePriority = map[string]int{
	table.SourcePLDB:      0,
	table.SourceWikipedia: 1,
	table.SourceLinguist:  2,
	table.SourceEsolang:   3,
}

func sourceRank(flags string) int {
	rank := len(sourcePriority) + 1
	for _, f := range table.SplitFlags(flags) {
		if p, ok := sourcePriority[f]; ok && p < rank {
			rank = p
		}
	}
	return rank
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// MergeGroup combines all records resolved to one identity into a single
// row. Scalar fields take the first non-empty value in source-precedence
// order, set fields union, booleans or together. Derived counts are
// refreshed afterwards.
func MergeGroup(recs []*table.LanguageRecord) *table.LanguageRecord {
	if len(recs) == 0 {
		return nil
	}

	ordered := append([]*table.LanguageRecord(nil), recs...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return sourceRank(ordered[i].SourceFlags) < sourceRank(ordered[j].SourceFlags)
	})

	out := &table.LanguageRecord{LangID: ordered[0].LangID}
	var flags, evidence []string
	for _, r := range ordered {
		out.CanonicalName = firstNonEmpty(out.CanonicalName, r.CanonicalName)
		out.Types = firstNonEmpty(out.Types, r.Types)
		out.FirstAppeared = firstNonEmpty(out.FirstAppeared, r.FirstAppeared)
		out.Homepage = firstNonEmpty(out.Homepage, r.Homepage)
		out.Paradigms = firstNonEmpty(out.Paradigms, r.Paradigms)
		out.Typing = firstNonEmpty(out.Typing, r.Typing)
		out.DesignedBy = firstNonEmpty(out.DesignedBy, r.DesignedBy)
		out.InfluencedBy = firstNonEmpty(out.InfluencedBy, r.InfluencedBy)
		out.LinguistKey = firstNonEmpty(out.LinguistKey, r.LinguistKey)
		out.Notes = firstNonEmpty(out.Notes, r.Notes)
		out.HelloWorld = out.HelloWorld || r.HelloWorld
		out.Extensions = table.UnionExtensions(out.Extensions, r.Extensions)
		flags = append(flags, table.SplitFlags(r.SourceFlags)...)
		evidence = append(evidence, table.SplitFlags(r.EvidenceURLs)...)
		out.AliasCount = max(out.AliasCount, r.AliasCount)
	}
	out.SourceFlags = table.JoinFlags(flags)
	out.EvidenceURLs = table.JoinFlags(evidence)
	out.RefreshDerived()
	return out
}
