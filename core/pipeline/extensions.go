package pipeline

import (
	"sort"
	"strconv"

	"go.uber.org/zap"

	"lang-atlas/core/table"
)

var extensionsHeader = []string{
	"extension",
	"count_total",
	"count_pldb",
	"count_linguist",
	"count_wikipedia",
	"count_esolang",
	"sample_lang",
}

// Inventory aggregates the extension column of a master table into one row
// per extension: total claimant count, per-source counts, and the first
// language encountered as a sample. Rows come back sorted by total count
// descending, then extension ascending.
func Inventory(t *table.Table) []table.ExtensionRecord {
	byExt := make(map[string]*table.ExtensionRecord)
	for _, rec := range t.Rows {
		for _, ext := range table.SplitExtensions(rec.Extensions) {
			er, ok := byExt[ext]
			if !ok {
				er = &table.ExtensionRecord{Extension: ext, SampleLang: rec.CanonicalName}
				byExt[ext] = er
			}
			er.CountTotal++
			if table.HasFlag(rec.SourceFlags, table.SourcePLDB) {
				er.CountPLDB++
			}
			if table.HasFlag(rec.SourceFlags, table.SourceLinguist) {
				er.CountLinguist++
			}
			if table.HasFlag(rec.SourceFlags, table.SourceWikipedia) {
				er.CountWikipedia++
			}
			if table.HasFlag(rec.SourceFlags, table.SourceEsolang) {
				er.CountEsolang++
			}
		}
	}

	out := make([]table.ExtensionRecord, 0, len(byExt))
	for _, er := range byExt {
		out = append(out, *er)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CountTotal != out[j].CountTotal {
			return out[i].CountTotal > out[j].CountTotal
		}
		return out[i].Extension < out[j].Extension
	})
	return out
}

// BuildExtensions reads the richest table on disk, computes the extension
// inventory, and writes extensions_inventory.csv. An extension-free master
// still yields a header-only file.
func (p *Pipeline) BuildExtensions() error {
	t, inPath, err := p.LoadRichest()
	if err != nil {
		return err
	}

	inv := Inventory(t)
	rows := make([][]string, 0, len(inv))
	for _, er := range inv {
		rows = append(rows, []string{
			er.Extension,
			strconv.Itoa(er.CountTotal),
			strconv.Itoa(er.CountPLDB),
			strconv.Itoa(er.CountLinguist),
			strconv.Itoa(er.CountWikipedia),
			strconv.Itoa(er.CountEsolang),
			er.SampleLang,
		})
	}
	if err := table.WriteCSV(p.Data.ExtensionsCSV(), extensionsHeader, rows); err != nil {
		return err
	}
	p.Logger.Info("Wrote extensions inventory",
		zap.String("input", inPath),
		zap.String("output", p.Data.ExtensionsCSV()),
		zap.Int("extensions", len(inv)))
	return nil
}
