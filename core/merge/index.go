package merge

import "lang-atlas/core/table"

// Index maps normalized name keys to master row positions. First writer
// wins, so row order decides ties the same way every run.
type Index struct {
	m map[string]int
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{m: make(map[string]int)}
}

// Add registers a key for a row unless the key is already taken.
func (ix *Index) Add(key string, row int) {
	if key == "" {
		return
	}
	if _, taken := ix.m[key]; !taken {
		ix.m[key] = row
	}
}

// AddVariants registers all spacing/hyphen variants of a key.
func (ix *Index) AddVariants(key string, row int) {
	for _, v := range Variants(key) {
		ix.Add(v, row)
	}
}

// Lookup returns the row registered for a key.
func (ix *Index) Lookup(key string) (int, bool) {
	row, ok := ix.m[key]
	return row, ok
}

// Len returns the number of registered keys.
func (ix *Index) Len() int {
	return len(ix.m)
}

// Match resolves an external source name against the index: exact key, then
// the alias table, then spacing variants, then a fuzzy last resort at the
// given cutoff. Returns the row and false if nothing clears the cutoff.
func (ix *Index) Match(name string, aliasTable map[string]string, cutoff float64) (int, bool) {
	key := NormalizeKey(name)
	if row, ok := ix.m[key]; ok {
		return row, true
	}
	ali := key
	if mapped, ok := aliasTable[key]; ok {
		ali = NormalizeKey(mapped)
	}
	for _, v := range Variants(ali) {
		if row, ok := ix.m[v]; ok {
			return row, true
		}
	}
	if cutoff > 0 {
		// Ties at equal similarity break on the smaller row index, so the
		// fuzzy fallback is deterministic despite map iteration order.
		bestRow, bestSim := -1, 0.0
		for candidate, row := range ix.m {
			sim := Similarity(ali, candidate)
			if sim < cutoff {
				continue
			}
			if sim > bestSim || (sim == bestSim && row < bestRow) {
				bestRow, bestSim = row, sim
			}
		}
		if bestRow >= 0 {
			return bestRow, true
		}
	}
	return -1, false
}

// BuildRowIndex indexes every string cell of every master row, tokenized
// into pieces and expanded through the alias table. This is deliberately
// promiscuous: augmenting sources match against anything the master already
// knows about a language, not just its canonical name.
func BuildRowIndex(t *table.Table, aliasTable map[string]string) *Index {
	ix := NewIndex()
	for rowNum, rec := range t.Rows {
		for _, cell := range t.RowValues(rec) {
			if cell == "" {
				continue
			}
			for _, piece := range TokenizePieces(cell) {
				key := NormalizeKey(piece)
				if key == "" {
					continue
				}
				ix.AddVariants(key, rowNum)
				if mapped, ok := aliasTable[key]; ok {
					ix.AddVariants(NormalizeKey(mapped), rowNum)
				}
			}
		}
	}
	return ix
}
