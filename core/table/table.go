package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Column sets for the master table. Augment commands extend whatever columns
// their input carried, so downstream files accumulate columns in pipeline
// order.
var (
	BaseColumns = []string{
		"lang_id", "canonical_name", "source_flags", "types", "extensions",
		"first_appeared", "homepage", "paradigms", "typing", "designed_by",
		"influenced_by", "hello_world", "linguist_key", "evidence_urls",
		"notes", "in_pldb", "in_linguist", "in_wikipedia", "in_esolang",
		"has_extensions", "has_paradigm", "has_typing", "has_hello_world",
		"source_count", "alias_count",
	}
	HyperpolyglotColumns = []string{
		"hyperpolyglot_name", "in_hyperpolyglot", "hp_type", "hp_group", "hp_color",
	}
	PygmentsColumns = []string{
		"pygments_name", "in_pygments", "pygments_module", "pygments_class",
		"pygments_aliases", "pygments_filenames", "pygments_mimetypes",
	}
	RosettaColumns = []string{
		"in_rosettacode", "rosettacode_name", "rosettacode_url",
		"rosettacode_summary", "rosettacode_tasks_count",
	}
)

type columnCodec struct {
	get func(*LanguageRecord) string
	set func(*LanguageRecord, string)
}

func stringCol(get func(*LanguageRecord) *string) columnCodec {
	return columnCodec{
		get: func(r *LanguageRecord) string { return *get(r) },
		set: func(r *LanguageRecord, v string) { *get(r) = v },
	}
}

func boolCol(get func(*LanguageRecord) *bool) columnCodec {
	return columnCodec{
		get: func(r *LanguageRecord) string { return strconv.FormatBool(*get(r)) },
		set: func(r *LanguageRecord, v string) { *get(r) = ParseBool(v) },
	}
}

func intCol(get func(*LanguageRecord) *int) columnCodec {
	return columnCodec{
		get: func(r *LanguageRecord) string { return strconv.Itoa(*get(r)) },
		set: func(r *LanguageRecord, v string) {
			n, _ := strconv.Atoi(strings.TrimSpace(v))
			*get(r) = n
		},
	}
}

var columns = map[string]columnCodec{
	"lang_id":        stringCol(func(r *LanguageRecord) *string { return &r.LangID }),
	"canonical_name": stringCol(func(r *LanguageRecord) *string { return &r.CanonicalName }),
	"source_flags":   stringCol(func(r *LanguageRecord) *string { return &r.SourceFlags }),
	"types":          stringCol(func(r *LanguageRecord) *string { return &r.Types }),
	"extensions":     stringCol(func(r *LanguageRecord) *string { return &r.Extensions }),
	"first_appeared": stringCol(func(r *LanguageRecord) *string { return &r.FirstAppeared }),
	"homepage":       stringCol(func(r *LanguageRecord) *string { return &r.Homepage }),
	"paradigms":      stringCol(func(r *LanguageRecord) *string { return &r.Paradigms }),
	"typing":         stringCol(func(r *LanguageRecord) *string { return &r.Typing }),
	"designed_by":    stringCol(func(r *LanguageRecord) *string { return &r.DesignedBy }),
	"influenced_by":  stringCol(func(r *LanguageRecord) *string { return &r.InfluencedBy }),
	"hello_world":    boolCol(func(r *LanguageRecord) *bool { return &r.HelloWorld }),
	"linguist_key":   stringCol(func(r *LanguageRecord) *string { return &r.LinguistKey }),
	"evidence_urls":  stringCol(func(r *LanguageRecord) *string { return &r.EvidenceURLs }),
	"notes":          stringCol(func(r *LanguageRecord) *string { return &r.Notes }),

	"in_pldb":      boolCol(func(r *LanguageRecord) *bool { return &r.InPLDB }),
	"in_linguist":  boolCol(func(r *LanguageRecord) *bool { return &r.InLinguist }),
	"in_wikipedia": boolCol(func(r *LanguageRecord) *bool { return &r.InWikipedia }),
	"in_esolang":   boolCol(func(r *LanguageRecord) *bool { return &r.InEsolang }),

	"has_extensions":  boolCol(func(r *LanguageRecord) *bool { return &r.HasExtensions }),
	"has_paradigm":    boolCol(func(r *LanguageRecord) *bool { return &r.HasParadigm }),
	"has_typing":      boolCol(func(r *LanguageRecord) *bool { return &r.HasTyping }),
	"has_hello_world": boolCol(func(r *LanguageRecord) *bool { return &r.HasHelloWorld }),

	"source_count": intCol(func(r *LanguageRecord) *int { return &r.SourceCount }),
	"alias_count":  intCol(func(r *LanguageRecord) *int { return &r.AliasCount }),

	"hyperpolyglot_name": stringCol(func(r *LanguageRecord) *string { return &r.HyperpolyglotName }),
	"in_hyperpolyglot":   boolCol(func(r *LanguageRecord) *bool { return &r.InHyperpolyglot }),
	"hp_type":            stringCol(func(r *LanguageRecord) *string { return &r.HPType }),
	"hp_group":           stringCol(func(r *LanguageRecord) *string { return &r.HPGroup }),
	"hp_color":           stringCol(func(r *LanguageRecord) *string { return &r.HPColor }),

	"pygments_name":      stringCol(func(r *LanguageRecord) *string { return &r.PygmentsName }),
	"in_pygments":        boolCol(func(r *LanguageRecord) *bool { return &r.InPygments }),
	"pygments_module":    stringCol(func(r *LanguageRecord) *string { return &r.PygmentsModule }),
	"pygments_class":     stringCol(func(r *LanguageRecord) *string { return &r.PygmentsClass }),
	"pygments_aliases":   stringCol(func(r *LanguageRecord) *string { return &r.PygmentsAliases }),
	"pygments_filenames": stringCol(func(r *LanguageRecord) *string { return &r.PygmentsFilenames }),
	"pygments_mimetypes": stringCol(func(r *LanguageRecord) *string { return &r.PygmentsMimetypes }),

	"in_rosettacode":   boolCol(func(r *LanguageRecord) *bool { return &r.InRosettaCode }),
	"rosettacode_name": stringCol(func(r *LanguageRecord) *string { return &r.RosettaName }),
	"rosettacode_url":  stringCol(func(r *LanguageRecord) *string { return &r.RosettaURL }),
	"rosettacode_summary": stringCol(func(r *LanguageRecord) *string {
		return &r.RosettaSummary
	}),
	// Task counts are only meaningful for matched rows; unmatched rows keep
	// the cell empty instead of a misleading zero.
	"rosettacode_tasks_count": {
		get: func(r *LanguageRecord) string {
			if !r.InRosettaCode {
				return ""
			}
			return strconv.Itoa(r.RosettaTasksCount)
		},
		set: func(r *LanguageRecord, v string) {
			n, _ := strconv.Atoi(strings.TrimSpace(v))
			r.RosettaTasksCount = n
		},
	},
}

// ParseBool parses the boolean cell format. Pandas-era files used
// "True"/"False"; our own output uses "true"/"false". "1" also counts.
func ParseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1":
		return true
	default:
		return false
	}
}

// Table is an in-memory master table: an ordered column set plus rows.
// Columns not in the set are neither read nor written, so each pipeline
// stage preserves exactly what its input carried plus what it adds.
type Table struct {
	Columns []string
	Rows    []*LanguageRecord
}

// New creates an empty table with the given column set.
func New(cols []string) *Table {
	return &Table{Columns: append([]string(nil), cols...)}
}

// EnsureColumns appends any missing columns to the table's column set,
// keeping existing order.
func (t *Table) EnsureColumns(cols ...string) {
	have := make(map[string]struct{}, len(t.Columns))
	for _, c := range t.Columns {
		have[c] = struct{}{}
	}
	for _, c := range cols {
		if _, ok := have[c]; !ok {
			t.Columns = append(t.Columns, c)
			have[c] = struct{}{}
		}
	}
}

// Read loads a master table CSV. Unknown header columns are rejected so a
// stale or foreign file fails loudly instead of being silently truncated on
// the next write.
func Read(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open master table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty master table: %s", path)
	}

	header := rows[0]
	for _, col := range header {
		if _, ok := columns[col]; !ok {
			return nil, fmt.Errorf("unknown column %q in %s", col, path)
		}
	}

	t := New(header)
	for _, row := range rows[1:] {
		rec := &LanguageRecord{}
		for i, col := range header {
			if i < len(row) {
				columns[col].set(rec, row[i])
			}
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

// Write stores the table as CSV, creating parent directories as needed.
func (t *Table) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return err
	}
	row := make([]string, len(t.Columns))
	for _, rec := range t.Rows {
		for i, col := range t.Columns {
			row[i] = columns[col].get(rec)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// RowValues returns the record's cell values for the table's column set, in
// column order. Used by the augmenters' all-fields match index.
func (t *Table) RowValues(rec *LanguageRecord) []string {
	out := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		out[i] = columns[col].get(rec)
	}
	return out
}

// WriteCSV writes an arbitrary header+rows CSV, for the secondary reports
// (aliases, missing-from-master diffs, dumps).
func WriteCSV(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
