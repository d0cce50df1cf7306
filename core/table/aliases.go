package table

import (
	"encoding/csv"
	"fmt"
	"os"
)

// WriteAliases stores the alias table CSV (alias, lang_id, source).
func WriteAliases(path string, rows []AliasRow) error {
	out := make([][]string, 0, len(rows))
	for _, a := range rows {
		out = append(out, []string{a.Alias, a.LangID, a.Source})
	}
	return WriteCSV(path, []string{"alias", "lang_id", "source"}, out)
}

// ReadAliases loads an alias table CSV.
func ReadAliases(path string) ([]AliasRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open alias table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var out []AliasRow
	for i, row := range rows {
		if i == 0 && row[0] == "alias" {
			continue
		}
		out = append(out, AliasRow{Alias: row[0], LangID: row[1], Source: row[2]})
	}
	return out, nil
}
