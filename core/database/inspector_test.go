package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTableColumns(t *testing.T) {
	// Setup In-Memory DB
	db, err := Connect(Config{Driver: "sqlite", Path: ":memory:"})
	assert.NoError(t, err)
	assert.NotNil(t, db)

	// SQLite specific types: INTEGER, TEXT.
	err = db.Exec("CREATE TABLE languages (id INTEGER PRIMARY KEY, lang_id TEXT, canonical_name TEXT)").Error
	assert.NoError(t, err)

	columns, err := GetTableColumns(db, "languages")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "text", colMap["lang_id"])
	assert.Equal(t, "text", colMap["canonical_name"])

	// PRAGMA table_info returns an empty result for a missing table:
	// no error, no columns.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}
