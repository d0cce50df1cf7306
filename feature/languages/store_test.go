package languages

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"lang-atlas/core/table"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestStore_Count(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ByLangID(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectQuery("SELECT .* FROM `languages`").
		WillReturnRows(sqlmock.NewRows([]string{"lang_id", "canonical_name", "source_flags"}).
			AddRow("lua", "Lua", "linguist;pldb"))

	row, err := store.ByLangID("lua")
	require.NoError(t, err)
	assert.Equal(t, "Lua", row.CanonicalName)
	assert.Equal(t, "linguist;pldb", row.SourceFlags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ByLangID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectQuery("SELECT .* FROM `languages`").
		WillReturnRows(sqlmock.NewRows([]string{"lang_id"}))

	_, err := store.ByLangID("nope")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestStore_ReplaceAll(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `languages`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO `languages`").
		WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectCommit()

	err := store.ReplaceAll([]*table.LanguageRecord{
		{LangID: "lua", CanonicalName: "Lua"},
		{LangID: "cobol", CanonicalName: "COBOL"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ReplaceAll_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	// An empty export still clears the table, inside the same transaction.
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `languages`").
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectCommit()

	require.NoError(t, store.ReplaceAll(nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Search(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectQuery("SELECT .* FROM `languages` WHERE canonical_name LIKE").
		WithArgs("%lua%", 10).
		WillReturnRows(sqlmock.NewRows([]string{"lang_id", "canonical_name"}).
			AddRow("lua", "Lua").
			AddRow("luau", "Luau"))

	rows, err := store.Search("lua", 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Lua", rows[0].CanonicalName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
