package languages

import (
	"fmt"

	"gorm.io/gorm"

	"lang-atlas/core/table"
)

// Store materializes the master table in a relational database.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over an open connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the languages table schema.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&LanguageRow{}); err != nil {
		return fmt.Errorf("failed to migrate languages table: %w", err)
	}
	return nil
}

// ReplaceAll swaps the table contents for the given records in one
// transaction, so readers never observe a half-written export.
func (s *Store) ReplaceAll(records []*table.LanguageRecord) error {
	rows := make([]LanguageRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, FromRecord(r))
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&LanguageRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear languages table: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, 500).Error; err != nil {
			return fmt.Errorf("failed to insert language rows: %w", err)
		}
		return nil
	})
}

// Count returns the number of stored languages.
func (s *Store) Count() (int64, error) {
	var n int64
	err := s.db.Model(&LanguageRow{}).Count(&n).Error
	return n, err
}

// ByLangID fetches a single row by its stable id.
func (s *Store) ByLangID(langID string) (*LanguageRow, error) {
	var row LanguageRow
	if err := s.db.Where("lang_id = ?", langID).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Search lists rows whose canonical name contains the query, ordered by
// lang_id, bounded by limit.
func (s *Store) Search(query string, limit int) ([]LanguageRow, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []LanguageRow
	q := s.db.Model(&LanguageRow{}).Order("lang_id").Limit(limit)
	if query != "" {
		q = q.Where("canonical_name LIKE ?", "%"+query+"%")
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
