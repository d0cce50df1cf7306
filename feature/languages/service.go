package languages

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"

	"lang-atlas/core/pipeline"
	"lang-atlas/core/table"
)

// Service answers read-only queries over the derived dataset. The richest
// table on disk is loaded once and kept in memory; Reload picks up a fresh
// build without restarting the server.
type Service struct {
	data   pipeline.Config
	logger *zap.Logger

	mu      sync.RWMutex
	table   *table.Table
	aliases []table.AliasRow
}

// NewService creates a new language query service.
func NewService(data pipeline.Config, logger *zap.Logger) *Service {
	return &Service{data: data, logger: logger}
}

// Reload reads the richest table on disk into memory.
func (s *Service) Reload() error {
	path := ""
	for _, candidate := range []string{
		s.data.RosettaCSV(), s.data.PygmentsCSV(), s.data.AugmentedCSV(), s.data.MasterCSV(),
	} {
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
			break
		}
	}
	if path == "" {
		return fmt.Errorf("no derived table found under %s; run build first", s.data.DerivedDir)
	}

	t, err := table.Read(path)
	if err != nil {
		return err
	}
	aliases, err := table.ReadAliases(s.data.AliasesCSV())
	if err != nil {
		s.logger.Warn("Alias file unavailable", zap.String("path", s.data.AliasesCSV()), zap.Error(err))
		aliases = nil
	}

	s.mu.Lock()
	s.table, s.aliases = t, aliases
	s.mu.Unlock()
	s.logger.Info("Dataset loaded", zap.String("path", path), zap.Int("rows", len(t.Rows)))
	return nil
}

// List returns rows whose canonical name contains the query (case-insensitive)
// and, when source is set, that carry the source flag. Results are bounded by
// limit and shifted by offset.
func (s *Service) List(query, source string, limit, offset int) []*table.LanguageRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.table == nil {
		return nil
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	q := strings.ToLower(query)
	var out []*table.LanguageRecord
	skipped := 0
	for _, r := range s.table.Rows {
		if q != "" && !strings.Contains(strings.ToLower(r.CanonicalName), q) {
			continue
		}
		if source != "" && !table.HasFlag(r.SourceFlags, source) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, r)
		if len(out) >= limit {
			break
		}
	}
	return out
}

// Get returns the row with the given lang_id, or nil.
func (s *Service) Get(langID string) *table.LanguageRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.table == nil {
		return nil
	}
	for _, r := range s.table.Rows {
		if r.LangID == langID {
			return r
		}
	}
	return nil
}

// AliasesFor returns the alias rows recorded for a lang_id.
func (s *Service) AliasesFor(langID string) []table.AliasRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []table.AliasRow
	for _, a := range s.aliases {
		if a.LangID == langID {
			out = append(out, a)
		}
	}
	return out
}

// Snapshot hands the current table to callers that aggregate over all rows.
func (s *Service) Snapshot() *table.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table
}
