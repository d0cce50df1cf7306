package languages

import (
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lang-atlas/core/pipeline"
	"lang-atlas/core/table"
)

func writeFixtureDataset(t *testing.T) pipeline.Config {
	t.Helper()
	dir := t.TempDir()
	data := pipeline.Config{
		RawDir:     filepath.Join(dir, "raw"),
		DerivedDir: filepath.Join(dir, "derived"),
	}

	tab := table.New(table.BaseColumns)
	tab.Rows = []*table.LanguageRecord{
		{LangID: "lua", CanonicalName: "Lua", SourceFlags: "linguist;pldb", Extensions: ".lua"},
		{LangID: "luau", CanonicalName: "Luau", SourceFlags: "pldb"},
		{LangID: "cobol", CanonicalName: "COBOL", SourceFlags: "wikipedia"},
	}
	for _, r := range tab.Rows {
		r.RefreshDerived()
	}
	require.NoError(t, tab.Write(data.MasterCSV()))
	require.NoError(t, table.WriteAliases(data.AliasesCSV(), []table.AliasRow{
		{Alias: "Lua", LangID: "lua", Source: "self"},
		{Alias: "luajit", LangID: "lua", Source: "linguist"},
		{Alias: "COBOL", LangID: "cobol", Source: "self"},
	}))
	return data
}

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	svc := NewService(writeFixtureDataset(t), zap.NewNop())
	require.NoError(t, svc.Reload())
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func TestHandleList(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/languages/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Count     int           `json:"count"`
		Languages []LanguageRow `json:"languages"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 3, body.Count)
	assert.Equal(t, "lua", body.Languages[0].LangID)
}

func TestHandleList_Filters(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/languages/?q=lua&source=linguist", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body struct {
		Count     int           `json:"count"`
		Languages []LanguageRow `json:"languages"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "Lua", body.Languages[0].CanonicalName)
}

func TestHandleList_Pagination(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/languages/?limit=1&offset=1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body struct {
		Count     int           `json:"count"`
		Languages []LanguageRow `json:"languages"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "luau", body.Languages[0].LangID)
}

func TestHandleGet(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/languages/lua", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var row LanguageRow
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&row))
	assert.Equal(t, "Lua", row.CanonicalName)
	assert.Equal(t, ".lua", row.Extensions)
	assert.True(t, row.InPLDB)
}

func TestHandleGet_NotFound(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/languages/nope", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleAliases(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/languages/lua/aliases", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Count   int `json:"count"`
		Aliases []struct {
			Alias  string `json:"alias"`
			Source string `json:"source"`
		} `json:"aliases"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 2, body.Count)
	names := []string{body.Aliases[0].Alias, body.Aliases[1].Alias}
	assert.Contains(t, names, "luajit")
}

func TestHandleAliases_UnknownLanguage(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/languages/nope/aliases", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
