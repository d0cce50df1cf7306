package extensions

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
	"lang-atlas/feature/languages"
)

func setupTestApp(t *testing.T, loaded bool) *fiber.App {
	t.Helper()
	data := pipeline.Config{DerivedDir: filepath.Join(t.TempDir(), "derived")}
	svc := languages.NewService(data, zap.NewNop())

	if loaded {
		tab := table.New(table.BaseColumns)
		tab.Rows = []*table.LanguageRecord{
			{LangID: "c", CanonicalName: "C", SourceFlags: "pldb", Extensions: ".c .h"},
			{LangID: "c-plus-plus", CanonicalName: "C++", SourceFlags: "pldb", Extensions: ".cpp .h"},
		}
		require.NoError(t, tab.Write(data.MasterCSV()))
		require.NoError(t, svc.Reload())
	}

	app := fiber.New()
	require.NoError(t, NewFeature(svc, zap.NewNop()).Load(app))
	return app
}

func TestHandleInventory(t *testing.T) {
	app := setupTestApp(t, true)

	resp, err := app.Test(httptest.NewRequest("GET", "/extensions", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Count      int `json:"count"`
		Extensions []struct {
			Extension  string `json:"extension"`
			CountTotal int    `json:"count_total"`
			SampleLang string `json:"sample_lang"`
		} `json:"extensions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 3, body.Count)
	assert.Equal(t, ".h", body.Extensions[0].Extension)
	assert.Equal(t, 2, body.Extensions[0].CountTotal)
	assert.Equal(t, "C", body.Extensions[0].SampleLang)
}

func TestHandleInventory_DatasetNotLoaded(t *testing.T) {
	app := setupTestApp(t, false)

	resp, err := app.Test(httptest.NewRequest("GET", "/extensions", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}
