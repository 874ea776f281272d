// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for the evolution service HTTP handlers

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/evomatrix/services/evolution/catalog"
	"github.com/AleutianAI/evomatrix/services/evolution/datatypes"
	"github.com/AleutianAI/evomatrix/services/evolution/enrich"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newCaseStore(t *testing.T) *catalog.CaseStore {
	t.Helper()
	store, err := catalog.NewCaseStore(filepath.Join(t.TempDir(), "imported.json"), nil)
	require.NoError(t, err)
	return store
}

// =============================================================================
// HealthCheck Tests
// =============================================================================

func TestHealthCheck_ReturnsOK(t *testing.T) {
	router := gin.New()
	router.GET("/health", HealthCheck)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "ok", response["status"])
}

// =============================================================================
// Module Endpoint Tests
// =============================================================================

func TestGetModules_ReturnsBaselineRows(t *testing.T) {
	router := gin.New()
	router.GET("/api/modules", GetModules())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/modules", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var modules []datatypes.ModuleData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &modules))
	assert.Len(t, modules, 8)
}

func TestGetModuleByName_Found(t *testing.T) {
	router := gin.New()
	router.GET("/api/modules/:id", GetModuleByName())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/modules/"+url.PathEscape("Сбор данных"), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var module datatypes.ModuleData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &module))
	assert.Equal(t, "Сбор данных", module.Name)
	assert.NotEmpty(t, module.Revisions.Rev1.Tech)
}

func TestGetModuleByName_NotFound(t *testing.T) {
	router := gin.New()
	router.GET("/api/modules/:id", GetModuleByName())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/modules/__does_not_exist__", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response, "error")
}

// =============================================================================
// Evolution Matrix Endpoint Tests
// =============================================================================

func TestGetEvolution_WrapsModules(t *testing.T) {
	router := gin.New()
	router.GET("/api/evolution", GetEvolution())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/evolution", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var data datatypes.EvolutionData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.Len(t, data.Modules, 8)
}

func TestGetEvolutionIntegrated_PlacesCatalogTechnologies(t *testing.T) {
	techs := catalog.NewTechnologyStore()
	cases := newCaseStore(t)

	router := gin.New()
	router.GET("/api/evolution/integrated", GetEvolutionIntegrated(techs, cases, nil))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/evolution/integrated", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var data datatypes.EvolutionData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))

	// Random Forest peaks in 2015, so it lands in the signal-generation
	// module's first revision.
	signals := data.FindModule("Генерация сигналов")
	require.NotNil(t, signals)
	assert.Contains(t, signals.Revisions.Rev1.Tech, "Random Forest")
}

func TestGetEvolutionDynamic_OneRowPerTechnology(t *testing.T) {
	techs := catalog.NewTechnologyStore()
	cases := newCaseStore(t)

	router := gin.New()
	router.GET("/api/evolution/dynamic", GetEvolutionDynamic(techs, cases, nil))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/evolution/dynamic", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var data datatypes.EvolutionData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.GreaterOrEqual(t, len(data.Modules), len(techs.All()))
}

// =============================================================================
// Technology Endpoint Tests
// =============================================================================

func TestGetTechnologies_FullCatalog(t *testing.T) {
	techs := catalog.NewTechnologyStore()

	router := gin.New()
	router.GET("/api/technologies", GetTechnologies(techs))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/technologies", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var records []datatypes.Technology
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Len(t, records, len(techs.All()))
}

func TestGetTechnologies_SearchFilter(t *testing.T) {
	techs := catalog.NewTechnologyStore()

	router := gin.New()
	router.GET("/api/technologies", GetTechnologies(techs))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/technologies?search=forest", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var records []datatypes.Technology
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.NotEmpty(t, records)

	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	assert.Contains(t, ids, "random-forest")
}

func TestGetTechnologies_FromOnlyRangeIsOpenEnded(t *testing.T) {
	techs := catalog.NewTechnologyStore()

	router := gin.New()
	router.GET("/api/technologies", GetTechnologies(techs))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/technologies?from=2010", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var records []datatypes.Technology
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.NotEmpty(t, records, "a from-only range runs through the current year")
}

func TestGetTechnologies_NoMatchesSerializesAsEmptyArray(t *testing.T) {
	techs := catalog.NewTechnologyStore()

	router := gin.New()
	router.GET("/api/technologies", GetTechnologies(techs))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/technologies?search=__no_such_record__", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetTechnologies_BadYearFilter(t *testing.T) {
	techs := catalog.NewTechnologyStore()

	router := gin.New()
	router.GET("/api/technologies", GetTechnologies(techs))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/technologies?from=abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestGetTechnologyByID_NotFound(t *testing.T) {
	techs := catalog.NewTechnologyStore()

	router := gin.New()
	router.GET("/api/technologies/:id", GetTechnologyByID(techs))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/technologies/__does_not_exist__", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTechnologyRows_ModuleFilter(t *testing.T) {
	techs := catalog.NewTechnologyStore()

	router := gin.New()
	router.GET("/api/technologies/rows", GetTechnologyRows(techs))

	w := httptest.NewRecorder()
	target := "/api/technologies/rows?module=" + url.QueryEscape("Генерация сигналов")
	req, _ := http.NewRequest("GET", target, nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var rows []datatypes.TechnologyRow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.NotEmpty(t, rows)
	for _, row := range rows {
		matches := row.Module == "Генерация сигналов"
		for _, m := range row.ApplicableModules {
			if m == "Генерация сигналов" {
				matches = true
			}
		}
		assert.True(t, matches, "row %s does not match the filter", row.ID)
	}
}

func TestEnrichTechnology_NothingFound(t *testing.T) {
	techs := catalog.NewTechnologyStore()
	// Unreachable base URLs force both lookups to fail silently.
	client := enrich.NewClient(nil, enrich.WithBaseURLs("http://127.0.0.1:0", "http://127.0.0.1:0"))

	router := gin.New()
	router.GET("/api/technologies/:id/enrich", EnrichTechnology(techs, client, nil))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/technologies/random-forest/enrich", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

// =============================================================================
// Trading Machine Endpoint Tests
// =============================================================================

func TestGetTradingMachines_ReturnsSeedCases(t *testing.T) {
	cases := newCaseStore(t)

	router := gin.New()
	router.GET("/api/trading-machines", GetTradingMachines(cases))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/trading-machines", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var records []datatypes.TradingMachine
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Len(t, records, cases.Count())
}

func TestGetTradingMachines_TechnologyFilter(t *testing.T) {
	cases := newCaseStore(t)

	router := gin.New()
	router.GET("/api/trading-machines", GetTradingMachines(cases))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/trading-machines?technology=randomforest", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var records []datatypes.TradingMachine
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "random-forest-scalper-2015", records[0].ID)
}

func TestGetCaseTechnologies_SortedLabels(t *testing.T) {
	cases := newCaseStore(t)

	router := gin.New()
	router.GET("/api/trading-machines/technologies", GetCaseTechnologies(cases))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/trading-machines/technologies", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var labels []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &labels))
	assert.NotEmpty(t, labels)
}

// =============================================================================
// Import Endpoint Tests
// =============================================================================

func TestImportTradingMachine_RoundTrip(t *testing.T) {
	cases := newCaseStore(t)

	router := gin.New()
	router.POST("/api/import/trading-machine", ImportTradingMachine(cases, nil))
	router.GET("/api/trading-machines", GetTradingMachines(cases))

	rawText := "Торговый бот на LSTM для криптовалютного рынка с фокусом на скальпинг."
	body, err := json.Marshal(map[string]string{"rawText": rawText})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/import/trading-machine", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created datatypes.TradingMachine
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, rawText, created.Description)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/trading-machines", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var records []datatypes.TradingMachine
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))

	var found *datatypes.TradingMachine
	for i := range records {
		if records[i].ID == created.ID {
			found = &records[i]
		}
	}
	require.NotNil(t, found, "imported case missing from the listing")
	assert.Equal(t, rawText, found.Description)
}

func TestImportTradingMachine_MissingRawText(t *testing.T) {
	cases := newCaseStore(t)

	router := gin.New()
	router.POST("/api/import/trading-machine", ImportTradingMachine(cases, nil))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/import/trading-machine",
		bytes.NewReader([]byte(`{"name":"no text"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
	assert.Equal(t, 2, cases.Count(), "rejected import must not be persisted")
}

func TestImportTradingMachine_InvalidJSON(t *testing.T) {
	cases := newCaseStore(t)
	before := cases.Count()

	router := gin.New()
	router.POST("/api/import/trading-machine", ImportTradingMachine(cases, nil))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/import/trading-machine",
		bytes.NewReader([]byte(`{not json`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, before, cases.Count())
}

// =============================================================================
// Tree Endpoint Tests
// =============================================================================

func TestGetTreeData_ReturnsHierarchy(t *testing.T) {
	router := gin.New()
	router.GET("/api/tree-data", GetTreeData())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/tree-data", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var tree datatypes.TreeNode
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tree))
	assert.NotEmpty(t, tree.Name)
	assert.NotEmpty(t, tree.Children)
}
